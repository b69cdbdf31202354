package domain

import "errors"

var (
	ErrUserExists             = errors.New("username or email already registered")
	ErrInsufficientBalance    = errors.New("insufficient balance for withdrawal")
	ErrWithdrawalNotFound     = errors.New("withdrawal not found")
	ErrDuplicateTransactionID = errors.New("transaction id already exists")
)
