package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/sellerboard/sellerboard/pkg/utils"
)

type ContextKey string

const (
	UserIDKey   ContextKey = "userID"
	UsernameKey ContextKey = "username"
)

// UserProvider resolves the token subject to a stored user.
type UserProvider interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

func Middleware(jwtService JWTServiceInterface, users UserProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				unauthorized(w)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.FindByUsername(r.Context(), claims.Subject)
			if err != nil || user == nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, user.ID)
			ctx = context.WithValue(ctx, UsernameKey, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	utils.RespondWithError(w, http.StatusUnauthorized, "Could not validate credentials")
}
