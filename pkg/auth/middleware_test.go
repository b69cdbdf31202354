package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/sellerboard/sellerboard/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtService := NewMockJWTServiceInterface(ctrl)
	users := NewMockUserProvider(ctrl)

	claims := &Claims{StandardClaims: jwt.StandardClaims{Subject: "alice"}}

	tests := []struct {
		name         string
		authHeader   string
		prepareMock  func()
		expectedCode int
		expectNext   bool
	}{
		{
			name:       "Valid token",
			authHeader: "Bearer valid-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("valid-token").Return(claims, nil)
				users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(&domain.User{ID: 1, Username: "alice"}, nil)
			},
			expectedCode: http.StatusOK,
			expectNext:   true,
		},
		{
			name:         "Missing header",
			authHeader:   "",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			authHeader:   "Basic abc",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "Invalid token",
			authHeader: "Bearer bad-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("bad-token").Return(nil, errors.New("invalid token"))
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "Unknown subject",
			authHeader: "Bearer valid-token",
			prepareMock: func() {
				jwtService.EXPECT().ValidateToken("valid-token").Return(claims, nil)
				users.EXPECT().FindByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, 1, r.Context().Value(UserIDKey))
				assert.Equal(t, "alice", r.Context().Value(UsernameKey))
			})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			Middleware(jwtService, users)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectNext, nextCalled)
			if tt.expectedCode == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
