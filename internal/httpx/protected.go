package httpx

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
)

type contextKey string

const adminContextKey contextKey = "admin"

// Protected verifies the bearer credential before any mutation handler runs.
// Missing, malformed, expired and badly signed tokens are all rejected with
// the same response, and a valid one puts the admin identity on the context.
func Protected(jwtSecret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			sub, ok := claims["sub"].(string)
			if !ok || sub == "" {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := WithAdmin(r.Context(), sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func WithAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminContextKey, username)
}

func AdminFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(adminContextKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
