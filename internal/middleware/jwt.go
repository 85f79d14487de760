package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/crucial707/blog-api/internal/auth"
)

type key string

const UserIDKey key = "user_id"

// TokenVerifier decodes a bearer token into its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Authenticate extracts the "Bearer <token>" credential from r and verifies it.
// It returns auth.ErrMissingToken when the header is absent or malformed and
// auth.ErrInvalidToken when verification fails.
func Authenticate(v TokenVerifier, r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" {
		return "", auth.ErrMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", auth.ErrMissingToken
	}

	claims, err := v.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrMissingToken) {
			return "", err
		}
		if !errors.Is(err, auth.ErrInvalidToken) {
			err = errors.Join(auth.ErrInvalidToken, err)
		}
		return "", err
	}
	return claims.Subject, nil
}

// JWTMiddleware rejects requests without a valid bearer token with 401 and
// stores the caller's user id in the request context otherwise.
func JWTMiddleware(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := Authenticate(v, r)
			if err != nil {
				msg := "Please send Bearer Token"
				if errors.Is(err, auth.ErrInvalidToken) {
					msg = "Token is not valid"
					log.Debug().Err(err).
						Str("request_id", chimw.GetReqID(r.Context())).
						Msg("rejected bearer token")
				}
				writeUnauthorized(w, msg)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID returns the authenticated user id stored by JWTMiddleware.
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="blog-api"`)
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
