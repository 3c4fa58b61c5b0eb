package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/rakapradana/place-review/application/auth"
	"github.com/rakapradana/place-review/constant"
	utilsContext "github.com/rakapradana/place-review/utils/context"
	"github.com/rakapradana/place-review/utils/errors"
)

// Clients send `Authorization: Token <opaque-token>`.
const authScheme = "Token "

// AuthMiddleware resolves the opaque bearer token on protected routes and
// embeds the user id into the request context. Public endpoints (register,
// login, swagger, internal) pass through untouched.
func AuthMiddleware(authApp auth.AuthApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, authScheme) {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(header, authScheme)

			userID, err := authApp.ResolveToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.SetUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no token required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/api/auth/register/" || path == "/api/auth/login/" {
		return true
	}

	return false
}
