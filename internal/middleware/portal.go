package middleware

import (
	"net/http"
	"strings"

	"github.com/cargomoz/backoffice/internal/auth"
	"github.com/cargomoz/backoffice/internal/handler"
	"github.com/cargomoz/backoffice/internal/logging"
)

// PortalAuth guards client-portal routes. Tokens are issued by the portal
// login service; here we only verify them and stash the client identity.
func PortalAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				handler.RespondAppError(w, handler.ErrMissingToken, nil)
				return
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				handler.RespondAppError(w, handler.ErrInvalidToken, nil)
				return
			}

			claims, err := auth.ValidateToken(token, secret)
			if err != nil {
				handler.RespondAppError(w, handler.ErrInvalidToken, nil)
				return
			}

			ctx := auth.ContextWithClientID(r.Context(), claims.ClientID)
			ctx = logging.WithLogger(ctx, logging.FromContext(ctx).With("client_id", claims.ClientID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
