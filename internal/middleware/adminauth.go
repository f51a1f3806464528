package middleware

import (
	"context"
	"net/http"

	"github.com/Ibrakam/PartyLand/internal/cookie"
	"github.com/Ibrakam/PartyLand/internal/domain"
	"github.com/Ibrakam/PartyLand/internal/service"
)

const adminSessionContextKey contextKey = "admin_session"

// RequireAdmin gates a route behind a valid admin session cookie. The
// resolved session lands in the request context.
func RequireAdmin(admin *service.AdminService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := cookie.Get(r, cookie.AdminCookieName)
			if token == "" {
				respondWithError(w, r, domain.Unauthorized("admin.session", "Admin session required"))
				return
			}

			session, err := admin.Validate(token)
			if err != nil {
				respondWithError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), adminSessionContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminSession retrieves the admin session placed by RequireAdmin, nil
// when absent.
func GetAdminSession(ctx context.Context) *service.AdminSession {
	session, ok := ctx.Value(adminSessionContextKey).(*service.AdminSession)
	if !ok {
		return nil
	}
	return session
}
