// Package adminauth guards admin routes with ACL resources.
package adminauth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"loginascustomer/internal/sessionstorage"
)

// ResourceLoginAsCustomer is the ACL resource for starting an impersonation.
const ResourceLoginAsCustomer = "loginascustomer::login"

// AdminSource resolves the admin bound to a request.
type AdminSource interface {
	CurrentAdmin(ctx context.Context) (sessionstorage.AdminUser, error)
}

type contextKey string

const adminKey contextKey = "admin_user"

type Middleware struct {
	admins AdminSource
	logger *slog.Logger
}

func NewMiddleware(admins AdminSource, logger *slog.Logger) *Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &Middleware{admins: admins, logger: logger}
}

// RequireResource answers 401 without an admin session and 403 when the admin
// lacks resource.
func (m *Middleware) RequireResource(resource string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, err := m.admins.CurrentAdmin(r.Context())
			if err != nil {
				if !errors.Is(err, sessionstorage.ErrNoAdmin) && !errors.Is(err, sessionstorage.ErrNoSession) {
					m.logger.Error("Failed to resolve admin", "error", err)
				}
				writeError(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}

			if !admin.IsAllowed(resource) {
				m.logger.Warn("Admin lacks ACL resource",
					"adminId", admin.ID,
					"resource", resource)
				writeError(w, r, http.StatusForbidden, "Sorry, you need permissions to view this content.")
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdmin returns the admin authorized by RequireResource.
func GetAdmin(r *http.Request) (sessionstorage.AdminUser, bool) {
	admin, ok := r.Context().Value(adminKey).(sessionstorage.AdminUser)
	return admin, ok
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": message})
}
