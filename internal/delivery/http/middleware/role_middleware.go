package middleware

import (
	"net/http"

	"local-services-marketplace/internal/domain/entity"
	"local-services-marketplace/internal/session"
	"local-services-marketplace/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the required roles
// Role is read from the session loaded by AuthMiddleware
func RequireRole(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := session.FromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			for _, role := range allowedRoles {
				if sess.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireProvider is a convenience middleware for provider-only endpoints
func RequireProvider(next http.Handler) http.Handler {
	return RequireRole(entity.RoleProvider)(next)
}
