package middleware

import (
	"context"
	"net/http"
	"strings"

	"local-services-marketplace/internal/session"
	"local-services-marketplace/pkg/jwt"
	"local-services-marketplace/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
	sessions   *session.Store
	log        *logrus.Logger
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessions *session.Store, log *logrus.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		sessions:   sessions,
		log:        log,
	}
}

// Authenticate loads the caller's session into the request context. The
// token must verify and its session must still exist in Redis.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(w, "Invalid or expired token")
			return
		}

		sess := session.Session{
			UserID:  claims.UserID,
			Role:    claims.Role,
			TokenID: claims.TokenID,
		}

		active, err := m.sessions.Active(r.Context(), sess)
		if err != nil {
			m.log.Warnf("Failed to check session: %+v", err)
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if !active {
			response.Unauthorized(w, "Session has ended, please log in again")
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithSession(r.Context(), sess)))
	})
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return sess.UserID, true
}
