package httpHandler

import (
	"strings"

	"fitness-server/apperrors"
	"fitness-server/auth"
	"fitness-server/entities"
	"fitness-server/repositories"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// AuthMiddleware gates routes behind a bearer token. It verifies the token,
// loads the subject user, and attaches the identity to the request context.
// It is a pure gate: no state mutation, no token refresh, no retries.
type AuthMiddleware struct {
	tokens *auth.TokenManager
	users  repositories.UserRepository
}

func NewAuthMiddleware(tokens *auth.TokenManager, users repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			respondError(c, apperrors.E(apperrors.KindUnauthorized, "missing authorization header"))
			return
		}

		// Must be exactly "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			respondError(c, apperrors.E(apperrors.KindUnauthorized, "invalid authorization header format"))
			return
		}

		claims, err := m.tokens.Verify(parts[1])
		if err != nil {
			respondError(c, err)
			return
		}

		// The subject may have been deleted after the token was issued
		user, err := m.users.GetByID(claims.UserID)
		if err != nil {
			respondError(c, apperrors.E(apperrors.KindUnauthorized, "user not found"))
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// mustCurrentUser returns the attached identity, rejecting the request when
// the route was mounted without RequireAuth.
func mustCurrentUser(c *gin.Context) (*entities.User, bool) {
	user := CurrentUser(c)
	if user == nil {
		respondError(c, apperrors.E(apperrors.KindUnauthorized, "not authenticated"))
		return nil, false
	}
	return user, true
}

// CurrentUser returns the identity attached by RequireAuth, or nil when the
// route was not gated.
func CurrentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*entities.User)
	if !ok {
		return nil
	}
	return user
}
