package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "accessToken"

const principalKey = "session_principal"

// SessionPrincipal is the authenticated identity attached to a request
type SessionPrincipal struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Role   string
}

// PrincipalFromContext returns the principal set by SessionAuth, if any
func PrincipalFromContext(c *gin.Context) (*SessionPrincipal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	principal, ok := value.(*SessionPrincipal)
	return principal, ok
}

// SessionAuth verifies the session cookie and attaches the principal to
// the request. Requests without a valid cookie are rejected with 401.
func SessionAuth(tokens *auth.SessionTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		userID, err := claims.GetUserUUID()
		if err != nil {
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		c.Set(principalKey, &SessionPrincipal{
			UserID: userID,
			Email:  claims.Email,
			Name:   claims.Name,
			Role:   claims.Role,
		})

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRole rejects requests whose principal does not carry the role.
// It must run after SessionAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}
		if principal.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Insufficient permissions"))
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message))
}
