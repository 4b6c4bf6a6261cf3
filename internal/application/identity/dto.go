package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/infrastructure/auth"
)

// SignupInput carries new-account registration data
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries login credentials
type LoginInput struct {
	Email    string
	Password string
}

// UserInfo is the client-facing view of a user, without the password hash
type UserInfo struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

// LoginResult is the outcome of a successful login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserInfo
}

// SessionInfo reports whether a session token is valid and for whom
type SessionInfo struct {
	LoggedIn bool      `json:"loggedIn"`
	User     *UserInfo `json:"user,omitempty"`
}

// ToUserInfo maps a domain user to its client-facing view
func ToUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}
}

func userInfoFromClaims(claims *auth.SessionClaims) (*UserInfo, error) {
	id, err := claims.GetUserUUID()
	if err != nil {
		return nil, err
	}
	return &UserInfo{
		ID:    id,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}, nil
}
