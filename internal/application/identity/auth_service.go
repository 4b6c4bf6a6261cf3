package identity

import (
	"context"
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles signup, login and session verification
type AuthService struct {
	userRepo identity.UserRepository
	tokens   *auth.SessionTokenService
	logger   *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, tokens *auth.SessionTokenService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Signup registers a new account. Duplicate emails are rejected before
// any row is written.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("Signup attempt with registered email", zap.String("email", email))
		return nil, shared.NewDomainError("DUPLICATE_EMAIL", "Email is already registered")
	}

	user, err := identity.NewUser(input.Name, email, input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	info := ToUserInfo(user)
	return &info, nil
}

// Login verifies credentials and issues a session token. An unknown
// email and a wrong password produce the same error, so the response
// never reveals whether an email is registered.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", email))
		return nil, shared.ErrInvalidCredentials
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Login attempt with wrong password", zap.String("user_id", user.ID.String()))
		return nil, shared.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue session token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create session")
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))
	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      ToUserInfo(user),
	}, nil
}

// TokenLifetime reports the session token validity window. The HTTP
// layer uses it for the cookie Max-Age.
func (s *AuthService) TokenLifetime() time.Duration {
	return s.tokens.Expiration()
}

// Session verifies a session token. Any verification failure (absent,
// expired, tampered) yields a logged-out result rather than an error.
func (s *AuthService) Session(token string) SessionInfo {
	if token == "" {
		return SessionInfo{LoggedIn: false}
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		return SessionInfo{LoggedIn: false}
	}

	user, err := userInfoFromClaims(claims)
	if err != nil {
		return SessionInfo{LoggedIn: false}
	}
	return SessionInfo{LoggedIn: true, User: user}
}
