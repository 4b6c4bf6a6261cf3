package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	domainidentity "github.com/storefront/backend/internal/domain/identity"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domainidentity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domainidentity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domainidentity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *domainidentity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newAuthService(repo *MockUserRepository) *AuthService {
	tokens := auth.NewSessionTokenService("test-secret-key-that-is-long-enough", 12*time.Hour, "storefront")
	return NewAuthService(repo, tokens, zap.NewNop())
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("registers new user with hashed password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByEmail", ctx, "john@example.com").Return(false, nil)
		repo.On("Save", ctx, mock.MatchedBy(func(u *domainidentity.User) bool {
			return u.Email == "john@example.com" && u.PasswordHash != "s3cretpass" && u.VerifyPassword("s3cretpass")
		})).Return(nil)

		info, err := newAuthService(repo).Signup(ctx, SignupInput{Name: "John", Email: "John@Example.com", Password: "s3cretpass"})
		require.NoError(t, err)

		assert.Equal(t, "john@example.com", info.Email)
		assert.Equal(t, "USER", info.Role)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate email without saving", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByEmail", ctx, "john@example.com").Return(true, nil)

		_, err := newAuthService(repo).Signup(ctx, SignupInput{Name: "John", Email: "john@example.com", Password: "s3cretpass"})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DUPLICATE_EMAIL", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid input without saving", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByEmail", ctx, "john@example.com").Return(false, nil)

		_, err := newAuthService(repo).Signup(ctx, SignupInput{Name: "John", Email: "john@example.com", Password: "short"})
		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	registered := func(t *testing.T) *domainidentity.User {
		t.Helper()
		user, err := domainidentity.NewUser("John", "john@example.com", "s3cretpass")
		require.NoError(t, err)
		return user
	}

	t.Run("issues session token for valid credentials", func(t *testing.T) {
		user := registered(t)
		repo := new(MockUserRepository)
		repo.On("FindByEmail", ctx, "john@example.com").Return(user, nil)

		svc := newAuthService(repo)
		result, err := svc.Login(ctx, LoginInput{Email: "john@example.com", Password: "s3cretpass"})
		require.NoError(t, err)

		assert.NotEmpty(t, result.Token)
		assert.Equal(t, user.ID, result.User.ID)

		session := svc.Session(result.Token)
		assert.True(t, session.LoggedIn)
		require.NotNil(t, session.User)
		assert.Equal(t, user.ID, session.User.ID)
	})

	t.Run("same error for unknown email and wrong password", func(t *testing.T) {
		unknownRepo := new(MockUserRepository)
		unknownRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)
		_, errUnknown := newAuthService(unknownRepo).Login(ctx, LoginInput{Email: "ghost@example.com", Password: "whatever1"})

		user := registered(t)
		wrongRepo := new(MockUserRepository)
		wrongRepo.On("FindByEmail", ctx, "john@example.com").Return(user, nil)
		_, errWrong := newAuthService(wrongRepo).Login(ctx, LoginInput{Email: "john@example.com", Password: "wrong-password"})

		assert.ErrorIs(t, errUnknown, shared.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, shared.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})
}

func TestAuthService_Session(t *testing.T) {
	repo := new(MockUserRepository)
	svc := newAuthService(repo)

	t.Run("logged out for empty token", func(t *testing.T) {
		assert.False(t, svc.Session("").LoggedIn)
	})

	t.Run("logged out for tampered token", func(t *testing.T) {
		assert.False(t, svc.Session("tampered.token.value").LoggedIn)
	})
}
