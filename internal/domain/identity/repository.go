package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository provides access to stored users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Save(ctx context.Context, user *User) error
	Count(ctx context.Context) (int64, error)
}

// AddressRepository provides access to stored addresses
type AddressRepository interface {
	FindFirstByUser(ctx context.Context, userID uuid.UUID) (*Address, error)
	Save(ctx context.Context, address *Address) error
}
