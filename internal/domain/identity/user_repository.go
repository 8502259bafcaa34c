package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindRecent(ctx context.Context, limit int) ([]User, error)
	CountByRole(ctx context.Context, role Role) (int64, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, user *User) error
}
