package charity

import (
	"context"

	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrganizationRepository defines persistence operations for organizations
type OrganizationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*Organization, error)
	FindActive(ctx context.Context, filter shared.Filter) ([]Organization, error)
	ExistsByRegistrationNumber(ctx context.Context, registrationNumber string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	Save(ctx context.Context, org *Organization) error
}

// NeedRepository defines persistence operations for needs
type NeedRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Need, error)
	FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]Need, error)
	FindActiveByOrganization(ctx context.Context, organizationID uuid.UUID) ([]Need, error)
	// FindBrowsable returns active needs of active organizations, optionally
	// narrowed to a food category.
	FindBrowsable(ctx context.Context, categoryID *uuid.UUID, search string) ([]Need, error)
	ExistsActiveForFood(ctx context.Context, organizationID, foodID uuid.UUID) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	Save(ctx context.Context, need *Need) error
	// SaveWithLock persists the need with an optimistic version check and
	// fails with ErrConcurrencyConflict when the row changed underneath.
	SaveWithLock(ctx context.Context, need *Need) error
}
