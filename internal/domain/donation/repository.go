package donation

import (
	"context"

	"github.com/google/uuid"
)

// StatusCount pairs a donation status with how many donations hold it
type StatusCount struct {
	Status DonationStatus
	Count  int64
}

// DonationRepository defines persistence operations for donations
type DonationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Donation, error)
	FindByDonor(ctx context.Context, donorID uuid.UUID) ([]Donation, error)
	FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]Donation, error)
	FindByOrganizationAndStatus(ctx context.Context, organizationID uuid.UUID, status DonationStatus) ([]Donation, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	CountByDonorAndStatus(ctx context.Context, donorID uuid.UUID) ([]StatusCount, error)
	CountByOrganizationAndStatus(ctx context.Context, organizationID uuid.UUID) ([]StatusCount, error)
	Count(ctx context.Context) (int64, error)
	Save(ctx context.Context, donation *Donation) error
	// SaveWithLock persists the donation with an optimistic version check and
	// fails with ErrConcurrencyConflict when the row changed underneath.
	SaveWithLock(ctx context.Context, donation *Donation) error
}
