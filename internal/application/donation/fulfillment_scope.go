package donation

import (
	"context"

	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/donation"
)

// FulfillmentScope provides transactional access to the repositories touched
// by a donation status change. The donation transition and the need credit
// must commit or roll back together; a donation marked credited without the
// need's total moving (or the reverse) would corrupt fulfillment tracking.
type FulfillmentScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos FulfillmentRepositories) error) error
}

// FulfillmentRepositories provides access to the repositories participating
// in a fulfillment transaction. Both share the same underlying transaction.
type FulfillmentRepositories interface {
	DonationRepo() donation.DonationRepository
	NeedRepo() charity.NeedRepository
}

// NoOpFulfillmentScope runs the function without a real transaction.
// Useful for tests with in-memory repositories.
type NoOpFulfillmentScope struct {
	donationRepo donation.DonationRepository
	needRepo     charity.NeedRepository
}

// NewNoOpFulfillmentScope creates a NoOpFulfillmentScope over the given repositories
func NewNoOpFulfillmentScope(donationRepo donation.DonationRepository, needRepo charity.NeedRepository) *NoOpFulfillmentScope {
	return &NoOpFulfillmentScope{
		donationRepo: donationRepo,
		needRepo:     needRepo,
	}
}

// Execute runs the function without transactional guarantees
func (s *NoOpFulfillmentScope) Execute(_ context.Context, fn func(repos FulfillmentRepositories) error) error {
	return fn(s)
}

// DonationRepo returns the donation repository
func (s *NoOpFulfillmentScope) DonationRepo() donation.DonationRepository {
	return s.donationRepo
}

// NeedRepo returns the need repository
func (s *NoOpFulfillmentScope) NeedRepo() charity.NeedRepository {
	return s.needRepo
}

var (
	_ FulfillmentScope        = (*NoOpFulfillmentScope)(nil)
	_ FulfillmentRepositories = (*NoOpFulfillmentScope)(nil)
)
