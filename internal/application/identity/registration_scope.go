package identity

import (
	"context"

	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/identity"
)

// RegistrationScope provides transactional access to the repositories touched
// by account registration. An organization signup writes a user and an
// organization row; neither may exist without the other.
type RegistrationScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos RegistrationRepositories) error) error
}

// RegistrationRepositories provides access to the repositories participating
// in a registration transaction
type RegistrationRepositories interface {
	UserRepo() identity.UserRepository
	OrganizationRepo() charity.OrganizationRepository
}

// NoOpRegistrationScope runs the function without a real transaction
type NoOpRegistrationScope struct {
	userRepo identity.UserRepository
	orgRepo  charity.OrganizationRepository
}

// NewNoOpRegistrationScope creates a NoOpRegistrationScope over the given repositories
func NewNoOpRegistrationScope(userRepo identity.UserRepository, orgRepo charity.OrganizationRepository) *NoOpRegistrationScope {
	return &NoOpRegistrationScope{
		userRepo: userRepo,
		orgRepo:  orgRepo,
	}
}

// Execute runs the function without transactional guarantees
func (s *NoOpRegistrationScope) Execute(_ context.Context, fn func(repos RegistrationRepositories) error) error {
	return fn(s)
}

// UserRepo returns the user repository
func (s *NoOpRegistrationScope) UserRepo() identity.UserRepository {
	return s.userRepo
}

// OrganizationRepo returns the organization repository
func (s *NoOpRegistrationScope) OrganizationRepo() charity.OrganizationRepository {
	return s.orgRepo
}

var (
	_ RegistrationScope        = (*NoOpRegistrationScope)(nil)
	_ RegistrationRepositories = (*NoOpRegistrationScope)(nil)
)
