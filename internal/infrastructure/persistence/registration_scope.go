package persistence

import (
	"context"

	appidentity "github.com/alimenta/backend/internal/application/identity"
	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/identity"
	"gorm.io/gorm"
)

// GormRegistrationScope implements RegistrationScope using GORM transactions
type GormRegistrationScope struct {
	db *gorm.DB
}

// NewGormRegistrationScope creates a new GormRegistrationScope
func NewGormRegistrationScope(db *gorm.DB) *GormRegistrationScope {
	return &GormRegistrationScope{db: db}
}

// Execute runs the function within a database transaction. The repositories
// handed to fn all operate on the same transaction; any error rolls it back.
func (s *GormRegistrationScope) Execute(ctx context.Context, fn func(repos appidentity.RegistrationRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRegistrationRepositories{tx: tx})
	})
}

type gormRegistrationRepositories struct {
	tx *gorm.DB
}

func (r *gormRegistrationRepositories) UserRepo() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

func (r *gormRegistrationRepositories) OrganizationRepo() charity.OrganizationRepository {
	return NewGormOrganizationRepository(r.tx)
}

var (
	_ appidentity.RegistrationScope        = (*GormRegistrationScope)(nil)
	_ appidentity.RegistrationRepositories = (*gormRegistrationRepositories)(nil)
)
