package persistence

import (
	"context"

	appdonation "github.com/alimenta/backend/internal/application/donation"
	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/donation"
	"gorm.io/gorm"
)

// GormFulfillmentScope implements FulfillmentScope using GORM transactions
type GormFulfillmentScope struct {
	db *gorm.DB
}

// NewGormFulfillmentScope creates a new GormFulfillmentScope
func NewGormFulfillmentScope(db *gorm.DB) *GormFulfillmentScope {
	return &GormFulfillmentScope{db: db}
}

// Execute runs the function within a database transaction. The repositories
// handed to fn all operate on the same transaction; any error rolls it back.
func (s *GormFulfillmentScope) Execute(ctx context.Context, fn func(repos appdonation.FulfillmentRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormFulfillmentRepositories{tx: tx})
	})
}

type gormFulfillmentRepositories struct {
	tx *gorm.DB
}

func (r *gormFulfillmentRepositories) DonationRepo() donation.DonationRepository {
	return NewGormDonationRepository(r.tx)
}

func (r *gormFulfillmentRepositories) NeedRepo() charity.NeedRepository {
	return NewGormNeedRepository(r.tx)
}

var (
	_ appdonation.FulfillmentScope        = (*GormFulfillmentScope)(nil)
	_ appdonation.FulfillmentRepositories = (*gormFulfillmentRepositories)(nil)
)
