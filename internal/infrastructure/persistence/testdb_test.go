package persistence

import (
	"testing"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/donation"
	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory SQLite database with the full schema. Used
// where the behavior under test lives in real SQL (joins, grouping, version
// checks, transactions) rather than in a single query shape.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: databases are per-connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&identity.User{},
		&catalog.FoodCategory{},
		&catalog.Food{},
		&charity.Organization{},
		&charity.Need{},
		&donation.Donation{},
	))

	return db
}
