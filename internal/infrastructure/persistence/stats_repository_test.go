package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alimenta/backend/internal/domain/donation"
	"github.com/alimenta/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStatsRepository_EntityCounts_EmptyStore(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormStatsRepository(db)

	counts, err := repo.EntityCounts(context.Background())
	require.NoError(t, err)
	assert.Zero(t, counts.Users)
	assert.Empty(t, counts.UsersByRole)
	assert.Zero(t, counts.Organizations)
	assert.Zero(t, counts.ActiveOrganizations)
	assert.Zero(t, counts.ActiveNeeds)
	assert.Zero(t, counts.CompletedNeeds)
	assert.Zero(t, counts.Donations)
}

func TestGormStatsRepository_EntityCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedDonationFixture(t, db)
	repo := NewGormStatsRepository(db)

	d := fx.newDonation(t, 10)
	require.NoError(t, NewGormDonationRepository(db).Save(ctx, d))

	counts, err := repo.EntityCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts.Users)
	require.Len(t, counts.UsersByRole, 2)
	assert.Equal(t, report.RoleCount{Role: "DONOR", Count: 1}, counts.UsersByRole[0])
	assert.Equal(t, report.RoleCount{Role: "ORGANIZATION", Count: 1}, counts.UsersByRole[1])
	assert.Equal(t, int64(1), counts.Organizations)
	assert.Equal(t, int64(1), counts.ActiveOrganizations)
	assert.Equal(t, int64(1), counts.Categories)
	assert.Equal(t, int64(1), counts.Foods)
	assert.Equal(t, int64(1), counts.Needs)
	assert.Equal(t, int64(1), counts.ActiveNeeds)
	assert.Equal(t, int64(0), counts.CompletedNeeds)
	assert.Equal(t, int64(1), counts.Donations)
}

func TestGormStatsRepository_EntityCounts_Splits(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedDonationFixture(t, db)
	repo := NewGormStatsRepository(db)

	fx.org.Deactivate()
	require.NoError(t, NewGormOrganizationRepository(db).Save(ctx, fx.org))

	_, err := fx.need.Credit(decimal.NewFromInt(100))
	require.NoError(t, err)
	require.NoError(t, NewGormNeedRepository(db).SaveWithLock(ctx, fx.need))

	counts, err := repo.EntityCounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Organizations)
	assert.Equal(t, int64(0), counts.ActiveOrganizations)
	assert.Equal(t, int64(1), counts.Needs)
	assert.Equal(t, int64(0), counts.ActiveNeeds)
	assert.Equal(t, int64(1), counts.CompletedNeeds)
}

func TestGormStatsRepository_Rankings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedDonationFixture(t, db)
	donationRepo := NewGormDonationRepository(db)
	repo := NewGormStatsRepository(db)

	for i := 0; i < 2; i++ {
		d := fx.newDonation(t, 10)
		_, err := d.ChangeStatus(donation.StatusDelivered)
		require.NoError(t, err)
		require.NoError(t, donationRepo.Save(ctx, d))
	}
	pending := fx.newDonation(t, 5)
	require.NoError(t, donationRepo.Save(ctx, pending))

	t.Run("top organizations count only delivered donations", func(t *testing.T) {
		top, err := repo.TopOrganizations(ctx, 5)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, fx.org.ID, top[0].OrganizationID)
		assert.Equal(t, "Casa Feliz", top[0].Name)
		assert.Equal(t, int64(2), top[0].DeliveredCount)
	})

	t.Run("top donors fall back to username as display name", func(t *testing.T) {
		top, err := repo.TopDonors(ctx, 5)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, fx.donor.ID, top[0].UserID)
		assert.Equal(t, "maria", top[0].Username)
		assert.Equal(t, "maria", top[0].DisplayName)
		assert.Equal(t, int64(2), top[0].DeliveredCount)
	})

	t.Run("top foods rank by delivered appearances", func(t *testing.T) {
		top, err := repo.TopFoods(ctx, 5)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, "Rice", top[0].Name)
		assert.Equal(t, int64(2), top[0].DeliveredCount)
	})
}

func TestGormStatsRepository_RecentDonations(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedDonationFixture(t, db)
	donationRepo := NewGormDonationRepository(db)
	repo := NewGormStatsRepository(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, donationRepo.Save(ctx, fx.newDonation(t, 10)))
	}

	recent, err := repo.RecentDonations(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "maria", recent[0].DonorName)
	assert.Equal(t, "Casa Feliz", recent[0].OrganizationName)
	assert.Equal(t, "Rice", recent[0].FoodName)
	assert.Equal(t, "PENDING", recent[0].Status)
	assert.True(t, recent[0].Quantity.Equal(decimal.NewFromInt(10)))
}

func TestGormStatsRepository_DonationsSince(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedDonationFixture(t, db)
	repo := NewGormStatsRepository(db)

	require.NoError(t, NewGormDonationRepository(db).Save(ctx, fx.newDonation(t, 10)))

	recent, err := repo.DonationsSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), recent)

	future, err := repo.DonationsSince(ctx, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(0), future)
}
