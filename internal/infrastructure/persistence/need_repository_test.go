package persistence

import (
	"context"
	"testing"

	"github.com/alimenta/backend/internal/domain/catalog"
	"github.com/alimenta/backend/internal/domain/charity"
	"github.com/alimenta/backend/internal/domain/identity"
	"github.com/alimenta/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type needFixture struct {
	org      *charity.Organization
	category *catalog.FoodCategory
	food     *catalog.Food
}

// seedNeedFixture creates a user, an active organization, a category and a food
func seedNeedFixture(t *testing.T, db *gorm.DB) needFixture {
	t.Helper()
	ctx := context.Background()

	user, err := identity.NewUser("casa.feliz", "contact@casafeliz.org", "s3cret-pass", identity.RoleOrganization)
	require.NoError(t, err)
	require.NoError(t, NewGormUserRepository(db).Save(ctx, user))

	org, err := charity.NewOrganization(user.ID, "Casa Feliz", "REG-001")
	require.NoError(t, err)
	require.NoError(t, NewGormOrganizationRepository(db).Save(ctx, org))

	category, err := catalog.NewFoodCategory("Grains", "")
	require.NoError(t, err)
	require.NoError(t, NewGormFoodCategoryRepository(db).Save(ctx, category))

	food, err := catalog.NewFood("Rice", &category.ID, "", catalog.UnitKilogram)
	require.NoError(t, err)
	require.NoError(t, NewGormFoodRepository(db).Save(ctx, food))

	return needFixture{org: org, category: category, food: food}
}

func TestGormNeedRepository_ExistsActiveForFood(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedNeedFixture(t, db)
	repo := NewGormNeedRepository(db)

	need, err := charity.NewNeed(fx.org.ID, fx.food.ID, decimal.NewFromInt(100), charity.PriorityHigh, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, need))

	exists, err := repo.ExistsActiveForFood(ctx, fx.org.ID, fx.food.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	t.Run("closed needs do not count", func(t *testing.T) {
		need.Deactivate()
		require.NoError(t, repo.Save(ctx, need))

		exists, err := repo.ExistsActiveForFood(ctx, fx.org.ID, fx.food.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("other organizations do not count", func(t *testing.T) {
		exists, err := repo.ExistsActiveForFood(ctx, uuid.New(), fx.food.ID)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestGormNeedRepository_FindBrowsable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedNeedFixture(t, db)
	repo := NewGormNeedRepository(db)

	beans, err := catalog.NewFood("Beans", nil, "", catalog.UnitKilogram)
	require.NoError(t, err)
	require.NoError(t, NewGormFoodRepository(db).Save(ctx, beans))

	riceNeed, err := charity.NewNeed(fx.org.ID, fx.food.ID, decimal.NewFromInt(100), charity.PriorityHigh, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, riceNeed))

	beansNeed, err := charity.NewNeed(fx.org.ID, beans.ID, decimal.NewFromInt(50), charity.PriorityLow, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, beansNeed))

	t.Run("returns active needs of active organizations", func(t *testing.T) {
		needs, err := repo.FindBrowsable(ctx, nil, "")
		require.NoError(t, err)
		assert.Len(t, needs, 2)
	})

	t.Run("filters by food category", func(t *testing.T) {
		needs, err := repo.FindBrowsable(ctx, &fx.category.ID, "")
		require.NoError(t, err)
		require.Len(t, needs, 1)
		assert.Equal(t, riceNeed.ID, needs[0].ID)
	})

	t.Run("matches food name case-insensitively", func(t *testing.T) {
		needs, err := repo.FindBrowsable(ctx, nil, "BEANS")
		require.NoError(t, err)
		require.Len(t, needs, 1)
		assert.Equal(t, beansNeed.ID, needs[0].ID)
	})

	t.Run("matches organization name", func(t *testing.T) {
		needs, err := repo.FindBrowsable(ctx, nil, "casa")
		require.NoError(t, err)
		assert.Len(t, needs, 2)
	})

	t.Run("hides needs of deactivated organizations", func(t *testing.T) {
		fx.org.Deactivate()
		require.NoError(t, NewGormOrganizationRepository(db).Save(ctx, fx.org))

		needs, err := repo.FindBrowsable(ctx, nil, "")
		require.NoError(t, err)
		assert.Empty(t, needs)
	})
}

func TestGormNeedRepository_SaveWithLock(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	fx := seedNeedFixture(t, db)
	repo := NewGormNeedRepository(db)

	need, err := charity.NewNeed(fx.org.ID, fx.food.ID, decimal.NewFromInt(100), charity.PriorityHigh, "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, need))

	t.Run("persists when version matches", func(t *testing.T) {
		goalReached, err := need.Credit(decimal.NewFromInt(30))
		require.NoError(t, err)
		assert.False(t, goalReached)

		require.NoError(t, repo.SaveWithLock(ctx, need))

		stored, err := repo.FindByID(ctx, need.ID)
		require.NoError(t, err)
		assert.True(t, stored.ReceivedQuantity.Equal(decimal.NewFromInt(30)))
		assert.Equal(t, need.Version, stored.Version)
	})

	t.Run("fails when the row changed underneath", func(t *testing.T) {
		stale, err := repo.FindByID(ctx, need.ID)
		require.NoError(t, err)

		// Another writer commits first
		_, err = need.Credit(decimal.NewFromInt(10))
		require.NoError(t, err)
		require.NoError(t, repo.SaveWithLock(ctx, need))

		_, err = stale.Credit(decimal.NewFromInt(5))
		require.NoError(t, err)
		err = repo.SaveWithLock(ctx, stale)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})
}
