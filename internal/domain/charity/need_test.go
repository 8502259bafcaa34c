package charity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNeed(t *testing.T) {
	orgID := uuid.New()
	foodID := uuid.New()

	t.Run("valid need", func(t *testing.T) {
		need, err := NewNeed(orgID, foodID, decimal.NewFromInt(100), PriorityHigh, "  winter campaign  ")
		require.NoError(t, err)
		assert.Equal(t, orgID, need.OrganizationID)
		assert.Equal(t, foodID, need.FoodID)
		assert.True(t, need.ReceivedQuantity.IsZero())
		assert.True(t, need.Active)
		assert.Equal(t, "winter campaign", need.Notes)
		assert.Equal(t, 1, need.GetVersion())
	})

	t.Run("zero target rejected", func(t *testing.T) {
		_, err := NewNeed(orgID, foodID, decimal.Zero, PriorityLow, "")
		assert.Error(t, err)
	})

	t.Run("negative target rejected", func(t *testing.T) {
		_, err := NewNeed(orgID, foodID, decimal.NewFromInt(-5), PriorityLow, "")
		assert.Error(t, err)
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		_, err := NewNeed(orgID, foodID, decimal.NewFromInt(10), Priority("CRITICAL"), "")
		assert.Error(t, err)
	})

	t.Run("missing organization rejected", func(t *testing.T) {
		_, err := NewNeed(uuid.Nil, foodID, decimal.NewFromInt(10), PriorityLow, "")
		assert.Error(t, err)
	})
}

func TestNeed_Credit(t *testing.T) {
	newNeed := func(target int64) *Need {
		need, err := NewNeed(uuid.New(), uuid.New(), decimal.NewFromInt(target), PriorityMedium, "")
		require.NoError(t, err)
		return need
	}

	t.Run("partial credit keeps need active", func(t *testing.T) {
		need := newNeed(100)
		goalReached, err := need.Credit(decimal.NewFromInt(40))
		require.NoError(t, err)
		assert.False(t, goalReached)
		assert.True(t, need.Active)
		assert.True(t, need.ReceivedQuantity.Equal(decimal.NewFromInt(40)))
		assert.True(t, need.Missing().Equal(decimal.NewFromInt(60)))
	})

	t.Run("credit reaching target deactivates", func(t *testing.T) {
		need := newNeed(100)
		goalReached, err := need.Credit(decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.True(t, goalReached)
		assert.False(t, need.Active)
		assert.True(t, need.Completed())
	})

	t.Run("credit overshooting target deactivates", func(t *testing.T) {
		need := newNeed(100)
		goalReached, err := need.Credit(decimal.NewFromInt(150))
		require.NoError(t, err)
		assert.True(t, goalReached)
		assert.False(t, need.Active)
		assert.True(t, need.ReceivedQuantity.Equal(decimal.NewFromInt(150)))
		assert.True(t, need.Missing().IsZero())
	})

	t.Run("credit after completion is not a new goal", func(t *testing.T) {
		need := newNeed(100)
		_, err := need.Credit(decimal.NewFromInt(100))
		require.NoError(t, err)

		goalReached, err := need.Credit(decimal.NewFromInt(10))
		require.NoError(t, err)
		assert.False(t, goalReached)
		assert.True(t, need.ReceivedQuantity.Equal(decimal.NewFromInt(110)))
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		need := newNeed(100)
		_, err := need.Credit(decimal.Zero)
		assert.Error(t, err)
		assert.True(t, need.ReceivedQuantity.IsZero())
	})

	t.Run("credit bumps version", func(t *testing.T) {
		need := newNeed(100)
		before := need.GetVersion()
		_, err := need.Credit(decimal.NewFromInt(1))
		require.NoError(t, err)
		assert.Equal(t, before+1, need.GetVersion())
	})
}

func TestNeed_PercentReceived(t *testing.T) {
	need, err := NewNeed(uuid.New(), uuid.New(), decimal.NewFromInt(200), PriorityLow, "")
	require.NoError(t, err)

	_, err = need.Credit(decimal.NewFromInt(50))
	require.NoError(t, err)

	assert.True(t, need.PercentReceived().Equal(decimal.NewFromInt(25)))
}

func TestNeed_UpdateDetails(t *testing.T) {
	need, err := NewNeed(uuid.New(), uuid.New(), decimal.NewFromInt(100), PriorityLow, "")
	require.NoError(t, err)
	_, err = need.Credit(decimal.NewFromInt(60))
	require.NoError(t, err)

	t.Run("target below received rejected", func(t *testing.T) {
		err := need.UpdateDetails(decimal.NewFromInt(50), PriorityHigh, "", true)
		assert.Error(t, err)
		assert.True(t, need.TargetQuantity.Equal(decimal.NewFromInt(100)))
	})

	t.Run("raising target succeeds", func(t *testing.T) {
		err := need.UpdateDetails(decimal.NewFromInt(150), PriorityUrgent, "more mouths", true)
		require.NoError(t, err)
		assert.True(t, need.TargetQuantity.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, PriorityUrgent, need.Priority)
		assert.Equal(t, "more mouths", need.Notes)
	})
}

func TestNeed_Deactivate(t *testing.T) {
	need, err := NewNeed(uuid.New(), uuid.New(), decimal.NewFromInt(10), PriorityLow, "")
	require.NoError(t, err)

	need.Deactivate()
	version := need.GetVersion()
	assert.False(t, need.Active)

	// idempotent
	need.Deactivate()
	assert.Equal(t, version, need.GetVersion())
}

func TestPriority(t *testing.T) {
	assert.True(t, PriorityUrgent.IsValid())
	assert.False(t, Priority("NONE").IsValid())
	assert.Greater(t, PriorityUrgent.Rank(), PriorityHigh.Rank())
	assert.Greater(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Greater(t, PriorityMedium.Rank(), PriorityLow.Rank())
}

func TestNewOrganization(t *testing.T) {
	t.Run("valid organization", func(t *testing.T) {
		org, err := NewOrganization(uuid.New(), "  Casa da Esperanca  ", " 12.345.678/0001-90 ")
		require.NoError(t, err)
		assert.Equal(t, "Casa da Esperanca", org.Name)
		assert.Equal(t, "12.345.678/0001-90", org.RegistrationNumber)
		assert.True(t, org.Active)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewOrganization(uuid.New(), "   ", "123")
		assert.Error(t, err)
	})

	t.Run("empty registration rejected", func(t *testing.T) {
		_, err := NewOrganization(uuid.New(), "Org", "")
		assert.Error(t, err)
	})

	t.Run("nil user rejected", func(t *testing.T) {
		_, err := NewOrganization(uuid.Nil, "Org", "123")
		assert.Error(t, err)
	})
}
