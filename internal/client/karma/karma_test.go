package karma

import (
	"testing"

	"github.com/dmitrijs2005/biteshare/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointsFor(t *testing.T) {
	tests := []struct {
		category models.Category
		amount   int
		want     int
	}{
		{models.CategoryMoney, 25, 25},
		{models.CategoryFood, 3, 30},
		{models.CategoryEssentials, 1, 15},
	}
	for _, tt := range tests {
		got, err := PointsFor(tt.category, tt.amount)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.category)
	}
}

func TestPointsFor_Invalid(t *testing.T) {
	_, err := PointsFor(models.CategoryMoney, 0)
	assert.Error(t, err)
	_, err = PointsFor("books", 5)
	assert.Error(t, err)
}

func TestRules(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, 3)
	for _, r := range rules {
		p, err := PointsFor(r.Category, 1)
		require.NoError(t, err)
		assert.Equal(t, p, r.Points)
	}
}
