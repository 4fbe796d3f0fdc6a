package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItem() Item {
	return Item{ID: "12345678", OwnerID: "AAAAAA", Category: CategoryTool, Name: "Hammer", CostPerDay: 10}
}

func TestNewContractComputesTotalCost(t *testing.T) {
	c, err := NewContract("C1", Member{ID: "B"}, Member{ID: "L"}, testItem(), 5, 7)
	require.NoError(t, err)
	assert.Equal(t, 20, c.TotalCost)
	assert.Equal(t, 5, c.StartDay)
	assert.Equal(t, 7, c.EndDay)
}

func TestNewContractRejectsBadRanges(t *testing.T) {
	_, err := NewContract("C1", Member{}, Member{}, testItem(), -1, 3)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewContract("C1", Member{}, Member{}, testItem(), 5, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewContract("C1", Member{}, Member{}, testItem(), 7, 5)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestStatusAt(t *testing.T) {
	c, err := NewContract("C1", Member{}, Member{}, testItem(), 5, 7)
	require.NoError(t, err)

	assert.Equal(t, StatusScheduled, c.StatusAt(0))
	assert.Equal(t, StatusScheduled, c.StatusAt(4))
	assert.Equal(t, StatusActive, c.StatusAt(5))
	assert.Equal(t, StatusActive, c.StatusAt(6))
	assert.Equal(t, StatusCompleted, c.StatusAt(7))
	assert.Equal(t, StatusCompleted, c.StatusAt(100))
}

func TestOverlapsHalfOpen(t *testing.T) {
	c, err := NewContract("C1", Member{}, Member{}, testItem(), 5, 7)
	require.NoError(t, err)

	assert.True(t, c.Overlaps(6, 9))
	assert.True(t, c.Overlaps(4, 6))
	assert.True(t, c.Overlaps(5, 7))
	assert.True(t, c.Overlaps(0, 100))

	// Touching endpoints are legal back-to-back bookings.
	assert.False(t, c.Overlaps(7, 9))
	assert.False(t, c.Overlaps(3, 5))
	assert.False(t, c.Overlaps(0, 2))
	assert.False(t, c.Overlaps(10, 12))
}

func TestViewProjectsContract(t *testing.T) {
	c, err := NewContract("C1", Member{Name: "Moronica"}, Member{Name: "Alice"}, Item{Name: "I2", CostPerDay: 10}, 5, 7)
	require.NoError(t, err)

	v := c.View(6)
	assert.Equal(t, "C1", v.ID)
	assert.Equal(t, "I2", v.ItemName)
	assert.Equal(t, "Moronica", v.BorrowerName)
	assert.Equal(t, 5, v.StartDay)
	assert.Equal(t, 7, v.EndDay)
	assert.Equal(t, StatusActive, v.Status)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("Tool")
	require.NoError(t, err)
	assert.Equal(t, CategoryTool, c)

	_, err = ParseCategory("Spaceship")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
