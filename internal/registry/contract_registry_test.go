package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendledger/internal/domain"
	"lendledger/internal/ids"
)

func newTestContracts() *Contracts {
	return NewContracts(ids.NewSeeded(1))
}

func TestContractMint(t *testing.T) {
	contracts := newTestContracts()

	c, err := contracts.Mint(
		domain.Member{ID: "BBBBBB", Name: "Moronica"},
		domain.Member{ID: "AAAAAA", Name: "Alice"},
		domain.Item{ID: "12345678", Name: "I2", CostPerDay: 10},
		5, 7,
	)
	require.NoError(t, err)
	assert.Len(t, c.ID, 6)
	assert.Equal(t, 20, c.TotalCost)

	got, err := contracts.Get(c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestContractMintRejectsInvalidRange(t *testing.T) {
	contracts := newTestContracts()

	_, err := contracts.Mint(domain.Member{}, domain.Member{}, domain.Item{}, 7, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
	assert.Empty(t, contracts.List())
}

func TestContractGetUnknown(t *testing.T) {
	contracts := newTestContracts()
	_, err := contracts.Get("XXXXXX")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContractReapGraceDay(t *testing.T) {
	contracts := newTestContracts()

	c, err := contracts.Mint(domain.Member{}, domain.Member{}, domain.Item{CostPerDay: 1}, 5, 7)
	require.NoError(t, err)

	// Day 7 is the completed day, day 7 and the grace day keep the contract.
	assert.Equal(t, 0, contracts.Reap(7))
	_, err = contracts.Get(c.ID)
	require.NoError(t, err)

	// currentDay >= endDay+1 drops it.
	assert.Equal(t, 1, contracts.Reap(8))
	_, err = contracts.Get(c.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContractReapLeavesFutureContracts(t *testing.T) {
	contracts := newTestContracts()

	past, err := contracts.Mint(domain.Member{}, domain.Member{}, domain.Item{}, 0, 2)
	require.NoError(t, err)
	future, err := contracts.Mint(domain.Member{}, domain.Member{}, domain.Item{}, 10, 12)
	require.NoError(t, err)

	assert.Equal(t, 1, contracts.Reap(5))
	_, err = contracts.Get(past.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = contracts.Get(future.ID)
	assert.NoError(t, err)
}
