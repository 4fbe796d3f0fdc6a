package ids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberIDFormat(t *testing.T) {
	gen := NewSeeded(1)
	for i := 0; i < 100; i++ {
		id := gen.MemberID()
		require.Len(t, id, 6)
		for _, r := range id {
			assert.Contains(t, alnumChars, string(r))
		}
	}
}

func TestItemIDFormat(t *testing.T) {
	gen := NewSeeded(1)
	for i := 0; i < 100; i++ {
		id := gen.ItemID()
		require.Len(t, id, 8)
		for _, r := range id {
			assert.Contains(t, digitChars, string(r))
		}
	}
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.MemberID(), b.MemberID())
		assert.Equal(t, a.ItemID(), b.ItemID())
		assert.Equal(t, a.ContractID(), b.ContractID())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)
	same := 0
	for i := 0; i < 20; i++ {
		if a.MemberID() == b.MemberID() {
			same++
		}
	}
	assert.Less(t, same, 20)
}
