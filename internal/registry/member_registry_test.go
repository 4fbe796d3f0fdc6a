package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendledger/internal/domain"
	"lendledger/internal/ids"
)

func newTestMembers() *Members {
	return NewMembers(ids.NewSeeded(1))
}

func TestMemberCreate(t *testing.T) {
	members := newTestMembers()

	m, err := members.Create("Alice", "alice@example.com", "0701111111", 3)
	require.NoError(t, err)
	assert.Len(t, m.ID, 6)
	assert.Equal(t, "Alice", m.Name)
	assert.Equal(t, 0, m.Credits)
	assert.Equal(t, 3, m.CreationDay)
	assert.Empty(t, m.OwnedItemIDs)
}

func TestMemberCreateRejectsDuplicateEmailAndPhone(t *testing.T) {
	members := newTestMembers()

	_, err := members.Create("Alice", "alice@example.com", "0701111111", 0)
	require.NoError(t, err)

	_, err = members.Create("Fake Alice", "alice@example.com", "0709999999", 0)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	_, err = members.Create("Fake Alice", "other@example.com", "0701111111", 0)
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
}

func TestMemberLookups(t *testing.T) {
	members := newTestMembers()

	created, err := members.Create("Alice", "alice@example.com", "0701111111", 0)
	require.NoError(t, err)

	byID, err := members.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byEmail, err := members.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byPhone, err := members.GetByPhone("0701111111")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPhone.ID)

	_, err = members.Get("XXXXXX")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = members.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = members.GetByPhone("0700000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemberUpdateReindexes(t *testing.T) {
	members := newTestMembers()

	m, err := members.Create("Alice", "alice@example.com", "0701111111", 0)
	require.NoError(t, err)

	require.NoError(t, members.Update(m.ID, "Alicia", "alicia@example.com", "0702222222"))

	// Old keys must be gone, new keys must resolve.
	_, err = members.GetByEmail("alice@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	updated, err := members.GetByEmail("alicia@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
	byPhone, err := members.GetByPhone("0702222222")
	require.NoError(t, err)
	assert.Equal(t, m.ID, byPhone.ID)
}

func TestMemberUpdateKeepingOwnKeysIsLegal(t *testing.T) {
	members := newTestMembers()

	m, err := members.Create("Alice", "alice@example.com", "0701111111", 0)
	require.NoError(t, err)

	require.NoError(t, members.Update(m.ID, "Alicia", "alice@example.com", "0701111111"))
	updated, err := members.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Name)
}

func TestMemberUpdateRejectsCollisionWithOtherMember(t *testing.T) {
	members := newTestMembers()

	_, err := members.Create("Alice", "alice@example.com", "0701111111", 0)
	require.NoError(t, err)
	bob, err := members.Create("Bob", "bob@example.com", "0702222222", 0)
	require.NoError(t, err)

	err = members.Update(bob.ID, "Bob", "alice@example.com", "0702222222")
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)
	err = members.Update(bob.ID, "Bob", "bob@example.com", "0701111111")
	assert.ErrorIs(t, err, domain.ErrDuplicateKey)

	// The failed updates must not have disturbed Bob's keys.
	unchanged, err := members.GetByEmail("bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, unchanged.ID)
}

func TestMemberUpdateUnknownID(t *testing.T) {
	members := newTestMembers()
	err := members.Update("XXXXXX", "Nobody", "n@example.com", "0700000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemberDelete(t *testing.T) {
	members := newTestMembers()

	m, err := members.Create("Alice", "alice@example.com", "0701111111", 0)
	require.NoError(t, err)

	require.NoError(t, members.Delete(m.ID))

	_, err = members.Get(m.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = members.GetByEmail("alice@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = members.GetByPhone("0701111111")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Email and phone become reusable after deletion.
	_, err = members.Create("Alice II", "alice@example.com", "0701111111", 0)
	assert.NoError(t, err)
}

func TestMemberDeleteBlockedWhileOwningItems(t *testing.T) {
	members := newTestMembers()

	m, err := members.Create("Alice", "alice@example.com", "0701111111", 0)
	require.NoError(t, err)
	require.NoError(t, members.AttachItem(m.ID, "12345678"))

	err = members.Delete(m.ID)
	assert.ErrorIs(t, err, domain.ErrHasDependents)

	require.NoError(t, members.DetachItem(m.ID, "12345678"))
	assert.NoError(t, members.Delete(m.ID))
}

func TestMemberCredits(t *testing.T) {
	members := newTestMembers()

	m, err := members.Create("Alice", "alice@example.com", "0701111111", 0)
	require.NoError(t, err)

	require.NoError(t, members.AddCredits(m.ID, 100))
	require.NoError(t, members.DeductCredits(m.ID, 30))
	got, err := members.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 70, got.Credits)

	assert.ErrorIs(t, members.AddCredits(m.ID, -1), domain.ErrInvalidArgument)
	assert.ErrorIs(t, members.DeductCredits(m.ID, -1), domain.ErrInvalidArgument)
	assert.ErrorIs(t, members.DeductCredits(m.ID, 1000), domain.ErrInsufficientFunds)

	require.NoError(t, members.SetCredits(m.ID, 90))
	got, err = members.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, 90, got.Credits)
	assert.ErrorIs(t, members.SetCredits(m.ID, -5), domain.ErrInvalidArgument)
}

func TestMemberSnapshotIsDetached(t *testing.T) {
	members := newTestMembers()

	m, err := members.Create("Alice", "alice@example.com", "0701111111", 0)
	require.NoError(t, err)
	require.NoError(t, members.AttachItem(m.ID, "12345678"))

	snap, err := members.Get(m.ID)
	require.NoError(t, err)
	snap.OwnedItemIDs[0] = "tampered"

	fresh, err := members.Get(m.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"12345678"}, fresh.OwnedItemIDs)
}
