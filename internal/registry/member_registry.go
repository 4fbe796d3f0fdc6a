// Package registry holds the arena collections that own all mutable state:
// maps from generated id to entity record. Records never leave their
// registry; every read returns a snapshot value from the domain package.
//
// Registries are not safe for concurrent use. The ledger service guards them
// behind a single lock so each mutating operation is one logical transaction.
package registry

import (
	"fmt"
	"sort"

	"lendledger/internal/domain"
	"lendledger/internal/ids"
)

// memberRecord is the live, mutable form of a member. Only this package
// touches it.
type memberRecord struct {
	id           string
	name         string
	email        string
	phone        string
	credits      int
	creationDay  int
	ownedItemIDs []string
}

func (r *memberRecord) snapshot() domain.Member {
	owned := make([]string, len(r.ownedItemIDs))
	copy(owned, r.ownedItemIDs)
	return domain.Member{
		ID:           r.id,
		Name:         r.name,
		Email:        r.email,
		Phone:        r.phone,
		Credits:      r.credits,
		CreationDay:  r.creationDay,
		OwnedItemIDs: owned,
	}
}

// Members indexes member records by id, email and phone. Email and phone are
// unique keys; the three indexes always point at the same record set.
type Members struct {
	byID    map[string]*memberRecord
	byEmail map[string]*memberRecord
	byPhone map[string]*memberRecord
	gen     *ids.Generator
}

func NewMembers(gen *ids.Generator) *Members {
	return &Members{
		byID:    make(map[string]*memberRecord),
		byEmail: make(map[string]*memberRecord),
		byPhone: make(map[string]*memberRecord),
		gen:     gen,
	}
}

// Create registers a new member with a fresh unique id and zero credits.
func (m *Members) Create(name, email, phone string, currentDay int) (domain.Member, error) {
	if _, taken := m.byEmail[email]; taken {
		return domain.Member{}, fmt.Errorf("email %q: %w", email, domain.ErrDuplicateKey)
	}
	if _, taken := m.byPhone[phone]; taken {
		return domain.Member{}, fmt.Errorf("phone %q: %w", phone, domain.ErrDuplicateKey)
	}

	var id string
	for {
		id = m.gen.MemberID()
		if _, taken := m.byID[id]; !taken {
			break
		}
	}

	rec := &memberRecord{
		id:          id,
		name:        name,
		email:       email,
		phone:       phone,
		creationDay: currentDay,
	}
	m.byID[id] = rec
	m.byEmail[email] = rec
	m.byPhone[phone] = rec
	return rec.snapshot(), nil
}

// Get returns a snapshot of the member with the given id.
func (m *Members) Get(id string) (domain.Member, error) {
	rec, ok := m.byID[id]
	if !ok {
		return domain.Member{}, fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}
	return rec.snapshot(), nil
}

// GetByEmail returns a snapshot of the member registered under email.
func (m *Members) GetByEmail(email string) (domain.Member, error) {
	rec, ok := m.byEmail[email]
	if !ok {
		return domain.Member{}, fmt.Errorf("member email %q: %w", email, domain.ErrNotFound)
	}
	return rec.snapshot(), nil
}

// GetByPhone returns a snapshot of the member registered under phone.
func (m *Members) GetByPhone(phone string) (domain.Member, error) {
	rec, ok := m.byPhone[phone]
	if !ok {
		return domain.Member{}, fmt.Errorf("member phone %q: %w", phone, domain.ErrNotFound)
	}
	return rec.snapshot(), nil
}

// List returns snapshots of all members ordered by id.
func (m *Members) List() []domain.Member {
	out := make([]domain.Member, 0, len(m.byID))
	for _, rec := range m.byID {
		out = append(out, rec.snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update replaces a member's name, email and phone. A collision with a
// different member's email or phone fails before anything changes; on
// success all three indexes move together.
func (m *Members) Update(id, newName, newEmail, newPhone string) error {
	rec, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}
	if other, taken := m.byEmail[newEmail]; taken && other != rec {
		return fmt.Errorf("email %q: %w", newEmail, domain.ErrDuplicateKey)
	}
	if other, taken := m.byPhone[newPhone]; taken && other != rec {
		return fmt.Errorf("phone %q: %w", newPhone, domain.ErrDuplicateKey)
	}

	delete(m.byEmail, rec.email)
	delete(m.byPhone, rec.phone)
	rec.name = newName
	rec.email = newEmail
	rec.phone = newPhone
	m.byEmail[newEmail] = rec
	m.byPhone[newPhone] = rec
	return nil
}

// Delete removes a member and all of its index entries. A member that still
// owns items cannot be deleted.
func (m *Members) Delete(id string) error {
	rec, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}
	if len(rec.ownedItemIDs) > 0 {
		return fmt.Errorf("member %q: %w", id, domain.ErrHasDependents)
	}
	delete(m.byID, id)
	delete(m.byEmail, rec.email)
	delete(m.byPhone, rec.phone)
	return nil
}

// SetCredits overwrites the member's balance. Negative balances are
// rejected.
func (m *Members) SetCredits(id string, credits int) error {
	rec, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}
	if credits < 0 {
		return fmt.Errorf("set credits to %d: %w", credits, domain.ErrInvalidArgument)
	}
	rec.credits = credits
	return nil
}

// AddCredits credits amount to the member's balance.
func (m *Members) AddCredits(id string, amount int) error {
	rec, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}
	if amount < 0 {
		return fmt.Errorf("add %d credits: %w", amount, domain.ErrInvalidArgument)
	}
	rec.credits += amount
	return nil
}

// DeductCredits debits amount from the member's balance, refusing to take
// the balance below zero.
func (m *Members) DeductCredits(id string, amount int) error {
	rec, ok := m.byID[id]
	if !ok {
		return fmt.Errorf("member %q: %w", id, domain.ErrNotFound)
	}
	if amount < 0 {
		return fmt.Errorf("deduct %d credits: %w", amount, domain.ErrInvalidArgument)
	}
	if rec.credits < amount {
		return fmt.Errorf("balance %d, need %d: %w", rec.credits, amount, domain.ErrInsufficientFunds)
	}
	rec.credits -= amount
	return nil
}

// AttachItem records itemID in the member's owned list. Attaching an already
// owned item is a no-op.
func (m *Members) AttachItem(memberID, itemID string) error {
	rec, ok := m.byID[memberID]
	if !ok {
		return fmt.Errorf("member %q: %w", memberID, domain.ErrNotFound)
	}
	for _, owned := range rec.ownedItemIDs {
		if owned == itemID {
			return nil
		}
	}
	rec.ownedItemIDs = append(rec.ownedItemIDs, itemID)
	return nil
}

// DetachItem removes itemID from the member's owned list if present.
func (m *Members) DetachItem(memberID, itemID string) error {
	rec, ok := m.byID[memberID]
	if !ok {
		return fmt.Errorf("member %q: %w", memberID, domain.ErrNotFound)
	}
	for i, owned := range rec.ownedItemIDs {
		if owned == itemID {
			rec.ownedItemIDs = append(rec.ownedItemIDs[:i], rec.ownedItemIDs[i+1:]...)
			return nil
		}
	}
	return nil
}
