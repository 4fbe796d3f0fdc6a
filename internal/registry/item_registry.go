package registry

import (
	"fmt"
	"sort"
	"strings"

	"lendledger/internal/domain"
	"lendledger/internal/ids"
)

// itemRecord is the live, mutable form of an item. contracts is the item's
// full booking history in creation order; it is never pruned, so the record
// of who borrowed the item survives reaping of the global contract table.
type itemRecord struct {
	id          string
	ownerID     string
	category    domain.Category
	name        string
	description string
	costPerDay  int
	creationDay int
	contracts   []domain.Contract
}

func (r *itemRecord) snapshot() domain.Item {
	return domain.Item{
		ID:          r.id,
		OwnerID:     r.ownerID,
		Category:    r.category,
		Name:        r.name,
		Description: r.description,
		CostPerDay:  r.costPerDay,
		CreationDay: r.creationDay,
	}
}

// Items indexes item records by id. Ownership bookkeeping (the member's
// owned list, the listing bonus) is coordinated by the ledger service, not
// here.
type Items struct {
	byID map[string]*itemRecord
	gen  *ids.Generator
}

func NewItems(gen *ids.Generator) *Items {
	return &Items{
		byID: make(map[string]*itemRecord),
		gen:  gen,
	}
}

// Create registers a new item under ownerID with a fresh unique id.
func (s *Items) Create(ownerID string, category domain.Category, name, description string, costPerDay, currentDay int) domain.Item {
	var id string
	for {
		id = s.gen.ItemID()
		if _, taken := s.byID[id]; !taken {
			break
		}
	}

	rec := &itemRecord{
		id:          id,
		ownerID:     ownerID,
		category:    category,
		name:        name,
		description: description,
		costPerDay:  costPerDay,
		creationDay: currentDay,
	}
	s.byID[id] = rec
	return rec.snapshot()
}

// Get returns a snapshot of the item with the given id.
func (s *Items) Get(id string) (domain.Item, error) {
	rec, ok := s.byID[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
	}
	return rec.snapshot(), nil
}

// List returns snapshots of all items ordered by id.
func (s *Items) List() []domain.Item {
	out := make([]domain.Item, 0, len(s.byID))
	for _, rec := range s.byID {
		out = append(out, rec.snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Update edits an item's mutable fields. Each field is optional: a nil
// pointer, and for the name also a blank string, leaves the field unchanged.
func (s *Items) Update(id string, name, description *string, costPerDay *int) error {
	rec, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
	}
	if name != nil && strings.TrimSpace(*name) != "" {
		rec.name = *name
	}
	if description != nil {
		rec.description = *description
	}
	if costPerDay != nil {
		rec.costPerDay = *costPerDay
	}
	return nil
}

// Delete removes the item and returns its final snapshot so the caller can
// detach it from the owner. Existing contracts are untouched; they hold
// snapshots, not references.
func (s *Items) Delete(id string) (domain.Item, error) {
	rec, ok := s.byID[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
	}
	delete(s.byID, id)
	return rec.snapshot(), nil
}

// IsAvailable reports whether no contract on the item overlaps [startDay,
// endDay). Linear scan over the item's history; the contract is the unit of
// truth, there is no separate calendar.
func (s *Items) IsAvailable(id string, startDay, endDay int) (bool, error) {
	rec, ok := s.byID[id]
	if !ok {
		return false, fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
	}
	for _, c := range rec.contracts {
		if c.Overlaps(startDay, endDay) {
			return false, nil
		}
	}
	return true, nil
}

// AddContract appends a minted contract to the item's history.
func (s *Items) AddContract(id string, c domain.Contract) error {
	rec, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
	}
	rec.contracts = append(rec.contracts, c)
	return nil
}

// Contracts returns a copy of the item's booking history in creation order.
func (s *Items) Contracts(id string) ([]domain.Contract, error) {
	rec, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
	}
	out := make([]domain.Contract, len(rec.contracts))
	copy(out, rec.contracts)
	return out, nil
}
