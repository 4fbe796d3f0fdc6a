package registry

import (
	"fmt"
	"sort"

	"lendledger/internal/domain"
	"lendledger/internal/ids"
)

// Contracts is the global lookup table of contracts by id. Contracts are
// immutable values, so the table stores them directly; the only mutations
// are insert at mint time and removal by the reaper.
type Contracts struct {
	byID map[string]domain.Contract
	gen  *ids.Generator
}

func NewContracts(gen *ids.Generator) *Contracts {
	return &Contracts{
		byID: make(map[string]domain.Contract),
		gen:  gen,
	}
}

// Mint creates a contract with a fresh unique id from the given party and
// item snapshots and inserts it into the table.
func (s *Contracts) Mint(borrower, lender domain.Member, item domain.Item, startDay, endDay int) (domain.Contract, error) {
	var id string
	for {
		id = s.gen.ContractID()
		if _, taken := s.byID[id]; !taken {
			break
		}
	}

	c, err := domain.NewContract(id, borrower, lender, item, startDay, endDay)
	if err != nil {
		return domain.Contract{}, err
	}
	s.byID[id] = c
	return c, nil
}

// Get returns the contract with the given id.
func (s *Contracts) Get(id string) (domain.Contract, error) {
	c, ok := s.byID[id]
	if !ok {
		return domain.Contract{}, fmt.Errorf("contract %q: %w", id, domain.ErrNotFound)
	}
	return c, nil
}

// List returns all contracts in the table ordered by id.
func (s *Contracts) List() []domain.Contract {
	out := make([]domain.Contract, 0, len(s.byID))
	for _, c := range s.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Reap drops every contract whose end day is at least one full day in the
// past (currentDay >= endDay+1), so a contract stays findable through its
// entire completed day plus one grace day. Returns the number removed. Item
// histories are not touched.
func (s *Contracts) Reap(currentDay int) int {
	removed := 0
	for id, c := range s.byID {
		if currentDay >= c.EndDay+1 {
			delete(s.byID, id)
			removed++
		}
	}
	return removed
}
