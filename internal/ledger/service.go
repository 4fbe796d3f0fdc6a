// Package ledger implements the contract engine: the single validated path
// for every mutation of the lending system, and the clock that drives
// contract expiry.
package ledger

import (
	"fmt"
	"log/slog"
	"sync"

	"lendledger/internal/domain"
	"lendledger/internal/ids"
	"lendledger/internal/registry"
)

// ListingBonus is credited to an item's owner for every new listing,
// independent of any rental.
const ListingBonus = 100

// Service owns the member, item and contract registries and the clock as one
// unit. A single lock serializes every mutating operation, so the funds
// check, the credit transfer and the contract insert of one request can
// never interleave with another request's. Reads take the read lock and copy
// snapshots before releasing it.
type Service struct {
	mu        sync.RWMutex
	members   *registry.Members
	items     *registry.Items
	contracts *registry.Contracts
	clock     *Clock
	logger    *slog.Logger
}

// NewService builds a service with empty registries sharing the given id
// generator. Pass a seeded generator for reproducible fixtures.
func NewService(gen *ids.Generator, logger *slog.Logger) *Service {
	return &Service{
		members:   registry.NewMembers(gen),
		items:     registry.NewItems(gen),
		contracts: registry.NewContracts(gen),
		clock:     NewClock(),
		logger:    logger,
	}
}

// ---- Member operations ----

// CreateMember registers a member with a unique email and phone. New members
// start with zero credits.
func (s *Service) CreateMember(name, email, phone string) (domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members.Create(name, email, phone, s.clock.CurrentDay())
}

// GetMember returns a snapshot of the member with the given id.
func (s *Service) GetMember(id string) (domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members.Get(id)
}

// GetMemberByEmail looks a member up by email.
func (s *Service) GetMemberByEmail(email string) (domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members.GetByEmail(email)
}

// GetMemberByPhone looks a member up by phone.
func (s *Service) GetMemberByPhone(phone string) (domain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members.GetByPhone(phone)
}

// ListMembers returns snapshots of all members.
func (s *Service) ListMembers() []domain.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.members.List()
}

// UpdateMember replaces the member's name, email and phone and returns the
// updated snapshot.
func (s *Service) UpdateMember(id, newName, newEmail, newPhone string) (domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.members.Update(id, newName, newEmail, newPhone); err != nil {
		return domain.Member{}, err
	}
	return s.members.Get(id)
}

// DeleteMember removes a member that owns no items.
func (s *Service) DeleteMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.members.Delete(id)
}

// SetCredits overwrites the member's balance and returns the updated
// snapshot. Negative balances are rejected; debits on the normal path only
// happen through contract creation.
func (s *Service) SetCredits(id string, credits int) (domain.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.members.SetCredits(id, credits); err != nil {
		return domain.Member{}, err
	}
	return s.members.Get(id)
}

// ListOwnedItems returns snapshots of the items the member currently has
// listed, in listing order.
func (s *Service) ListOwnedItems(memberID string) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	member, err := s.members.Get(memberID)
	if err != nil {
		return nil, err
	}
	owned := make([]domain.Item, 0, len(member.OwnedItemIDs))
	for _, itemID := range member.OwnedItemIDs {
		item, err := s.items.Get(itemID)
		if err != nil {
			return nil, fmt.Errorf("owned list out of sync: %w", err)
		}
		owned = append(owned, item)
	}
	return owned, nil
}

// ---- Item operations ----

// CreateItem lists a new item under ownerID and pays the owner the listing
// bonus.
func (s *Service) CreateItem(ownerID string, category domain.Category, name, description string, costPerDay int) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.members.Get(ownerID); err != nil {
		return domain.Item{}, err
	}
	item := s.items.Create(ownerID, category, name, description, costPerDay, s.clock.CurrentDay())
	if err := s.members.AttachItem(ownerID, item.ID); err != nil {
		return domain.Item{}, err
	}
	if err := s.members.AddCredits(ownerID, ListingBonus); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

// GetItem returns a snapshot of the item with the given id.
func (s *Service) GetItem(id string) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.Get(id)
}

// ListItems returns snapshots of all items.
func (s *Service) ListItems() []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.List()
}

// UpdateItem edits the item's mutable fields; nil (and for the name, blank)
// values leave the field unchanged.
func (s *Service) UpdateItem(id string, name, description *string, costPerDay *int) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.items.Update(id, name, description, costPerDay); err != nil {
		return domain.Item{}, err
	}
	return s.items.Get(id)
}

// DeleteItem removes the item and detaches it from its owner's list. Live
// contracts on the item are left alone: they carry snapshots, so the history
// stays intact.
func (s *Service) DeleteItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, err := s.items.Delete(id)
	if err != nil {
		return err
	}
	return s.members.DetachItem(item.OwnerID, item.ID)
}

// IsItemAvailable reports whether the item is free over [startDay, endDay).
func (s *Service) IsItemAvailable(id string, startDay, endDay int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.IsAvailable(id, startDay, endDay)
}

// ---- Contract operations ----

// CreateContract validates a borrow request end to end and, if it holds,
// moves the credits and mints the contract in one step under the lock:
// existence, then availability, then affordability, then the transfer and
// the insert. The party and item snapshots frozen into the contract are
// taken after the transfer, so they record the balances the deal produced.
func (s *Service) CreateContract(borrowerID, itemID string, startDay, endDay int) (domain.ContractView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	borrower, err := s.members.Get(borrowerID)
	if err != nil {
		return domain.ContractView{}, err
	}
	item, err := s.items.Get(itemID)
	if err != nil {
		return domain.ContractView{}, err
	}
	if err := domain.ValidateRange(startDay, endDay); err != nil {
		return domain.ContractView{}, err
	}

	available, err := s.items.IsAvailable(itemID, startDay, endDay)
	if err != nil {
		return domain.ContractView{}, err
	}
	if !available {
		return domain.ContractView{}, fmt.Errorf("item %q days [%d, %d): %w", itemID, startDay, endDay, domain.ErrUnavailable)
	}

	cost := (endDay - startDay) * item.CostPerDay
	if borrower.Credits < cost {
		return domain.ContractView{}, fmt.Errorf("balance %d, need %d: %w", borrower.Credits, cost, domain.ErrInsufficientFunds)
	}

	if err := s.members.DeductCredits(borrowerID, cost); err != nil {
		return domain.ContractView{}, err
	}
	if err := s.members.AddCredits(item.OwnerID, cost); err != nil {
		return domain.ContractView{}, err
	}

	borrowerNow, err := s.members.Get(borrowerID)
	if err != nil {
		return domain.ContractView{}, err
	}
	lenderNow, err := s.members.Get(item.OwnerID)
	if err != nil {
		return domain.ContractView{}, err
	}

	contract, err := s.contracts.Mint(borrowerNow, lenderNow, item, startDay, endDay)
	if err != nil {
		return domain.ContractView{}, err
	}
	if err := s.items.AddContract(itemID, contract); err != nil {
		return domain.ContractView{}, err
	}
	return contract.View(s.clock.CurrentDay()), nil
}

// GetContract returns the view of the contract with the given id, status
// computed at the current day.
func (s *Service) GetContract(id string) (domain.ContractView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, err := s.contracts.Get(id)
	if err != nil {
		return domain.ContractView{}, err
	}
	return c.View(s.clock.CurrentDay()), nil
}

// ListContracts returns views of every contract still in the global table.
func (s *Service) ListContracts() []domain.ContractView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	day := s.clock.CurrentDay()
	contracts := s.contracts.List()
	views := make([]domain.ContractView, 0, len(contracts))
	for _, c := range contracts {
		views = append(views, c.View(day))
	}
	return views
}

// ListItemContracts returns views of the item's full booking history,
// including contracts the reaper has already dropped from the global table.
func (s *Service) ListItemContracts(itemID string) ([]domain.ContractView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	contracts, err := s.items.Contracts(itemID)
	if err != nil {
		return nil, err
	}
	day := s.clock.CurrentDay()
	views := make([]domain.ContractView, 0, len(contracts))
	for _, c := range contracts {
		views = append(views, c.View(day))
	}
	return views, nil
}

// ---- Time operations ----

// CurrentDay returns the clock's current day.
func (s *Service) CurrentDay() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clock.CurrentDay()
}

// AdvanceDays moves the clock forward by days and reaps fully elapsed
// contracts from the global table. Returns the new current day.
func (s *Service) AdvanceDays(days int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.clock.Advance(days); err != nil {
		return s.clock.CurrentDay(), err
	}
	day := s.clock.CurrentDay()
	if reaped := s.contracts.Reap(day); reaped > 0 {
		s.logger.Info("reaped expired contracts", "day", day, "count", reaped)
	}
	return day, nil
}
