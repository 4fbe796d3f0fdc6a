package domain

import "fmt"

// ContractStatus is derived from the contract's day range and the current
// day. It is never stored.
type ContractStatus string

const (
	StatusScheduled ContractStatus = "SCHEDULED"
	StatusActive    ContractStatus = "ACTIVE"
	StatusCompleted ContractStatus = "COMPLETED"
)

// Contract is a time-boxed lending agreement over one item. Borrower, Lender
// and Item are copies taken at creation time, so later edits to the live
// entities do not rewrite history. The booked interval is [StartDay, EndDay):
// the end day itself is excluded, which makes back-to-back bookings legal.
type Contract struct {
	ID        string
	Borrower  Member
	Lender    Member
	Item      Item
	StartDay  int
	EndDay    int
	TotalCost int
}

// NewContract mints a contract, snapshotting the parties and the item, and
// re-validates the day range even when the caller already checked it.
func NewContract(id string, borrower, lender Member, item Item, startDay, endDay int) (Contract, error) {
	if err := ValidateRange(startDay, endDay); err != nil {
		return Contract{}, err
	}
	return Contract{
		ID:        id,
		Borrower:  borrower,
		Lender:    lender,
		Item:      item,
		StartDay:  startDay,
		EndDay:    endDay,
		TotalCost: (endDay - startDay) * item.CostPerDay,
	}, nil
}

// ValidateRange rejects negative start days and empty or inverted ranges.
func ValidateRange(startDay, endDay int) error {
	if startDay < 0 || endDay <= startDay {
		return fmt.Errorf("days [%d, %d): %w", startDay, endDay, ErrInvalidRange)
	}
	return nil
}

// StatusAt derives the lifecycle status for the given day.
func (c Contract) StatusAt(currentDay int) ContractStatus {
	switch {
	case currentDay < c.StartDay:
		return StatusScheduled
	case currentDay < c.EndDay:
		return StatusActive
	default:
		return StatusCompleted
	}
}

// Overlaps reports whether [start, end) intersects the contract's own
// interval. Touching endpoints do not count: an item returned on day 7 can be
// borrowed again starting day 7.
func (c Contract) Overlaps(start, end int) bool {
	return !(end <= c.StartDay || start >= c.EndDay)
}

// ContractView is the presentation-safe projection of a contract, carrying
// the status computed at view time.
type ContractView struct {
	ID           string
	ItemName     string
	BorrowerName string
	StartDay     int
	EndDay       int
	Status       ContractStatus
}

// View projects the contract for presentation at the given day.
func (c Contract) View(currentDay int) ContractView {
	return ContractView{
		ID:           c.ID,
		ItemName:     c.Item.Name,
		BorrowerName: c.Borrower.Name,
		StartDay:     c.StartDay,
		EndDay:       c.EndDay,
		Status:       c.StatusAt(currentDay),
	}
}
