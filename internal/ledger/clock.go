package ledger

import (
	"fmt"

	"lendledger/internal/domain"
)

// Clock is the single authoritative day counter. It starts at day 0 and only
// moves forward.
type Clock struct {
	currentDay int
}

func NewClock() *Clock {
	return &Clock{}
}

// CurrentDay returns the current day.
func (c *Clock) CurrentDay() int {
	return c.currentDay
}

// Advance moves the clock forward by days, which must be positive.
func (c *Clock) Advance(days int) error {
	if days <= 0 {
		return fmt.Errorf("advance by %d days: %w", days, domain.ErrInvalidArgument)
	}
	c.currentDay += days
	return nil
}
