package domain

import "errors"

// Every core operation fails with exactly one of these kinds so callers can
// map failures without string matching. Wrap with fmt.Errorf("...: %w", ...)
// to add context; match with errors.Is.
var (
	// ErrNotFound is returned when a referenced member, item or contract id
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when an email or phone is already
	// registered to a different member.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrInvalidRange is returned when a contract's end day is not strictly
	// after its start day, or the start day is negative.
	ErrInvalidRange = errors.New("invalid day range")

	// ErrUnavailable is returned when a requested day range conflicts with an
	// existing contract on the item.
	ErrUnavailable = errors.New("item unavailable in that period")

	// ErrInsufficientFunds is returned when the borrower's credit balance
	// cannot cover the total contract cost.
	ErrInsufficientFunds = errors.New("insufficient credits")

	// ErrHasDependents is returned when a member cannot be deleted because
	// they still own items.
	ErrHasDependents = errors.New("member owns items")

	// ErrInvalidArgument is returned for a non-positive day advance or a
	// negative credit adjustment.
	ErrInvalidArgument = errors.New("invalid argument")
)
