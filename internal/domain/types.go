// Package domain holds the value types the lending engine hands across
// package boundaries. Everything here is an immutable snapshot: the mutable
// records live inside their owning registry and are never exposed, so a
// snapshot taken at contract time stays frozen no matter how the live entity
// changes afterwards.
package domain

import "fmt"

// Category classifies an item listing.
type Category string

const (
	CategoryTool    Category = "Tool"
	CategoryVehicle Category = "Vehicle"
	CategoryGame    Category = "Game"
	CategoryToy     Category = "Toy"
	CategorySport   Category = "Sport"
	CategoryOther   Category = "Other"
)

// ParseCategory converts a category name to its enum value.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryTool, CategoryVehicle, CategoryGame, CategoryToy, CategorySport, CategoryOther:
		return c, nil
	default:
		return "", fmt.Errorf("unknown category %q: %w", s, ErrInvalidArgument)
	}
}

// Member is a read snapshot of a registered member. OwnedItemIDs lists the
// ids of items the member currently has listed, in listing order.
type Member struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	Credits      int
	CreationDay  int
	OwnedItemIDs []string
}

// Item is a read snapshot of a listed item. OwnerID is a weak reference; the
// owning member's registry record is the authority.
type Item struct {
	ID          string
	OwnerID     string
	Category    Category
	Name        string
	Description string
	CostPerDay  int
	CreationDay int
}
