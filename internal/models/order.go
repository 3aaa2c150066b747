package models

import "time"

// OrderStatus tracks whether an order still accepts changes.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderCompleted OrderStatus = "completed"
)

// OrderLine is one row of an open order.
type OrderLine struct {
	// ID is the unique identifier for the line (UUID format).
	ID string

	// ProductID references the catalog product.
	ProductID string

	// Name is the display name at the time the line was added. For
	// combos it is the composed name, e.g. "Burger Menu (Cheeseburger)".
	Name string

	// UnitPrice is the price snapshot. For combos it already includes
	// the extras of the chosen options.
	UnitPrice float64

	// Quantity is always >= 1 while the line exists.
	Quantity int

	// DiscountPercent is the per-line discount in [0, 100].
	DiscountPercent float64

	// Combo is the resolved selection for combo lines, nil otherwise.
	Combo *ComboSnapshot
}

// IsCombo reports whether the line was composed from a combo product.
func (l OrderLine) IsCombo() bool {
	return l.Combo != nil
}

// ComboChoice is the resolved selection of one option group.
type ComboChoice struct {
	GroupID string
	Slot    Slot
	Policy  SelectionPolicy

	// Items holds one entry for required and optional groups that were
	// filled, and up to Policy.Max entries for multiple groups.
	Items []ComboItem
}

// ComboSnapshot is the finalized selection of a combo line.
type ComboSnapshot struct {
	// Choices follow the catalog order of the option groups.
	Choices []ComboChoice

	// UnitPrice is the base price plus the extras of every chosen item.
	UnitPrice float64
}

// Main returns the first item chosen for the main slot, if any.
func (s ComboSnapshot) Main() (ComboItem, bool) {
	for _, c := range s.Choices {
		if c.Slot == SlotMain && len(c.Items) > 0 {
			return c.Items[0], true
		}
	}
	return ComboItem{}, false
}

// Order is the in-memory state of one check. It exists only while the
// order is open on a terminal and is never persisted.
type Order struct {
	ID string

	TableNumber  string
	CustomerName string
	Note         string

	Lines []OrderLine

	// CheckDiscountPercent applies to every line on top of the line's
	// own discount.
	CheckDiscountPercent float64

	Payments []Payment

	Status      OrderStatus
	OpenedAt    time.Time
	CompletedAt time.Time
}
