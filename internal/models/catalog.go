package models

// Category groups products on the order-entry screen.
type Category struct {
	// ID is the unique identifier for the category.
	ID string

	// Name is the display label (e.g., "Burgers", "Drinks").
	Name string

	// Products are listed in catalog order.
	Products []Product
}

// Product is immutable reference data loaded with the catalog.
// Order lines copy Name and Price so later catalog changes never
// rewrite lines that were already rung up.
type Product struct {
	// ID is the unique identifier for the product.
	ID string

	// Name is the display name.
	Name string

	// Price is the base unit price. For combo products this is the
	// price before any option extras.
	Price float64

	// Barcode is optional; empty when the product cannot be scanned.
	Barcode string

	// Category is the category label the product was listed under.
	Category string

	// Combo marks products that must be composed from OptionGroups
	// before they can be added to an order.
	Combo bool

	// OptionGroups are the combo slots in display order. Empty for
	// plain products.
	OptionGroups []ComboOptionGroup
}

// IsCombo reports whether the product is composed from option groups.
func (p Product) IsCombo() bool {
	return p.Combo && len(p.OptionGroups) > 0
}

// Slot identifies which part of a combo meal an option group fills.
type Slot string

const (
	SlotMain  Slot = "main"
	SlotSide  Slot = "side"
	SlotDrink Slot = "drink"
)

// PolicyKind is the tag of a SelectionPolicy.
type PolicyKind int

const (
	// PolicyRequired means exactly one item must be chosen.
	PolicyRequired PolicyKind = iota
	// PolicyOptional means zero or one item.
	PolicyOptional
	// PolicyMultiple means zero to Max items.
	PolicyMultiple
)

func (k PolicyKind) String() string {
	switch k {
	case PolicyRequired:
		return "required"
	case PolicyOptional:
		return "optional"
	case PolicyMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// SelectionPolicy describes how many items of an option group may be
// chosen. Max is only meaningful for PolicyMultiple.
type SelectionPolicy struct {
	Kind PolicyKind
	Max  int
}

// Limit returns the largest number of items the policy accepts.
func (p SelectionPolicy) Limit() int {
	if p.Kind == PolicyMultiple {
		if p.Max < 1 {
			return 1
		}
		return p.Max
	}
	return 1
}

// ComboOptionGroup is one slot of a combo product.
type ComboOptionGroup struct {
	// ID is unique within the product.
	ID string

	// Name is shown as the slot heading (e.g., "Choose your drink").
	Name string

	Slot   Slot
	Policy SelectionPolicy
	Items  []ComboItem
}

// Item looks up an item of the group by ID.
func (g ComboOptionGroup) Item(id string) (ComboItem, bool) {
	for _, it := range g.Items {
		if it.ID == id {
			return it, true
		}
	}
	return ComboItem{}, false
}

// ComboItem is a choice inside an option group.
type ComboItem struct {
	ID   string
	Name string

	// ExtraPrice is added to the combo base price when selected. Zero
	// when the item is included in the base price.
	ExtraPrice float64

	// Hint is a display-only required/optional label; it never drives
	// validation.
	Hint string
}
