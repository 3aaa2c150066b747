package calculator

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mmynk/tablepos/internal/models"
)

var (
	ErrUnknownGroup = errors.New("unknown option group")
	ErrUnknownItem  = errors.New("unknown option item")
	ErrGroupFull    = errors.New("option group is full")
	ErrNotCombo     = errors.New("product is not a combo")
)

// ValidationError is returned when a combo is finalized with required
// option groups left empty or groups holding more items than allowed.
type ValidationError struct {
	MissingGroups  []string
	OverfullGroups []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingGroups) > 0 {
		parts = append(parts, "required option groups not selected: "+strings.Join(e.MissingGroups, ", "))
	}
	if len(e.OverfullGroups) > 0 {
		parts = append(parts, "option groups over their maximum: "+strings.Join(e.OverfullGroups, ", "))
	}
	return "invalid combo selection: " + strings.Join(parts, "; ")
}

// Selection is an in-progress combo selection keyed by option group ID.
// It is treated as a value: Select and Deselect return a new Selection.
type Selection map[string][]models.ComboItem

func (s Selection) clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = append([]models.ComboItem(nil), v...)
	}
	return out
}

// Has reports whether itemID is selected in groupID.
func (s Selection) Has(groupID, itemID string) bool {
	for _, it := range s[groupID] {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

// ValidationResult reports which groups keep a selection from being complete.
type ValidationResult struct {
	Valid          bool
	MissingGroups  []string
	OverfullGroups []string
}

func findGroup(groups []models.ComboOptionGroup, id string) (models.ComboOptionGroup, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}
	return models.ComboOptionGroup{}, false
}

// Select applies the choice of itemID in groupID according to the
// group's policy and returns the updated selection:
//   - required: the item replaces any previous choice; re-choosing it is a no-op
//   - optional: the item replaces any previous choice; re-choosing it clears the group
//   - multiple: re-choosing deselects; otherwise the item is added while below Max.
//     At Max a single-item group swaps its item and a larger group fails with ErrGroupFull.
func Select(groups []models.ComboOptionGroup, sel Selection, groupID, itemID string) (Selection, error) {
	group, ok := findGroup(groups, groupID)
	if !ok {
		return sel, fmt.Errorf("%w: %s", ErrUnknownGroup, groupID)
	}
	item, ok := group.Item(itemID)
	if !ok {
		return sel, fmt.Errorf("%w: %s in group %s", ErrUnknownItem, itemID, groupID)
	}

	next := sel.clone()
	current := next[groupID]
	selected := sel.Has(groupID, itemID)

	switch group.Policy.Kind {
	case models.PolicyRequired:
		next[groupID] = []models.ComboItem{item}
	case models.PolicyOptional:
		if selected {
			delete(next, groupID)
		} else {
			next[groupID] = []models.ComboItem{item}
		}
	case models.PolicyMultiple:
		limit := group.Policy.Limit()
		switch {
		case selected:
			next = without(next, groupID, itemID)
		case len(current) < limit:
			next[groupID] = append(current, item)
		case limit == 1:
			next[groupID] = []models.ComboItem{item}
		default:
			return sel, fmt.Errorf("%w: %s allows at most %d", ErrGroupFull, groupID, limit)
		}
	default:
		return sel, fmt.Errorf("option group %s has unknown policy %v", groupID, group.Policy.Kind)
	}
	return next, nil
}

// Deselect removes itemID from groupID. Removing an item that is not
// selected returns the selection unchanged.
func Deselect(sel Selection, groupID, itemID string) Selection {
	if !sel.Has(groupID, itemID) {
		return sel
	}
	return without(sel.clone(), groupID, itemID)
}

func without(sel Selection, groupID, itemID string) Selection {
	kept := sel[groupID][:0:0]
	for _, it := range sel[groupID] {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		delete(sel, groupID)
	} else {
		sel[groupID] = kept
	}
	return sel
}

// ValidateSelection checks sel against the policy of every group.
// Selections are never trimmed to fit; a group holding more items than its
// policy allows is reported as overfull.
func ValidateSelection(groups []models.ComboOptionGroup, sel Selection) ValidationResult {
	var res ValidationResult
	for _, g := range groups {
		n := len(sel[g.ID])
		if g.Policy.Kind == models.PolicyRequired && n == 0 {
			res.MissingGroups = append(res.MissingGroups, g.ID)
			continue
		}
		if n > g.Policy.Limit() {
			res.OverfullGroups = append(res.OverfullGroups, g.ID)
		}
	}
	res.Valid = len(res.MissingGroups) == 0 && len(res.OverfullGroups) == 0
	return res
}

// ComboUnitPrice is the base price plus the extra price of every selected item.
func ComboUnitPrice(basePrice float64, sel Selection) float64 {
	price := basePrice
	for _, items := range sel {
		for _, it := range items {
			price += it.ExtraPrice
		}
	}
	return price
}

// ComputeComboPrice returns the total of quantity combos with the given selection.
func ComputeComboPrice(basePrice float64, sel Selection, quantity int) float64 {
	if quantity < 1 {
		return 0
	}
	return ComboUnitPrice(basePrice, sel) * float64(quantity)
}

// FinalizeCombo validates sel for product and resolves it into a snapshot
// and the composed line name. It fails with *ValidationError when a
// required group is empty or a group exceeds its maximum.
func FinalizeCombo(product models.Product, sel Selection) (models.ComboSnapshot, string, error) {
	if !product.IsCombo() {
		return models.ComboSnapshot{}, "", fmt.Errorf("%w: %s", ErrNotCombo, product.ID)
	}
	for groupID := range sel {
		if _, ok := findGroup(product.OptionGroups, groupID); !ok {
			return models.ComboSnapshot{}, "", fmt.Errorf("%w: %s", ErrUnknownGroup, groupID)
		}
	}
	res := ValidateSelection(product.OptionGroups, sel)
	if !res.Valid {
		return models.ComboSnapshot{}, "", &ValidationError{
			MissingGroups:  res.MissingGroups,
			OverfullGroups: res.OverfullGroups,
		}
	}

	snap := models.ComboSnapshot{UnitPrice: ComboUnitPrice(product.Price, sel)}
	for _, g := range product.OptionGroups {
		items := sel[g.ID]
		if len(items) == 0 {
			continue
		}
		snap.Choices = append(snap.Choices, models.ComboChoice{
			GroupID: g.ID,
			Slot:    g.Slot,
			Policy:  g.Policy,
			Items:   append([]models.ComboItem(nil), items...),
		})
	}
	return snap, ComposeName(product.Name, snap), nil
}

// ComposeName builds the display name of a combo line: the product name
// followed by the main item in parentheses when one was chosen.
func ComposeName(productName string, snap models.ComboSnapshot) string {
	if main, ok := snap.Main(); ok {
		return fmt.Sprintf("%s (%s)", productName, main.Name)
	}
	return productName
}

// SnapshotKey returns a deterministic identity for a combo selection.
// Two snapshots with the same key describe the same meal; item order
// inside a multiple group does not matter. IDs are length-prefixed so
// separator characters inside an ID cannot make two selections collide.
func SnapshotKey(snap models.ComboSnapshot) string {
	parts := make([]string, 0, len(snap.Choices))
	for _, c := range snap.Choices {
		ids := make([]string, len(c.Items))
		for i, it := range c.Items {
			ids[i] = keyPart(it.ID)
		}
		sort.Strings(ids)
		parts = append(parts, keyPart(c.GroupID)+"="+strings.Join(ids, ""))
	}
	sort.Strings(parts)
	return strings.Join(parts, ";")
}

func keyPart(id string) string {
	return strconv.Itoa(len(id)) + ":" + id
}
