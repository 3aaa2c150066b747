package service

import (
	"github.com/mmynk/tablepos/internal/calculator"
	"github.com/mmynk/tablepos/internal/models"
	"github.com/mmynk/tablepos/pkg/api"
)

// buildSelection replays the operator's taps on a combo, in order, through
// the same update rules the order-entry screen applies.
func buildSelection(p models.Product, picks []api.ComboPick) (calculator.Selection, error) {
	sel := calculator.Selection{}
	for _, pick := range picks {
		if pick.Remove {
			sel = calculator.Deselect(sel, pick.GroupID, pick.ItemID)
			continue
		}
		next, err := calculator.Select(p.OptionGroups, sel, pick.GroupID, pick.ItemID)
		if err != nil {
			return nil, err
		}
		sel = next
	}
	return sel, nil
}
