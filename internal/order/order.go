// Package order holds the state of an open check and the pure update
// functions that move it forward. Every update copies the lines and
// payments it touches, so a State handed out earlier never changes.
package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tablepos/internal/calculator"
	"github.com/mmynk/tablepos/internal/models"
)

var (
	ErrOrderClosed     = errors.New("order is already completed")
	ErrLineNotFound    = errors.New("order line not found")
	ErrComboProduct    = errors.New("combo products must be added with a selection")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNoPayments      = errors.New("order has no payments")
	ErrNotSettled      = errors.New("order is not fully paid")
)

// State is the explicit state of one open order.
type State = models.Order

// New opens an empty order.
func New(id string, now time.Time) State {
	if id == "" {
		id = uuid.New().String()
	}
	return State{
		ID:       id,
		Status:   models.OrderOpen,
		OpenedAt: now,
	}
}

func checkOpen(s State) error {
	if s.Status == models.OrderCompleted {
		return fmt.Errorf("%w: %s", ErrOrderClosed, s.ID)
	}
	return nil
}

func cloneLines(lines []models.OrderLine) []models.OrderLine {
	return append(make([]models.OrderLine, 0, len(lines)+1), lines...)
}

func findLine(lines []models.OrderLine, lineID string) (int, error) {
	for i, l := range lines {
		if l.ID == lineID {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
}

// WithDetails sets the table number, customer name and note of the order.
func WithDetails(s State, table, customer, note string) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	s.TableNumber = table
	s.CustomerName = customer
	s.Note = note
	return s, nil
}

// AddProduct adds one unit of a plain product. A line already holding the
// product is incremented instead of adding a second line.
func AddProduct(s State, p models.Product) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	if p.IsCombo() {
		return s, fmt.Errorf("%w: %s", ErrComboProduct, p.ID)
	}

	lines := cloneLines(s.Lines)
	for i, l := range lines {
		if l.ProductID == p.ID && !l.IsCombo() {
			lines[i].Quantity++
			s.Lines = lines
			return s, nil
		}
	}
	s.Lines = append(lines, models.OrderLine{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	})
	return s, nil
}

// AddCombo finalizes sel for the combo product p and adds quantity meals.
// Only a line with an identical selection is merged; any other selection
// gets its own line.
func AddCombo(s State, p models.Product, sel calculator.Selection, quantity int) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	if quantity < 1 {
		return s, ErrInvalidQuantity
	}
	snap, name, err := calculator.FinalizeCombo(p, sel)
	if err != nil {
		return s, err
	}

	key := calculator.SnapshotKey(snap)
	lines := cloneLines(s.Lines)
	for i, l := range lines {
		if l.ProductID == p.ID && l.IsCombo() && calculator.SnapshotKey(*l.Combo) == key {
			lines[i].Quantity += quantity
			s.Lines = lines
			return s, nil
		}
	}
	s.Lines = append(lines, models.OrderLine{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Name:      name,
		UnitPrice: snap.UnitPrice,
		Quantity:  quantity,
		Combo:     &snap,
	})
	return s, nil
}

// Increment adds one to the quantity of a line.
func Increment(s State, lineID string) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	i, err := findLine(s.Lines, lineID)
	if err != nil {
		return s, err
	}
	lines := cloneLines(s.Lines)
	lines[i].Quantity++
	s.Lines = lines
	return s, nil
}

// Decrement removes one from the quantity of a line. A line at quantity 1
// is removed from the order.
func Decrement(s State, lineID string) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	i, err := findLine(s.Lines, lineID)
	if err != nil {
		return s, err
	}
	if s.Lines[i].Quantity <= 1 {
		return RemoveLine(s, lineID)
	}
	lines := cloneLines(s.Lines)
	lines[i].Quantity--
	s.Lines = lines
	return s, nil
}

// SetQuantity replaces the quantity of a line. Zero removes the line.
func SetQuantity(s State, lineID string, quantity int) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	if quantity < 0 {
		return s, ErrInvalidQuantity
	}
	i, err := findLine(s.Lines, lineID)
	if err != nil {
		return s, err
	}
	if quantity == 0 {
		return RemoveLine(s, lineID)
	}
	lines := cloneLines(s.Lines)
	lines[i].Quantity = quantity
	s.Lines = lines
	return s, nil
}

// RemoveLine deletes a line regardless of its quantity.
func RemoveLine(s State, lineID string) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	i, err := findLine(s.Lines, lineID)
	if err != nil {
		return s, err
	}
	lines := make([]models.OrderLine, 0, len(s.Lines)-1)
	lines = append(lines, s.Lines[:i]...)
	s.Lines = append(lines, s.Lines[i+1:]...)
	return s, nil
}

// SetLineDiscount sets the per-line discount, clamped to [0, 100].
func SetLineDiscount(s State, lineID string, percent float64) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	i, err := findLine(s.Lines, lineID)
	if err != nil {
		return s, err
	}
	lines := cloneLines(s.Lines)
	lines[i].DiscountPercent = calculator.ClampPercent(percent)
	s.Lines = lines
	return s, nil
}

// SetCheckDiscount sets the check-wide discount, clamped to [0, 100].
func SetCheckDiscount(s State, percent float64) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	s.CheckDiscountPercent = calculator.ClampPercent(percent)
	return s, nil
}

// Totals returns the price breakdown of the order.
func Totals(s State) calculator.OrderTotals {
	return calculator.ComputeOrderTotals(s.Lines, s.CheckDiscountPercent)
}

// Balance returns what has been paid against the order's net total.
func Balance(s State) calculator.Balance {
	return calculator.ComputeBalance(Totals(s).NetTotal, s.Payments)
}

// Pay enters a payment. Change from a cash overpayment is returned in the
// result and is not recorded against the balance.
func Pay(s State, kind models.PaymentKind, amount float64, now time.Time) (State, calculator.TenderResult, error) {
	if err := checkOpen(s); err != nil {
		return s, calculator.TenderResult{}, err
	}
	res, err := calculator.Tender(Totals(s).NetTotal, s.Payments, kind, amount, now)
	if err != nil {
		return s, calculator.TenderResult{}, err
	}
	s.Payments = calculator.AddPayment(s.Payments, res.Payment)
	return s, res, nil
}

// RemovePayment deletes the payment at index. Allowed until the order is
// completed.
func RemovePayment(s State, index int) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	payments, err := calculator.RemovePayment(s.Payments, index)
	if err != nil {
		return s, err
	}
	s.Payments = payments
	return s, nil
}

// Complete closes the order. It needs a settled balance and at least one
// payment, unless the lines are fully discounted to a zero net total.
func Complete(s State, now time.Time) (State, error) {
	if err := checkOpen(s); err != nil {
		return s, err
	}
	net := Totals(s).NetTotal
	if len(s.Payments) == 0 && (len(s.Lines) == 0 || net > 0) {
		return s, ErrNoPayments
	}
	if !calculator.IsSettled(net, s.Payments) {
		return s, fmt.Errorf("%w: %.2f remaining", ErrNotSettled, Balance(s).Remaining)
	}
	s.Status = models.OrderCompleted
	s.CompletedAt = now
	return s, nil
}

// Change is the total change handed out on cash payments.
func Change(s State) float64 {
	var change float64
	for _, p := range s.Payments {
		change += p.Change
	}
	return calculator.RoundMoney(change)
}
