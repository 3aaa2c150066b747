package calculator

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/tablepos/internal/models"
)

var (
	ErrInvalidAmount  = errors.New("payment amount must be positive")
	ErrUnknownKind    = errors.New("unknown payment kind")
	ErrOverpayment    = errors.New("payment exceeds remaining balance")
	ErrAlreadySettled = errors.New("order is already settled")
	ErrPaymentIndex   = errors.New("payment index out of range")
)

// Balance is the settlement state of an order.
type Balance struct {
	TotalPaid float64
	Remaining float64
}

// TenderResult is the outcome of entering a payment.
type TenderResult struct {
	// Payment is what gets appended to the order.
	Payment models.Payment

	// Change is handed back to the customer. Always zero for non-cash kinds.
	Change float64
}

// AddPayment returns a copy of payments with p appended.
func AddPayment(payments []models.Payment, p models.Payment) []models.Payment {
	out := make([]models.Payment, 0, len(payments)+1)
	out = append(out, payments...)
	return append(out, p)
}

// RemovePayment returns a copy of payments without the entry at index.
func RemovePayment(payments []models.Payment, index int) ([]models.Payment, error) {
	if index < 0 || index >= len(payments) {
		return payments, fmt.Errorf("%w: %d of %d", ErrPaymentIndex, index, len(payments))
	}
	out := make([]models.Payment, 0, len(payments)-1)
	out = append(out, payments[:index]...)
	return append(out, payments[index+1:]...), nil
}

// TotalPaid sums the amounts of all payments regardless of kind.
func TotalPaid(payments []models.Payment) float64 {
	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}
	return RoundMoney(paid)
}

// ComputeBalance returns what has been paid and what is still due.
func ComputeBalance(netTotal float64, payments []models.Payment) Balance {
	paid := TotalPaid(payments)
	remaining := RoundMoney(RoundMoney(netTotal) - paid)
	if remaining < 0 {
		remaining = 0
	}
	return Balance{TotalPaid: paid, Remaining: remaining}
}

// IsSettled reports whether payments cover netTotal.
func IsSettled(netTotal float64, payments []models.Payment) bool {
	return TotalPaid(payments) >= RoundMoney(netTotal)
}

// Tender prepares a payment of amount against the current balance.
//
// Cash above the remaining balance is accepted: the payment counts only the
// remaining balance and the excess is returned as change. Other kinds must
// match or underpay the balance.
func Tender(netTotal float64, payments []models.Payment, kind models.PaymentKind, amount float64, at time.Time) (TenderResult, error) {
	info, ok := kind.Info()
	if !ok {
		return TenderResult{}, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
	if !finite(amount) {
		return TenderResult{}, ErrInvalidAmount
	}
	amount = RoundMoney(amount)
	if amount <= 0 {
		return TenderResult{}, ErrInvalidAmount
	}
	bal := ComputeBalance(netTotal, payments)
	if bal.Remaining <= 0 {
		return TenderResult{}, ErrAlreadySettled
	}

	applied := amount
	var change float64
	if amount > bal.Remaining {
		if !info.GivesChange {
			return TenderResult{}, fmt.Errorf("%w: %s payment of %.2f against %.2f due",
				ErrOverpayment, info.Code, amount, bal.Remaining)
		}
		applied = bal.Remaining
		change = RoundMoney(amount - bal.Remaining)
	}

	return TenderResult{
		Payment: models.Payment{
			ID:       uuid.New().String(),
			Kind:     kind,
			Amount:   applied,
			Tendered: amount,
			Change:   change,
			At:       at,
		},
		Change: change,
	}, nil
}
