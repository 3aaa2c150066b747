package models

import "time"

// PaymentKind is the closed set of tenders a terminal accepts.
type PaymentKind int

const (
	PaymentCash PaymentKind = iota + 1
	PaymentCard
	PaymentMealVoucher
	PaymentGiftVoucher
	PaymentMealTicket
)

// PaymentKindInfo is the display metadata of a payment kind.
type PaymentKindInfo struct {
	// Code is the stable wire name.
	Code  string
	Label string
	Icon  string

	// GivesChange is true for tenders that may exceed the balance and
	// hand the difference back. Only cash does.
	GivesChange bool
}

var paymentKinds = map[PaymentKind]PaymentKindInfo{
	PaymentCash:        {Code: "cash", Label: "Cash", Icon: "banknote", GivesChange: true},
	PaymentCard:        {Code: "card", Label: "Card", Icon: "credit-card"},
	PaymentMealVoucher: {Code: "meal_voucher", Label: "Meal voucher", Icon: "ticket"},
	PaymentGiftVoucher: {Code: "gift_voucher", Label: "Gift voucher", Icon: "gift"},
	PaymentMealTicket:  {Code: "meal_ticket", Label: "Meal ticket", Icon: "receipt"},
}

// PaymentKinds lists every kind in display order.
func PaymentKinds() []PaymentKind {
	return []PaymentKind{PaymentCash, PaymentCard, PaymentMealVoucher, PaymentGiftVoucher, PaymentMealTicket}
}

// Info returns the metadata of k. Unknown kinds report ok == false.
func (k PaymentKind) Info() (PaymentKindInfo, bool) {
	info, ok := paymentKinds[k]
	return info, ok
}

// Valid reports whether k is one of the declared kinds.
func (k PaymentKind) Valid() bool {
	_, ok := paymentKinds[k]
	return ok
}

func (k PaymentKind) String() string {
	if info, ok := paymentKinds[k]; ok {
		return info.Code
	}
	return "unknown"
}

// ParsePaymentKind maps a wire code back to its kind.
func ParsePaymentKind(code string) (PaymentKind, bool) {
	for k, info := range paymentKinds {
		if info.Code == code {
			return k, true
		}
	}
	return 0, false
}

// Payment is one tender applied to an order.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	Kind PaymentKind

	// Amount is what counts against the order balance.
	Amount float64

	// Tendered is what the customer handed over. It only differs from
	// Amount for cash payments that produced change.
	Tendered float64

	// Change is Tendered - Amount, shown back to the operator.
	Change float64

	At time.Time
}
