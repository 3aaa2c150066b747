// Package display carries order snapshots from the order-entry terminal to
// the customer-facing screen. The channel is one-way and fire-and-forget:
// producers never wait for the screen, and the screen always redraws from
// the latest message it received.
package display

import (
	"github.com/mmynk/tablepos/internal/calculator"
	"github.com/mmynk/tablepos/internal/models"
	"github.com/mmynk/tablepos/internal/order"
)

// MessageType tells the screen which view to show.
type MessageType string

const (
	TypeOrderUpdate     MessageType = "ORDER_UPDATE"
	TypePaymentComplete MessageType = "PAYMENT_COMPLETE"
	TypeShowWelcome     MessageType = "SHOW_WELCOME"
)

// Message is a complete screen state. A receiver replaces whatever it
// showed before; messages are never merged.
type Message struct {
	Type            MessageType  `json:"type"`
	OrderID         string       `json:"orderId,omitempty"`
	OrderItems      []Item       `json:"orderItems,omitempty"`
	CustomerName    string       `json:"customerName,omitempty"`
	OrderNote       string       `json:"orderNote,omitempty"`
	CheckDiscount   float64      `json:"checkDiscount,omitempty"`
	ProductDiscount float64      `json:"productDiscount,omitempty"`
	Total           float64      `json:"total,omitempty"`
	PaymentInfo     *PaymentInfo `json:"paymentInfo,omitempty"`
}

// Item is one order line as the customer sees it.
type Item struct {
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"price"`
	DiscountPercent float64 `json:"discount,omitempty"`
	LineTotal       float64 `json:"lineTotal"`
}

// PaymentInfo is shown once an order is paid in full.
type PaymentInfo struct {
	PaidAmount    float64 `json:"paidAmount"`
	ChangeAmount  float64 `json:"changeAmount"`
	PaymentMethod string  `json:"paymentMethod"`
}

// Welcome is the idle screen.
func Welcome() Message {
	return Message{Type: TypeShowWelcome}
}

// OrderUpdate snapshots an open order.
func OrderUpdate(s order.State) Message {
	totals := order.Totals(s)
	msg := Message{
		Type:            TypeOrderUpdate,
		OrderID:         s.ID,
		CustomerName:    s.CustomerName,
		OrderNote:       s.Note,
		CheckDiscount:   calculator.RoundMoney(totals.CheckDiscount),
		ProductDiscount: calculator.RoundMoney(totals.ProductDiscount),
		Total:           calculator.RoundMoney(totals.NetTotal),
	}
	for _, l := range s.Lines {
		msg.OrderItems = append(msg.OrderItems, Item{
			Name:            l.Name,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			LineTotal:       calculator.RoundMoney(calculator.ComputeLineTotal(l.UnitPrice, l.Quantity, l.DiscountPercent, s.CheckDiscountPercent)),
		})
	}
	return msg
}

// PaymentComplete snapshots a settled order together with what was paid
// and the change handed back.
func PaymentComplete(s order.State) Message {
	msg := OrderUpdate(s)
	msg.Type = TypePaymentComplete
	msg.PaymentInfo = &PaymentInfo{
		PaidAmount:    order.Balance(s).TotalPaid + order.Change(s),
		ChangeAmount:  order.Change(s),
		PaymentMethod: paymentMethod(s.Payments),
	}
	return msg
}

// paymentMethod names the single method used, or "mixed" for split payments.
func paymentMethod(payments []models.Payment) string {
	if len(payments) == 0 {
		return ""
	}
	first := payments[0].Kind
	for _, p := range payments[1:] {
		if p.Kind != first {
			return "mixed"
		}
	}
	return first.String()
}
