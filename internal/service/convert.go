package service

import (
	"github.com/mmynk/tablepos/internal/calculator"
	"github.com/mmynk/tablepos/internal/display"
	"github.com/mmynk/tablepos/internal/models"
	"github.com/mmynk/tablepos/internal/order"
	"github.com/mmynk/tablepos/pkg/api"
)

func toAPIItem(it models.ComboItem) api.ComboItem {
	return api.ComboItem{ID: it.ID, Name: it.Name, ExtraPrice: it.ExtraPrice, Hint: it.Hint}
}

func toAPIItems(items []models.ComboItem) []api.ComboItem {
	out := make([]api.ComboItem, len(items))
	for i, it := range items {
		out[i] = toAPIItem(it)
	}
	return out
}

func toAPIProduct(p models.Product) api.Product {
	out := api.Product{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Barcode:  p.Barcode,
		Category: p.Category,
		Combo:    p.IsCombo(),
	}
	for _, g := range p.OptionGroups {
		og := api.OptionGroup{
			ID:     g.ID,
			Name:   g.Name,
			Slot:   string(g.Slot),
			Policy: g.Policy.Kind.String(),
			Items:  toAPIItems(g.Items),
		}
		if g.Policy.Kind == models.PolicyMultiple {
			og.Max = g.Policy.Limit()
		}
		out.Groups = append(out.Groups, og)
	}
	return out
}

func toAPILine(l models.OrderLine, checkPct float64) api.OrderLine {
	out := api.OrderLine{
		ID:              l.ID,
		ProductID:       l.ProductID,
		Name:            l.Name,
		UnitPrice:       l.UnitPrice,
		Quantity:        l.Quantity,
		DiscountPercent: l.DiscountPercent,
		LineTotal:       calculator.RoundMoney(calculator.ComputeLineTotal(l.UnitPrice, l.Quantity, l.DiscountPercent, checkPct)),
	}
	if l.Combo != nil {
		for _, c := range l.Combo.Choices {
			out.Combo = append(out.Combo, api.ComboChoice{
				GroupID: c.GroupID,
				Slot:    string(c.Slot),
				Items:   toAPIItems(c.Items),
			})
		}
	}
	return out
}

func toAPIOrder(s order.State) api.Order {
	totals := order.Totals(s)
	balance := order.Balance(s)
	out := api.Order{
		ID:                   s.ID,
		TableNumber:          s.TableNumber,
		CustomerName:         s.CustomerName,
		Note:                 s.Note,
		Status:               string(s.Status),
		Lines:                make([]api.OrderLine, len(s.Lines)),
		CheckDiscountPercent: s.CheckDiscountPercent,
		Payments:             make([]api.Payment, len(s.Payments)),
		Totals: api.Totals{
			Subtotal:        calculator.RoundMoney(totals.Subtotal),
			ProductDiscount: calculator.RoundMoney(totals.ProductDiscount),
			CheckDiscount:   calculator.RoundMoney(totals.CheckDiscount),
			NetTotal:        calculator.RoundMoney(totals.NetTotal),
			TotalPaid:       balance.TotalPaid,
			Remaining:       balance.Remaining,
			Settled:         calculator.IsSettled(totals.NetTotal, s.Payments),
		},
		OpenedAt: s.OpenedAt.Unix(),
	}
	if !s.CompletedAt.IsZero() {
		out.CompletedAt = s.CompletedAt.Unix()
	}
	for i, l := range s.Lines {
		out.Lines[i] = toAPILine(l, s.CheckDiscountPercent)
	}
	for i, p := range s.Payments {
		out.Payments[i] = api.Payment{
			ID:       p.ID,
			Kind:     p.Kind.String(),
			Amount:   p.Amount,
			Tendered: p.Tendered,
			Change:   p.Change,
			At:       p.At.Unix(),
		}
	}
	return out
}

func toAPIMessage(msg display.Message) *api.DisplayMessage {
	out := &api.DisplayMessage{
		Type:            string(msg.Type),
		OrderID:         msg.OrderID,
		CustomerName:    msg.CustomerName,
		OrderNote:       msg.OrderNote,
		CheckDiscount:   msg.CheckDiscount,
		ProductDiscount: msg.ProductDiscount,
		Total:           msg.Total,
	}
	for _, it := range msg.OrderItems {
		out.OrderItems = append(out.OrderItems, api.DisplayItem{
			Name:            it.Name,
			Quantity:        it.Quantity,
			Price:           it.UnitPrice,
			DiscountPercent: it.DiscountPercent,
			LineTotal:       it.LineTotal,
		})
	}
	if msg.PaymentInfo != nil {
		out.PaymentInfo = &api.DisplayPaymentInfo{
			PaidAmount:    msg.PaymentInfo.PaidAmount,
			ChangeAmount:  msg.PaymentInfo.ChangeAmount,
			PaymentMethod: msg.PaymentInfo.PaymentMethod,
		}
	}
	return out
}

func toAPIPlaylist(videos []models.Video, active []string) api.Playlist {
	out := api.Playlist{
		Videos:    make([]api.Video, len(videos)),
		ActiveIDs: append([]string{}, active...),
	}
	for i, v := range videos {
		out.Videos[i] = api.Video{ID: v.ID, Title: v.Title, URL: v.URL}
	}
	return out
}
