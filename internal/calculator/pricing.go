package calculator

import "github.com/mmynk/tablepos/internal/models"

// OrderTotals is the price breakdown of an order.
type OrderTotals struct {
	Subtotal        float64 // Σ unit price × quantity
	ProductDiscount float64 // Σ per-line discounts
	CheckDiscount   float64 // Σ check-wide discount share of each line
	NetTotal        float64 // Σ line totals
}

// lineAmounts returns the per-unit product and check discount amounts of a
// line and its discounted unit price.
//
// The two discounts are additive: both percents are taken of the original
// unit price, so 20% + 10% removes 30% of the price, not 28%. The check
// discount is capped at what the product discount left, which keeps the
// discounted price at or above zero.
func lineAmounts(unitPrice, productPct, checkPct float64) (productAmt, checkAmt, discounted float64) {
	if unitPrice < 0 {
		unitPrice = 0
	}
	productPct = ClampPercent(productPct)
	checkPct = ClampPercent(checkPct)

	productAmt = unitPrice * productPct / 100
	if checkPct > 0 {
		checkAmt = unitPrice * checkPct / 100
	}
	if left := unitPrice - productAmt; checkAmt > left {
		checkAmt = left
	}

	discounted = unitPrice - productAmt - checkAmt
	if discounted < 0 {
		discounted = 0
	}
	return productAmt, checkAmt, discounted
}

// ComputeLineTotal returns the total of a line after both discounts.
// Out-of-range percents are clamped; a quantity below one yields zero.
func ComputeLineTotal(unitPrice float64, quantity int, productDiscountPercent, checkDiscountPercent float64) float64 {
	if quantity < 1 {
		return 0
	}
	_, _, discounted := lineAmounts(unitPrice, productDiscountPercent, checkDiscountPercent)
	return discounted * float64(quantity)
}

// ComputeOrderTotals sums the per-line contributions of lines under the
// given check discount. NetTotal always equals
// Subtotal - ProductDiscount - CheckDiscount.
func ComputeOrderTotals(lines []models.OrderLine, checkDiscountPercent float64) OrderTotals {
	var t OrderTotals
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		qty := float64(l.Quantity)
		price := l.UnitPrice
		if price < 0 {
			price = 0
		}
		productAmt, checkAmt, discounted := lineAmounts(price, l.DiscountPercent, checkDiscountPercent)

		t.Subtotal += price * qty
		t.ProductDiscount += productAmt * qty
		t.CheckDiscount += checkAmt * qty
		t.NetTotal += discounted * qty
	}
	return t
}
