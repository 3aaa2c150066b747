package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/tablepos/internal/models"
)

func TestComputeLineTotal(t *testing.T) {
	tests := []struct {
		name       string
		unitPrice  float64
		quantity   int
		productPct float64
		checkPct   float64
		want       float64
	}{
		{name: "no discounts", unitPrice: 12.5, quantity: 2, want: 25},
		{name: "discounts are additive, not compounded", unitPrice: 100, quantity: 1, productPct: 20, checkPct: 10, want: 70},
		{name: "product discount only", unitPrice: 40, quantity: 3, productPct: 25, want: 90},
		{name: "check discount only", unitPrice: 40, quantity: 3, checkPct: 50, want: 60},
		{name: "combined discounts over 100% floor at zero", unitPrice: 10, quantity: 4, productPct: 80, checkPct: 50, want: 0},
		{name: "percent above 100 is clamped", unitPrice: 10, quantity: 1, productPct: 150, want: 0},
		{name: "negative percent is clamped", unitPrice: 10, quantity: 1, productPct: -20, checkPct: -5, want: 10},
		{name: "zero quantity yields zero", unitPrice: 10, quantity: 0, want: 0},
		{name: "negative price treated as zero", unitPrice: -5, quantity: 2, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLineTotal(tt.unitPrice, tt.quantity, tt.productPct, tt.checkPct)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("ComputeLineTotal(%v, %d, %v, %v) = %v, want %v",
					tt.unitPrice, tt.quantity, tt.productPct, tt.checkPct, got, tt.want)
			}
		})
	}
}

func TestComputeLineTotal_NonNegativeAndMonotonic(t *testing.T) {
	prices := []float64{0, 0.99, 7.5, 100, 1234.56}
	quantities := []int{1, 2, 7}
	steps := []float64{0, 5, 10, 33.3, 50, 75, 99.9, 100}

	for _, price := range prices {
		for _, qty := range quantities {
			for _, check := range steps {
				prev := math.Inf(1)
				for _, product := range steps {
					got := ComputeLineTotal(price, qty, product, check)
					if got < 0 {
						t.Fatalf("negative total %v for price=%v qty=%d product=%v check=%v", got, price, qty, product, check)
					}
					if got > prev+1e-9 {
						t.Fatalf("total rose from %v to %v when product discount grew to %v (price=%v check=%v)", prev, got, product, price, check)
					}
					prev = got
				}
			}
			for _, product := range steps {
				prev := math.Inf(1)
				for _, check := range steps {
					got := ComputeLineTotal(price, qty, product, check)
					if got > prev+1e-9 {
						t.Fatalf("total rose from %v to %v when check discount grew to %v (price=%v product=%v)", prev, got, check, price, product)
					}
					prev = got
				}
			}
		}
	}
}

func TestComputeOrderTotals(t *testing.T) {
	lines := []models.OrderLine{
		{ProductID: "burger", UnitPrice: 100, Quantity: 1, DiscountPercent: 20},
		{ProductID: "fries", UnitPrice: 30, Quantity: 2},
		{ProductID: "cola", UnitPrice: 15.5, Quantity: 3, DiscountPercent: 10},
	}

	got := ComputeOrderTotals(lines, 10)

	// burger: 100 subtotal, 20 product, 10 check, 70 net
	// fries:  60 subtotal, 0 product, 6 check, 54 net
	// cola:   46.5 subtotal, 4.65 product, 4.65 check, 37.2 net
	want := OrderTotals{Subtotal: 206.5, ProductDiscount: 24.65, CheckDiscount: 20.65, NetTotal: 161.2}
	if math.Abs(got.Subtotal-want.Subtotal) > 0.0001 {
		t.Errorf("Subtotal = %v, want %v", got.Subtotal, want.Subtotal)
	}
	if math.Abs(got.ProductDiscount-want.ProductDiscount) > 0.0001 {
		t.Errorf("ProductDiscount = %v, want %v", got.ProductDiscount, want.ProductDiscount)
	}
	if math.Abs(got.CheckDiscount-want.CheckDiscount) > 0.0001 {
		t.Errorf("CheckDiscount = %v, want %v", got.CheckDiscount, want.CheckDiscount)
	}
	if math.Abs(got.NetTotal-want.NetTotal) > 0.0001 {
		t.Errorf("NetTotal = %v, want %v", got.NetTotal, want.NetTotal)
	}
}

func TestComputeOrderTotals_Consistent(t *testing.T) {
	tests := []struct {
		name     string
		lines    []models.OrderLine
		checkPct float64
	}{
		{name: "empty order", checkPct: 15},
		{
			name: "mixed discounts",
			lines: []models.OrderLine{
				{UnitPrice: 9.99, Quantity: 3, DiscountPercent: 12.5},
				{UnitPrice: 4.2, Quantity: 1},
			},
			checkPct: 7,
		},
		{
			name: "discounts exceeding the price",
			lines: []models.OrderLine{
				{UnitPrice: 20, Quantity: 2, DiscountPercent: 90},
				{UnitPrice: 5, Quantity: 1, DiscountPercent: 100},
			},
			checkPct: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeOrderTotals(tt.lines, tt.checkPct)
			derived := got.Subtotal - got.ProductDiscount - got.CheckDiscount
			if math.Abs(got.NetTotal-derived) > 0.0001 {
				t.Errorf("NetTotal = %v, want Subtotal - discounts = %v", got.NetTotal, derived)
			}

			var sum float64
			for _, l := range tt.lines {
				sum += ComputeLineTotal(l.UnitPrice, l.Quantity, l.DiscountPercent, tt.checkPct)
			}
			if math.Abs(got.NetTotal-sum) > 0.0001 {
				t.Errorf("NetTotal = %v, want sum of line totals %v", got.NetTotal, sum)
			}
		})
	}
}

func TestClampPercentAndRoundMoney(t *testing.T) {
	if got := ClampPercent(-1); got != 0 {
		t.Errorf("ClampPercent(-1) = %v, want 0", got)
	}
	if got := ClampPercent(101); got != 100 {
		t.Errorf("ClampPercent(101) = %v, want 100", got)
	}
	if got := ClampPercent(42.5); got != 42.5 {
		t.Errorf("ClampPercent(42.5) = %v, want 42.5", got)
	}
	for _, p := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := ClampPercent(p); got != 0 {
			t.Errorf("ClampPercent(%v) = %v, want 0", p, got)
		}
		if got := RoundMoney(p); got != 0 {
			t.Errorf("RoundMoney(%v) = %v, want 0", p, got)
		}
	}
	if got := ComputeLineTotal(10, 2, math.NaN(), math.Inf(1)); got != 20 {
		t.Errorf("line total with NaN discount = %v, want 20", got)
	}
	if got := RoundMoney(0.1 + 0.2); got != 0.3 {
		t.Errorf("RoundMoney(0.1+0.2) = %v, want 0.3", got)
	}
	if got := RoundMoney(2.675); got != 2.68 {
		t.Errorf("RoundMoney(2.675) = %v, want 2.68", got)
	}
}
