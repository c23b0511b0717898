// Package pricing computes order totals and holds the cart value object the
// till builds before submitting an order.
package pricing

import "github.com/shopspring/decimal"

var (
	// TaxRate is the flat HST rate applied to every order.
	TaxRate = decimal.RequireFromString("0.13")

	// Tolerance is the accepted difference between two computations of the
	// same total, e.g. the till's figure and the server's.
	Tolerance = decimal.RequireFromString("0.01")
)

type Line struct {
	ItemID   int64
	Price    decimal.Decimal
	Quantity int
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Compute sums price × quantity and applies TaxRate at full precision.
func Compute(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// Rounded returns the receipt form: subtotal and tax rounded to cents, and a
// total that is their exact sum.
func (t Totals) Rounded() Totals {
	subtotal := t.Subtotal.Round(2)
	tax := t.Tax.Round(2)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}
