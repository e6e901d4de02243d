package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount as ₹ with Indian digit grouping (12,34,567).
// Fractions are shown only when non-zero.
func FormatINR(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	whole := d.Truncate(0)
	frac := d.Sub(whole)

	out := sign + "₹" + groupIndian(whole.String())
	if !frac.IsZero() {
		out += "." + strings.TrimPrefix(frac.StringFixed(2), "0.")
	}
	return out
}

// MoneyEqual compares two amounts at paise precision.
func MoneyEqual(a, b decimal.Decimal) bool {
	return a.Round(2).Equal(b.Round(2))
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	return strings.Join(parts, ",") + "," + tail
}
