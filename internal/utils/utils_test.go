package utils

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{1234567, "₹12,34,567"},
		{2500.5, "₹2,500.50"},
		{-45000, "-₹45,000"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.in), "amount %v", tc.in)
	}
}

func TestMoneyEqual(t *testing.T) {
	a := decimal.NewFromFloat(0.1).Add(decimal.NewFromFloat(0.2))
	assert.True(t, MoneyEqual(a, decimal.NewFromFloat(0.3)))
	assert.False(t, MoneyEqual(a, decimal.NewFromFloat(0.31)))
}

func TestGetPagination(t *testing.T) {
	page, limit, skip := GetPagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageLimit, limit)
	assert.Equal(t, 0, skip)

	page, limit, skip = GetPagination(3, 500)
	assert.Equal(t, 3, page)
	assert.Equal(t, MaxPageLimit, limit)
	assert.Equal(t, 200, skip)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(21, 10))
}

func TestSlugifyAndEmail(t *testing.T) {
	assert.Equal(t, "best-beaches-in-goa-2025", Slugify("  Best Beaches in Goa (2025)! "))
	assert.True(t, LooksLikeEmail("a@b.co"))
	assert.False(t, LooksLikeEmail("a@b"))
	assert.False(t, LooksLikeEmail("@b.co"))
	assert.Equal(t, "a@b.co", NormalizeEmail(" A@B.co "))
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	assert.Equal(t, "", RequestIDFrom(context.Background()))
}
