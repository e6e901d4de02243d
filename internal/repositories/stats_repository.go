package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// StatsRepository runs the aggregate queries behind the dashboard counters.
// Each method is a single independent statement.
type StatsRepository struct {
	DB *sql.DB
}

func (r StatsRepository) CountOrders(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r StatsRepository) CountOrdersByStatus(ctx context.Context, status models.OrderStatus) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders WHERE status = ?`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders by status: %w", err)
	}
	return n, nil
}

// SumOrderAmounts totals total_amount over orders with the given payment
// status. No matching rows yields 0.
func (r StatsRepository) SumOrderAmounts(ctx context.Context, status models.PaymentStatus) (float64, error) {
	var sum float64
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE payment_status = ?`, status).Scan(&sum); err != nil {
		return 0, fmt.Errorf("sum order amounts: %w", err)
	}
	return sum, nil
}

func (r StatsRepository) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r StatsRepository) CountFeaturedProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE featured = 1`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count featured products: %w", err)
	}
	return n, nil
}

// CountProductsByCategory is sorted by count, highest first.
func (r StatsRepository) CountProductsByCategory(ctx context.Context) ([]domain.CountByKey, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT category, COUNT(*) AS cnt
		FROM products
		GROUP BY category
		ORDER BY cnt DESC, category`)
	if err != nil {
		return nil, fmt.Errorf("count products by category: %w", err)
	}
	defer rows.Close()

	out := []domain.CountByKey{}
	for rows.Next() {
		var c domain.CountByKey
		if err := rows.Scan(&c.Key, &c.Count); err != nil {
			return nil, fmt.Errorf("scan category count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r StatsRepository) CountProductsByFeatured(ctx context.Context) ([]models.FeaturedCount, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT featured, COUNT(*) AS cnt
		FROM products
		GROUP BY featured
		ORDER BY featured DESC`)
	if err != nil {
		return nil, fmt.Errorf("count products by featured: %w", err)
	}
	defer rows.Close()

	out := []models.FeaturedCount{}
	for rows.Next() {
		var c models.FeaturedCount
		if err := rows.Scan(&c.Featured, &c.Count); err != nil {
			return nil, fmt.Errorf("scan featured count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ProductPriceSummary returns avg/min/max price, all 0 on an empty table.
func (r StatsRepository) ProductPriceSummary(ctx context.Context) (models.PriceSummary, error) {
	var s models.PriceSummary
	err := r.DB.QueryRowContext(ctx, `
		SELECT COALESCE(AVG(price), 0), COALESCE(MIN(price), 0), COALESCE(MAX(price), 0)
		FROM products`).Scan(&s.Average, &s.Min, &s.Max)
	if err != nil {
		return models.PriceSummary{}, fmt.Errorf("product price summary: %w", err)
	}
	return s, nil
}
