package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
)

type ProductRepository struct {
	DB *sql.DB
}

// ProductQuery narrows List. Category matches exactly and case-sensitively.
type ProductQuery struct {
	Category models.ProductCategory
	Featured *bool
}

const productSelect = `
	SELECT id, name, location, price, original_price, rating, reviews,
	       COALESCE(duration,''), category, trip_type, COALESCE(image,''),
	       featured, discount, highlights, COALESCE(group_size,''), difficulty,
	       available_dates, inclusions, exclusions, itinerary, is_community_trip,
	       created_at, updated_at
	FROM products`

func scanProduct(s rowScanner) (models.Product, error) {
	var (
		p                                         models.Product
		highlights, dates, incl, excl, itinerary []byte
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Location, &p.Price, &p.OriginalPrice, &p.Rating, &p.Reviews,
		&p.Duration, &p.Category, &p.TripType, &p.Image,
		&p.Featured, &p.Discount, &highlights, &p.GroupSize, &p.Difficulty,
		&dates, &incl, &excl, &itinerary, &p.IsCommunityTrip,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		return models.Product{}, err
	}
	p.Highlights, p.AvailableDates, p.Inclusions, p.Exclusions, p.Itinerary = []string{}, []string{}, []string{}, []string{}, []string{}
	for _, col := range []struct {
		raw []byte
		dst *[]string
	}{
		{highlights, &p.Highlights},
		{dates, &p.AvailableDates},
		{incl, &p.Inclusions},
		{excl, &p.Exclusions},
		{itinerary, &p.Itinerary},
	} {
		if err := intdb.DecodeJSON(col.raw, col.dst); err != nil {
			return models.Product{}, err
		}
	}
	return p, nil
}

func productArgs(p models.Product) ([]any, error) {
	lists := make([]string, 0, 5)
	for _, l := range [][]string{p.Highlights, p.AvailableDates, p.Inclusions, p.Exclusions, p.Itinerary} {
		enc, err := intdb.EncodeJSON(l)
		if err != nil {
			return nil, err
		}
		lists = append(lists, enc)
	}
	return []any{
		p.Name, p.Location, p.Price, p.OriginalPrice, p.Rating, p.Reviews,
		intdb.NullIfEmpty(p.Duration), p.Category, p.TripType, intdb.NullIfEmpty(p.Image),
		p.Featured, p.Discount, lists[0], intdb.NullIfEmpty(p.GroupSize), p.Difficulty,
		lists[1], lists[2], lists[3], lists[4], p.IsCommunityTrip,
	}, nil
}

func (r ProductRepository) Create(ctx context.Context, p models.Product) error {
	args, err := productArgs(p)
	if err != nil {
		return err
	}
	args = append([]any{p.ID}, args...)
	args = append(args, p.CreatedAt, p.UpdatedAt)
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO products (id, name, location, price, original_price, rating, reviews,
		                      duration, category, trip_type, image, featured, discount,
		                      highlights, group_size, difficulty, available_dates,
		                      inclusions, exclusions, itinerary, is_community_trip,
		                      created_at, updated_at)
		VALUES (`+intdb.Placeholders(23)+`)`, args...)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update rewrites every mutable column of an existing product.
func (r ProductRepository) Update(ctx context.Context, p models.Product) error {
	args, err := productArgs(p)
	if err != nil {
		return err
	}
	args = append(args, p.UpdatedAt, p.ID)
	return execOne(ctx, r.DB, "update product", `
		UPDATE products
		SET name = ?, location = ?, price = ?, original_price = ?, rating = ?, reviews = ?,
		    duration = ?, category = ?, trip_type = ?, image = ?, featured = ?, discount = ?,
		    highlights = ?, group_size = ?, difficulty = ?, available_dates = ?,
		    inclusions = ?, exclusions = ?, itinerary = ?, is_community_trip = ?,
		    updated_at = ?
		WHERE id = ?`, args...)
}

func (r ProductRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.DB, "delete product", `DELETE FROM products WHERE id = ?`, id)
}

func (r ProductRepository) GetByID(ctx context.Context, id string) (models.Product, error) {
	p, err := scanProduct(r.DB.QueryRowContext(ctx, productSelect+` WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.Product{}, notFoundOr(err, "get product")
	}
	return p, nil
}

// List returns products newest first.
func (r ProductRepository) List(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	where := ""
	args := []any{}
	if q.Category != "" {
		where = ` WHERE category = ?`
		args = append(args, q.Category)
	}
	if q.Featured != nil {
		if where == "" {
			where = ` WHERE featured = ?`
		} else {
			where += ` AND featured = ?`
		}
		args = append(args, *q.Featured)
	}

	rows, err := r.DB.QueryContext(ctx, productSelect+where+` ORDER BY created_at DESC, id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
