package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
)

type TestimonialRepository struct {
	DB *sql.DB
}

const testimonialSelect = `
	SELECT id, name, COALESCE(location,''), rating, COALESCE(title,''), comment,
	       COALESCE(image,''), COALESCE(destination,''), COALESCE(date,''),
	       verified, created_at, updated_at
	FROM testimonials`

func scanTestimonial(s rowScanner) (models.Testimonial, error) {
	var t models.Testimonial
	err := s.Scan(&t.ID, &t.Name, &t.Location, &t.Rating, &t.Title, &t.Comment,
		&t.Image, &t.Destination, &t.Date, &t.Verified, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	rows, err := r.DB.QueryContext(ctx, testimonialSelect+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	out := []models.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TestimonialRepository) GetByID(ctx context.Context, id string) (models.Testimonial, error) {
	t, err := scanTestimonial(r.DB.QueryRowContext(ctx, testimonialSelect+` WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.Testimonial{}, notFoundOr(err, "get testimonial")
	}
	return t, nil
}

func (r TestimonialRepository) Create(ctx context.Context, t models.Testimonial) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO testimonials (id, name, location, rating, title, comment, image,
		                          destination, date, verified, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		t.ID, t.Name, intdb.NullIfEmpty(t.Location), t.Rating, intdb.NullIfEmpty(t.Title), t.Comment,
		intdb.NullIfEmpty(t.Image), intdb.NullIfEmpty(t.Destination), intdb.NullIfEmpty(t.Date),
		t.Verified, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert testimonial: %w", err)
	}
	return nil
}

func (r TestimonialRepository) Update(ctx context.Context, t models.Testimonial) error {
	return execOne(ctx, r.DB, "update testimonial", `
		UPDATE testimonials
		SET name = ?, location = ?, rating = ?, title = ?, comment = ?, image = ?,
		    destination = ?, date = ?, verified = ?, updated_at = ?
		WHERE id = ?`,
		t.Name, intdb.NullIfEmpty(t.Location), t.Rating, intdb.NullIfEmpty(t.Title), t.Comment,
		intdb.NullIfEmpty(t.Image), intdb.NullIfEmpty(t.Destination), intdb.NullIfEmpty(t.Date),
		t.Verified, t.UpdatedAt, t.ID)
}

func (r TestimonialRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.DB, "delete testimonial", `DELETE FROM testimonials WHERE id = ?`, id)
}
