package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
)

type OfferRepository struct {
	DB *sql.DB
}

const offerSelect = `
	SELECT id, title, COALESCE(subtitle,''), discount, type, code, valid_until,
	       COALESCE(image,''), COALESCE(icon,''), COALESCE(color,''),
	       COALESCE(description,''), is_active, created_at, updated_at
	FROM offers`

func scanOffer(s rowScanner) (models.Offer, error) {
	var o models.Offer
	err := s.Scan(&o.ID, &o.Title, &o.Subtitle, &o.Discount, &o.Type, &o.Code, &o.ValidUntil,
		&o.Image, &o.Icon, &o.Color, &o.Description, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	return o, err
}

func (r OfferRepository) List(ctx context.Context) ([]models.Offer, error) {
	rows, err := r.DB.QueryContext(ctx, offerSelect+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	out := []models.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r OfferRepository) GetByID(ctx context.Context, id string) (models.Offer, error) {
	o, err := scanOffer(r.DB.QueryRowContext(ctx, offerSelect+` WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.Offer{}, notFoundOr(err, "get offer")
	}
	return o, nil
}

func (r OfferRepository) Create(ctx context.Context, o models.Offer) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO offers (id, title, subtitle, discount, type, code, valid_until, image,
		                    icon, color, description, is_active, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		o.ID, o.Title, intdb.NullIfEmpty(o.Subtitle), o.Discount, o.Type, o.Code, o.ValidUntil,
		intdb.NullIfEmpty(o.Image), intdb.NullIfEmpty(o.Icon), intdb.NullIfEmpty(o.Color),
		intdb.NullIfEmpty(o.Description), o.IsActive, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return writeErr(err, "insert offer")
	}
	return nil
}

func (r OfferRepository) Update(ctx context.Context, o models.Offer) error {
	return execOne(ctx, r.DB, "update offer", `
		UPDATE offers
		SET title = ?, subtitle = ?, discount = ?, type = ?, code = ?, valid_until = ?,
		    image = ?, icon = ?, color = ?, description = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		o.Title, intdb.NullIfEmpty(o.Subtitle), o.Discount, o.Type, o.Code, o.ValidUntil,
		intdb.NullIfEmpty(o.Image), intdb.NullIfEmpty(o.Icon), intdb.NullIfEmpty(o.Color),
		intdb.NullIfEmpty(o.Description), o.IsActive, o.UpdatedAt, o.ID)
}

func (r OfferRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.DB, "delete offer", `DELETE FROM offers WHERE id = ?`, id)
}
