package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
)

type ContactRepository struct {
	DB *sql.DB
}

const contactSelect = `
	SELECT id, name, email, COALESCE(phone,''), COALESCE(subject,''), message,
	       COALESCE(travel_type,''), created_at
	FROM contacts`

func scanContact(s rowScanner) (models.Contact, error) {
	var c models.Contact
	err := s.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.TravelType, &c.CreatedAt)
	return c, err
}

func (r ContactRepository) Create(ctx context.Context, c models.Contact) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO contacts (id, name, email, phone, subject, message, travel_type, created_at)
		VALUES (?,?,?,?,?,?,?,?)`,
		c.ID, c.Name, c.Email, intdb.NullIfEmpty(c.Phone), intdb.NullIfEmpty(c.Subject),
		c.Message, intdb.NullIfEmpty(c.TravelType), c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact: %w", err)
	}
	return nil
}

// List returns submissions newest first.
func (r ContactRepository) List(ctx context.Context) ([]models.Contact, error) {
	rows, err := r.DB.QueryContext(ctx, contactSelect+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	out := []models.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ContactRepository) GetByID(ctx context.Context, id string) (models.Contact, error) {
	c, err := scanContact(r.DB.QueryRowContext(ctx, contactSelect+` WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.Contact{}, notFoundOr(err, "get contact")
	}
	return c, nil
}

func (r ContactRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.DB, "delete contact", `DELETE FROM contacts WHERE id = ?`, id)
}
