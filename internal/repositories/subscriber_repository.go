package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"backoffice/internal/domain/models"
)

type SubscriberRepository struct {
	DB *sql.DB
}

func (r SubscriberRepository) List(ctx context.Context) ([]models.Subscriber, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, email, created_at FROM subscribers ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	out := []models.Subscriber{}
	for rows.Next() {
		var s models.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create returns ErrDuplicate when the email is already subscribed.
func (r SubscriberRepository) Create(ctx context.Context, s models.Subscriber) error {
	_, err := r.DB.ExecContext(ctx, `INSERT INTO subscribers (id, email, created_at) VALUES (?,?,?)`,
		s.ID, s.Email, s.CreatedAt)
	if err != nil {
		return writeErr(err, "insert subscriber")
	}
	return nil
}

func (r SubscriberRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.DB, "delete subscriber", `DELETE FROM subscribers WHERE id = ?`, id)
}
