package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

// userSelect never includes password_hash; GetByEmail adds it explicitly.
const userSelect = `
	SELECT id, name, email, COALESCE(phone,''), COALESCE(image,''), email_verified,
	       role, COALESCE(provider,''), created_at, updated_at
	FROM users`

func scanUser(s rowScanner, extra ...any) (models.User, error) {
	var u models.User
	dest := []any{&u.ID, &u.Name, &u.Email, &u.Phone, &u.Image, &u.EmailVerified,
		&u.Role, &u.Provider, &u.CreatedAt, &u.UpdatedAt}
	err := s.Scan(append(dest, extra...)...)
	return u, err
}

func (r UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx, userSelect+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, userSelect+` WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.User{}, notFoundOr(err, "get user")
	}
	return u, nil
}

// GetByEmail loads the user together with the password hash for login.
func (r UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var hash string
	query := `
		SELECT id, name, email, COALESCE(phone,''), COALESCE(image,''), email_verified,
		       role, COALESCE(provider,''), created_at, updated_at, COALESCE(password_hash,'')
		FROM users WHERE email = ? LIMIT 1`
	u, err := scanUser(r.DB.QueryRowContext(ctx, query, email), &hash)
	if err != nil {
		return models.User{}, notFoundOr(err, "get user by email")
	}
	u.PasswordHash = hash
	return u, nil
}

func (r UserRepository) Create(ctx context.Context, u models.User) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO users (id, name, email, phone, image, email_verified, role, provider,
		                   password_hash, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		u.ID, u.Name, u.Email, intdb.NullIfEmpty(u.Phone), intdb.NullIfEmpty(u.Image),
		u.EmailVerified, u.Role, intdb.NullIfEmpty(u.Provider), intdb.NullIfEmpty(u.PasswordHash),
		u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return writeErr(err, "insert user")
	}
	return nil
}

func (r UserRepository) UpdateRole(ctx context.Context, id string, role models.UserRole, now time.Time) error {
	return execOne(ctx, r.DB, "update user role",
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`, role, now, id)
}

func (r UserRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.DB, "delete user", `DELETE FROM users WHERE id = ?`, id)
}
