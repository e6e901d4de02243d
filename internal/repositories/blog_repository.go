package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "backoffice/internal/db"
	"backoffice/internal/domain/models"
)

type BlogRepository struct {
	DB *sql.DB
}

const blogSelect = `
	SELECT id, title, slug, COALESCE(excerpt,''), COALESCE(image,''), COALESCE(author,''),
	       COALESCE(read_time,''), COALESCE(category,''), featured, content,
	       created_at, updated_at
	FROM blogs`

func scanBlog(s rowScanner) (models.Blog, error) {
	var (
		b       models.Blog
		content []byte
	)
	if err := s.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Image, &b.Author,
		&b.ReadTime, &b.Category, &b.Featured, &content, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return models.Blog{}, err
	}
	b.Content = []models.ContentBlock{}
	if err := intdb.DecodeJSON(content, &b.Content); err != nil {
		return models.Blog{}, err
	}
	return b, nil
}

func (r BlogRepository) List(ctx context.Context) ([]models.Blog, error) {
	rows, err := r.DB.QueryContext(ctx, blogSelect+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}
	defer rows.Close()

	out := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan blog: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BlogRepository) GetByID(ctx context.Context, id string) (models.Blog, error) {
	b, err := scanBlog(r.DB.QueryRowContext(ctx, blogSelect+` WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return models.Blog{}, notFoundOr(err, "get blog")
	}
	return b, nil
}

func (r BlogRepository) Create(ctx context.Context, b models.Blog) error {
	content, err := intdb.EncodeJSON(b.Content)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO blogs (id, title, slug, excerpt, image, author, read_time, category,
		                   featured, content, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		b.ID, b.Title, b.Slug, intdb.NullIfEmpty(b.Excerpt), intdb.NullIfEmpty(b.Image),
		intdb.NullIfEmpty(b.Author), intdb.NullIfEmpty(b.ReadTime), intdb.NullIfEmpty(b.Category),
		b.Featured, content, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return writeErr(err, "insert blog")
	}
	return nil
}

func (r BlogRepository) Update(ctx context.Context, b models.Blog) error {
	content, err := intdb.EncodeJSON(b.Content)
	if err != nil {
		return err
	}
	return execOne(ctx, r.DB, "update blog", `
		UPDATE blogs
		SET title = ?, slug = ?, excerpt = ?, image = ?, author = ?, read_time = ?,
		    category = ?, featured = ?, content = ?, updated_at = ?
		WHERE id = ?`,
		b.Title, b.Slug, intdb.NullIfEmpty(b.Excerpt), intdb.NullIfEmpty(b.Image),
		intdb.NullIfEmpty(b.Author), intdb.NullIfEmpty(b.ReadTime), intdb.NullIfEmpty(b.Category),
		b.Featured, content, b.UpdatedAt, b.ID)
}

func (r BlogRepository) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.DB, "delete blog", `DELETE FROM blogs WHERE id = ?`, id)
}
