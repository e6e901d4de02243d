package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

type BlogInput struct {
	Title    string                `json:"title"`
	Slug     string                `json:"slug"`
	Excerpt  string                `json:"excerpt"`
	Image    string                `json:"image"`
	Author   string                `json:"author"`
	ReadTime string                `json:"readTime"`
	Category string                `json:"category"`
	Featured bool                  `json:"featured"`
	Content  []models.ContentBlock `json:"content"`
}

type BlogService struct {
	Blogs BlogStore
	Views ViewCache
	Now   func() time.Time
}

func (s BlogService) views() ViewCache {
	if s.Views != nil {
		return s.Views
	}
	return noViews{}
}

func (in BlogInput) normalize() (BlogInput, error) {
	if err := firstErr(required("title", in.Title), required("author", in.Author)); err != nil {
		return in, err
	}
	in.Title = utils.NormalizeSpace(in.Title)
	in.Slug = utils.Slugify(in.Slug)
	if in.Slug == "" {
		in.Slug = utils.Slugify(in.Title)
	}
	if in.Slug == "" {
		return in, domain.ValidationError{Field: "slug", Msg: "is required"}
	}

	blocks := make([]models.ContentBlock, 0, len(in.Content))
	for i, b := range in.Content {
		if err := validateBlock(i, b); err != nil {
			return in, err
		}
		if b.Type != models.BlockSubheading {
			b.Level = 0
		}
		if b.Type != models.BlockCode {
			b.Language = ""
		}
		if b.Type != models.BlockImage {
			b.Caption = ""
		}
		blocks = append(blocks, b)
	}
	in.Content = blocks
	return in, nil
}

func validateBlock(i int, b models.ContentBlock) error {
	field := fmt.Sprintf("content[%d]", i)
	if !b.Type.Valid() {
		return domain.ValidationError{Field: field + ".type", Msg: "invalid block type"}
	}
	if strings.TrimSpace(b.Content) == "" {
		return domain.ValidationError{Field: field + ".content", Msg: "is required"}
	}
	if b.Type == models.BlockSubheading && (b.Level < 1 || b.Level > 6) {
		return domain.ValidationError{Field: field + ".level", Msg: "must be between 1 and 6"}
	}
	return nil
}

func (in BlogInput) apply(b *models.Blog) {
	b.Title = in.Title
	b.Slug = in.Slug
	b.Excerpt = strings.TrimSpace(in.Excerpt)
	b.Image = strings.TrimSpace(in.Image)
	b.Author = utils.NormalizeSpace(in.Author)
	b.ReadTime = strings.TrimSpace(in.ReadTime)
	b.Category = strings.TrimSpace(in.Category)
	b.Featured = in.Featured
	b.Content = in.Content
}

func (s BlogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	var cached []models.Blog
	slot, hit := s.views().Load(ctx, "blogs", "all", &cached)
	if hit {
		return cached, nil
	}
	list, err := s.Blogs.List(ctx)
	if err != nil {
		return nil, storeErr(ctx, "blogs", "list", "blog", err, "failed to list blogs")
	}
	s.views().Store(ctx, slot, list)
	return list, nil
}

func (s BlogService) GetBlog(ctx context.Context, id string) (models.Blog, error) {
	blogID, err := parseID("id", id)
	if err != nil {
		return models.Blog{}, err
	}
	b, err := s.Blogs.GetByID(ctx, blogID)
	if err != nil {
		return models.Blog{}, storeErr(ctx, "blogs", "get", "blog", err, "failed to load blog")
	}
	return b, nil
}

func (s BlogService) CreateBlog(ctx context.Context, in BlogInput) (models.Blog, error) {
	in, err := in.normalize()
	if err != nil {
		return models.Blog{}, err
	}
	now := nowOr(s.Now)
	b := models.Blog{ID: newID(), CreatedAt: now, UpdatedAt: now}
	in.apply(&b)

	if err := s.Blogs.Create(ctx, b); err != nil {
		return models.Blog{}, storeErr(ctx, "blogs", "create", "blog", err, "failed to create blog")
	}
	utils.LogEvent(ctx, "blogs", "create", fmt.Sprintf("blog_id=%s slug=%s blocks=%d", b.ID, b.Slug, len(b.Content)))
	s.views().InvalidatePaths(ctx, "/blogs")
	return b, nil
}

func (s BlogService) UpdateBlog(ctx context.Context, id string, in BlogInput) (models.Blog, error) {
	blogID, err := parseID("id", id)
	if err != nil {
		return models.Blog{}, err
	}
	in, err = in.normalize()
	if err != nil {
		return models.Blog{}, err
	}
	b, err := s.Blogs.GetByID(ctx, blogID)
	if err != nil {
		return models.Blog{}, storeErr(ctx, "blogs", "update", "blog", err, "failed to load blog")
	}
	in.apply(&b)
	b.UpdatedAt = nowOr(s.Now)

	if err := s.Blogs.Update(ctx, b); err != nil {
		return models.Blog{}, storeErr(ctx, "blogs", "update", "blog", err, "failed to update blog")
	}
	s.views().InvalidatePaths(ctx, "/blogs", "/blogs/"+b.ID)
	return b, nil
}

func (s BlogService) DeleteBlog(ctx context.Context, id string) error {
	blogID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.Blogs.Delete(ctx, blogID); err != nil {
		return storeErr(ctx, "blogs", "delete", "blog", err, "failed to delete blog")
	}
	s.views().InvalidatePaths(ctx, "/blogs", "/blogs/"+blogID)
	return nil
}
