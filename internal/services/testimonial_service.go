package services

import (
	"context"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

type TestimonialInput struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Rating      int    `json:"rating"`
	Title       string `json:"title"`
	Comment     string `json:"comment"`
	Image       string `json:"image"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	Verified    bool   `json:"verified"`
}

type TestimonialService struct {
	Testimonials TestimonialStore
	Views        ViewCache
	Now          func() time.Time
}

func (s TestimonialService) views() ViewCache {
	if s.Views != nil {
		return s.Views
	}
	return noViews{}
}

func (in TestimonialInput) validate() error {
	if err := firstErr(required("name", in.Name), required("comment", in.Comment)); err != nil {
		return err
	}
	if in.Rating < 1 || in.Rating > 5 {
		return domain.ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}
	return nil
}

func (in TestimonialInput) apply(t *models.Testimonial) {
	t.Name = utils.NormalizeSpace(in.Name)
	t.Location = utils.NormalizeSpace(in.Location)
	t.Rating = in.Rating
	t.Title = strings.TrimSpace(in.Title)
	t.Comment = strings.TrimSpace(in.Comment)
	t.Image = strings.TrimSpace(in.Image)
	t.Destination = strings.TrimSpace(in.Destination)
	t.Date = strings.TrimSpace(in.Date)
	t.Verified = in.Verified
}

func (s TestimonialService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var cached []models.Testimonial
	slot, hit := s.views().Load(ctx, "testimonials", "all", &cached)
	if hit {
		return cached, nil
	}
	list, err := s.Testimonials.List(ctx)
	if err != nil {
		return nil, storeErr(ctx, "testimonials", "list", "testimonial", err, "failed to list testimonials")
	}
	s.views().Store(ctx, slot, list)
	return list, nil
}

func (s TestimonialService) GetTestimonial(ctx context.Context, id string) (models.Testimonial, error) {
	tid, err := parseID("id", id)
	if err != nil {
		return models.Testimonial{}, err
	}
	t, err := s.Testimonials.GetByID(ctx, tid)
	if err != nil {
		return models.Testimonial{}, storeErr(ctx, "testimonials", "get", "testimonial", err, "failed to load testimonial")
	}
	return t, nil
}

func (s TestimonialService) CreateTestimonial(ctx context.Context, in TestimonialInput) (models.Testimonial, error) {
	if err := in.validate(); err != nil {
		return models.Testimonial{}, err
	}
	now := nowOr(s.Now)
	t := models.Testimonial{ID: newID(), CreatedAt: now, UpdatedAt: now}
	in.apply(&t)

	if err := s.Testimonials.Create(ctx, t); err != nil {
		return models.Testimonial{}, storeErr(ctx, "testimonials", "create", "testimonial", err, "failed to create testimonial")
	}
	s.views().InvalidatePaths(ctx, "/testimonials")
	return t, nil
}

func (s TestimonialService) UpdateTestimonial(ctx context.Context, id string, in TestimonialInput) (models.Testimonial, error) {
	tid, err := parseID("id", id)
	if err != nil {
		return models.Testimonial{}, err
	}
	if err := in.validate(); err != nil {
		return models.Testimonial{}, err
	}
	t, err := s.Testimonials.GetByID(ctx, tid)
	if err != nil {
		return models.Testimonial{}, storeErr(ctx, "testimonials", "update", "testimonial", err, "failed to load testimonial")
	}
	in.apply(&t)
	t.UpdatedAt = nowOr(s.Now)

	if err := s.Testimonials.Update(ctx, t); err != nil {
		return models.Testimonial{}, storeErr(ctx, "testimonials", "update", "testimonial", err, "failed to update testimonial")
	}
	s.views().InvalidatePaths(ctx, "/testimonials")
	return t, nil
}

func (s TestimonialService) DeleteTestimonial(ctx context.Context, id string) error {
	tid, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.Testimonials.Delete(ctx, tid); err != nil {
		return storeErr(ctx, "testimonials", "delete", "testimonial", err, "failed to delete testimonial")
	}
	s.views().InvalidatePaths(ctx, "/testimonials")
	return nil
}
