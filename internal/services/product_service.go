package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// ProductInput is used for both create and partial update; nil fields are
// left untouched on update.
type ProductInput struct {
	Name            *string   `json:"name"`
	Location        *string   `json:"location"`
	Price           *float64  `json:"price"`
	OriginalPrice   *float64  `json:"originalPrice"`
	Rating          *float64  `json:"rating"`
	Reviews         *int      `json:"reviews"`
	Duration        *string   `json:"duration"`
	Category        *string   `json:"category"`
	TripType        *string   `json:"tripType"`
	Image           *string   `json:"image"`
	Featured        *bool     `json:"featured"`
	Discount        *int      `json:"discount"`
	Highlights      *[]string `json:"highlights"`
	GroupSize       *string   `json:"groupSize"`
	Difficulty      *string   `json:"difficulty"`
	AvailableDates  *[]string `json:"availableDates"`
	Inclusions      *[]string `json:"inclusions"`
	Exclusions      *[]string `json:"exclusions"`
	Itinerary       *[]string `json:"itinerary"`
	IsCommunityTrip *bool     `json:"isCommunityTrip"`
}

type ProductService struct {
	Products ProductStore
	Stats    StatsStore
	Views    ViewCache
	Now      func() time.Time
}

func (s ProductService) views() ViewCache {
	if s.Views != nil {
		return s.Views
	}
	return noViews{}
}

func (s ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.list(ctx, "all", repositories.ProductQuery{})
}

func (s ProductService) ListFeatured(ctx context.Context) ([]models.Product, error) {
	featured := true
	return s.list(ctx, "featured", repositories.ProductQuery{Featured: &featured})
}

// ListByCategory matches the category exactly, case included.
func (s ProductService) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, domain.ValidationError{Field: "category", Msg: "is required"}
	}
	return s.list(ctx, "category:"+category, repositories.ProductQuery{Category: models.ProductCategory(category)})
}

func (s ProductService) list(ctx context.Context, key string, q repositories.ProductQuery) ([]models.Product, error) {
	var cached []models.Product
	slot, hit := s.views().Load(ctx, "products", key, &cached)
	if hit {
		return cached, nil
	}
	list, err := s.Products.List(ctx, q)
	if err != nil {
		return nil, storeErr(ctx, "products", "list", "product", err, "failed to list products")
	}
	s.views().Store(ctx, slot, list)
	return list, nil
}

func (s ProductService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	productID, err := parseID("id", id)
	if err != nil {
		return models.Product{}, err
	}
	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return models.Product{}, storeErr(ctx, "products", "get", "product", err, "failed to load product")
	}
	return p, nil
}

func (s ProductService) CreateProduct(ctx context.Context, in ProductInput) (models.Product, error) {
	switch {
	case in.Name == nil || strings.TrimSpace(*in.Name) == "":
		return models.Product{}, domain.ValidationError{Field: "name", Msg: "is required"}
	case in.Location == nil || strings.TrimSpace(*in.Location) == "":
		return models.Product{}, domain.ValidationError{Field: "location", Msg: "is required"}
	case in.Price == nil:
		return models.Product{}, domain.ValidationError{Field: "price", Msg: "is required"}
	case in.OriginalPrice == nil:
		return models.Product{}, domain.ValidationError{Field: "originalPrice", Msg: "is required"}
	case in.Category == nil || strings.TrimSpace(*in.Category) == "":
		return models.Product{}, domain.ValidationError{Field: "category", Msg: "is required"}
	}

	now := nowOr(s.Now)
	p := models.Product{
		ID:             newID(),
		TripType:       models.TripDomestic,
		Difficulty:     models.DifficultyEasy,
		Highlights:     []string{},
		AvailableDates: []string{},
		Inclusions:     []string{},
		Exclusions:     []string{},
		Itinerary:      []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := applyProductInput(&p, in); err != nil {
		return models.Product{}, err
	}
	if in.Discount == nil {
		p.Discount = deriveDiscount(p.Price, p.OriginalPrice)
	}

	if err := s.Products.Create(ctx, p); err != nil {
		return models.Product{}, storeErr(ctx, "products", "create", "product", err, "failed to create product")
	}
	utils.LogEvent(ctx, "products", "create", fmt.Sprintf("product_id=%s category=%s", p.ID, p.Category))
	s.views().InvalidatePaths(ctx, "/products")
	return p, nil
}

func (s ProductService) UpdateProduct(ctx context.Context, id string, in ProductInput) (models.Product, error) {
	productID, err := parseID("id", id)
	if err != nil {
		return models.Product{}, err
	}
	p, err := s.Products.GetByID(ctx, productID)
	if err != nil {
		return models.Product{}, storeErr(ctx, "products", "update", "product", err, "failed to load product")
	}
	if err := applyProductInput(&p, in); err != nil {
		return models.Product{}, err
	}
	p.UpdatedAt = nowOr(s.Now)

	if err := s.Products.Update(ctx, p); err != nil {
		return models.Product{}, storeErr(ctx, "products", "update", "product", err, "failed to update product")
	}
	utils.LogEvent(ctx, "products", "update", "product_id="+p.ID)
	s.views().InvalidatePaths(ctx, "/products", "/products/"+p.ID)
	return p, nil
}

func (s ProductService) DeleteProduct(ctx context.Context, id string) error {
	productID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.Products.Delete(ctx, productID); err != nil {
		return storeErr(ctx, "products", "delete", "product", err, "failed to delete product")
	}
	utils.LogEvent(ctx, "products", "delete", "product_id="+productID)
	s.views().InvalidatePaths(ctx, "/products", "/products/"+productID)
	return nil
}

func (s ProductService) CountProducts(ctx context.Context) (int, error) {
	n, err := s.Stats.CountProducts(ctx)
	if err != nil {
		return 0, storeErr(ctx, "products", "count", "product", err, "failed to count products")
	}
	return n, nil
}

// CountProductsByCategory is ordered by count, largest first.
func (s ProductService) CountProductsByCategory(ctx context.Context) ([]domain.CountByKey, error) {
	counts, err := s.Stats.CountProductsByCategory(ctx)
	if err != nil {
		return nil, storeErr(ctx, "products", "count_by_category", "product", err, "failed to count products")
	}
	return counts, nil
}

func (s ProductService) CountProductsByFeatured(ctx context.Context) ([]models.FeaturedCount, error) {
	counts, err := s.Stats.CountProductsByFeatured(ctx)
	if err != nil {
		return nil, storeErr(ctx, "products", "count_by_featured", "product", err, "failed to count products")
	}
	return counts, nil
}

func applyProductInput(p *models.Product, in ProductInput) error {
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return domain.ValidationError{Field: "name", Msg: "must not be empty"}
		}
		p.Name = utils.NormalizeSpace(*in.Name)
	}
	if in.Location != nil {
		if strings.TrimSpace(*in.Location) == "" {
			return domain.ValidationError{Field: "location", Msg: "must not be empty"}
		}
		p.Location = utils.NormalizeSpace(*in.Location)
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return domain.ValidationError{Field: "price", Msg: "must not be negative"}
		}
		p.Price = *in.Price
	}
	if in.OriginalPrice != nil {
		if *in.OriginalPrice < 0 {
			return domain.ValidationError{Field: "originalPrice", Msg: "must not be negative"}
		}
		p.OriginalPrice = *in.OriginalPrice
	}
	if in.Rating != nil {
		if *in.Rating < 0 || *in.Rating > 5 {
			return domain.ValidationError{Field: "rating", Msg: "must be between 0 and 5"}
		}
		p.Rating = *in.Rating
	}
	if in.Reviews != nil {
		if *in.Reviews < 0 {
			return domain.ValidationError{Field: "reviews", Msg: "must not be negative"}
		}
		p.Reviews = *in.Reviews
	}
	if in.Duration != nil {
		p.Duration = strings.TrimSpace(*in.Duration)
	}
	if in.Category != nil {
		c := models.ProductCategory(strings.TrimSpace(*in.Category))
		if !c.Valid() {
			return domain.ValidationError{Field: "category", Msg: "invalid category"}
		}
		p.Category = c
	}
	if in.TripType != nil && strings.TrimSpace(*in.TripType) != "" {
		t := models.TripType(strings.TrimSpace(*in.TripType))
		if !t.Valid() {
			return domain.ValidationError{Field: "tripType", Msg: "invalid trip type"}
		}
		p.TripType = t
	}
	if in.Image != nil {
		p.Image = strings.TrimSpace(*in.Image)
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.Discount != nil {
		if *in.Discount < 0 || *in.Discount > 100 {
			return domain.ValidationError{Field: "discount", Msg: "must be between 0 and 100"}
		}
		p.Discount = *in.Discount
	}
	if in.Highlights != nil {
		p.Highlights = cleanList(*in.Highlights)
	}
	if in.GroupSize != nil {
		p.GroupSize = strings.TrimSpace(*in.GroupSize)
	}
	if in.Difficulty != nil && strings.TrimSpace(*in.Difficulty) != "" {
		d := models.Difficulty(strings.TrimSpace(*in.Difficulty))
		if !d.Valid() {
			return domain.ValidationError{Field: "difficulty", Msg: "invalid difficulty"}
		}
		p.Difficulty = d
	}
	if in.AvailableDates != nil {
		p.AvailableDates = cleanList(*in.AvailableDates)
	}
	if in.Inclusions != nil {
		p.Inclusions = cleanList(*in.Inclusions)
	}
	if in.Exclusions != nil {
		p.Exclusions = cleanList(*in.Exclusions)
	}
	if in.Itinerary != nil {
		p.Itinerary = cleanList(*in.Itinerary)
	}
	if in.IsCommunityTrip != nil {
		p.IsCommunityTrip = *in.IsCommunityTrip
	}
	return nil
}

// deriveDiscount is round((original-price)/original*100) clamped to 0..100.
func deriveDiscount(price, original float64) int {
	if original <= 0 || price >= original {
		return 0
	}
	d := int(math.Round((original - price) / original * 100))
	if d > 100 {
		return 100
	}
	return d
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
