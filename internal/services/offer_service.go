package services

import (
	"context"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

type OfferInput struct {
	Title       string  `json:"title"`
	Subtitle    string  `json:"subtitle"`
	Discount    float64 `json:"discount"`
	Type        string  `json:"type"`
	Code        string  `json:"code"`
	ValidUntil  string  `json:"validUntil"`
	Image       string  `json:"image"`
	Icon        string  `json:"icon"`
	Color       string  `json:"color"`
	Description string  `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type OfferService struct {
	Offers OfferStore
	Views  ViewCache
	Now    func() time.Time
}

func (s OfferService) views() ViewCache {
	if s.Views != nil {
		return s.Views
	}
	return noViews{}
}

func (in OfferInput) apply(o *models.Offer) error {
	if err := firstErr(required("title", in.Title), required("code", in.Code), required("validUntil", in.ValidUntil)); err != nil {
		return err
	}
	typ := models.OfferType(strings.TrimSpace(in.Type))
	if typ == "" {
		typ = models.OfferPercentage
	}
	if !typ.Valid() {
		return domain.ValidationError{Field: "type", Msg: "invalid offer type"}
	}
	if in.Discount < 0 || (typ == models.OfferPercentage && in.Discount > 100) {
		return domain.ValidationError{Field: "discount", Msg: "out of range"}
	}
	validUntil, err := utils.ParseFlexibleDate(in.ValidUntil)
	if err != nil {
		return domain.ValidationError{Field: "validUntil", Msg: "invalid date", Err: err}
	}

	o.Title = utils.NormalizeSpace(in.Title)
	o.Subtitle = strings.TrimSpace(in.Subtitle)
	o.Discount = in.Discount
	o.Type = typ
	o.Code = strings.ToUpper(strings.TrimSpace(in.Code))
	o.ValidUntil = validUntil
	o.Image = strings.TrimSpace(in.Image)
	o.Icon = strings.TrimSpace(in.Icon)
	o.Color = strings.TrimSpace(in.Color)
	o.Description = strings.TrimSpace(in.Description)
	if in.IsActive != nil {
		o.IsActive = *in.IsActive
	}
	return nil
}

func (s OfferService) ListOffers(ctx context.Context) ([]models.Offer, error) {
	var cached []models.Offer
	slot, hit := s.views().Load(ctx, "offers", "all", &cached)
	if hit {
		return cached, nil
	}
	list, err := s.Offers.List(ctx)
	if err != nil {
		return nil, storeErr(ctx, "offers", "list", "offer", err, "failed to list offers")
	}
	s.views().Store(ctx, slot, list)
	return list, nil
}

func (s OfferService) GetOffer(ctx context.Context, id string) (models.Offer, error) {
	offerID, err := parseID("id", id)
	if err != nil {
		return models.Offer{}, err
	}
	o, err := s.Offers.GetByID(ctx, offerID)
	if err != nil {
		return models.Offer{}, storeErr(ctx, "offers", "get", "offer", err, "failed to load offer")
	}
	return o, nil
}

func (s OfferService) CreateOffer(ctx context.Context, in OfferInput) (models.Offer, error) {
	now := nowOr(s.Now)
	o := models.Offer{ID: newID(), IsActive: true, CreatedAt: now, UpdatedAt: now}
	if err := in.apply(&o); err != nil {
		return models.Offer{}, err
	}
	if err := s.Offers.Create(ctx, o); err != nil {
		return models.Offer{}, storeErr(ctx, "offers", "create", "offer", err, "failed to create offer")
	}
	utils.LogEvent(ctx, "offers", "create", "offer_id="+o.ID+" code="+o.Code)
	s.views().InvalidatePaths(ctx, "/offers")
	return o, nil
}

func (s OfferService) UpdateOffer(ctx context.Context, id string, in OfferInput) (models.Offer, error) {
	offerID, err := parseID("id", id)
	if err != nil {
		return models.Offer{}, err
	}
	o, err := s.Offers.GetByID(ctx, offerID)
	if err != nil {
		return models.Offer{}, storeErr(ctx, "offers", "update", "offer", err, "failed to load offer")
	}
	if err := in.apply(&o); err != nil {
		return models.Offer{}, err
	}
	o.UpdatedAt = nowOr(s.Now)
	if err := s.Offers.Update(ctx, o); err != nil {
		return models.Offer{}, storeErr(ctx, "offers", "update", "offer", err, "failed to update offer")
	}
	s.views().InvalidatePaths(ctx, "/offers", "/offers/"+o.ID)
	return o, nil
}

func (s OfferService) DeleteOffer(ctx context.Context, id string) error {
	offerID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.Offers.Delete(ctx, offerID); err != nil {
		return storeErr(ctx, "offers", "delete", "offer", err, "failed to delete offer")
	}
	s.views().InvalidatePaths(ctx, "/offers", "/offers/"+offerID)
	return nil
}
