package services

import (
	"context"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

type ContactInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
	TravelType string `json:"travelType"`
}

type ContactService struct {
	Contacts ContactStore
	Views    ViewCache
	Now      func() time.Time
}

func (s ContactService) views() ViewCache {
	if s.Views != nil {
		return s.Views
	}
	return noViews{}
}

// SubmitContact stores a public contact form submission.
func (s ContactService) SubmitContact(ctx context.Context, in ContactInput) (models.Contact, error) {
	if err := firstErr(required("name", in.Name), required("email", in.Email), required("message", in.Message)); err != nil {
		return models.Contact{}, err
	}
	email := utils.NormalizeEmail(in.Email)
	if !utils.LooksLikeEmail(email) {
		return models.Contact{}, domain.ValidationError{Field: "email", Msg: "invalid email"}
	}

	c := models.Contact{
		ID:         newID(),
		Name:       utils.NormalizeSpace(in.Name),
		Email:      email,
		Phone:      strings.TrimSpace(in.Phone),
		Subject:    strings.TrimSpace(in.Subject),
		Message:    strings.TrimSpace(in.Message),
		TravelType: strings.TrimSpace(in.TravelType),
		CreatedAt:  nowOr(s.Now),
	}
	if err := s.Contacts.Create(ctx, c); err != nil {
		return models.Contact{}, storeErr(ctx, "contacts", "create", "contact", err, "failed to submit contact")
	}
	utils.LogEvent(ctx, "contacts", "create", "contact_id="+c.ID)
	s.views().InvalidatePaths(ctx, "/contacts")
	return c, nil
}

func (s ContactService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var cached []models.Contact
	slot, hit := s.views().Load(ctx, "contacts", "all", &cached)
	if hit {
		return cached, nil
	}
	list, err := s.Contacts.List(ctx)
	if err != nil {
		return nil, storeErr(ctx, "contacts", "list", "contact", err, "failed to list contacts")
	}
	s.views().Store(ctx, slot, list)
	return list, nil
}

func (s ContactService) GetContact(ctx context.Context, id string) (models.Contact, error) {
	contactID, err := parseID("id", id)
	if err != nil {
		return models.Contact{}, err
	}
	c, err := s.Contacts.GetByID(ctx, contactID)
	if err != nil {
		return models.Contact{}, storeErr(ctx, "contacts", "get", "contact", err, "failed to load contact")
	}
	return c, nil
}

func (s ContactService) DeleteContact(ctx context.Context, id string) error {
	contactID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.Contacts.Delete(ctx, contactID); err != nil {
		return storeErr(ctx, "contacts", "delete", "contact", err, "failed to delete contact")
	}
	s.views().InvalidatePaths(ctx, "/contacts")
	return nil
}
