package services

import (
	"context"
	"errors"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

type SubscriberService struct {
	Subscribers SubscriberStore
	Views       ViewCache
	Now         func() time.Time
}

func (s SubscriberService) views() ViewCache {
	if s.Views != nil {
		return s.Views
	}
	return noViews{}
}

func (s SubscriberService) ListSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	var cached []models.Subscriber
	slot, hit := s.views().Load(ctx, "subscribers", "all", &cached)
	if hit {
		return cached, nil
	}
	list, err := s.Subscribers.List(ctx)
	if err != nil {
		return nil, storeErr(ctx, "subscribers", "list", "subscriber", err, "failed to list subscribers")
	}
	s.views().Store(ctx, slot, list)
	return list, nil
}

// Subscribe stores a normalized email. An address already on the list is a
// conflict.
func (s SubscriberService) Subscribe(ctx context.Context, email string) (models.Subscriber, error) {
	email = utils.NormalizeEmail(email)
	if email == "" {
		return models.Subscriber{}, domain.ValidationError{Field: "email", Msg: "is required"}
	}
	if !utils.LooksLikeEmail(email) {
		return models.Subscriber{}, domain.ValidationError{Field: "email", Msg: "invalid email"}
	}

	sub := models.Subscriber{ID: newID(), Email: email, CreatedAt: nowOr(s.Now)}
	if err := s.Subscribers.Create(ctx, sub); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.Subscriber{}, domain.ConflictError{Resource: "subscriber", Msg: "email already subscribed", Err: err}
		}
		return models.Subscriber{}, storeErr(ctx, "subscribers", "create", "subscriber", err, "failed to subscribe")
	}
	utils.LogEvent(ctx, "subscribers", "create", "subscriber_id="+sub.ID)
	s.views().InvalidatePaths(ctx, "/subscribers")
	return sub, nil
}

func (s SubscriberService) DeleteSubscriber(ctx context.Context, id string) error {
	subID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.Subscribers.Delete(ctx, subID); err != nil {
		return storeErr(ctx, "subscribers", "delete", "subscriber", err, "failed to delete subscriber")
	}
	s.views().InvalidatePaths(ctx, "/subscribers")
	return nil
}
