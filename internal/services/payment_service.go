package services

import (
	"context"

	"backoffice/internal/domain/models"
)

// PaymentService exposes gateway payment records. They are written by the
// checkout webhook and are read-only here, so nothing in this process can
// invalidate a cached view of them; reads always go to the store.
type PaymentService struct {
	Payments PaymentStore
}

// ListPayments returns payments newest first.
func (s PaymentService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	list, err := s.Payments.List(ctx)
	if err != nil {
		return nil, storeErr(ctx, "payments", "list", "payment", err, "failed to list payments")
	}
	return list, nil
}

func (s PaymentService) GetPayment(ctx context.Context, id string) (models.Payment, error) {
	paymentID, err := parseID("id", id)
	if err != nil {
		return models.Payment{}, err
	}
	p, err := s.Payments.GetByID(ctx, paymentID)
	if err != nil {
		return models.Payment{}, storeErr(ctx, "payments", "get", "payment", err, "failed to load payment")
	}
	return p, nil
}
