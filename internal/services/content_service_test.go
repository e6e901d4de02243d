package services

import (
	"context"
	"testing"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeNormalizesAndRejectsDuplicates(t *testing.T) {
	store := &memSubscribers{subs: map[string]models.Subscriber{}}
	svc := SubscriberService{Subscribers: store, Now: clock}
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, "  Traveller@Example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "traveller@example.com", sub.Email)

	_, err = svc.Subscribe(ctx, "traveller@example.com")
	assert.True(t, domain.IsConflict(err))
	assert.Len(t, store.subs, 1)

	_, err = svc.Subscribe(ctx, "not-an-email")
	assert.True(t, domain.IsValidation(err))
}

func TestSubmitContactRequiresFields(t *testing.T) {
	store := &memContacts{}
	svc := ContactService{Contacts: store, Now: clock}
	ctx := context.Background()

	for _, in := range []ContactInput{
		{Email: "a@b.co", Message: "hi"},
		{Name: "Asha", Message: "hi"},
		{Name: "Asha", Email: "a@b.co"},
	} {
		_, err := svc.SubmitContact(ctx, in)
		assert.True(t, domain.IsValidation(err))
	}
	assert.Empty(t, store.contacts)

	c, err := svc.SubmitContact(ctx, ContactInput{Name: "Asha", Email: "A@B.co", Message: "Honeymoon in Bali?", TravelType: "international"})
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", c.Email)
	assert.Equal(t, fixedNow, c.CreatedAt)

	got, err := svc.GetContact(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Honeymoon in Bali?", got.Message)

	require.NoError(t, svc.DeleteContact(ctx, c.ID))
	assert.True(t, domain.IsNotFound(svc.DeleteContact(ctx, c.ID)))
}

func TestBlogInputValidation(t *testing.T) {
	in := BlogInput{
		Title:  "Monsoon in Kerala",
		Author: "Asha Rao",
		Content: []models.ContentBlock{
			{Type: models.BlockParagraph, Content: "Backwaters", Level: 3},
			{Type: models.BlockSubheading, Content: "Where to stay", Level: 2},
			{Type: models.BlockCode, Content: "curl ...", Language: "bash"},
		},
	}
	out, err := in.normalize()
	require.NoError(t, err)
	assert.Equal(t, "monsoon-in-kerala", out.Slug)
	assert.Zero(t, out.Content[0].Level)
	assert.Equal(t, 2, out.Content[1].Level)
	assert.Equal(t, "bash", out.Content[2].Language)

	bad := in
	bad.Content = []models.ContentBlock{{Type: "video", Content: "x"}}
	_, err = bad.normalize()
	assert.True(t, domain.IsValidation(err))

	bad.Content = []models.ContentBlock{{Type: models.BlockSubheading, Content: "x", Level: 9}}
	_, err = bad.normalize()
	assert.True(t, domain.IsValidation(err))
}

func TestOfferInputDefaults(t *testing.T) {
	var o models.Offer
	err := OfferInput{Title: "Summer Sale", Code: "summer25", Discount: 25, ValidUntil: "2026-06-30"}.apply(&o)
	require.NoError(t, err)
	assert.Equal(t, models.OfferPercentage, o.Type)
	assert.Equal(t, "SUMMER25", o.Code)
	assert.Equal(t, time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC), o.ValidUntil)

	err = OfferInput{Title: "x", Code: "x", Discount: 150, ValidUntil: "2026-06-30"}.apply(&o)
	assert.True(t, domain.IsValidation(err))
	err = OfferInput{Title: "x", Code: "x", Type: "bogo", ValidUntil: "2026-06-30"}.apply(&o)
	assert.True(t, domain.IsValidation(err))
}

func TestTestimonialRatingRange(t *testing.T) {
	assert.True(t, domain.IsValidation(TestimonialInput{Name: "A", Comment: "B", Rating: 0}.validate()))
	assert.True(t, domain.IsValidation(TestimonialInput{Name: "A", Comment: "B", Rating: 6}.validate()))
	assert.NoError(t, TestimonialInput{Name: "A", Comment: "B", Rating: 5}.validate())
}

type memPayments struct {
	PaymentStore
	payments []models.Payment
}

func (m *memPayments) List(context.Context) ([]models.Payment, error) {
	return append([]models.Payment(nil), m.payments...), nil
}

func TestListPaymentsReadsThroughToStore(t *testing.T) {
	store := &memPayments{payments: []models.Payment{{ID: "pay-1", Amount: 2500}}}
	svc := PaymentService{Payments: store}

	first, err := svc.ListPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// The gateway webhook writes payments outside this service.
	store.payments = append([]models.Payment{{ID: "pay-2", Amount: 5000}}, store.payments...)

	second, err := svc.ListPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "pay-2", second[0].ID)
}
