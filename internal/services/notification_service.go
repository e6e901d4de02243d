package services

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/mail"
	"backoffice/internal/utils"

	"github.com/google/uuid"
)

var (
	confirmationHTMLTmpl = htmltemplate.Must(htmltemplate.New("confirmation.html").Parse(confirmationHTML))
	confirmationTextTmpl = texttemplate.Must(texttemplate.New("confirmation.txt").Parse(confirmationText))
)

type Receipt struct {
	MessageID string `json:"messageId"`
	To        string `json:"to"`
}

// NotificationService emails order confirmations. One attempt per call.
type NotificationService struct {
	Orders OrderReader
	Mailer Mailer
	Docs   DocsService
	From   string
	Brand  string
}

type confirmationTrip struct {
	Name     string
	Location string
	Date     string
	Quantity int
	Price    string
}

type confirmationView struct {
	Brand     string
	Reference string
	OrderDate string
	Order     models.Order
	Trips     []confirmationTrip
	Total     string
}

func (s NotificationService) SendOrderConfirmation(ctx context.Context, orderID string) (Receipt, error) {
	id, err := parseID("id", orderID)
	if err != nil {
		return Receipt{}, err
	}
	order, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return Receipt{}, storeErr(ctx, "notifications", "order_confirmation", "order", err, "failed to load order")
	}
	if strings.TrimSpace(order.ContactInfo.Email) == "" {
		return Receipt{}, domain.ValidationError{Field: "contactInfo.email", Msg: "order has no contact email"}
	}

	msg, err := s.BuildConfirmation(order)
	if err != nil {
		utils.LogError(ctx, "notifications", "order_confirmation", err)
		return Receipt{}, domain.InternalError{Msg: "failed to render confirmation email", Err: err}
	}

	if err := s.Mailer.Send(ctx, msg); err != nil {
		utils.LogError(ctx, "notifications", "order_confirmation", err)
		return Receipt{}, domain.InternalError{Msg: "failed to send confirmation email", Err: err}
	}
	utils.LogEvent(ctx, "notifications", "order_confirmation", fmt.Sprintf("order_id=%s message_id=%s", order.ID, msg.MessageID))
	return Receipt{MessageID: msg.MessageID, To: msg.To}, nil
}

// BuildConfirmation renders both bodies and attaches the invoice.
func (s NotificationService) BuildConfirmation(order models.Order) (mail.Message, error) {
	brand := safe(s.Brand, "Travel Back Office")
	view := confirmationView{
		Brand:     brand,
		Reference: order.Reference(),
		OrderDate: utils.FormatDate(order.BookingDate),
		Order:     order,
		Total:     utils.FormatINR(order.TotalAmount),
	}
	for _, t := range order.Trips {
		view.Trips = append(view.Trips, confirmationTrip{
			Name:     t.Name,
			Location: t.Location,
			Date:     safe(utils.FormatDate(t.SelectedDate), "open date"),
			Quantity: t.Quantity,
			Price:    utils.FormatINR(t.Price),
		})
	}

	var html, text bytes.Buffer
	if err := confirmationHTMLTmpl.Execute(&html, view); err != nil {
		return mail.Message{}, fmt.Errorf("render html: %w", err)
	}
	if err := confirmationTextTmpl.Execute(&text, view); err != nil {
		return mail.Message{}, fmt.Errorf("render text: %w", err)
	}

	docs := s.Docs
	if docs.Brand == "" {
		docs.Brand = brand
	}
	pdf, filename, err := docs.InvoicePDF(order)
	if err != nil {
		return mail.Message{}, fmt.Errorf("render invoice: %w", err)
	}

	return mail.Message{
		From:      s.From,
		FromName:  brand,
		To:        order.ContactInfo.Email,
		Subject:   "Order Confirmation - #" + view.Reference,
		Text:      text.String(),
		HTML:      html.String(),
		MessageID: fmt.Sprintf("<%s@%s>", uuid.NewString(), messageIDDomain(s.From)),
		Attachments: []mail.Attachment{
			{Filename: filename, ContentType: "application/pdf", Data: pdf},
		},
	}, nil
}

func messageIDDomain(from string) string {
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		return from[at+1:]
	}
	return "localhost"
}
