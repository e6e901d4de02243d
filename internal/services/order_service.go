package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/events"
	"backoffice/internal/utils"

	"github.com/shopspring/decimal"
)

type OrderTripInput struct {
	ProductID    string  `json:"productId"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
	SelectedDate string  `json:"selectedDate"`
}

type CreateOrderInput struct {
	UserID          string              `json:"userId"`
	Trips           []OrderTripInput    `json:"trips"`
	TotalAmount     float64             `json:"totalAmount"`
	PaymentMethod   string              `json:"paymentMethod"`
	ContactInfo     *models.ContactInfo `json:"contactInfo"`
	SpecialRequests string              `json:"specialRequests"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"paymentStatus"`
	BookingDate     string              `json:"bookingDate"`
}

type OrderPage struct {
	Orders      []models.Order `json:"orders"`
	Total       int            `json:"total"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

type OrderService struct {
	Orders OrderStore
	Views  ViewCache
	Events EventPublisher
	Now    func() time.Time
}

func (s OrderService) views() ViewCache {
	if s.Views != nil {
		return s.Views
	}
	return noViews{}
}

func (s OrderService) events() EventPublisher {
	if s.Events != nil {
		return s.Events
	}
	return noEvents{}
}

// CreateOrder validates the whole input before anything is written.
func (s OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (models.Order, error) {
	order, err := s.buildOrder(in)
	if err != nil {
		return models.Order{}, err
	}

	if err := s.Orders.Create(ctx, order); err != nil {
		return models.Order{}, storeErr(ctx, "orders", "create", "order", err, "failed to create order")
	}
	utils.LogEvent(ctx, "orders", "create", fmt.Sprintf("order_id=%s user_id=%s trips=%d", order.ID, order.UserID, len(order.Trips)))

	s.afterMutation(ctx, events.OrderEvent{
		Type:          events.OrderCreated,
		OrderID:       order.ID,
		UserID:        order.UserID,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		TotalAmount:   order.TotalAmount,
	})
	return order, nil
}

func (s OrderService) buildOrder(in CreateOrderInput) (models.Order, error) {
	if strings.TrimSpace(in.UserID) == "" {
		return models.Order{}, domain.ValidationError{Field: "userId", Msg: "is required"}
	}
	userID, err := parseID("userId", in.UserID)
	if err != nil {
		return models.Order{}, err
	}
	if len(in.Trips) == 0 {
		return models.Order{}, domain.ValidationError{Field: "trips", Msg: "at least one trip is required"}
	}
	if in.TotalAmount <= 0 {
		return models.Order{}, domain.ValidationError{Field: "totalAmount", Msg: "must be greater than zero"}
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return models.Order{}, domain.ValidationError{Field: "paymentMethod", Msg: "is required"}
	}
	method := models.PaymentMethod(strings.TrimSpace(in.PaymentMethod))
	if !method.Valid() {
		return models.Order{}, domain.ValidationError{Field: "paymentMethod", Msg: "invalid payment method"}
	}
	if in.ContactInfo == nil {
		return models.Order{}, domain.ValidationError{Field: "contactInfo", Msg: "is required"}
	}
	contact := models.ContactInfo{
		Name:  utils.NormalizeSpace(in.ContactInfo.Name),
		Email: utils.NormalizeEmail(in.ContactInfo.Email),
		Phone: strings.TrimSpace(in.ContactInfo.Phone),
	}
	if contact.Name == "" {
		return models.Order{}, domain.ValidationError{Field: "contactInfo.name", Msg: "is required"}
	}
	if !utils.LooksLikeEmail(contact.Email) {
		return models.Order{}, domain.ValidationError{Field: "contactInfo.email", Msg: "invalid email"}
	}

	status := models.OrderPending
	if raw := strings.TrimSpace(in.Status); raw != "" {
		status = models.OrderStatus(raw)
		if !status.Valid() {
			return models.Order{}, domain.ValidationError{Field: "status", Msg: "invalid status"}
		}
	}
	payStatus := models.PaymentUnpaid
	if raw := strings.TrimSpace(in.PaymentStatus); raw != "" {
		payStatus = models.PaymentStatus(raw)
		if !payStatus.Valid() {
			return models.Order{}, domain.ValidationError{Field: "paymentStatus", Msg: "invalid payment status"}
		}
	}

	now := nowOr(s.Now)
	bookingDate := now
	if raw := strings.TrimSpace(in.BookingDate); raw != "" {
		bookingDate, err = utils.ParseFlexibleDate(raw)
		if err != nil {
			return models.Order{}, domain.ValidationError{Field: "bookingDate", Msg: "invalid date", Err: err}
		}
	}

	trips := make([]models.OrderTrip, 0, len(in.Trips))
	sum := decimal.Zero
	for i, t := range in.Trips {
		trip, err := buildTrip(i, t)
		if err != nil {
			return models.Order{}, err
		}
		sum = sum.Add(decimal.NewFromFloat(trip.Price).Mul(decimal.NewFromInt(int64(trip.Quantity))))
		trips = append(trips, trip)
	}
	if !utils.MoneyEqual(sum, decimal.NewFromFloat(in.TotalAmount)) {
		return models.Order{}, domain.ValidationError{
			Field: "totalAmount",
			Msg:   fmt.Sprintf("does not match trips total %s", sum.StringFixed(2)),
		}
	}

	return models.Order{
		ID:              newID(),
		UserID:          userID,
		Trips:           trips,
		TotalAmount:     in.TotalAmount,
		Status:          status,
		BookingDate:     bookingDate,
		PaymentMethod:   method,
		PaymentStatus:   payStatus,
		ContactInfo:     contact,
		SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func buildTrip(i int, t OrderTripInput) (models.OrderTrip, error) {
	field := func(name string) string { return fmt.Sprintf("trips[%d].%s", i, name) }

	if strings.TrimSpace(t.ProductID) == "" {
		return models.OrderTrip{}, domain.ValidationError{Field: field("productId"), Msg: "is required"}
	}
	productID, err := parseID(field("productId"), t.ProductID)
	if err != nil {
		return models.OrderTrip{}, err
	}
	if err := required(field("name"), t.Name); err != nil {
		return models.OrderTrip{}, err
	}
	if t.Quantity < 1 {
		return models.OrderTrip{}, domain.ValidationError{Field: field("quantity"), Msg: "must be at least 1"}
	}
	if t.Price < 0 {
		return models.OrderTrip{}, domain.ValidationError{Field: field("price"), Msg: "must not be negative"}
	}
	var selected time.Time
	if raw := strings.TrimSpace(t.SelectedDate); raw != "" {
		selected, err = utils.ParseFlexibleDate(raw)
		if err != nil {
			return models.OrderTrip{}, domain.ValidationError{Field: field("selectedDate"), Msg: "invalid date", Err: err}
		}
	}
	return models.OrderTrip{
		ProductID:    productID,
		Name:         utils.NormalizeSpace(t.Name),
		Location:     utils.NormalizeSpace(t.Location),
		Quantity:     t.Quantity,
		Price:        t.Price,
		SelectedDate: selected,
	}, nil
}

func (s OrderService) GetOrder(ctx context.Context, id string) (models.Order, error) {
	orderID, err := parseID("id", id)
	if err != nil {
		return models.Order{}, err
	}
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return models.Order{}, storeErr(ctx, "orders", "get", "order", err, "failed to load order")
	}
	return order, nil
}

func (s OrderService) GetOrdersByUser(ctx context.Context, userID string, page, limit int) (OrderPage, error) {
	uid, err := parseID("userId", userID)
	if err != nil {
		return OrderPage{}, err
	}
	page, limit, skip := utils.GetPagination(page, limit)

	key := fmt.Sprintf("user:%s:%d:%d", uid, page, limit)
	var cached OrderPage
	slot, hit := s.views().Load(ctx, "orders", key, &cached)
	if hit {
		return cached, nil
	}

	orders, total, err := s.Orders.ListByUser(ctx, uid, limit, skip)
	if err != nil {
		return OrderPage{}, storeErr(ctx, "orders", "list_by_user", "order", err, "failed to list orders")
	}
	result := OrderPage{
		Orders:      orders,
		Total:       total,
		TotalPages:  utils.TotalPages(total, limit),
		CurrentPage: page,
	}
	s.views().Store(ctx, slot, result)
	return result, nil
}

// ListOrders is the admin listing with an optional status filter.
func (s OrderService) ListOrders(ctx context.Context, filter models.OrderFilter) (OrderPage, error) {
	if filter.UserID != "" {
		return s.GetOrdersByUser(ctx, filter.UserID, filter.Page, filter.Limit)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return OrderPage{}, domain.ValidationError{Field: "status", Msg: "invalid status"}
	}
	page, limit, skip := utils.GetPagination(filter.Page, filter.Limit)

	key := fmt.Sprintf("all:%s:%d:%d", filter.Status, page, limit)
	var cached OrderPage
	slot, hit := s.views().Load(ctx, "orders", key, &cached)
	if hit {
		return cached, nil
	}

	orders, total, err := s.Orders.List(ctx, filter.Status, limit, skip)
	if err != nil {
		return OrderPage{}, storeErr(ctx, "orders", "list", "order", err, "failed to list orders")
	}
	result := OrderPage{
		Orders:      orders,
		Total:       total,
		TotalPages:  utils.TotalPages(total, limit),
		CurrentPage: page,
	}
	s.views().Store(ctx, slot, result)
	return result, nil
}

func (s OrderService) UpdateOrderStatus(ctx context.Context, id, status string) (models.Order, error) {
	orderID, err := parseID("id", id)
	if err != nil {
		return models.Order{}, err
	}
	next := models.OrderStatus(strings.TrimSpace(status))
	if !next.Valid() {
		return models.Order{}, domain.ValidationError{Field: "status", Msg: "invalid status"}
	}

	if err := s.Orders.UpdateStatus(ctx, orderID, next, nowOr(s.Now)); err != nil {
		return models.Order{}, storeErr(ctx, "orders", "update_status", "order", err, "failed to update order status")
	}
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return models.Order{}, storeErr(ctx, "orders", "update_status", "order", err, "failed to load order")
	}
	utils.LogEvent(ctx, "orders", "update_status", fmt.Sprintf("order_id=%s status=%s", orderID, next))

	s.afterMutation(ctx, events.OrderEvent{
		Type:    events.OrderStatusUpdated,
		OrderID: orderID,
		UserID:  order.UserID,
		Status:  string(next),
	})
	return order, nil
}

func (s OrderService) UpdatePaymentStatus(ctx context.Context, id, paymentStatus string) (models.Order, error) {
	orderID, err := parseID("id", id)
	if err != nil {
		return models.Order{}, err
	}
	next := models.PaymentStatus(strings.TrimSpace(paymentStatus))
	if !next.Valid() {
		return models.Order{}, domain.ValidationError{Field: "paymentStatus", Msg: "invalid payment status"}
	}

	if err := s.Orders.UpdatePaymentStatus(ctx, orderID, next, nowOr(s.Now)); err != nil {
		return models.Order{}, storeErr(ctx, "orders", "update_payment_status", "order", err, "failed to update payment status")
	}
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return models.Order{}, storeErr(ctx, "orders", "update_payment_status", "order", err, "failed to load order")
	}
	utils.LogEvent(ctx, "orders", "update_payment_status", fmt.Sprintf("order_id=%s payment_status=%s", orderID, next))

	s.afterMutation(ctx, events.OrderEvent{
		Type:          events.OrderPaymentStatusUpdated,
		OrderID:       orderID,
		UserID:        order.UserID,
		PaymentStatus: string(next),
		TotalAmount:   order.TotalAmount,
	})
	return order, nil
}

func (s OrderService) DeleteOrder(ctx context.Context, id string) error {
	orderID, err := parseID("id", id)
	if err != nil {
		return err
	}
	if err := s.Orders.Delete(ctx, orderID); err != nil {
		return storeErr(ctx, "orders", "delete", "order", err, "failed to delete order")
	}
	utils.LogEvent(ctx, "orders", "delete", "order_id="+orderID)

	s.afterMutation(ctx, events.OrderEvent{Type: events.OrderDeleted, OrderID: orderID})
	return nil
}

// afterMutation drops cached order views and publishes the event. Neither
// failure affects the caller.
func (s OrderService) afterMutation(ctx context.Context, event events.OrderEvent) {
	s.views().InvalidatePaths(ctx, "/orders", "/orders/"+event.OrderID)

	event.OccurredAt = nowOr(s.Now)
	if err := s.events().PublishOrderEvent(ctx, event); err != nil {
		utils.Entry(ctx, "orders", "publish").WithError(err).WithField("event_type", event.Type).Warn("order event not published")
	}
}
