package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/events"
	"backoffice/internal/mail"
	"backoffice/internal/repositories"
)

var errStoreDown = errors.New("connection refused")

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type memOrders struct {
	mu     sync.Mutex
	orders map[string]models.Order
	fail   error
}

func newMemOrders(seed ...models.Order) *memOrders {
	m := &memOrders{orders: map[string]models.Order{}}
	for _, o := range seed {
		m.orders[o.ID] = o
	}
	return m
}

func (m *memOrders) Create(_ context.Context, o models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.orders[o.ID] = o
	return nil
}

func (m *memOrders) GetByID(_ context.Context, id string) (models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return models.Order{}, repositories.ErrNotFound
	}
	return o, nil
}

func (m *memOrders) filter(keep func(models.Order) bool, less func(a, b models.Order) bool, limit, offset int) ([]models.Order, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return nil, 0, m.fail
	}
	all := []models.Order{}
	for _, o := range m.orders {
		if keep(o) {
			all = append(all, o)
		}
	}
	sort.Slice(all, func(i, j int) bool { return less(all[i], all[j]) })
	total := len(all)
	if offset >= total {
		return []models.Order{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (m *memOrders) ListByUser(_ context.Context, userID string, limit, offset int) ([]models.Order, int, error) {
	return m.filter(
		func(o models.Order) bool { return o.UserID == userID },
		func(a, b models.Order) bool { return a.BookingDate.After(b.BookingDate) },
		limit, offset)
}

func (m *memOrders) List(_ context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int, error) {
	return m.filter(
		func(o models.Order) bool { return status == "" || o.Status == status },
		func(a, b models.Order) bool { return a.CreatedAt.After(b.CreatedAt) },
		limit, offset)
}

func (m *memOrders) UpdateStatus(_ context.Context, id string, status models.OrderStatus, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	o, ok := m.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.Status, o.UpdatedAt = status, now
	m.orders[id] = o
	return nil
}

func (m *memOrders) UpdatePaymentStatus(_ context.Context, id string, status models.PaymentStatus, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	o, ok := m.orders[id]
	if !ok {
		return repositories.ErrNotFound
	}
	o.PaymentStatus, o.UpdatedAt = status, now
	m.orders[id] = o
	return nil
}

func (m *memOrders) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.orders, id)
	return nil
}

func (m *memOrders) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type memBookings struct {
	bookings map[string]models.FlightBooking
}

func newMemBookings(seed ...models.FlightBooking) *memBookings {
	m := &memBookings{bookings: map[string]models.FlightBooking{}}
	for _, b := range seed {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *memBookings) Create(_ context.Context, b models.FlightBooking) error {
	m.bookings[b.ID] = b
	return nil
}

func (m *memBookings) GetByID(_ context.Context, id string) (models.FlightBooking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return models.FlightBooking{}, repositories.ErrNotFound
	}
	return b, nil
}

func (m *memBookings) List(_ context.Context) ([]models.FlightBooking, error) {
	out := []models.FlightBooking{}
	for _, b := range m.bookings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memBookings) UpdateStatus(_ context.Context, id string, status models.BookingStatus, paymentID string, now time.Time) error {
	b, ok := m.bookings[id]
	if !ok {
		return repositories.ErrNotFound
	}
	b.Status, b.UpdatedAt = status, now
	if paymentID != "" {
		b.PaymentID = paymentID
	}
	m.bookings[id] = b
	return nil
}

func (m *memBookings) Delete(_ context.Context, id string) error {
	if _, ok := m.bookings[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.bookings, id)
	return nil
}

type memProducts struct {
	products map[string]models.Product
}

func newMemProducts(seed ...models.Product) *memProducts {
	m := &memProducts{products: map[string]models.Product{}}
	for _, p := range seed {
		m.products[p.ID] = p
	}
	return m
}

func (m *memProducts) Create(_ context.Context, p models.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *memProducts) Update(_ context.Context, p models.Product) error {
	if _, ok := m.products[p.ID]; !ok {
		return repositories.ErrNotFound
	}
	m.products[p.ID] = p
	return nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	if _, ok := m.products[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return models.Product{}, repositories.ErrNotFound
	}
	return p, nil
}

func (m *memProducts) List(_ context.Context, q repositories.ProductQuery) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range m.products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Featured != nil && p.Featured != *q.Featured {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// fakeStats returns canned aggregates; failOn names a method to fail.
type fakeStats struct {
	mu       sync.Mutex
	orders   int
	byStatus map[models.OrderStatus]int
	revenue  float64
	products int
	featured int
	byCat    []domain.CountByKey
	byFeat   []models.FeaturedCount
	prices   models.PriceSummary
	failOn   string
	calls    int
}

func (f *fakeStats) hit(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failOn == name {
		return errStoreDown
	}
	return nil
}

func (f *fakeStats) CountOrders(context.Context) (int, error) {
	return f.orders, f.hit("CountOrders")
}

func (f *fakeStats) CountOrdersByStatus(_ context.Context, s models.OrderStatus) (int, error) {
	return f.byStatus[s], f.hit("CountOrdersByStatus")
}

func (f *fakeStats) SumOrderAmounts(context.Context, models.PaymentStatus) (float64, error) {
	return f.revenue, f.hit("SumOrderAmounts")
}

func (f *fakeStats) CountProducts(context.Context) (int, error) {
	return f.products, f.hit("CountProducts")
}

func (f *fakeStats) CountFeaturedProducts(context.Context) (int, error) {
	return f.featured, f.hit("CountFeaturedProducts")
}

func (f *fakeStats) CountProductsByCategory(context.Context) ([]domain.CountByKey, error) {
	return f.byCat, f.hit("CountProductsByCategory")
}

func (f *fakeStats) CountProductsByFeatured(context.Context) ([]models.FeaturedCount, error) {
	return f.byFeat, f.hit("CountProductsByFeatured")
}

func (f *fakeStats) ProductPriceSummary(context.Context) (models.PriceSummary, error) {
	return f.prices, f.hit("ProductPriceSummary")
}

type memSubscribers struct {
	subs map[string]models.Subscriber
}

func (m *memSubscribers) List(context.Context) ([]models.Subscriber, error) {
	out := []models.Subscriber{}
	for _, s := range m.subs {
		out = append(out, s)
	}
	return out, nil
}

func (m *memSubscribers) Create(_ context.Context, s models.Subscriber) error {
	for _, existing := range m.subs {
		if existing.Email == s.Email {
			return repositories.ErrDuplicate
		}
	}
	m.subs[s.ID] = s
	return nil
}

func (m *memSubscribers) Delete(_ context.Context, id string) error {
	if _, ok := m.subs[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.subs, id)
	return nil
}

type memContacts struct {
	contacts []models.Contact
}

func (m *memContacts) Create(_ context.Context, c models.Contact) error {
	m.contacts = append(m.contacts, c)
	return nil
}

func (m *memContacts) List(context.Context) ([]models.Contact, error) { return m.contacts, nil }

func (m *memContacts) GetByID(_ context.Context, id string) (models.Contact, error) {
	for _, c := range m.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, repositories.ErrNotFound
}

func (m *memContacts) Delete(_ context.Context, id string) error {
	for i, c := range m.contacts {
		if c.ID == id {
			m.contacts = append(m.contacts[:i], m.contacts[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type memUsers struct {
	users map[string]models.User
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]models.User{}} }

func (m *memUsers) List(context.Context) ([]models.User, error) {
	out := []models.User{}
	for _, u := range m.users {
		u.PasswordHash = ""
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	u.PasswordHash = ""
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (m *memUsers) Create(_ context.Context, u models.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repositories.ErrDuplicate
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *memUsers) UpdateRole(_ context.Context, id string, role models.UserRole, now time.Time) error {
	u, ok := m.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.Role, u.UpdatedAt = role, now
	m.users[id] = u
	return nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// recordingViews is an in-memory ViewCache with per-namespace generations
// that remembers invalidations.
type recordingViews struct {
	mu          sync.Mutex
	data        map[string]any
	gens        map[string]int
	invalidated [][]string
}

func newRecordingViews() *recordingViews {
	return &recordingViews{data: map[string]any{}, gens: map[string]int{}}
}

func (v *recordingViews) Load(_ context.Context, ns, key string, dst any) (string, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	slot := fmt.Sprintf("%s|%d|%s", ns, v.gens[ns], key)
	val, ok := v.data[slot]
	if !ok {
		return slot, false
	}
	switch d := dst.(type) {
	case *models.OrderStats:
		*d = val.(models.OrderStats)
	case *models.ProductStats:
		*d = val.(models.ProductStats)
	case *OrderPage:
		*d = val.(OrderPage)
	default:
		return slot, false
	}
	return slot, true
}

func (v *recordingViews) Store(_ context.Context, slot string, value any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data[slot] = value
}

func (v *recordingViews) InvalidatePaths(_ context.Context, paths ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.invalidated = append(v.invalidated, paths)
	for _, p := range paths {
		ns := strings.Trim(p, "/")
		if i := strings.IndexByte(ns, '/'); i >= 0 {
			ns = ns[:i]
		}
		v.gens[ns]++
	}
}

type recordingEvents struct {
	events []events.OrderEvent
	fail   error
}

func (r *recordingEvents) PublishOrderEvent(_ context.Context, e events.OrderEvent) error {
	r.events = append(r.events, e)
	return r.fail
}

type recordingMailer struct {
	sent []mail.Message
	fail error
}

func (r *recordingMailer) Send(_ context.Context, msg mail.Message) error {
	if r.fail != nil {
		return r.fail
	}
	r.sent = append(r.sent, msg)
	return nil
}
