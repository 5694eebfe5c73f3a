package service

import (
	"errors"
	"sort"
	"sync"

	"bread-orders/internal/domain"
)

// In-memory fakes standing in for the store and the mailer.

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]domain.Order
	err    error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]domain.Order{}}
}

func (r *fakeOrderRepo) Create(o *domain.Order) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) FindByID(id string) (*domain.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *fakeOrderRepo) ListAll() ([]domain.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *fakeOrderRepo) Update(o *domain.Order) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

func sortNewestFirst(orders []domain.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

type fakeSeasonRepo struct {
	seasons []domain.Season
	err     error
}

func (r *fakeSeasonRepo) Any() (bool, error) {
	if r.err != nil {
		return false, r.err
	}
	return len(r.seasons) > 0, nil
}

func (r *fakeSeasonRepo) List() ([]domain.Season, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.seasons, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]domain.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]domain.User{}}
}

func (r *fakeUserRepo) Create(u *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) FindByID(id string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = *u
	return nil
}

type fakePointRepo struct {
	mu     sync.Mutex
	points map[string]domain.DeliveryPoint
	err    error
}

func newFakePointRepo() *fakePointRepo {
	return &fakePointRepo{points: map[string]domain.DeliveryPoint{}}
}

func (r *fakePointRepo) Create(p *domain.DeliveryPoint) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.points[p.ID] = *p
	return nil
}

func (r *fakePointRepo) FindByID(id string) (*domain.DeliveryPoint, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.points[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePointRepo) List() ([]domain.DeliveryPoint, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.DeliveryPoint
	for _, p := range r.points {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePointRepo) Update(p *domain.DeliveryPoint) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.points[p.ID] = *p
	return nil
}

func (r *fakePointRepo) Delete(id string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.points, id)
	return nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return m.err
}

var errStore = errors.New("store unavailable")
