package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bread-orders/internal/core/auth"
	"bread-orders/internal/domain"
	"bread-orders/internal/service"
)

const testAdminToken = "test-admin-token"

// Minimal in-memory store and mailer backing handler tests.

type memOrderRepo struct {
	mu     sync.Mutex
	orders map[string]domain.Order
}

func newMemOrderRepo() *memOrderRepo { return &memOrderRepo{orders: map[string]domain.Order{}} }

func (r *memOrderRepo) Create(o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

func (r *memOrderRepo) FindByID(id string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *memOrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) ListAll() ([]domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Order
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *memOrderRepo) Update(o *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID] = *o
	return nil
}

func (r *memOrderRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	return nil
}

type memSeasonRepo struct{ seasons []domain.Season }

func (r *memSeasonRepo) Any() (bool, error)            { return len(r.seasons) > 0, nil }
func (r *memSeasonRepo) List() ([]domain.Season, error) { return r.seasons, nil }

type memMailer struct{ sent int }

func (m *memMailer) Send(to, subject, body string) error { m.sent++; return nil }

func newTestEngine(orders *memOrderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	seasons := &memSeasonRepo{seasons: []domain.Season{{ID: "s1", Name: "Hiver 2026"}}}
	svc := service.NewOrderService(orders, seasons, auth.NewAdminGate(testAdminToken), &memMailer{}, zap.NewNop(), service.Notify{})
	h := NewOrderHandler(svc)

	r := gin.New()
	r.GET("/api/orders", h.List)
	r.POST("/api/orders", h.Create)
	r.PATCH("/api/orders", h.Update)
	r.DELETE("/api/orders", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestOrdersPost_Create(t *testing.T) {
	orders := newMemOrderRepo()
	r := newTestEngine(orders)

	rr := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"name":  "Ana",
		"email": "Ana@X.com",
		"date":  "2026-09-15",
		"items": []gin.H{{"name": "Pain 1kg", "quantity": 2, "price": 4.5}},
	}, nil)
	if rr.Code != http.StatusCreated {
		t.Fatalf("status: got %d body %s", rr.Code, rr.Body.String())
	}
	var out struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil || out.OrderID == "" {
		t.Fatalf("missing orderId in %s", rr.Body.String())
	}
	o, _ := orders.FindByID(out.OrderID)
	if o == nil || o.Email != "ana@x.com" {
		t.Fatalf("order not stored normalized: %+v", o)
	}
}

func TestOrdersPost_CreateEmptyItems(t *testing.T) {
	r := newTestEngine(newMemOrderRepo())

	rr := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{
		"name": "Ana", "email": "a@b.com", "date": "2026-09-15", "items": []gin.H{},
	}, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d body %s", rr.Code, rr.Body.String())
	}
}

func TestOrdersPost_CancelMode(t *testing.T) {
	orders := newMemOrderRepo()
	far := time.Now().Add(96 * time.Hour).UTC().Format(time.RFC3339)
	orders.orders["o1"] = domain.Order{ID: "o1", Name: "Ana", Email: "ana@x.com", Date: far,
		Items: []domain.OrderItem{{Name: "Pain 1kg", Quantity: 1, Price: 4.5}}}
	r := newTestEngine(orders)

	rr := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{"orderId": "o1", "email": "ANA@X.COM"}, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", rr.Code, rr.Body.String())
	}
	if o, _ := orders.FindByID("o1"); o != nil {
		t.Fatalf("order should be removed")
	}
}

func TestOrdersPost_CancelWrongOwner(t *testing.T) {
	orders := newMemOrderRepo()
	orders.orders["o1"] = domain.Order{ID: "o1", Email: "ana@x.com", Date: "2099-01-01",
		Items: []domain.OrderItem{{Name: "Pain 1kg", Quantity: 1, Price: 4.5}}}
	r := newTestEngine(orders)

	rr := doJSON(t, r, http.MethodPost, "/api/orders", gin.H{"orderId": "o1", "email": "autre@x.com"}, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status: got %d body %s", rr.Code, rr.Body.String())
	}
}

func TestOrdersGet_FullListRequiresToken(t *testing.T) {
	r := newTestEngine(newMemOrderRepo())

	if rr := doJSON(t, r, http.MethodGet, "/api/orders", nil, nil); rr.Code != http.StatusUnauthorized {
		t.Fatalf("without token: got %d", rr.Code)
	}
	rr := doJSON(t, r, http.MethodGet, "/api/orders", nil, map[string]string{"x-admin-token": testAdminToken})
	if rr.Code != http.StatusOK {
		t.Fatalf("with header token: got %d body %s", rr.Code, rr.Body.String())
	}
	// the query-parameter fallback works too
	if rr := doJSON(t, r, http.MethodGet, "/api/orders?adminToken="+testAdminToken, nil, nil); rr.Code != http.StatusOK {
		t.Fatalf("with query token: got %d", rr.Code)
	}
}

func TestOrdersPatch_StripsUserID(t *testing.T) {
	orders := newMemOrderRepo()
	orders.orders["o1"] = domain.Order{ID: "o1", Email: "ana@x.com", UserID: "u1",
		Items: []domain.OrderItem{{Name: "Pain 1kg", Quantity: 1, Price: 4.5}}}
	r := newTestEngine(orders)

	rr := doJSON(t, r, http.MethodPatch, "/api/orders", gin.H{
		"orderId": "o1",
		"updates": gin.H{"userId": "u2", "phone": "0700000000"},
	}, map[string]string{"x-admin-token": testAdminToken})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", rr.Code, rr.Body.String())
	}
	o, _ := orders.FindByID("o1")
	if o.UserID != "u1" {
		t.Fatalf("userId mutated: %q", o.UserID)
	}
	if o.Phone != "0700000000" {
		t.Fatalf("phone not applied: %q", o.Phone)
	}
}

func TestOrdersDelete_AdminOnly(t *testing.T) {
	orders := newMemOrderRepo()
	orders.orders["o1"] = domain.Order{ID: "o1", Name: "Ana", Email: "ana@x.com",
		Items: []domain.OrderItem{{Name: "Pain 1kg", Quantity: 1, Price: 4.5}}}
	r := newTestEngine(orders)

	if rr := doJSON(t, r, http.MethodDelete, "/api/orders", gin.H{"orderId": "o1"}, nil); rr.Code != http.StatusUnauthorized {
		t.Fatalf("without token: got %d", rr.Code)
	}
	rr := doJSON(t, r, http.MethodDelete, "/api/orders", gin.H{"orderId": "o1", "message": "Rupture de stock"},
		map[string]string{"x-admin-token": testAdminToken})
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d body %s", rr.Code, rr.Body.String())
	}
	if rr := doJSON(t, r, http.MethodDelete, "/api/orders", gin.H{"orderId": "o1"},
		map[string]string{"x-admin-token": testAdminToken}); rr.Code != http.StatusNotFound {
		t.Fatalf("second delete: got %d", rr.Code)
	}
}
