package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bread-orders/internal/domain"
	"bread-orders/internal/service"
	resp "bread-orders/internal/transport/http/response"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// List handles GET /api/orders. With ?userId= it returns that user's
// orders; without it the full list, admin token required.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Query("userId"), adminToken(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	resp.OK(c, http.StatusOK, gin.H{"orders": orders})
}

type orderPostIn struct {
	OrderID       string             `json:"orderId"`
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Date          string             `json:"date"`
	SeasonID      string             `json:"seasonId"`
	SeasonName    string             `json:"seasonName"`
	SeasonEndDate string             `json:"seasonEndDate"`
	Items         []domain.OrderItem `json:"items"`
	UserID        string             `json:"userId"`
}

// Create handles POST /api/orders. The endpoint is double-duty like the
// form it serves: a body with items creates an order, a body with an
// orderId and no items is an owner cancellation.
func (h *OrderHandler) Create(c *gin.Context) {
	var in orderPostIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, domain.Validation("Corps de requête invalide"))
		return
	}

	if in.OrderID != "" && len(in.Items) == 0 {
		if in.Email == "" {
			resp.Error(c, domain.Validation("orderId et email requis pour annulation"))
			return
		}
		if err := h.svc.CancelByOwner(in.OrderID, in.Email); err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, http.StatusOK, gin.H{"ok": true, "orderId": in.OrderID})
		return
	}

	id, err := h.svc.Create(service.CreateOrderInput{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Date:          in.Date,
		SeasonID:      in.SeasonID,
		SeasonName:    in.SeasonName,
		SeasonEndDate: in.SeasonEndDate,
		Items:         in.Items,
		UserID:        in.UserID,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, gin.H{"message": "Commande enregistrée", "orderId": id})
}

type orderPatchIn struct {
	OrderID string         `json:"orderId"`
	Updates map[string]any `json:"updates"`
}

// Update handles PATCH /api/orders (admin).
func (h *OrderHandler) Update(c *gin.Context) {
	var in orderPatchIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, domain.Validation("Corps de requête invalide"))
		return
	}
	applied, err := h.svc.AdminUpdate(in.OrderID, in.Updates, adminToken(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Commande mise à jour", "orderId": in.OrderID, "updates": applied})
}

type orderDeleteIn struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// Delete handles DELETE /api/orders (admin).
func (h *OrderHandler) Delete(c *gin.Context) {
	var in orderDeleteIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, domain.Validation("Corps de requête invalide"))
		return
	}
	if err := h.svc.AdminDelete(in.OrderID, in.Message, adminToken(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Commande supprimée", "orderId": in.OrderID})
}
