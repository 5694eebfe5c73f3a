package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bread-orders/internal/domain"
	"bread-orders/internal/service"
	resp "bread-orders/internal/transport/http/response"
)

type DeliveryPointHandler struct {
	svc *service.DeliveryPointService
}

func NewDeliveryPointHandler(svc *service.DeliveryPointService) *DeliveryPointHandler {
	return &DeliveryPointHandler{svc: svc}
}

// List handles GET /api/delivery-points. Reads are open.
func (h *DeliveryPointHandler) List(c *gin.Context) {
	points, err := h.svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	if points == nil {
		points = []domain.DeliveryPoint{}
	}
	resp.OK(c, http.StatusOK, gin.H{"points": points})
}

type deliveryPointIn struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Address string `json:"address"`
	Info    string `json:"info"`
}

// Create handles POST /api/delivery-points (admin).
func (h *DeliveryPointHandler) Create(c *gin.Context) {
	var in deliveryPointIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, domain.Validation("Corps de requête invalide"))
		return
	}
	id, err := h.svc.Create(service.DeliveryPointInput{
		Name: in.Name, City: in.City, Address: in.Address, Info: in.Info,
	}, adminToken(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, gin.H{"message": "Point de livraison créé", "id": id})
}

// Update handles PATCH /api/delivery-points (admin).
func (h *DeliveryPointHandler) Update(c *gin.Context) {
	var in deliveryPointIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, domain.Validation("Corps de requête invalide"))
		return
	}
	applied, err := h.svc.Update(in.ID, service.DeliveryPointInput{
		Name: in.Name, City: in.City, Address: in.Address, Info: in.Info,
	}, adminToken(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Point de livraison mis à jour", "id": in.ID, "updates": applied})
}

// Delete handles DELETE /api/delivery-points (admin).
func (h *DeliveryPointHandler) Delete(c *gin.Context) {
	var in deliveryPointIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Error(c, domain.Validation("Corps de requête invalide"))
		return
	}
	if err := h.svc.Delete(in.ID, adminToken(c)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, http.StatusOK, gin.H{"message": "Point de livraison supprimé", "id": in.ID})
}
