package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bread-orders/internal/domain"
	"bread-orders/internal/service"
	resp "bread-orders/internal/transport/http/response"
)

type SeasonHandler struct {
	svc *service.SeasonService
}

func NewSeasonHandler(svc *service.SeasonService) *SeasonHandler {
	return &SeasonHandler{svc: svc}
}

// List handles GET /api/seasons.
func (h *SeasonHandler) List(c *gin.Context) {
	seasons, err := h.svc.List()
	if err != nil {
		resp.Error(c, err)
		return
	}
	if seasons == nil {
		seasons = []domain.Season{}
	}
	resp.OK(c, http.StatusOK, gin.H{"seasons": seasons})
}
