package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"bread-orders/internal/transport/http/handler"
	mdw "bread-orders/internal/transport/http/middleware"
)

type Handlers struct {
	Orders         *handler.OrderHandler
	Users          *handler.UserHandler
	DeliveryPoints *handler.DeliveryPointHandler
	Seasons        *handler.SeasonHandler
}

func New(l *zap.Logger, h Handlers) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(rate.Limit(200), 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		ginzap.RecoveryWithZap(l, true),
		mdw.Metrics(),
		mdw.AccessLog(l),
		cors.Default(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(mdw.RateLimitPerIP(rate.Limit(20), 40))

	api.GET("/orders", h.Orders.List)
	api.POST("/orders", h.Orders.Create)
	api.PATCH("/orders", h.Orders.Update)
	api.DELETE("/orders", h.Orders.Delete)

	api.GET("/delivery-points", h.DeliveryPoints.List)
	api.POST("/delivery-points", h.DeliveryPoints.Create)
	api.PATCH("/delivery-points", h.DeliveryPoints.Update)
	api.DELETE("/delivery-points", h.DeliveryPoints.Delete)

	api.POST("/save-user", h.Users.Register)
	api.GET("/find-user", h.Users.Find)
	api.POST("/change-password", h.Users.ChangePassword)
	api.POST("/update-user", h.Users.Update)

	api.GET("/seasons", h.Seasons.List)

	return r
}
