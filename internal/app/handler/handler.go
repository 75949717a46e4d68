package handler

import (
	"time"

	"warp_ships/internal/app/handler/api"
	"warp_ships/internal/app/handler/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	ShipAPIHandler *api.ShipHandler
	Metrics        *middleware.Metrics
}

func NewHandler(svc api.ShipService, timeout time.Duration) *Handler {
	return &Handler{
		ShipAPIHandler: &api.ShipHandler{Service: svc, Timeout: timeout},
		Metrics:        middleware.NewMetrics(),
	}
}

// NewRouter builds a gin engine with the middleware chain and all routes.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		// Metrics до Recovery: паники учитываются со статусом 500
		h.Metrics.Middleware(),
		middleware.Recovery(),
	)
	h.SetupRoutes(router)
	return router
}

func (h *Handler) SetupRoutes(router *gin.Engine) {
	// Домен кораблей
	ships := router.Group("/ships")
	{
		ships.GET("", h.ShipAPIHandler.GetShipsAPI)
		ships.POST("", h.ShipAPIHandler.CreateShipAPI)
		ships.DELETE("/:id", h.ShipAPIHandler.DeleteShipAPI)
	}

	router.GET("/metrics", gin.WrapH(h.Metrics.Handler()))

	router.NoRoute(func(c *gin.Context) {
		api.Reject(c, api.ErrRouteNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		api.Reject(c, api.ErrMethodNotAllowed)
	})
}
