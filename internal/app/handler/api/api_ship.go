package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"warp_ships/internal/app/ds"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ShipService is what the ship endpoints need from the service layer.
type ShipService interface {
	ListShips(ctx context.Context, filter ds.ListShipsFilter) ([]ds.Ship, error)
	AddShip(ctx context.Context, newShip ds.NewShip) (ds.Ship, error)
	RemoveShip(ctx context.Context, id int) (ds.Ship, error)
}

type ShipHandler struct {
	Service ShipService
	Timeout time.Duration
}

// createShipRequest - тело POST /ships; указатели нужны, чтобы отличить
// отсутствующее поле от нулевого значения
type createShipRequest struct {
	Name      *string `json:"name" binding:"required"`
	WarpSpeed *int    `json:"warp_speed" binding:"required"`
	Faction   *string `json:"faction"`
}

func (r createShipRequest) newShip() (ds.NewShip, error) {
	if strings.TrimSpace(*r.Name) == "" {
		return ds.NewShip{}, errors.New("name must not be empty")
	}
	return ds.NewShip{
		Name:      *r.Name,
		WarpSpeed: *r.WarpSpeed,
		Faction:   r.Faction,
	}, nil
}

func (h *ShipHandler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.Timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.Timeout)
}

// GetShipsAPI - GET /ships - список кораблей с фильтром по имени

// @Summary List ships
// @Description Return all ships, or those whose name contains the given substring (case-sensitive)
// @Tags ships
// @Produce json
// @Param name query string false "Name substring"
// @Success 200 {array} ds.Ship
// @Failure 500 {object} api.ErrorResponse
// @Failure 504 {object} api.ErrorResponse
// @Router /ships [get]
func (h *ShipHandler) GetShipsAPI(c *gin.Context) {
	filter := ds.ListShipsFilter{}
	if name, ok := c.GetQuery("name"); ok {
		filter.Name = &name
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	ships, err := h.Service.ListShips(ctx, filter)
	if err != nil {
		Reject(c, FromServiceError(err))
		return
	}

	c.JSON(http.StatusOK, ships)
}

// CreateShipAPI - POST /ships - создание корабля

// @Summary Create a ship
// @Description Insert a ship; the id is assigned by storage
// @Tags ships
// @Accept json
// @Produce json
// @Param ship body object{name=string,warp_speed=int,faction=string} true "New ship"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Failure 504 {object} api.ErrorResponse
// @Router /ships [post]
func (h *ShipHandler) CreateShipAPI(c *gin.Context) {
	var req createShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Reject(c, ErrBodyParse.withCause(err))
		return
	}
	newShip, err := req.newShip()
	if err != nil {
		Reject(c, ErrBodyParse.withCause(err))
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	ship, err := h.Service.AddShip(ctx, newShip)
	if err != nil {
		Reject(c, FromServiceError(err))
		return
	}

	logrus.Infof("CreateShipAPI: created ship id=%d name=%q", ship.ID, ship.Name)
	c.JSON(http.StatusOK, ship)
}

// DeleteShipAPI - DELETE /ships/:id - удаление корабля

// @Summary Delete a ship
// @Description Remove a ship and return the removed record
// @Tags ships
// @Produce json
// @Param id path int true "Ship ID"
// @Success 200 {object} ds.Ship
// @Failure 400 {object} api.ErrorResponse
// @Failure 404 {object} api.ErrorResponse
// @Failure 500 {object} api.ErrorResponse
// @Failure 504 {object} api.ErrorResponse
// @Router /ships/{id} [delete]
func (h *ShipHandler) DeleteShipAPI(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		Reject(c, ErrInvalidID.withCause(err))
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	ship, err := h.Service.RemoveShip(ctx, id)
	if err != nil {
		Reject(c, FromServiceError(err))
		return
	}

	logrus.Infof("DeleteShipAPI: removed ship id=%d", ship.ID)
	c.JSON(http.StatusOK, ship)
}
