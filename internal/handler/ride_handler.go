package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coride/internal/errors"
	"coride/internal/service"
)

// RideHandler handles ride endpoints.
type RideHandler struct {
	rideService service.RideService
}

// NewRideHandler creates a new ride handler.
func NewRideHandler(rideService service.RideService) *RideHandler {
	return &RideHandler{rideService: rideService}
}

// ListRides godoc
// @Summary List rides
// @Tags rides
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Ride
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rides [get]
func (h *RideHandler) ListRides(c echo.Context) error {
	rides, err := h.rideService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rides)
}

// SearchRides godoc
// @Summary Search rides by route and time
// @Description Case-insensitive substring match on locations, exact match on time. No match returns an empty array.
// @Tags rides
// @Produce json
// @Security BearerAuth
// @Param endLocation query string true "Destination (at least 2 characters)"
// @Param startLocation query string false "Departure point"
// @Param time query string false "Departure time, HH:MM"
// @Success 200 {array} model.Ride
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /rides/search [get]
func (h *RideHandler) SearchRides(c echo.Context) error {
	var criteria service.SearchCriteria
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &criteria); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid query parameters",
			Code:  "INVALID_REQUEST",
		})
	}

	rides, err := h.rideService.Search(c.Request().Context(), criteria)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rides)
}

// GetRide godoc
// @Summary Get ride by id
// @Tags rides
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ride ID"
// @Success 200 {object} model.Ride
// @Failure 404 {object} errors.ErrorResponse
// @Router /rides/{id} [get]
func (h *RideHandler) GetRide(c echo.Context) error {
	ride, err := h.rideService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ride)
}

// OfferRide godoc
// @Summary Offer a ride
// @Tags rides
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.OfferRideInput true "Ride data"
// @Success 201 {object} model.Ride
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /rides [post]
func (h *RideHandler) OfferRide(c echo.Context) error {
	var req service.OfferRideInput
	if err := bind(c, &req); err != nil {
		return err
	}

	ride, err := h.rideService.Offer(c.Request().Context(), CurrentUser(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, ride)
}

// RequestSeat godoc
// @Summary Request a seat in a ride
// @Description Creates a pending request and notifies the driver.
// @Tags rides
// @Produce json
// @Security BearerAuth
// @Param id path string true "Ride ID"
// @Success 201 {object} model.RideRequest
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /rides/{id}/requests [post]
func (h *RideHandler) RequestSeat(c echo.Context) error {
	request, err := h.rideService.RequestSeat(c.Request().Context(), CurrentUser(c), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, request)
}

// Dashboard godoc
// @Summary Dashboard of the session user
// @Tags rides
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *RideHandler) Dashboard(c echo.Context) error {
	dashboard, err := h.rideService.Dashboard(c.Request().Context(), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, dashboard)
}
