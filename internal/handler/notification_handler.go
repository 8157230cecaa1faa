package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coride/internal/model"
	"coride/internal/service"
)

// NotificationHandler exposes the session's notification store.
type NotificationHandler struct {
	notifications service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// NotificationsResponse is the visible notification list, most recent first.
type NotificationsResponse struct {
	Notifications []model.Notification `json:"notifications"`
	UnreadCount   int                  `json:"unreadCount"`
}

func (h *NotificationHandler) store(c echo.Context) (*service.NotificationStore, error) {
	return h.notifications.Store(c.Request().Context(), SessionID(c), CurrentUser(c))
}

func snapshot(store *service.NotificationStore) NotificationsResponse {
	return NotificationsResponse{
		Notifications: store.Notifications(),
		UnreadCount:   store.UnreadCount(),
	}
}

// List godoc
// @Summary List notifications of the session user
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} NotificationsResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, snapshot(store))
}

// Add godoc
// @Summary Add a notification for the session user
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.NewNotification true "Notification"
// @Success 201 {object} model.Notification
// @Failure 400 {object} errors.ErrorResponse
// @Router /notifications [post]
func (h *NotificationHandler) Add(c echo.Context) error {
	var req service.NewNotification
	if err := bind(c, &req); err != nil {
		return err
	}

	store, err := h.store(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, store.Add(req))
}

// MarkAsRead godoc
// @Summary Mark a notification as read
// @Description Unknown IDs are ignored.
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} NotificationsResponse
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return respondError(c, err)
	}
	store.MarkAsRead(c.Param("id"))
	return c.JSON(http.StatusOK, snapshot(store))
}

// MarkAllAsRead godoc
// @Summary Mark every notification as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} NotificationsResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	store, err := h.store(c)
	if err != nil {
		return respondError(c, err)
	}
	store.MarkAllAsRead()
	return c.JSON(http.StatusOK, snapshot(store))
}
