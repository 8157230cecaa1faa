package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coride/internal/service"
)

// MessageHandler handles direct message endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Inbox godoc
// @Summary List messages of the session user
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Message
// @Failure 401 {object} errors.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) Inbox(c echo.Context) error {
	messages, err := h.messageService.Inbox(c.Request().Context(), CurrentUser(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// Conversation godoc
// @Summary Messages exchanged with another user
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Other user ID"
// @Success 200 {array} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /messages/with/{userId} [get]
func (h *MessageHandler) Conversation(c echo.Context) error {
	messages, err := h.messageService.Conversation(c.Request().Context(), CurrentUser(c), c.Param("userId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// Send godoc
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.SendMessageInput true "Message"
// @Success 201 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	var req service.SendMessageInput
	if err := bind(c, &req); err != nil {
		return err
	}

	message, err := h.messageService.Send(c.Request().Context(), CurrentUser(c), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, message)
}

// MarkRead godoc
// @Summary Mark a received message as read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	if err := h.messageService.MarkRead(c.Request().Context(), CurrentUser(c), c.Param("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "message marked as read"})
}
