package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ChatbotHandler points clients at the external assistant.
type ChatbotHandler struct {
	url string
}

// NewChatbotHandler creates a handler for the chatbot at url.
func NewChatbotHandler(url string) *ChatbotHandler {
	return &ChatbotHandler{url: url}
}

// ChatbotResponse holds the chatbot location.
type ChatbotResponse struct {
	URL string `json:"url"`
}

// Chatbot godoc
// @Summary Chatbot location
// @Tags chatbot
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ChatbotResponse
// @Router /chatbot [get]
func (h *ChatbotHandler) Chatbot(c echo.Context) error {
	return c.JSON(http.StatusOK, ChatbotResponse{URL: h.url})
}
