package chatbot

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/chatbot
// --------------------------------------------------
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Query       string `json:"query"`
		ContextType string `json:"contextType"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
		return
	}

	response, err := h.service.Respond(c.Request.Context(), c.GetString("userID"), req.Query, req.ContextType)
	if err != nil {
		if errors.Is(err, ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Query is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during chatbot query"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}
