package voice

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type orderRequest struct {
	Transcript string `json:"transcript"`
}

// --------------------------------------------------
// POST /voice/order: transcript in, cart lines out
// --------------------------------------------------
func (h *Handler) Order(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	intents, matches, err := h.service.OrderFromTranscript(
		c.Request.Context(),
		c.GetString("userID"),
		req.Transcript,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	if matches == nil {
		matches = []Match{}
	}
	if intents == nil {
		intents = []Intent{}
	}

	c.JSON(http.StatusOK, gin.H{
		"transcript": req.Transcript,
		"parsed":     intents,
		"matched":    matches,
	})
}
