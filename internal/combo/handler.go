package combo

import (
	"net/http"
	"strconv"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service    *Service
	exclusions catalog.ExclusionSource
}

func NewHandler(service *Service, exclusions catalog.ExclusionSource) *Handler {
	return &Handler{service: service, exclusions: exclusions}
}

// --------------------------------------------------
// Budget optimizer: GET /combos?budget=N
// --------------------------------------------------
func (h *Handler) Suggest(c *gin.Context) {
	budget, err := strconv.Atoi(c.Query("budget"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "budget must be a number"})
		return
	}

	exclusions := h.exclusions.Exclusions(c.GetString("userID"))

	combos, err := h.service.Suggest(c.Request.Context(), budget, exclusions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	// an empty result is a valid answer, not a failure
	if combos == nil {
		combos = []Combo{}
	}

	c.JSON(http.StatusOK, gin.H{
		"budget":  budget,
		"presets": BudgetPresets,
		"combos":  combos,
	})
}
