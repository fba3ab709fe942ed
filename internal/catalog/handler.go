package catalog

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExclusionSource yields the caller's active allergen restrictions.
// Implemented by the session manager.
type ExclusionSource interface {
	Exclusions(userID string) ExclusionSet
}

type Handler struct {
	repo       Repository
	exclusions ExclusionSource
}

func NewHandler(repo Repository, exclusions ExclusionSource) *Handler {
	return &Handler{repo: repo, exclusions: exclusions}
}

// --------------------------------------------------
// Allergen list for the allergy selector
// --------------------------------------------------
func (h *Handler) ListAllergens(c *gin.Context) {
	out := make([]gin.H, 0, len(Allergens()))
	for _, a := range Allergens() {
		out = append(out, gin.H{"tag": a, "label": a.Label()})
	}
	c.JSON(http.StatusOK, gin.H{"allergens": out})
}

// --------------------------------------------------
// Student menu, allergen-filtered for the session
// --------------------------------------------------
func (h *Handler) Menu(c *gin.Context) {
	items, err := h.repo.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	available := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}

	// tab badges count every available item, before allergy filtering
	counts := make(map[Category]int, len(Categories()))
	for _, item := range available {
		counts[item.Category]++
	}

	if raw, ok := c.GetQuery("category"); ok {
		category, valid := ParseCategory(raw)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
			return
		}
		section := available[:0:0]
		for _, item := range available {
			if item.Category == category {
				section = append(section, item)
			}
		}
		available = section
	}

	exclusions := h.exclusions.Exclusions(c.GetString("userID"))
	shown := FilterByAllergens(available, exclusions)

	c.JSON(http.StatusOK, gin.H{
		"items":           shown,
		"hidden_count":    len(available) - len(shown),
		"category_counts": counts,
	})
}

// --------------------------------------------------
// Drink pairings for a selected item
// --------------------------------------------------
func (h *Handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	selected, err := h.repo.GetItem(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	items, err := h.repo.ListItems(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"suggestions": PairSuggestions(selected, items),
	})
}
