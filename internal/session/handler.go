package session

import (
	"errors"
	"net/http"

	"github.com/abinayasrim021-droid/shan-eats-assist/internal/catalog"
	"github.com/abinayasrim021-droid/shan-eats-assist/internal/order"

	"github.com/gin-gonic/gin"
)

// Handler serves the cart and profile routes. All of them operate on
// the caller's session, resolved from the auth middleware's claims.
type Handler struct {
	sessions *Manager
	catalog  catalog.Repository
}

func NewHandler(sessions *Manager, catalogRepo catalog.Repository) *Handler {
	return &Handler{sessions: sessions, catalog: catalogRepo}
}

func (h *Handler) session(c *gin.Context) *Session {
	return h.sessions.Get(
		c.GetString("userID"),
		c.GetString("userEmail"),
		c.GetString("userName"),
	)
}

// --------------------------------------------------
// GET /cart
// --------------------------------------------------
func (h *Handler) Cart(c *gin.Context) {
	s := h.session(c)
	lines := s.CartLines()

	c.JSON(http.StatusOK, gin.H{
		"lines":             lines,
		"total":             s.CartTotal(),
		"count":             s.CartCount(),
		"estimated_minutes": order.EstimateMinutes(lines),
	})
}

// --------------------------------------------------
// POST /cart/items: add one unit
// --------------------------------------------------
func (h *Handler) AddCartItem(c *gin.Context) {
	var req struct {
		ItemID string `json:"item_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "item_id is required"})
		return
	}

	item, err := h.catalog.GetItem(c.Request.Context(), req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		return
	}
	if !item.Available {
		c.JSON(http.StatusConflict, gin.H{"error": "item is not available"})
		return
	}

	s := h.session(c)
	s.AddItem(item)

	c.JSON(http.StatusCreated, gin.H{
		"lines": s.CartLines(),
		"total": s.CartTotal(),
		"count": s.CartCount(),
	})
}

// --------------------------------------------------
// PATCH /cart/items/:id: set quantity (<=0 removes)
// --------------------------------------------------
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s := h.session(c)
	s.SetQuantity(c.Param("id"), req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"lines": s.CartLines(),
		"total": s.CartTotal(),
		"count": s.CartCount(),
	})
}

// --------------------------------------------------
// DELETE /cart/items/:id: absent line is a no-op
// --------------------------------------------------
func (h *Handler) RemoveCartItem(c *gin.Context) {
	s := h.session(c)
	s.RemoveItem(c.Param("id"))

	c.JSON(http.StatusOK, gin.H{
		"lines": s.CartLines(),
		"total": s.CartTotal(),
		"count": s.CartCount(),
	})
}

// --------------------------------------------------
// DELETE /cart
// --------------------------------------------------
func (h *Handler) ClearCart(c *gin.Context) {
	s := h.session(c)
	s.ClearCart()

	c.JSON(http.StatusOK, gin.H{"lines": []struct{}{}, "total": 0, "count": 0})
}

// --------------------------------------------------
// GET /profile
// --------------------------------------------------
func (h *Handler) Profile(c *gin.Context) {
	s := h.session(c)

	c.JSON(http.StatusOK, gin.H{
		"email":           s.Email(),
		"name":            s.Name(),
		"allergies":       s.Exclusions().Tags(),
		"selected_budget": s.Budget(),
	})
}

// --------------------------------------------------
// PATCH /profile/allergies: replace wholesale
// --------------------------------------------------
func (h *Handler) UpdateAllergies(c *gin.Context) {
	var req struct {
		Allergies []string `json:"allergies"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s := h.session(c)
	s.SetExclusions(catalog.NewExclusionSet(req.Allergies))

	c.JSON(http.StatusOK, gin.H{"allergies": s.Exclusions().Tags()})
}

// --------------------------------------------------
// PATCH /profile/budget
// --------------------------------------------------
func (h *Handler) UpdateBudget(c *gin.Context) {
	var req struct {
		Budget int `json:"budget"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s := h.session(c)
	s.SetBudget(req.Budget)

	c.JSON(http.StatusOK, gin.H{"selected_budget": s.Budget()})
}
