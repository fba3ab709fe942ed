package order

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
// POST /orders: checkout the session cart
// --------------------------------------------------
func (h *Handler) Checkout(c *gin.Context) {
	o, err := h.service.Checkout(
		c.Request.Context(),
		c.GetString("userID"),
		c.GetString("userEmail"),
		c.GetString("userName"),
	)
	if err != nil {
		if errors.Is(err, ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"order": o})
}

// --------------------------------------------------
// GET /orders: the caller's orders, newest first
// --------------------------------------------------
func (h *Handler) ListMine(c *gin.Context) {
	orders, err := h.service.ListForStudent(c.Request.Context(), c.GetString("userEmail"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load orders"})
		return
	}
	if orders == nil {
		orders = []*Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// --------------------------------------------------
// GET /orders/:id
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	o, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load order"})
		return
	}

	// students only see their own orders
	if role := c.GetString("userRole"); role != "ADMIN" && o.StudentEmail != c.GetString("userEmail") {
		c.JSON(http.StatusNotFound, gin.H{"error": ErrOrderNotFound.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": o})
}
