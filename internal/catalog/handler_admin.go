package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Storage uploads item photos and returns their public URL.
type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type AdminHandler struct {
	repo    Repository
	storage Storage
}

func NewAdminHandler(repo Repository, storage Storage) *AdminHandler {
	return &AdminHandler{repo: repo, storage: storage}
}

// --------------------------------------------------
// Admin: flip item availability
// --------------------------------------------------
func (h *AdminHandler) ToggleAvailability(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	item, err := h.repo.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		return
	}

	if err := h.repo.SetAvailability(ctx, id, !item.Available); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        id,
		"available": !item.Available,
	})
}

// --------------------------------------------------
// Admin: upload item photo
// --------------------------------------------------
func (h *AdminHandler) UploadImage(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := h.repo.GetItem(ctx, id); err != nil {
		if errors.Is(err, ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	if err := ValidateImageExtension(header.Filename); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	key := fmt.Sprintf(
		"menu-items/%s/%s%s",
		id,
		uuid.New().String(),
		strings.ToLower(filepath.Ext(header.Filename)),
	)

	url, err := h.storage.Upload(ctx, key, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	if err := h.repo.SetImageURL(ctx, id, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    id,
		"image": url,
	})
}
