package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ── Menu Management ─────────────────────────────────────────────────────────

type AddDishRequest struct {
	Name        string    `json:"name" binding:"notblank"`
	Description string    `json:"description" binding:"notblank"`
	Course      string    `json:"course" binding:"notblank"`
	Price       priceText `json:"price" binding:"notblank"`
}

// AddDish puts a new dish at the end of the menu
func (h *Handler) AddDish(c *gin.Context) {
	var req AddDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	course, err := models.ParseCourse(req.Course)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	price, err := parsePrice(string(req.Price))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Course:      course,
		Price:       price,
	}
	if err := h.editor(c).AddMenuItem(item); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Dish added",
		"item":    item,
		"count":   h.Store.Len(),
	})
}

// RemoveDish removes a single dish by id. An unknown id removes nothing.
func (h *Handler) RemoveDish(c *gin.Context) {
	removed := h.editor(c).RemoveMenuItem(c.Param("id"))
	c.JSON(http.StatusOK, removalResponse(removed, h.Store.Len()))
}

type RemoveDishesRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// RemoveDishes removes every selected dish
func (h *Handler) RemoveDishes(c *gin.Context) {
	var req RemoveDishesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}
	removed := h.editor(c).RemoveMenuItems(req.IDs)
	c.JSON(http.StatusOK, removalResponse(removed, h.Store.Len()))
}

// RemoveAllDishes clears the menu
func (h *Handler) RemoveAllDishes(c *gin.Context) {
	removed := h.editor(c).Clear()
	c.JSON(http.StatusOK, removalResponse(removed, h.Store.Len()))
}

func removalResponse(removed, remaining int) gin.H {
	msg := "Dishes removed"
	if removed == 0 {
		msg = "No matching dishes; nothing removed"
	}
	return gin.H{"message": msg, "removed": removed, "remaining": remaining}
}

type ReplaceMenuRequest struct {
	Items []models.MenuItem `json:"items" binding:"required"`
}

// ReplaceMenu swaps the whole menu. Items without an id get one assigned.
func (h *Handler) ReplaceMenu(c *gin.Context) {
	var req ReplaceMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}
	for i := range req.Items {
		if strings.TrimSpace(req.Items[i].ID) == "" {
			req.Items[i].ID = uuid.NewString()
		}
		req.Items[i].Name = strings.TrimSpace(req.Items[i].Name)
	}
	if err := h.editor(c).SetMenuItems(req.Items); err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu replaced", "count": len(req.Items), "items": req.Items})
}

// GetHistory returns the change journal, newest first
func (h *Handler) GetHistory(c *gin.Context) {
	limit := 0
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}
	changes, err := h.Journal.List(c.Request.Context(), limit)
	if err != nil {
		h.Log.Error().Err(err).Msg("journal read failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(changes), "changes": changes})
}
