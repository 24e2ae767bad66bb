package handlers

import (
	"net/http"

	"restaurant-menu-api/menu"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"
	"restaurant-menu-api/navigation"

	"github.com/gin-gonic/gin"
)

// featuredCount is how many dishes the home screens preview
const featuredCount = 3

// ListMenu returns the menu, optionally narrowed to one course
func (h *Handler) ListMenu(c *gin.Context) {
	filter, err := menu.ParseCourseFilter(c.Query("course"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	items := menu.Filter(h.Store.MenuItems(), filter)
	c.JSON(http.StatusOK, gin.H{
		"course": filter,
		"count":  len(items),
		"items":  items,
	})
}

// GetMenuSections returns the menu grouped by course
func (h *Handler) GetMenuSections(c *gin.Context) {
	items := h.Store.MenuItems()
	c.JSON(http.StatusOK, gin.H{
		"count":    len(items),
		"sections": menu.GroupByCourse(items),
	})
}

// GetMenuItem returns one dish's details
func (h *Handler) GetMenuItem(c *gin.Context) {
	item, ok := h.Store.Item(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item, "display_price": item.DisplayPrice()})
}

// GetStats returns item counts and average prices per course
func (h *Handler) GetStats(c *gin.Context) {
	st := menu.ComputeStats(h.Store.MenuItems())
	c.JSON(http.StatusOK, gin.H{"stats": st, "formatted": st.Formatted()})
}

// GetHome is the landing dashboard for either role
func (h *Handler) GetHome(c *gin.Context) {
	role, _ := middleware.GetRole(c)
	snap := h.Store.Snapshot()

	name := middleware.GetUsername(c)
	if name == "" && snap.User != nil {
		name = snap.User.Username
	}

	screen := navigation.ScreenUserHome
	welcome := "Welcome, " + orDefault(name, "Guest")
	if role == models.RoleChef {
		screen = navigation.ScreenHome
		welcome = "Welcome, Chef " + orDefault(name, "Christoffel")
	}

	st := menu.ComputeStats(snap.Items)
	c.JSON(http.StatusOK, gin.H{
		"screen":       screen,
		"welcome":      welcome,
		"stats":        st,
		"formatted":    st.Formatted(),
		"featured":     menu.Featured(snap.Items, featuredCount),
		"destinations": navigation.DestinationsFrom(screen, role),
	})
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
