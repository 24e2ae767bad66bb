package handlers

import (
	"net/http"

	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"
	"restaurant-menu-api/navigation"

	"github.com/gin-gonic/gin"
)

type faqItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

var faqItems = []faqItem{
	{
		Question: "How do I add a new menu item?",
		Answer:   `Go to the Add Dish screen and fill in the dish name, course, description, and price. Then tap "Add Dish".`,
	},
	{
		Question: "How do I remove menu items?",
		Answer:   `Go to the Remove Dish screen, select the items you want to remove, and tap "Remove Selected".`,
	},
	{
		Question: "How do I filter the menu?",
		Answer:   "Go to the Filter screen and select a course (Starter, Main, or Dessert) to filter the menu items.",
	},
	{
		Question: "How do I view the full menu?",
		Answer:   "Go to the Menu screen to see all menu items organized by course.",
	},
	{
		Question: "What courses are available?",
		Answer:   "The app supports three courses: Starter, Main, and Dessert.",
	},
}

const supportContact = "For additional help, please contact Chef Christoffel's support team on WWW.christoffel.co.za."

// callerRole is the token's role, or User for anonymous callers
func callerRole(c *gin.Context) models.UserRole {
	if role, ok := middleware.GetRole(c); ok {
		return role
	}
	return models.RoleUser
}

// GetHelp returns the FAQ and where the caller can go from the help screen
func (h *Handler) GetHelp(c *gin.Context) {
	role := callerRole(c)
	c.JSON(http.StatusOK, gin.H{
		"faq":          faqItems,
		"contact":      supportContact,
		"role":         role,
		"destinations": navigation.DestinationsFrom(navigation.ScreenHelp, role),
	})
}

// GetNavigation returns the full navigation table for informational purposes
func (h *Handler) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"navigation":  navigation.All(),
		"screens":     navigation.Screens,
		"description": "Screens and the role allowed to move between them",
	})
}

// GetScreen reports whether the caller may open a screen and where it leads
func (h *Handler) GetScreen(c *gin.Context) {
	screen, err := navigation.ParseScreen(c.Param("screen"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	role := callerRole(c)
	if !navigation.CanView(screen, role) {
		c.JSON(http.StatusForbidden, gin.H{
			"error":  "Screen '" + string(screen) + "' is not available to role '" + string(role) + "'",
			"screen": screen,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"screen":       screen,
		"role":         role,
		"destinations": navigation.DestinationsFrom(screen, role),
	})
}

type NavigateRequest struct {
	From string `json:"from" binding:"notblank"`
	To   string `json:"to" binding:"notblank"`
}

// Navigate validates one move between screens for the caller's role
func (h *Handler) Navigate(c *gin.Context) {
	var req NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}
	from, err := navigation.ParseScreen(req.From)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	to, err := navigation.ParseScreen(req.To)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	role := callerRole(c)
	if err := navigation.CanNavigate(from, to, role); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":              "Invalid navigation",
			"reason":             err.Error(),
			"valid_destinations": navigation.DestinationsFrom(from, role),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"screen":       to,
		"destinations": navigation.DestinationsFrom(to, role),
	})
}
