package routes

import (
	"net/http"

	"restaurant-menu-api/handlers"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	handlers.RegisterValidators()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Menu API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍴 Welcome to Christoffel's Culinary App API",
			"docs":    "/api/navigation",
			"health":  "/health",
			"roles":   models.Roles,
		})
	})

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	public.Use(middleware.OptionalAuth(h.Secret))
	{
		public.POST("/auth/login", h.Login)
		public.GET("/help", h.GetHelp)
		public.GET("/navigation", h.GetNavigation)
		public.GET("/screens/:screen", h.GetScreen)
		public.POST("/navigate", h.Navigate)
	}

	// ── Authenticated routes (both roles) ──────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(h.Secret))
	{
		auth.POST("/auth/logout", h.Logout)
		auth.GET("/session", h.GetSession)
		auth.GET("/home", h.GetHome)

		auth.GET("/menu", h.ListMenu)
		auth.GET("/menu/sections", h.GetMenuSections)
		auth.GET("/menu/items/:id", h.GetMenuItem)
		auth.GET("/menu/stats", h.GetStats)
		auth.GET("/menu/events", h.StreamMenuEvents)
	}

	// ── Chef routes ────────────────────────────────────────────────
	chef := r.Group("/api/chef")
	chef.Use(middleware.AuthRequired(h.Secret), middleware.RoleRequired(models.RoleChef))
	{
		chef.POST("/menu", h.AddDish)
		chef.PUT("/menu", h.ReplaceMenu)
		chef.DELETE("/menu", h.RemoveAllDishes)
		chef.DELETE("/menu/:id", h.RemoveDish)
		chef.POST("/menu/remove", h.RemoveDishes)
		chef.GET("/history", h.GetHistory)
	}
}
