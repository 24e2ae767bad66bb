package handlers

import (
	"net/http"
	"strings"

	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"
	"restaurant-menu-api/navigation"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"notblank"`
	Password string `json:"password" binding:"notblank"`
	Role     string `json:"role"`
}

// Login starts a session. The password is only checked for presence; there is
// no account registry behind it.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	role := models.RoleChef
	if strings.TrimSpace(req.Role) != "" {
		r, err := models.ParseRole(req.Role)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		role = r
	}

	user := models.User{Role: role, Username: strings.TrimSpace(req.Username)}
	token, err := middleware.GenerateToken(h.Secret, user, h.TokenTTL)
	if err != nil {
		h.Log.Error().Err(err).Msg("token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	h.Store.SetUser(&user)

	landing := navigation.ScreenUserMenu
	if user.IsChef() {
		landing = navigation.ScreenHome
	}
	h.Log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("session started")

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"token":        token,
		"user":         user,
		"landing":      landing,
		"destinations": navigation.DestinationsFrom(landing, user.Role),
	})
}

// Logout clears the session user
func (h *Handler) Logout(c *gin.Context) {
	h.editor(c).SetUser(nil)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out", "landing": navigation.ScreenLogin})
}

// GetSession returns the user the store currently holds
func (h *Handler) GetSession(c *gin.Context) {
	user, ok := h.Store.User()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
