package handlers

import (
	"errors"
	"net/http"
	"time"

	"restaurant-menu-api/journal"
	"restaurant-menu-api/middleware"
	"restaurant-menu-api/models"
	"restaurant-menu-api/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handler serves the app's screens over HTTP. Every read and write goes
// through Store.
type Handler struct {
	Store    *store.Store
	Journal  *journal.Journal
	Secret   []byte
	TokenTTL time.Duration
	Log      zerolog.Logger
}

// New wires a Handler to the store, journal and token settings
func New(s *store.Store, j *journal.Journal, secret []byte, ttl time.Duration, log zerolog.Logger) *Handler {
	return &Handler{Store: s, Journal: j, Secret: secret, TokenTTL: ttl, Log: log}
}

// editor applies store mutations on behalf of the token's caller, so the
// journal names who made a change rather than who logged in last
func (h *Handler) editor(c *gin.Context) store.Editor {
	role, _ := middleware.GetRole(c)
	return h.Store.As(models.User{Username: middleware.GetUsername(c), Role: role})
}

// respondStoreError maps store errors to status codes
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrInvalidItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu"})
	}
}
