package handlers

import (
	"io"

	"restaurant-menu-api/store"

	"github.com/gin-gonic/gin"
)

// eventBuffer is how many unsent events a slow client may fall behind by
const eventBuffer = 16

// StreamMenuEvents pushes the current snapshot, then one SSE message per
// store mutation until the client disconnects
func (h *Handler) StreamMenuEvents(c *gin.Context) {
	events := make(chan store.Event, eventBuffer)
	unsubscribe := h.Store.Subscribe(func(ev store.Event) {
		select {
		case events <- ev:
		default:
			h.Log.Warn().Str("kind", string(ev.Kind)).Msg("event stream client too slow, dropping event")
		}
	})
	defer unsubscribe()

	c.SSEvent("snapshot", h.Store.Snapshot())
	c.Writer.Flush()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev := <-events:
			c.SSEvent(string(ev.Kind), ev)
			return true
		}
	})
}
