package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SyncPull fetches the remote document and applies it when newer. `force=true`
// applies it unconditionally, matching fresh-load behavior in the client.
func (h *Handler) SyncPull(c *gin.Context) {
	force := c.Query("force") == "true"
	if err := h.sync.PullRemote(c.Request.Context(), force); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sync.Status())
}

// SyncPush pushes the local document to the remote store synchronously.
func (h *Handler) SyncPush(c *gin.Context) {
	if err := h.sync.PushLocal(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.sync.Status())
}

// SyncStatus reports the current replication state.
func (h *Handler) SyncStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.sync.Status())
}
