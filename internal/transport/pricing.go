package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weckerleben/bday-guests/internal/domain/pricing"
)

// GetPricing returns the configured price list, or null when unset.
func (h *Handler) GetPricing(c *gin.Context) {
	p, err := h.pricing.Get(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing": p})
}

// PutPricing replaces the whole price list.
func (h *Handler) PutPricing(c *gin.Context) {
	var req pricing.Pricing
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	saved, err := h.pricing.Put(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pricing": saved})
}

// Export streams the snapshot dump as a downloadable JSON document.
func (h *Handler) Export(c *gin.Context) {
	data, err := h.store.ExportJSON()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bday-guests-export.json"`)
	c.Data(http.StatusOK, "application/json", data)
}
