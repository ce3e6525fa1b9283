package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weckerleben/bday-guests/internal/domain/guest"
)

type confirmRequest struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Babies   int `json:"babies"`
}

type addFamilyRequest struct {
	FamilyName string `json:"familyName"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Babies     int    `json:"babies"`
}

// ListGuests returns the merged working guest list in roster order.
func (h *Handler) ListGuests(c *gin.Context) {
	guests, err := h.guests.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guests": guests})
}

// AddFamily admits a new family into freed spots.
func (h *Handler) AddFamily(c *gin.Context) {
	var req addFamilyRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	g, err := h.guests.AddFamily(c.Request.Context(), guest.AddFamilyRequest{
		FamilyName: req.FamilyName,
		Adults:     req.Adults,
		Children:   req.Children,
		Babies:     req.Babies,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// RemoveGuest deletes an additional guest and its ledger entry.
func (h *Handler) RemoveGuest(c *gin.Context) {
	if err := h.guests.Remove(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConfirmGuest records a (possibly partial) confirmation.
func (h *Handler) ConfirmGuest(c *gin.Context) {
	var req confirmRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	g, err := h.guests.Confirm(c.Request.Context(), c.Param("id"), guest.ConfirmRequest{
		Adults:   req.Adults,
		Children: req.Children,
		Babies:   req.Babies,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// DeclineGuest marks a guest as declined.
func (h *Handler) DeclineGuest(c *gin.Context) {
	g, err := h.guests.Decline(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// ReinviteGuest moves a declined guest back to invited.
func (h *Handler) ReinviteGuest(c *gin.Context) {
	g, err := h.guests.Reinvite(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// CancelConfirmation reverts a confirmed guest to invited.
func (h *Handler) CancelConfirmation(c *gin.Context) {
	g, err := h.guests.CancelConfirmation(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// Spots reports per-category available spots plus the all-category seat
// summary.
func (h *Handler) Spots(c *gin.Context) {
	guests, err := h.guests.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available": guest.ComputeAvailableSpots(guests),
		"summary":   guest.ComputeSpotsSummary(guests),
	})
}
