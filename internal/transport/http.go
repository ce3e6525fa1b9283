package transport

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/weckerleben/bday-guests/internal/domain/guest"
	"github.com/weckerleben/bday-guests/internal/domain/pricing"
	"github.com/weckerleben/bday-guests/internal/remote"
	"github.com/weckerleben/bday-guests/internal/store"
)

// Payment carries the payer display names and the first payer's fixed
// contribution for the summary view.
type Payment struct {
	PayerOneName string
	PayerTwoName string
	Contribution int64
}

// Handler serves the JSON API consumed by the web client.
type Handler struct {
	guests  *guest.Service
	pricing *pricing.Service
	store   *store.Store
	sync    *remote.Coordinator
	payment Payment
	logger  *slog.Logger
}

// NewHandler creates the API handler.
func NewHandler(
	guests *guest.Service,
	pricingSvc *pricing.Service,
	st *store.Store,
	sync *remote.Coordinator,
	payment Payment,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		guests:  guests,
		pricing: pricingSvc,
		store:   st,
		sync:    sync,
		payment: payment,
		logger:  logger,
	}
}

// NewRouter builds the gin engine with all routes registered. CORS is wide
// open: the browser client is served from a different origin and the API
// carries no credentials.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/guests", h.ListGuests)
		api.POST("/guests", h.AddFamily)
		api.DELETE("/guests/:id", h.RemoveGuest)
		api.POST("/guests/:id/confirm", h.ConfirmGuest)
		api.POST("/guests/:id/decline", h.DeclineGuest)
		api.POST("/guests/:id/reinvite", h.ReinviteGuest)
		api.POST("/guests/:id/cancel-confirmation", h.CancelConfirmation)

		api.GET("/spots", h.Spots)
		api.GET("/summary", h.Summary)

		api.GET("/pricing", h.GetPricing)
		api.PUT("/pricing", h.PutPricing)

		api.GET("/export", h.Export)

		api.POST("/sync/pull", h.SyncPull)
		api.POST("/sync/push", h.SyncPush)
		api.GET("/sync/status", h.SyncStatus)
	}

	return r
}

// respondError maps domain errors onto HTTP status codes. Validation
// rejections stay 400s with their message intact; anything unexpected is a
// logged 500.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, guest.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, guest.ErrInvalidInput),
		errors.Is(err, guest.ErrBaseGuest),
		errors.Is(err, pricing.ErrInvalidItem):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, remote.ErrNotConfigured):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, remote.ErrUnauthorized), errors.Is(err, remote.ErrBinNotFound):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
