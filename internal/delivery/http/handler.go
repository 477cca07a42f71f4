package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portionwise/backend/internal/domain"
	"github.com/portionwise/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	portionService *usecase.PortionService
}

// NewHandler creates a new HTTP handler
func NewHandler(portionService *usecase.PortionService) *Handler {
	return &Handler{
		portionService: portionService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "portionwise-backend",
		"version": "1.0.0",
	})
}

// ComputePortion evaluates a portion and returns the derived breakdown.
// The body is a PortionInput; absent or out-of-range fields are normalized
// by the model, so the only rejectable request is one that is not JSON.
func (h *Handler) ComputePortion(c *gin.Context) {
	if h.portionService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "portion service not available",
		})
		return
	}

	var input domain.PortionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "request body must be a JSON portion input",
		})
		return
	}

	derived := h.portionService.Evaluate(c.Request.Context(), clientKey(c), input)
	c.JSON(http.StatusOK, derived)
}

// LastInput returns the client's persisted last-used input, or the default
// input when nothing usable is stored
func (h *Handler) LastInput(c *gin.Context) {
	if h.portionService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "portion service not available",
		})
		return
	}

	input := h.portionService.LastInput(c.Request.Context(), clientKey(c))
	c.JSON(http.StatusOK, input)
}

// ForgetInput drops the client's persisted snapshot
func (h *Handler) ForgetInput(c *gin.Context) {
	if h.portionService == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "portion service not available",
		})
		return
	}

	if err := h.portionService.ForgetInput(c.Request.Context(), clientKey(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to delete snapshot",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// clientKey identifies the caller for snapshot storage and rate limiting.
// Clients that want their last input to follow them send X-Client-ID;
// everyone else is keyed by IP.
func clientKey(c *gin.Context) string {
	if id := c.GetHeader("X-Client-ID"); id != "" {
		return id
	}
	return c.ClientIP()
}
