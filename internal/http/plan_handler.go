package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mindstep/aiplan/internal/clients"
	"github.com/mindstep/aiplan/internal/llm"
	"github.com/mindstep/aiplan/internal/plan"
	"github.com/mindstep/aiplan/internal/profile"
	"github.com/mindstep/aiplan/internal/service"
)

// Planner is the service behind the handlers.
type Planner interface {
	Generate(ctx context.Context, userID, patientCode string) (*plan.Plan, error)
	Preview(ctx context.Context, p profile.Profile, catalog []profile.TaskCatalogEntry) (*plan.Plan, error)
}

// PlanHandler serves the plan endpoints.
type PlanHandler struct {
	logger  *zap.Logger
	planner Planner
	version string
}

func NewPlanHandler(logger *zap.Logger, planner Planner, version string) *PlanHandler {
	return &PlanHandler{logger: logger, planner: planner, version: version}
}

// Health handles GET /api/health.
func (h *PlanHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}

// Generate handles POST /api/plan.
func (h *PlanHandler) Generate(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id" binding:"required"`
		PatientCode string `json:"patient_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid plan request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id and patient_code are required"})
		return
	}

	out, err := h.planner.Generate(c.Request.Context(), req.UserID, req.PatientCode)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Preview handles POST /api/plan/preview with an inline profile and
// catalog.
func (h *PlanHandler) Preview(c *gin.Context) {
	var req struct {
		Profile *profile.RawProfile `json:"profile" binding:"required"`
		Catalog []profile.RawTask   `json:"catalog"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid preview request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile is required"})
		return
	}
	p, err := req.Profile.Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.planner.Preview(c.Request.Context(), p, profile.BuildCatalog(req.Catalog))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *PlanHandler) fail(c *gin.Context, err error) {
	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("plan request failed", zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, gin.H{"error": msg})
}

func statusFor(err error) (int, string) {
	var (
		rateLimited *llm.ErrRateLimit
		unavailable *llm.ErrProviderUnavailable
		invalid     *llm.ErrInvalidResponse
		truncated   *llm.ErrMaxTokensExceeded
	)
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, clients.ErrNotFound):
		return http.StatusNotFound, "profile not found"
	case errors.Is(err, service.ErrUpstream),
		errors.As(err, &rateLimited),
		errors.As(err, &unavailable),
		errors.As(err, &invalid),
		errors.As(err, &truncated):
		return http.StatusBadGateway, "upstream service unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "upstream timeout"
	default:
		return http.StatusInternalServerError, "could not generate plan"
	}
}
