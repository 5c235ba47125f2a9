package handlers

import (
	"net/http"

	"chiller-sim/internal/analysis"
	"chiller-sim/internal/api/models"
	"chiller-sim/internal/profile"

	"github.com/gin-gonic/gin"
)

// SweepHandler handles gain-grid sweep requests
type SweepHandler struct{}

// NewSweepHandler creates a new sweep handler
func NewSweepHandler() *SweepHandler {
	return &SweepHandler{}
}

// SweepGains handles GET /api/v1/sweep
func (h *SweepHandler) SweepGains(c *gin.Context) {
	var req models.SweepRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	// Defaults cover the documented UI ranges.
	if req.TimeScaleMinutes == 0 {
		req.TimeScaleMinutes = 60
	}
	if req.KpMax == 0 {
		req.KpMax = 2.0
	}
	if req.KiMax == 0 {
		req.KiMax = 2.0
	}
	if req.Steps == 0 {
		req.Steps = 5
	}
	// Zero and negative limits both fall back to the default; a negative
	// limit must never reach the slice bound below.
	if req.Limit <= 0 {
		req.Limit = 10
	}

	prof, err := profile.Generate(req.TimeScaleMinutes, profile.DefaultSampleCount)
	if err != nil {
		writeSimulationError(c, err)
		return
	}

	scores, err := analysis.RankGains(prof, analysis.SweepGrid{
		KpMax: req.KpMax,
		KiMax: req.KiMax,
		Steps: req.Steps,
	})
	if err != nil {
		writeSimulationError(c, err)
		return
	}

	if req.Limit < len(scores) {
		scores = scores[:req.Limit]
	}

	rankings := make([]models.SweepRanking, len(scores))
	for i, s := range scores {
		rankings[i] = models.SweepRanking{
			Rank:               i + 1,
			Kp:                 s.Kp,
			Ki:                 s.Ki,
			DeficitKWh:         s.DeficitKWh,
			OverperformanceKWh: s.OverperformanceKWh,
			MismatchKWh:        s.MismatchKWh,
			PeakKW:             s.PeakKW,
		}
	}

	c.JSON(http.StatusOK, models.SweepResponse{Rankings: rankings})
}
