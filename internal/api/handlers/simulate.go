package handlers

import (
	"errors"
	"net/http"

	"chiller-sim/internal/api/models"
	"chiller-sim/internal/model"
	"chiller-sim/internal/sim"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests
type SimulateHandler struct {
	engine *sim.Engine
}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler() *SimulateHandler {
	return &SimulateHandler{engine: sim.New()}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	result, err := h.engine.Run(sim.Params{
		TimeScaleMinutes: req.TimeScaleMinutes,
		Kp:               req.Controller.Kp,
		Ki:               req.Controller.Ki,
		SampleCount:      req.Options.SampleCount,
		CustomLoad:       req.CustomLoad,
	})
	if err != nil {
		writeSimulationError(c, err)
		return
	}

	c.JSON(http.StatusOK, buildResponse(result, req.Options.IncludeTrace))
}

// CompareGains handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareGains(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		result, err := h.engine.Run(sim.Params{
			TimeScaleMinutes: req.TimeScaleMinutes,
			Kp:               variation.Controller.Kp,
			Ki:               variation.Controller.Ki,
			SampleCount:      req.Options.SampleCount,
			CustomLoad:       req.CustomLoad,
		})
		if err != nil {
			continue // Skip invalid variations
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:    variation.Name,
			Kp:      variation.Controller.Kp,
			Ki:      variation.Controller.Ki,
			Summary: buildSummary(result),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// writeSimulationError maps engine errors to HTTP error envelopes.
func writeSimulationError(c *gin.Context, err error) {
	var parseErr *model.ParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_LOAD",
				Message: err.Error(),
			},
		})
		return
	}

	var inputErr *model.InvalidInputError
	if errors.As(err, &inputErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "SIMULATION_ERROR",
			Message: err.Error(),
		},
	})
}

func buildResponse(result *sim.Result, includeTrace bool) models.SimulateResponse {
	response := models.SimulateResponse{
		Status:  "completed",
		Summary: buildSummary(result),
	}
	if includeTrace {
		response.Trace = convertTrace(result.Trace())
	}
	return response
}

func buildSummary(result *sim.Result) models.Summary {
	return models.Summary{
		DeficitKWh:         result.Report.DeficitKWh,
		OverperformanceKWh: result.Report.OverperformanceKWh,
		Peak: models.Peak{
			Index:       result.Peak.Index,
			TimeMinutes: result.Peak.TimeMinutes,
			PowerKW:     result.Peak.PowerKW,
		},
		TimeScaleMinutes: result.Profile.Times[result.Profile.Len()-1],
		SampleCount:      result.Profile.Len(),
	}
}

func convertTrace(rows []sim.TraceRow) []models.TraceRow {
	out := make([]models.TraceRow, len(rows))
	for i, r := range rows {
		out[i] = models.TraceRow{
			Index:             r.Index,
			TimeMinutes:       r.TimeMinutes,
			LoadKW:            r.LoadKW,
			ResponseKW:        r.ResponseKW,
			DeficitKW:         r.DeficitKW,
			OverperformanceKW: r.OverperformanceKW,
		}
	}
	return out
}
