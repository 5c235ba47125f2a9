package handlers

import (
	"net/http"

	"chiller-sim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ProfileHandler handles profile catalog requests
type ProfileHandler struct{}

// NewProfileHandler creates a new profile handler
func NewProfileHandler() *ProfileHandler {
	return &ProfileHandler{}
}

// ListProfiles handles GET /api/v1/profiles
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles := []models.ProfileInfo{
		{
			Name: "synthetic",
			Description: "Three-segment heat load: linear ramp (7*t) until t=15, " +
				"sinusoidal plateau (100 + 20*sin(2*pi*(t-15)/20)) until t=40, " +
				"exponential decay (100*exp(-0.05*(t-40))) after. " +
				"The controller tracks it with Output = kp*Error + ki*Integral(Error dt).",
			Parameters: []models.ParameterInfo{
				{
					Name:        "time_scale_minutes",
					Type:        "float",
					Description: "Simulation horizon in minutes (typical range 1-120)",
					Default:     60.0,
				},
				{
					Name:        "sample_count",
					Type:        "int",
					Description: "Number of samples on the uniform time grid",
					Default:     100,
				},
			},
		},
		{
			Name: "custom",
			Description: "User-supplied heat load: comma-separated kW values placed on a " +
				"uniform grid over [0, time_scale_minutes]. Any non-numeric value rejects the input.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "custom_load",
					Type:        "string",
					Description: "Comma-separated kW values, e.g. \"10,20,30\"",
				},
				{
					Name:        "time_scale_minutes",
					Type:        "float",
					Description: "Simulation horizon in minutes the values are spread over",
					Default:     60.0,
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}
