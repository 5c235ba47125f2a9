package middleware

import (
	"fmt"
	"net/http"

	"chiller-sim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from handler panics and answers with the same error
// envelope the handlers use. A panic here is a bug, not a caller problem, so
// it always maps to INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		case fmt.Stringer:
			message = v.String()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
		c.Abort()
	})
}
