// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roam/internal/modules/trip"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeTripError maps pipeline failures onto the HTTP surface. Missing
// precondition is the caller's fault; classification and generation failures
// are ours.
func writeTripError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, trip.ErrNoPreviousItinerary):
		writeError(c, http.StatusBadRequest, "No previous itinerary found. Please create an initial itinerary first.")
	case errors.Is(err, trip.ErrClassification), errors.Is(err, trip.ErrGeneration):
		writeError(c, http.StatusInternalServerError, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}
