// README: Suggestions endpoint handler (validate, classify, generate, respond).
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roam/internal/modules/trip"
)

type TripHandler struct {
	trips   *trip.Service
	timeout time.Duration
}

func NewTripHandler(trips *trip.Service, timeout time.Duration) *TripHandler {
	return &TripHandler{trips: trips, timeout: timeout}
}

type suggestionsReq struct {
	Message string `json:"message"`
	// SessionID scopes the previous-itinerary slot; empty means the shared
	// default session.
	SessionID string `json:"session_id"`
}

// Suggestions handles POST /api/chatbot/suggestions.
// Input faults are rejected before any model call is issued.
func (h *TripHandler) Suggestions(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Empty request body")
		return
	}
	log.Printf("http: raw request body: %s", body)

	if len(body) == 0 {
		writeError(c, http.StatusBadRequest, "Empty request body")
		return
	}

	var req suggestionsReq
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid JSON format in request.")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "No message provided")
		return
	}
	log.Printf("http: user message: %s", req.Message)

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = trip.DefaultSession
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	res, err := h.trips.Suggest(ctx, sessionID, req.Message)
	if err != nil {
		writeTripError(c, err)
		return
	}

	// Field names pass through verbatim; description responses stay flat.
	if res.Itinerary != nil {
		writeJSON(c, http.StatusOK, res.Itinerary)
		return
	}
	writeJSON(c, http.StatusOK, res.Description)
}
