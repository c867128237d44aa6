// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roam/internal/http/handlers"
	"roam/internal/http/middleware"
	"roam/internal/modules/trip"
)

func NewRouter(tripService *trip.Service, requestTimeout time.Duration) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	// The suggestions endpoint answers 405 on any non-POST method.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Invalid request method"})
	})

	tripHandler := handlers.NewTripHandler(tripService, requestTimeout)
	r.POST("/api/chatbot/suggestions", tripHandler.Suggestions)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
