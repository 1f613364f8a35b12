// handler.go - Shared dependencies for all route handlers

package handlers

import (
	"net/http"

	"go-health-backend/ai"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler holds shared dependencies (db handle, AI client) for all route
// handlers. Dependencies are injected rather than reached through globals so
// tests can swap in a throwaway database and a fake summarizer.
type Handler struct {
	DB *gorm.DB
	AI ai.Summarizer
}

// New returns a Handler wired with the given dependencies.
func New(db *gorm.DB, summarizer ai.Summarizer) *Handler {
	return &Handler{DB: db, AI: summarizer}
}

// Connection reports that the service and its database are reachable.
func (h *Handler) Connection(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Database connected successfully!"}) // Success response
}
