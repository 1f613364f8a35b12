// insights.go - Forwards a user's measurements to the LLM provider for a
// narrative insight.

package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go-health-backend/middleware"
	"go-health-backend/models"

	"github.com/gin-gonic/gin"
)

// noDataMessage is returned when the caller has no stored measurements.
// The provider is not contacted in that case.
const noDataMessage = "No health data found to generate insights."

// formatEntries renders measurements into the deterministic block sent to the
// provider, one line per entry.
func formatEntries(entries []models.HealthData) string {
	var b strings.Builder
	for _, entry := range entries {
		fmt.Fprintf(&b, "- %s: weight %.2f lbs, blood pressure %s, glucose %.2f mg/dL\n",
			entry.Timestamp.Format(time.RFC3339), entry.Weight, entry.BP, entry.Glucose)
	}
	return b.String()
}

// GenerateInsights loads the caller's measurements, asks the provider for an
// aggregated recommendation paragraph, and returns the text verbatim.
// Upstream failures surface as 502 with the provider's error message.
func (h *Handler) GenerateInsights(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var entries []models.HealthData
	if err := h.DB.Where("user_id = ?", user.ID).Order("timestamp desc").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusOK, gin.H{"insights": noDataMessage})
		return
	}

	content, err := h.AI.Summarize(c.Request.Context(), formatEntries(entries))
	if err != nil {
		log.Printf("[insights] provider error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	// Keep a copy of the generated insight for the user's history
	insight := models.AIInsight{UserID: user.ID, Content: content}
	if err := h.DB.Create(&insight).Error; err != nil {
		log.Printf("[insights] failed to store insight: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"insights": content})
}
