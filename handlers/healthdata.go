// healthdata.go - CRUD over a user's own health measurements.
// Every query is scoped to the authenticated owner; another user's rows are
// indistinguishable from absent rows (404, never 403).

package handlers

import (
	"net/http"
	"time"

	"go-health-backend/middleware"
	"go-health-backend/models"
	"go-health-backend/validation"

	"github.com/gin-gonic/gin"
)

type HealthDataInput struct { // Struct for measurement input
	Weight  float64 `json:"weight" binding:"required"`  // Body weight in lbs
	BP      string  `json:"bp" binding:"required"`      // Blood pressure "systolic/diastolic"
	Glucose float64 `json:"glucose" binding:"required"` // Blood glucose in mg/dL
}

// validate runs the pure measurement validators and returns the normalized
// values, or the first validation error.
func (in *HealthDataInput) validate() (weight float64, bp string, glucose float64, err error) {
	if weight, err = validation.Weight(in.Weight); err != nil {
		return
	}
	if bp, err = validation.BloodPressure(in.BP); err != nil {
		return
	}
	glucose, err = validation.Glucose(in.Glucose)
	return
}

// CreateHealthData logs a new measurement owned by the caller.
func (h *Handler) CreateHealthData(c *gin.Context) {
	user := middleware.CurrentUser(c) // Authenticated user (set by middleware)

	var input HealthDataInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	weight, bp, glucose, err := input.validate()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()}) // Out-of-range or malformed measurement
		return
	}

	entry := models.HealthData{
		UserID:    user.ID,
		Weight:    weight,
		BP:        bp,
		Glucose:   glucose,
		Timestamp: time.Now(), // Server-assigned measurement time
	}
	if err := h.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Health data recorded", "data_id": entry.ID})
}

// ListHealthData returns all of the caller's measurements, newest first.
func (h *Handler) ListHealthData(c *gin.Context) {
	user := middleware.CurrentUser(c)

	entries := []models.HealthData{}
	if err := h.DB.Where("user_id = ?", user.ID).Order("timestamp desc").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// UpdateHealthData overwrites the three measurement fields of one entry.
// The original timestamp is kept.
func (h *Handler) UpdateHealthData(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input HealthDataInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	weight, bp, glucose, err := input.validate()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// Owner-scoped lookup: someone else's entry reads as not found
	var entry models.HealthData
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	entry.Weight = weight
	entry.BP = bp
	entry.Glucose = glucose
	if err := h.DB.Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteHealthData removes one of the caller's entries.
func (h *Handler) DeleteHealthData(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var entry models.HealthData
	if err := h.DB.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&entry).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}
	if err := h.DB.Delete(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry deleted"})
}
