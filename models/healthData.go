// healthData.go - Defines the HealthData model (one measurement snapshot)

package models

import "time"

type HealthData struct {
	ID     uint `gorm:"primaryKey" json:"id"` // Unique entry ID
	UserID uint `gorm:"not null" json:"-"`    // Foreign key to users table
	// Owning user; rows are only reachable through this owner's session
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Weight    float64   `json:"weight"`    // Body weight in lbs
	BP        string    `json:"bp"`        // Blood pressure as "systolic/diastolic"
	Glucose   float64   `json:"glucose"`   // Blood glucose in mg/dL
	Timestamp time.Time `json:"timestamp"` // When the measurement was taken
}

// TableName keeps the table name aligned with the original schema.
func (HealthData) TableName() string {
	return "health_data"
}
