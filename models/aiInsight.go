// aiInsight.go - Defines the AIInsight model (stored generated insights)

package models

import "time"

type AIInsight struct {
	ID        uint      `gorm:"primaryKey" json:"id"` // Unique insight ID
	UserID    uint      `gorm:"not null" json:"-"`    // Foreign key to users table
	User      User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Content   string    `json:"content"`    // Insight text returned by the provider
	CreatedAt time.Time `json:"created_at"` // When the insight was generated
}

func (AIInsight) TableName() string {
	return "ai_insights"
}
