package model

import (
	"time"

	"gorm.io/gorm"
)

// Channel is a YouTube channel a company produces content for.
type Channel struct {
	ID        string  `json:"id" gorm:"primaryKey;type:uuid"`
	CompanyID string  `json:"company_id" gorm:"type:uuid;index"`
	Name      string  `json:"name"`
	YoutubeID *string `json:"youtube_id,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the channels table name for GORM.
func (Channel) TableName() string {
	return "channels"
}
