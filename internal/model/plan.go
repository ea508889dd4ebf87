package model

import "time"

// Plan is a billing plan a company can subscribe to.
type Plan struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	MaxVideos  *int      `json:"max_videos,omitempty"` // nil means unlimited
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName sets the plans table name for GORM.
func (Plan) TableName() string {
	return "plans"
}
