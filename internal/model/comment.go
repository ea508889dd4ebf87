package model

import "time"

// Comment is an append-only note attached to a video. Comments are an
// informational side-channel and never affect the workflow state machine.
type Comment struct {
	ID         string        `json:"id" gorm:"primaryKey;type:uuid"`
	VideoID    string        `json:"video_id" gorm:"type:uuid;index"`
	CompanyID  string        `json:"company_id" gorm:"type:uuid;index"`
	AuthorID   string        `json:"author_id" gorm:"type:uuid"`
	AuthorKind PrincipalKind `json:"author_kind"`
	Text       string        `json:"text"`
	CreatedAt  time.Time     `json:"created_at"`

	// AuthorName is joined from the user domain, not persisted.
	AuthorName string `json:"author_name" gorm:"-"`
}

// TableName sets the comments table name for GORM.
func (Comment) TableName() string {
	return "video_comments"
}
