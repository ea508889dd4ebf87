package model

import (
	"time"

	"gorm.io/gorm"
)

// Video is one content item moving through the production pipeline.
// All four stage assignees are set at creation; the assignee whose stage
// matches the current status is the only non-admin allowed to act on it.
type Video struct {
	ID        string `json:"id" gorm:"primaryKey;type:uuid"`
	CompanyID string `json:"company_id" gorm:"type:uuid;index"`
	ChannelID string `json:"channel_id" gorm:"type:uuid;index"`
	Title     string `json:"title"`
	Status    Status `json:"status" gorm:"index"`

	ScriptWriterID *string `json:"script_writer_id,omitempty" gorm:"type:uuid"`
	NarratorID     *string `json:"narrator_id,omitempty" gorm:"type:uuid"`
	EditorID       *string `json:"editor_id,omitempty" gorm:"type:uuid"`
	ThumbMakerID   *string `json:"thumb_maker_id,omitempty" gorm:"type:uuid"`

	Observations *string `json:"observations,omitempty"`
	YoutubeURL   *string `json:"youtube_url,omitempty"`
	ThumbnailKey *string `json:"thumbnail_key,omitempty"`
	CreatedBy    string  `json:"created_by" gorm:"type:uuid"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Display names joined from the channel and user domains, not persisted.
	ChannelName      string `json:"channel_name" gorm:"-"`
	ScriptWriterName string `json:"script_writer_name" gorm:"-"`
	NarratorName     string `json:"narrator_name" gorm:"-"`
	EditorName       string `json:"editor_name" gorm:"-"`
	ThumbMakerName   string `json:"thumb_maker_name" gorm:"-"`
}

// TableName sets the videos table name for GORM.
func (Video) TableName() string {
	return "videos"
}

// AssigneeForStage returns the assignee id for the given stage, nil for StageNone.
func (v Video) AssigneeForStage(st Stage) *string {
	switch st {
	case StageScript:
		return v.ScriptWriterID
	case StageNarration:
		return v.NarratorID
	case StageEditing:
		return v.EditorID
	case StageThumbnail:
		return v.ThumbMakerID
	default:
		return nil
	}
}

// assigneeMatches compares an assignee id against a user id.
// Absent or empty assignee ids never match.
func assigneeMatches(assignee *string, userID string) bool {
	if assignee == nil || *assignee == "" || userID == "" {
		return false
	}
	return *assignee == userID
}

// IsStageAssignee reports whether userID is the assignee of the given stage.
func (v Video) IsStageAssignee(st Stage, userID string) bool {
	return assigneeMatches(v.AssigneeForStage(st), userID)
}

// IsAnyAssignee reports whether userID appears in any of the four assignee slots.
func (v Video) IsAnyAssignee(userID string) bool {
	return assigneeMatches(v.ScriptWriterID, userID) ||
		assigneeMatches(v.NarratorID, userID) ||
		assigneeMatches(v.EditorID, userID) ||
		assigneeMatches(v.ThumbMakerID, userID)
}
