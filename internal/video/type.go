package video

import (
	"io"
	"time"

	"tubeline-api/internal/model"
	"tubeline-api/internal/workflow"
	"tubeline-api/pkg/paginator"
)

type Filter struct {
	ChannelID    string
	FreelancerID string
	Status       *model.Status
	Search       string
	Tab          workflow.Tab
}

type GetInput struct {
	Filter        Filter
	PaginateQuery paginator.PaginateQuery
}

type GetOutput struct {
	Videos    []model.Video
	Paginator paginator.Paginator
}

type VideoOutput struct {
	Video model.Video
}

type CreateInput struct {
	Title          string
	ChannelID      string
	ScriptWriterID string
	NarratorID     string
	EditorID       string
	ThumbMakerID   string
	Observations   *string
}

type UpdateInput struct {
	ID             string
	Title          string
	ChannelID      string
	ScriptWriterID string
	NarratorID     string
	EditorID       string
	ThumbMakerID   string
	Observations   *string
	YoutubeURL     *string
}

// ChangeStatusInput carries one status-change request. SendMessage is nil when
// the actor has not answered the notification question yet; for hand-off
// targets that suspends the request instead of committing it.
type ChangeStatusInput struct {
	VideoID     string
	Status      model.Status
	SendMessage *bool

	// ExpectedStatus, when set, makes the commit conditional on the video
	// still being in that status. A mismatch is reported as a conflict.
	ExpectedStatus *model.Status
}

// PendingTransition is a suspended status change awaiting the actor's
// yes/no notification decision. At most one exists per principal.
type PendingTransition struct {
	VideoID      string       `json:"video_id"`
	TargetStatus model.Status `json:"target_status"`
	FromStatus   model.Status `json:"from_status"`
	RequestedBy  string       `json:"requested_by"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ResolvePendingInput resolves the principal's pending transition.
// SendMessage carries the actor's notification decision.
type ResolvePendingInput struct {
	SendMessage bool
}

type ChangeStatusOutput struct {
	Video model.Video

	// Pending is set when the transition was suspended awaiting the
	// notification decision instead of being committed.
	Pending           bool
	PendingTransition *PendingTransition

	// Replaced signals that this request displaced an earlier pending
	// transition of the same principal.
	Replaced         bool
	NotificationSent bool
}

type AddCommentInput struct {
	VideoID string
	Text    string
}

type UploadThumbnailInput struct {
	VideoID     string
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}
