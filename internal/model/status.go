package model

import "fmt"

// Status is the lifecycle state of a video in the production pipeline.
// The set is closed and totally ordered; CANCELLED is reachable from any
// non-terminal status (admin only).
type Status string

const (
	StatusPending             Status = "PENDING"
	StatusScriptRequested     Status = "SCRIPT_REQUESTED"
	StatusScriptInProgress    Status = "SCRIPT_IN_PROGRESS"
	StatusScriptDone          Status = "SCRIPT_DONE"
	StatusNarrationRequested  Status = "NARRATION_REQUESTED"
	StatusNarrationInProgress Status = "NARRATION_IN_PROGRESS"
	StatusNarrationDone       Status = "NARRATION_DONE"
	StatusEditingRequested    Status = "EDITING_REQUESTED"
	StatusEditingInProgress   Status = "EDITING_IN_PROGRESS"
	StatusEditingDone         Status = "EDITING_DONE"
	StatusThumbnailRequested  Status = "THUMBNAIL_REQUESTED"
	StatusThumbnailInProgress Status = "THUMBNAIL_IN_PROGRESS"
	StatusThumbnailDone       Status = "THUMBNAIL_DONE"
	StatusPublished           Status = "PUBLISHED"
	StatusCancelled           Status = "CANCELLED"
)

// statusOrder is the pipeline progression. CANCELLED sits last and is not
// part of the forward flow.
var statusOrder = []Status{
	StatusPending,
	StatusScriptRequested,
	StatusScriptInProgress,
	StatusScriptDone,
	StatusNarrationRequested,
	StatusNarrationInProgress,
	StatusNarrationDone,
	StatusEditingRequested,
	StatusEditingInProgress,
	StatusEditingDone,
	StatusThumbnailRequested,
	StatusThumbnailInProgress,
	StatusThumbnailDone,
	StatusPublished,
	StatusCancelled,
}

// AllStatuses returns the full ordered status list.
func AllStatuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// IsValid checks if the status is part of the closed enumeration.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending,
		StatusScriptRequested, StatusScriptInProgress, StatusScriptDone,
		StatusNarrationRequested, StatusNarrationInProgress, StatusNarrationDone,
		StatusEditingRequested, StatusEditingInProgress, StatusEditingDone,
		StatusThumbnailRequested, StatusThumbnailInProgress, StatusThumbnailDone,
		StatusPublished, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further stage transitions originate from s.
func (s Status) IsTerminal() bool {
	return s == StatusPublished || s == StatusCancelled
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// ParseStatus validates a raw status string against the closed enumeration.
// Unknown strings are rejected, never coerced.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid status: %q", raw)
	}
	return s, nil
}

// Stage returns the stage the status belongs to, or StageNone for
// PENDING, PUBLISHED and CANCELLED.
func (s Status) Stage() Stage {
	switch s {
	case StatusScriptRequested, StatusScriptInProgress, StatusScriptDone:
		return StageScript
	case StatusNarrationRequested, StatusNarrationInProgress, StatusNarrationDone:
		return StageNarration
	case StatusEditingRequested, StatusEditingInProgress, StatusEditingDone:
		return StageEditing
	case StatusThumbnailRequested, StatusThumbnailInProgress, StatusThumbnailDone:
		return StageThumbnail
	default:
		return StageNone
	}
}
