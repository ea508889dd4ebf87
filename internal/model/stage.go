package model

// Stage groups the three statuses (requested / in progress / done) owned by
// one responsible role. PENDING, PUBLISHED and CANCELLED belong to no stage.
type Stage string

const (
	StageScript    Stage = "SCRIPT"
	StageNarration Stage = "NARRATION"
	StageEditing   Stage = "EDITING"
	StageThumbnail Stage = "THUMBNAIL"
	StageNone      Stage = ""
)

// IsValid checks if the stage is one of the four pipeline stages.
func (st Stage) IsValid() bool {
	switch st {
	case StageScript, StageNarration, StageEditing, StageThumbnail:
		return true
	default:
		return false
	}
}

// Role returns the role responsible for this stage, or RoleUnknown for StageNone.
func (st Stage) Role() Role {
	switch st {
	case StageScript:
		return RoleScriptWriter
	case StageNarration:
		return RoleNarrator
	case StageEditing:
		return RoleEditor
	case StageThumbnail:
		return RoleThumbMaker
	default:
		return RoleUnknown
	}
}

// Statuses returns the ordered status triple of the stage. StageNone has none.
func (st Stage) Statuses() []Status {
	switch st {
	case StageScript:
		return []Status{StatusScriptRequested, StatusScriptInProgress, StatusScriptDone}
	case StageNarration:
		return []Status{StatusNarrationRequested, StatusNarrationInProgress, StatusNarrationDone}
	case StageEditing:
		return []Status{StatusEditingRequested, StatusEditingInProgress, StatusEditingDone}
	case StageThumbnail:
		return []Status{StatusThumbnailRequested, StatusThumbnailInProgress, StatusThumbnailDone}
	default:
		return nil
	}
}
