package workflow

import "tubeline-api/internal/model"

// RequiresNotification reports whether moving a video to target hands a new
// stage off to a new assignee, which is exactly the four REQUESTED statuses.
// The transition itself always commits; only the message dispatch hangs on
// the actor's confirmation.
func RequiresNotification(target model.Status) bool {
	switch target {
	case model.StatusScriptRequested,
		model.StatusNarrationRequested,
		model.StatusEditingRequested,
		model.StatusThumbnailRequested:
		return true
	default:
		return false
	}
}

// NotifyTarget returns the assignee to notify for a hand-off transition,
// nil when the target requires no notification or the slot is unassigned.
func NotifyTarget(video model.Video, target model.Status) *string {
	if !RequiresNotification(target) {
		return nil
	}
	return video.AssigneeForStage(target.Stage())
}
