package workflow

import (
	"testing"

	"tubeline-api/internal/model"
)

func TestRequiresNotification(t *testing.T) {
	requested := map[model.Status]bool{
		model.StatusScriptRequested:    true,
		model.StatusNarrationRequested: true,
		model.StatusEditingRequested:   true,
		model.StatusThumbnailRequested: true,
	}

	for _, s := range model.AllStatuses() {
		if got := RequiresNotification(s); got != requested[s] {
			t.Errorf("RequiresNotification(%s) = %v, want %v", s, got, requested[s])
		}
	}
}

func TestNotifyTarget(t *testing.T) {
	video := testVideo(model.StatusScriptDone)

	t.Run("hand-off points at the next stage assignee", func(t *testing.T) {
		got := NotifyTarget(video, model.StatusNarrationRequested)
		if got == nil || *got != "u-narr" {
			t.Errorf("NotifyTarget() = %v, want u-narr", got)
		}
	})

	t.Run("non hand-off target yields nil", func(t *testing.T) {
		if got := NotifyTarget(video, model.StatusNarrationInProgress); got != nil {
			t.Errorf("NotifyTarget() = %v, want nil", got)
		}
	})

	t.Run("unassigned slot yields nil", func(t *testing.T) {
		v := video
		v.NarratorID = nil
		if got := NotifyTarget(v, model.StatusNarrationRequested); got != nil {
			t.Errorf("NotifyTarget() = %v, want nil", got)
		}
	})
}
