package workflow

import (
	"testing"

	"tubeline-api/internal/model"
)

func TestAuthorizeAdmin(t *testing.T) {
	video := testVideo(model.StatusScriptInProgress)

	for _, target := range model.AllStatuses() {
		if err := Authorize(adminScope(), video, target); err != nil {
			t.Errorf("Authorize(admin, %s) = %v, want nil", target, err)
		}
	}

	if err := Authorize(adminScope(), video, model.Status("BOGUS")); err != ErrInvalidTargetStatus {
		t.Errorf("Authorize(admin, BOGUS) = %v, want ErrInvalidTargetStatus", err)
	}
}

func TestAuthorizeFreelancer(t *testing.T) {
	tests := []struct {
		name    string
		video   model.Video
		scope   model.Scope
		target  model.Status
		wantErr error
	}{
		{
			name:    "assigned narrator within own stage",
			video:   testVideo(model.StatusNarrationInProgress),
			scope:   freelancerScope("u-narr", model.RoleNarrator),
			target:  model.StatusNarrationDone,
			wantErr: nil,
		},
		{
			name:    "assigned narrator cannot cross into editing stage",
			video:   testVideo(model.StatusNarrationInProgress),
			scope:   freelancerScope("u-narr", model.RoleNarrator),
			target:  model.StatusEditingRequested,
			wantErr: ErrInsufficientPermission,
		},
		{
			name:    "role does not match current stage",
			video:   testVideo(model.StatusEditingInProgress),
			scope:   freelancerScope("u-narr", model.RoleNarrator),
			target:  model.StatusNarrationDone,
			wantErr: ErrInsufficientPermission,
		},
		{
			name:    "identity mismatch on own stage",
			video:   testVideo(model.StatusEditingInProgress),
			scope:   freelancerScope("u-other", model.RoleEditor),
			target:  model.StatusEditingDone,
			wantErr: ErrInsufficientPermission,
		},
		{
			name:    "freelancer cannot cancel",
			video:   testVideo(model.StatusScriptInProgress),
			scope:   freelancerScope("u-script", model.RoleScriptWriter),
			target:  model.StatusCancelled,
			wantErr: ErrInsufficientPermission,
		},
		{
			name:    "freelancer cannot act on pending video",
			video:   testVideo(model.StatusPending),
			scope:   freelancerScope("u-script", model.RoleScriptWriter),
			target:  model.StatusScriptRequested,
			wantErr: ErrInsufficientPermission,
		},
		{
			name:    "freelancer cannot act on terminal video",
			video:   testVideo(model.StatusPublished),
			scope:   freelancerScope("u-thumb", model.RoleThumbMaker),
			target:  model.StatusThumbnailDone,
			wantErr: ErrVideoTerminal,
		},
		{
			name:    "unrecognized role is denied",
			video:   testVideo(model.StatusScriptInProgress),
			scope:   freelancerScope("u-script", model.RoleUnknown),
			target:  model.StatusScriptDone,
			wantErr: ErrInsufficientPermission,
		},
		{
			name:    "invalid target rejected before permission check",
			video:   testVideo(model.StatusScriptInProgress),
			scope:   freelancerScope("u-script", model.RoleScriptWriter),
			target:  model.Status("NOT_A_STATUS"),
			wantErr: ErrInvalidTargetStatus,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(tc.scope, tc.video, tc.target)
			if err != tc.wantErr {
				t.Errorf("Authorize() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestAuthorizeCurrentStatusIdempotent(t *testing.T) {
	// Re-selecting the current status is allowed for anyone already
	// authorized on the stage.
	video := testVideo(model.StatusNarrationInProgress)

	if err := Authorize(adminScope(), video, video.Status); err != nil {
		t.Errorf("admin re-select current = %v, want nil", err)
	}
	if err := Authorize(freelancerScope("u-narr", model.RoleNarrator), video, video.Status); err != nil {
		t.Errorf("narrator re-select current = %v, want nil", err)
	}
}

func TestSelectableStatuses(t *testing.T) {
	video := testVideo(model.StatusEditingRequested)

	t.Run("admin gets full taxonomy", func(t *testing.T) {
		got := SelectableStatuses(adminScope(), video)
		if len(got) != len(model.AllStatuses()) {
			t.Fatalf("len = %d, want %d", len(got), len(model.AllStatuses()))
		}
	})

	t.Run("assigned editor gets the editing triple", func(t *testing.T) {
		got := SelectableStatuses(freelancerScope("u-edit", model.RoleEditor), video)
		want := []model.Status{
			model.StatusEditingRequested,
			model.StatusEditingInProgress,
			model.StatusEditingDone,
		}
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("got[%d] = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("wrong role gets nothing", func(t *testing.T) {
		if got := SelectableStatuses(freelancerScope("u-narr", model.RoleNarrator), video); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("identity mismatch gets nothing", func(t *testing.T) {
		if got := SelectableStatuses(freelancerScope("u-other", model.RoleEditor), video); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("terminal video offers nothing to freelancers", func(t *testing.T) {
		if got := SelectableStatuses(freelancerScope("u-edit", model.RoleEditor), testVideo(model.StatusPublished)); len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})
}
