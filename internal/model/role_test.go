package model

import "testing"

func TestParseRoleFailsClosed(t *testing.T) {
	tests := []struct {
		label string
		want  Role
	}{
		{"SCRIPT_WRITER", RoleScriptWriter},
		{"NARRATOR", RoleNarrator},
		{"EDITOR", RoleEditor},
		{"THUMB_MAKER", RoleThumbMaker},
		{"narrator", RoleUnknown},
		{"PRODUCER", RoleUnknown},
		{"", RoleUnknown},
	}

	for _, tt := range tests {
		if got := ParseRole(tt.label); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestRoleStageRoundTrip(t *testing.T) {
	roles := []Role{RoleScriptWriter, RoleNarrator, RoleEditor, RoleThumbMaker}
	for _, r := range roles {
		st := r.Stage()
		if !st.IsValid() {
			t.Fatalf("%s.Stage() = %q, not a valid stage", r, st)
		}
		if back := st.Role(); back != r {
			t.Errorf("%s.Stage().Role() = %q, want %q", r, back, r)
		}
	}

	if RoleUnknown.Stage() != StageNone {
		t.Errorf("RoleUnknown.Stage() = %q, want StageNone", RoleUnknown.Stage())
	}
	if StageNone.Role() != RoleUnknown {
		t.Errorf("StageNone.Role() = %q, want RoleUnknown", StageNone.Role())
	}
}

func TestStageStatusesTriples(t *testing.T) {
	stages := []Stage{StageScript, StageNarration, StageEditing, StageThumbnail}
	for _, st := range stages {
		triple := st.Statuses()
		if len(triple) != 3 {
			t.Fatalf("%s.Statuses() returned %d statuses, want 3", st, len(triple))
		}
		for _, s := range triple {
			if s.Stage() != st {
				t.Errorf("%s.Stage() = %q, want %q", s, s.Stage(), st)
			}
		}
	}
	if got := StageNone.Statuses(); got != nil {
		t.Errorf("StageNone.Statuses() = %v, want nil", got)
	}
}
