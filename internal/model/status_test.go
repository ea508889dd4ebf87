package model

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Status
		wantErr bool
	}{
		{name: "valid pipeline status", raw: "SCRIPT_IN_PROGRESS", want: StatusScriptInProgress},
		{name: "valid terminal status", raw: "PUBLISHED", want: StatusPublished},
		{name: "valid cancelled", raw: "CANCELLED", want: StatusCancelled},
		{name: "lowercase is rejected", raw: "pending", wantErr: true},
		{name: "unknown string is rejected", raw: "REVIEW_REQUESTED", wantErr: true},
		{name: "empty string is rejected", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseStatus(%q): expected error, got %q", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q): unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAllStatusesOrder(t *testing.T) {
	all := AllStatuses()
	if len(all) != 15 {
		t.Fatalf("AllStatuses() returned %d statuses, want 15", len(all))
	}
	if all[0] != StatusPending {
		t.Errorf("first status = %q, want %q", all[0], StatusPending)
	}
	if all[len(all)-1] != StatusCancelled {
		t.Errorf("last status = %q, want %q", all[len(all)-1], StatusCancelled)
	}
	for _, s := range all {
		if !s.IsValid() {
			t.Errorf("AllStatuses() contains invalid status %q", s)
		}
	}
}

func TestStatusStage(t *testing.T) {
	tests := []struct {
		status Status
		want   Stage
	}{
		{StatusPending, StageNone},
		{StatusScriptRequested, StageScript},
		{StatusScriptInProgress, StageScript},
		{StatusScriptDone, StageScript},
		{StatusNarrationRequested, StageNarration},
		{StatusNarrationInProgress, StageNarration},
		{StatusNarrationDone, StageNarration},
		{StatusEditingRequested, StageEditing},
		{StatusEditingInProgress, StageEditing},
		{StatusEditingDone, StageEditing},
		{StatusThumbnailRequested, StageThumbnail},
		{StatusThumbnailInProgress, StageThumbnail},
		{StatusThumbnailDone, StageThumbnail},
		{StatusPublished, StageNone},
		{StatusCancelled, StageNone},
	}

	for _, tt := range tests {
		if got := tt.status.Stage(); got != tt.want {
			t.Errorf("%s.Stage() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	for _, s := range AllStatuses() {
		want := s == StatusPublished || s == StatusCancelled
		if got := s.IsTerminal(); got != want {
			t.Errorf("%s.IsTerminal() = %v, want %v", s, got, want)
		}
	}
}
