package workflow

import (
	"testing"

	"tubeline-api/internal/model"
)

func strPtr(s string) *string { return &s }

func adminScope() model.Scope {
	return model.Scope{UserID: "a1", CompanyID: "c1", Kind: model.PrincipalKindUser}
}

func freelancerScope(userID string, role model.Role) model.Scope {
	return model.Scope{UserID: userID, CompanyID: "c1", Kind: model.PrincipalKindFreelancer, Role: role}
}

func testVideo(status model.Status) model.Video {
	return model.Video{
		ID:             "v1",
		CompanyID:      "c1",
		Status:         status,
		ScriptWriterID: strPtr("u-script"),
		NarratorID:     strPtr("u-narr"),
		EditorID:       strPtr("u-edit"),
		ThumbMakerID:   strPtr("u-thumb"),
	}
}

func TestVisibleProduction(t *testing.T) {
	tests := []struct {
		name   string
		video  model.Video
		scope  model.Scope
		expect bool
	}{
		{
			name:   "admin sees any non-terminal video",
			video:  testVideo(model.StatusPending),
			scope:  adminScope(),
			expect: true,
		},
		{
			name:   "admin does not see published on production tab",
			video:  testVideo(model.StatusPublished),
			scope:  adminScope(),
			expect: false,
		},
		{
			name:   "admin does not see cancelled on production tab",
			video:  testVideo(model.StatusCancelled),
			scope:  adminScope(),
			expect: false,
		},
		{
			name:   "assigned narrator sees video in narration stage",
			video:  testVideo(model.StatusNarrationInProgress),
			scope:  freelancerScope("u-narr", model.RoleNarrator),
			expect: true,
		},
		{
			name:   "assigned narrator does not see video in editing stage",
			video:  testVideo(model.StatusEditingRequested),
			scope:  freelancerScope("u-narr", model.RoleNarrator),
			expect: false,
		},
		{
			name:   "editor with identity mismatch does not see editing-stage video",
			video:  testVideo(model.StatusEditingInProgress),
			scope:  freelancerScope("u-other", model.RoleEditor),
			expect: false,
		},
		{
			name:   "freelancer without recognized role sees nothing",
			video:  testVideo(model.StatusScriptRequested),
			scope:  freelancerScope("u-script", model.RoleUnknown),
			expect: false,
		},
		{
			name:   "freelancer does not see pending video",
			video:  testVideo(model.StatusPending),
			scope:  freelancerScope("u-script", model.RoleScriptWriter),
			expect: false,
		},
		{
			name: "empty assignee id never matches",
			video: model.Video{
				ID:       "v2",
				Status:   model.StatusScriptInProgress,
				EditorID: strPtr(""),
			},
			scope:  freelancerScope("", model.RoleScriptWriter),
			expect: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Visible(tc.video, tc.scope, TabProduction)
			if got != tc.expect {
				t.Errorf("Visible() = %v, want %v", got, tc.expect)
			}
		})
	}
}

func TestVisibleTerminalTabs(t *testing.T) {
	published := testVideo(model.StatusPublished)
	cancelled := testVideo(model.StatusCancelled)

	tests := []struct {
		name   string
		video  model.Video
		scope  model.Scope
		tab    Tab
		expect bool
	}{
		{
			name:   "admin sees published on published tab",
			video:  published,
			scope:  adminScope(),
			tab:    TabPublished,
			expect: true,
		},
		{
			name:   "freelancer with any assignee slot sees published",
			video:  published,
			scope:  freelancerScope("u-script", model.RoleScriptWriter),
			tab:    TabPublished,
			expect: true,
		},
		{
			name:   "freelancer without any assignee slot does not see published",
			video:  published,
			scope:  freelancerScope("u-none", model.RoleScriptWriter),
			tab:    TabPublished,
			expect: false,
		},
		{
			name:   "published tab excludes non-published videos",
			video:  testVideo(model.StatusEditingDone),
			scope:  adminScope(),
			tab:    TabPublished,
			expect: false,
		},
		{
			name:   "admin sees cancelled on cancelled tab",
			video:  cancelled,
			scope:  adminScope(),
			tab:    TabCancelled,
			expect: true,
		},
		{
			name:   "freelancer assigned to any stage sees cancelled",
			video:  cancelled,
			scope:  freelancerScope("u-thumb", model.RoleThumbMaker),
			tab:    TabCancelled,
			expect: true,
		},
		{
			name:   "unassigned freelancer does not see cancelled",
			video:  cancelled,
			scope:  freelancerScope("u-none", model.RoleEditor),
			tab:    TabCancelled,
			expect: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Visible(tc.video, tc.scope, tc.tab)
			if got != tc.expect {
				t.Errorf("Visible() = %v, want %v", got, tc.expect)
			}
		})
	}
}

func TestFilterVisible(t *testing.T) {
	videos := []model.Video{
		testVideo(model.StatusScriptInProgress),
		testVideo(model.StatusNarrationRequested),
		testVideo(model.StatusPublished),
		testVideo(model.StatusCancelled),
	}

	t.Run("admin production tab drops terminal videos", func(t *testing.T) {
		got := FilterVisible(videos, adminScope(), TabProduction)
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
	})

	t.Run("script writer only sees own stage", func(t *testing.T) {
		got := FilterVisible(videos, freelancerScope("u-script", model.RoleScriptWriter), TabProduction)
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].Status != model.StatusScriptInProgress {
			t.Errorf("status = %s, want %s", got[0].Status, model.StatusScriptInProgress)
		}
	})
}

func TestParseTab(t *testing.T) {
	tests := []struct {
		raw    string
		expect Tab
	}{
		{"published", TabPublished},
		{"cancelled", TabCancelled},
		{"production", TabProduction},
		{"", TabProduction},
		{"bogus", TabProduction},
	}
	for _, tc := range tests {
		if got := ParseTab(tc.raw); got != tc.expect {
			t.Errorf("ParseTab(%q) = %s, want %s", tc.raw, got, tc.expect)
		}
	}
}
