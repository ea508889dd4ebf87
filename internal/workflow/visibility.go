package workflow

import "tubeline-api/internal/model"

// Visible reports whether the principal may see the video on the given tab.
//
// Terminal tabs (published, cancelled) show admins every matching video and
// freelancers the ones where they hold any of the four assignee slots. The
// production tab excludes terminal videos entirely; there a freelancer sees a
// video only when the video's current stage is their own role's stage and they
// are the assignee of that stage on that video. A principal without a
// recognized role sees nothing on the production tab.
func Visible(video model.Video, scope model.Scope, tab Tab) bool {
	switch tab {
	case TabCancelled:
		return visibleTerminal(video, scope, model.StatusCancelled)
	case TabPublished:
		return visibleTerminal(video, scope, model.StatusPublished)
	default:
		return visibleProduction(video, scope)
	}
}

func visibleTerminal(video model.Video, scope model.Scope, want model.Status) bool {
	if video.Status != want {
		return false
	}
	if scope.IsAdmin() {
		return true
	}
	if scope.IsFreelancer() {
		return video.IsAnyAssignee(scope.UserID)
	}
	return false
}

func visibleProduction(video model.Video, scope model.Scope) bool {
	if video.Status.IsTerminal() {
		return false
	}
	if scope.IsAdmin() {
		return true
	}
	if !scope.IsFreelancer() || !scope.HasRole() {
		return false
	}

	stage := video.Status.Stage()
	if stage != scope.Role.Stage() {
		return false
	}

	return video.IsStageAssignee(stage, scope.UserID)
}

// FilterVisible keeps the videos the principal may see on the given tab,
// preserving order.
func FilterVisible(videos []model.Video, scope model.Scope, tab Tab) []model.Video {
	out := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		if Visible(v, scope, tab) {
			out = append(out, v)
		}
	}
	return out
}
