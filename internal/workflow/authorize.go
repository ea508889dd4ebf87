package workflow

import "tubeline-api/internal/model"

// Authorize decides whether the principal may move the video to target.
//
// Admins may select any valid status, including CANCELLED. Freelancers may
// only select statuses of the stage the video currently sits in, and only
// when that stage is their own role's stage and they are its assignee on the
// video. The check is pure; callers run it before touching storage so a
// denial never leaves a partial update behind.
func Authorize(scope model.Scope, video model.Video, target model.Status) error {
	if !target.IsValid() {
		return ErrInvalidTargetStatus
	}

	if scope.IsAdmin() {
		return nil
	}

	if !scope.IsFreelancer() || !scope.HasRole() {
		return ErrInsufficientPermission
	}

	if video.Status.IsTerminal() {
		return ErrVideoTerminal
	}

	current := video.Status.Stage()
	if current == model.StageNone {
		// PENDING has no responsible stage, only admins advance it.
		return ErrInsufficientPermission
	}
	if current != scope.Role.Stage() {
		return ErrInsufficientPermission
	}
	if !video.IsStageAssignee(current, scope.UserID) {
		return ErrInsufficientPermission
	}
	if target.Stage() != current {
		return ErrInsufficientPermission
	}

	return nil
}

// SelectableStatuses returns the statuses the principal may offer as targets
// for the video. Admins get the full taxonomy; an authorized freelancer gets
// the three statuses of the video's current stage; everyone else gets none.
func SelectableStatuses(scope model.Scope, video model.Video) []model.Status {
	if scope.IsAdmin() {
		return model.AllStatuses()
	}

	stage := video.Status.Stage()
	if stage == model.StageNone {
		return nil
	}
	if !scope.IsFreelancer() || !scope.HasRole() {
		return nil
	}
	if stage != scope.Role.Stage() || !video.IsStageAssignee(stage, scope.UserID) {
		return nil
	}
	return stage.Statuses()
}
