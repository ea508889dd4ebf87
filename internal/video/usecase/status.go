package usecase

import (
	"context"
	"fmt"

	"tubeline-api/internal/model"
	userRepo "tubeline-api/internal/user/repository"
	"tubeline-api/internal/video"
	"tubeline-api/internal/video/repository"
	"tubeline-api/internal/workflow"
)

// ChangeStatus processes one status-change request end to end.
//
// The authorization check runs before anything touches storage, so a denial
// never leaves a partial update. When the target is a stage hand-off and the
// actor has not answered the notification question (SendMessage nil), the
// request is suspended as the principal's single pending transition and
// nothing commits yet. Committing never depends on the answer itself; only
// the message dispatch does.
func (uc *usecase) ChangeStatus(ctx context.Context, sc model.Scope, ip video.ChangeStatusInput) (video.ChangeStatusOutput, error) {
	vid, err := uc.repo.Detail(ctx, sc, ip.VideoID)
	if err != nil {
		if err == repository.ErrNotFound {
			return video.ChangeStatusOutput{}, video.ErrVideoNotFound
		}
		uc.l.Errorf(ctx, "internal.video.usecase.ChangeStatus.Detail: %v", err)
		return video.ChangeStatusOutput{}, err
	}

	if err := workflow.Authorize(sc, vid, ip.Status); err != nil {
		switch err {
		case workflow.ErrInvalidTargetStatus:
			return video.ChangeStatusOutput{}, video.ErrInvalidStatus
		default:
			return video.ChangeStatusOutput{}, video.ErrInsufficientPermission
		}
	}

	if ip.ExpectedStatus != nil && vid.Status != *ip.ExpectedStatus {
		return video.ChangeStatusOutput{}, video.ErrStatusConflict
	}

	if workflow.RequiresNotification(ip.Status) && ip.SendMessage == nil {
		return uc.suspendTransition(ctx, sc, vid, ip.Status)
	}

	sendMessage := ip.SendMessage != nil && *ip.SendMessage
	return uc.commitTransition(ctx, sc, vid, ip.Status, ip.ExpectedStatus, sendMessage)
}

// ResolvePending commits the principal's suspended transition with the
// actor's notification decision. The status change goes through for both
// answers; declining only suppresses the message.
func (uc *usecase) ResolvePending(ctx context.Context, sc model.Scope, ip video.ResolvePendingInput) (video.ChangeStatusOutput, error) {
	pt, err := uc.pending.Take(ctx, sc)
	if err != nil {
		if err == repository.ErrNotFound {
			return video.ChangeStatusOutput{}, video.ErrNoPendingTransition
		}
		uc.l.Errorf(ctx, "internal.video.usecase.ResolvePending.Take: %v", err)
		return video.ChangeStatusOutput{}, err
	}

	vid, err := uc.repo.Detail(ctx, sc, pt.VideoID)
	if err != nil {
		if err == repository.ErrNotFound {
			return video.ChangeStatusOutput{}, video.ErrVideoNotFound
		}
		uc.l.Errorf(ctx, "internal.video.usecase.ResolvePending.Detail: %v", err)
		return video.ChangeStatusOutput{}, err
	}

	// Re-authorize: the video may have moved while the prompt was open.
	if err := workflow.Authorize(sc, vid, pt.TargetStatus); err != nil {
		return video.ChangeStatusOutput{}, video.ErrInsufficientPermission
	}

	// The commit is conditional on the status the prompt was issued for, so
	// a concurrent change surfaces as a conflict instead of a silent overwrite.
	expected := pt.FromStatus
	return uc.commitTransition(ctx, sc, vid, pt.TargetStatus, &expected, ip.SendMessage)
}

func (uc *usecase) SelectableStatuses(ctx context.Context, sc model.Scope, id string) ([]model.Status, error) {
	vid, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, video.ErrVideoNotFound
		}
		uc.l.Errorf(ctx, "internal.video.usecase.SelectableStatuses.Detail: %v", err)
		return nil, err
	}

	return workflow.SelectableStatuses(sc, vid), nil
}

// suspendTransition parks the request as the principal's pending transition.
// A still-open earlier prompt is replaced, and the replacement is signaled
// back to the caller rather than dropped silently.
func (uc *usecase) suspendTransition(ctx context.Context, sc model.Scope, vid model.Video, target model.Status) (video.ChangeStatusOutput, error) {
	pt := video.PendingTransition{
		VideoID:      vid.ID,
		TargetStatus: target,
		FromStatus:   vid.Status,
		RequestedBy:  sc.UserID,
		CreatedAt:    uc.clock(),
	}

	replaced, err := uc.pending.Put(ctx, sc, pt)
	if err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.suspendTransition.Put: %v", err)
		return video.ChangeStatusOutput{}, err
	}

	return video.ChangeStatusOutput{
		Video:             uc.enrichVideo(ctx, sc, vid),
		Pending:           true,
		PendingTransition: &pt,
		Replaced:          replaced != nil,
	}, nil
}

func (uc *usecase) commitTransition(ctx context.Context, sc model.Scope, vid model.Video, target model.Status, expected *model.Status, sendMessage bool) (video.ChangeStatusOutput, error) {
	updated, err := uc.repo.UpdateStatus(ctx, sc, repository.UpdateStatusOptions{
		ID:             vid.ID,
		Status:         target,
		ExpectedStatus: expected,
	})
	if err != nil {
		switch err {
		case repository.ErrStatusMismatch:
			return video.ChangeStatusOutput{}, video.ErrStatusConflict
		case repository.ErrNotFound:
			return video.ChangeStatusOutput{}, video.ErrVideoNotFound
		}
		uc.l.Errorf(ctx, "internal.video.usecase.commitTransition.UpdateStatus: %v", err)
		return video.ChangeStatusOutput{}, err
	}

	// A commit settles any open prompt of this principal.
	if _, err := uc.pending.Take(ctx, sc); err != nil && err != repository.ErrNotFound {
		uc.l.Warnf(ctx, "internal.video.usecase.commitTransition.Take: %v", err)
	}

	sent := false
	if sendMessage && workflow.RequiresNotification(target) {
		sent = uc.notifyHandOff(ctx, sc, updated, target)
	}

	return video.ChangeStatusOutput{
		Video:            uc.enrichVideo(ctx, sc, updated),
		NotificationSent: sent,
	}, nil
}

// notifyHandOff messages the stage assignee the video was just handed to.
// Dispatch is best effort: the transition is already committed, so failures
// are logged and reported as not-sent instead of failing the request.
func (uc *usecase) notifyHandOff(ctx context.Context, sc model.Scope, vid model.Video, target model.Status) bool {
	assigneeID := workflow.NotifyTarget(vid, target)
	if assigneeID == nil {
		return false
	}

	usr, err := uc.userRepo.Detail(ctx, sc, *assigneeID)
	if err != nil {
		if err != userRepo.ErrNotFound {
			uc.l.Errorf(ctx, "internal.video.usecase.notifyHandOff.Detail: %v", err)
		}
		return false
	}
	if usr.PhoneEncrypted == nil || *usr.PhoneEncrypted == "" {
		return false
	}

	phone, err := uc.enc.Decrypt(*usr.PhoneEncrypted)
	if err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.notifyHandOff.Decrypt: %v", err)
		return false
	}

	body := fmt.Sprintf("New assignment: %q is now %s and waiting for you.", vid.Title, target)
	if err := uc.wa.SendText(ctx, phone, body); err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.notifyHandOff.SendText: %v", err)
		return false
	}

	return true
}
