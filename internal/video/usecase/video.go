package usecase

import (
	"context"

	channelRepo "tubeline-api/internal/channel/repository"
	"tubeline-api/internal/model"
	userRepo "tubeline-api/internal/user/repository"
	"tubeline-api/internal/video"
	"tubeline-api/internal/video/repository"
	"tubeline-api/internal/workflow"
)

// tabStatuses narrows the repository query to the statuses a tab can show.
func tabStatuses(tab workflow.Tab) []model.Status {
	switch tab {
	case workflow.TabPublished:
		return []model.Status{model.StatusPublished}
	case workflow.TabCancelled:
		return []model.Status{model.StatusCancelled}
	default:
		var sts []model.Status
		for _, s := range model.AllStatuses() {
			if !s.IsTerminal() {
				sts = append(sts, s)
			}
		}
		return sts
	}
}

func (uc *usecase) Get(ctx context.Context, sc model.Scope, ip video.GetInput) (video.GetOutput, error) {
	opts := repository.GetOptions{
		Filter: repository.Filter{
			ChannelID:    ip.Filter.ChannelID,
			FreelancerID: ip.Filter.FreelancerID,
			Status:       ip.Filter.Status,
			Statuses:     tabStatuses(ip.Filter.Tab),
			Search:       ip.Filter.Search,
		},
		PaginateQuery: ip.PaginateQuery,
	}

	// Freelancers only ever see videos they are assigned to, so narrow the
	// query up front. The exact stage and identity rules are applied below.
	if sc.IsFreelancer() {
		opts.Filter.FreelancerID = sc.UserID
	}

	videos, pag, err := uc.repo.Get(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.Get: %v", err)
		return video.GetOutput{}, err
	}

	visible := workflow.FilterVisible(videos, sc, ip.Filter.Tab)
	pag.Count = int64(len(visible))

	return video.GetOutput{
		Videos:    uc.enrichVideos(ctx, sc, visible),
		Paginator: pag,
	}, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, id string) (video.VideoOutput, error) {
	vid, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return video.VideoOutput{}, video.ErrVideoNotFound
		}
		uc.l.Errorf(ctx, "internal.video.usecase.Detail: %v", err)
		return video.VideoOutput{}, err
	}

	if !sc.IsAdmin() && !vid.IsAnyAssignee(sc.UserID) {
		return video.VideoOutput{}, video.ErrVideoNotFound
	}

	return video.VideoOutput{Video: uc.enrichVideo(ctx, sc, vid)}, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip video.CreateInput) (video.VideoOutput, error) {
	if !sc.IsAdmin() {
		return video.VideoOutput{}, video.ErrInsufficientPermission
	}
	if ip.Title == "" || ip.ChannelID == "" {
		return video.VideoOutput{}, video.ErrFieldRequired
	}
	// All four assignees are set at creation so each stage has an owner.
	if ip.ScriptWriterID == "" || ip.NarratorID == "" || ip.EditorID == "" || ip.ThumbMakerID == "" {
		return video.VideoOutput{}, video.ErrFieldRequired
	}

	if err := uc.validateReferences(ctx, sc, ip.ChannelID, []string{
		ip.ScriptWriterID, ip.NarratorID, ip.EditorID, ip.ThumbMakerID,
	}); err != nil {
		return video.VideoOutput{}, err
	}

	vid, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Video: model.Video{
			Title:          ip.Title,
			ChannelID:      ip.ChannelID,
			Status:         model.StatusPending,
			ScriptWriterID: &ip.ScriptWriterID,
			NarratorID:     &ip.NarratorID,
			EditorID:       &ip.EditorID,
			ThumbMakerID:   &ip.ThumbMakerID,
			Observations:   ip.Observations,
			CreatedBy:      sc.UserID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.Create: %v", err)
		return video.VideoOutput{}, err
	}

	return video.VideoOutput{Video: uc.enrichVideo(ctx, sc, vid)}, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip video.UpdateInput) (video.VideoOutput, error) {
	if !sc.IsAdmin() {
		return video.VideoOutput{}, video.ErrInsufficientPermission
	}

	vid, err := uc.repo.Detail(ctx, sc, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return video.VideoOutput{}, video.ErrVideoNotFound
		}
		uc.l.Errorf(ctx, "internal.video.usecase.Update.Detail: %v", err)
		return video.VideoOutput{}, err
	}

	if ip.Title == "" || ip.ChannelID == "" ||
		ip.ScriptWriterID == "" || ip.NarratorID == "" || ip.EditorID == "" || ip.ThumbMakerID == "" {
		return video.VideoOutput{}, video.ErrFieldRequired
	}

	if err := uc.validateReferences(ctx, sc, ip.ChannelID, []string{
		ip.ScriptWriterID, ip.NarratorID, ip.EditorID, ip.ThumbMakerID,
	}); err != nil {
		return video.VideoOutput{}, err
	}

	// Status and created_by survive edits; only ChangeStatus moves the
	// state machine.
	vid.Title = ip.Title
	vid.ChannelID = ip.ChannelID
	vid.ScriptWriterID = &ip.ScriptWriterID
	vid.NarratorID = &ip.NarratorID
	vid.EditorID = &ip.EditorID
	vid.ThumbMakerID = &ip.ThumbMakerID
	vid.Observations = ip.Observations
	if ip.YoutubeURL != nil {
		vid.YoutubeURL = ip.YoutubeURL
	}

	updated, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{Video: vid})
	if err != nil {
		if err == repository.ErrNotFound {
			return video.VideoOutput{}, video.ErrVideoNotFound
		}
		uc.l.Errorf(ctx, "internal.video.usecase.Update: %v", err)
		return video.VideoOutput{}, err
	}

	return video.VideoOutput{Video: uc.enrichVideo(ctx, sc, updated)}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if !sc.IsAdmin() {
		return video.ErrInsufficientPermission
	}

	if err := uc.repo.Delete(ctx, sc, id); err != nil {
		if err == repository.ErrNotFound {
			return video.ErrVideoNotFound
		}
		uc.l.Errorf(ctx, "internal.video.usecase.Delete: %v", err)
		return err
	}

	return nil
}

// validateReferences checks the channel and assignee ids point at records of
// this company before a create or edit is accepted.
func (uc *usecase) validateReferences(ctx context.Context, sc model.Scope, channelID string, assigneeIDs []string) error {
	if _, err := uc.channelRepo.Detail(ctx, sc, channelID); err != nil {
		if err == channelRepo.ErrNotFound {
			return video.ErrChannelNotFound
		}
		uc.l.Errorf(ctx, "internal.video.usecase.validateReferences.channel: %v", err)
		return err
	}

	unique := make(map[string]struct{})
	for _, id := range assigneeIDs {
		unique[id] = struct{}{}
	}

	users, err := uc.userRepo.List(ctx, sc, userRepo.ListOptions{
		Filter: userRepo.Filter{IDs: keys(unique)},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.video.usecase.validateReferences.users: %v", err)
		return err
	}
	if len(users) != len(unique) {
		return video.ErrAssigneeNotFound
	}

	return nil
}
