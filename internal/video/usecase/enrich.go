package usecase

import (
	"context"

	channelRepo "tubeline-api/internal/channel/repository"
	"tubeline-api/internal/model"
	userRepo "tubeline-api/internal/user/repository"
)

// enrichVideos fills the display-name fields joined from the channel and
// user domains. Enrichment failures degrade to empty names, never to errors.
func (uc *usecase) enrichVideos(ctx context.Context, sc model.Scope, videos []model.Video) []model.Video {
	if len(videos) == 0 {
		return videos
	}

	channelIDs := make(map[string]struct{})
	userIDs := make(map[string]struct{})
	for _, v := range videos {
		channelIDs[v.ChannelID] = struct{}{}
		for _, id := range []*string{v.ScriptWriterID, v.NarratorID, v.EditorID, v.ThumbMakerID} {
			if id != nil && *id != "" {
				userIDs[*id] = struct{}{}
			}
		}
	}

	channelNames := make(map[string]string, len(channelIDs))
	chs, err := uc.channelRepo.List(ctx, sc, channelRepo.ListOptions{
		Filter: channelRepo.Filter{IDs: keys(channelIDs)},
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.video.usecase.enrichVideos.channels: %v", err)
	}
	for _, ch := range chs {
		channelNames[ch.ID] = ch.Name
	}

	userNames := make(map[string]string, len(userIDs))
	users, err := uc.userRepo.List(ctx, sc, userRepo.ListOptions{
		Filter: userRepo.Filter{IDs: keys(userIDs)},
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.video.usecase.enrichVideos.users: %v", err)
	}
	for _, u := range users {
		userNames[u.ID] = u.Name
	}

	nameOf := func(id *string) string {
		if id == nil {
			return ""
		}
		return userNames[*id]
	}

	for i := range videos {
		videos[i].ChannelName = channelNames[videos[i].ChannelID]
		videos[i].ScriptWriterName = nameOf(videos[i].ScriptWriterID)
		videos[i].NarratorName = nameOf(videos[i].NarratorID)
		videos[i].EditorName = nameOf(videos[i].EditorID)
		videos[i].ThumbMakerName = nameOf(videos[i].ThumbMakerID)
	}

	return videos
}

func (uc *usecase) enrichVideo(ctx context.Context, sc model.Scope, vid model.Video) model.Video {
	enriched := uc.enrichVideos(ctx, sc, []model.Video{vid})
	return enriched[0]
}

func (uc *usecase) enrichComments(ctx context.Context, sc model.Scope, comments []model.Comment) []model.Comment {
	if len(comments) == 0 {
		return comments
	}

	authorIDs := make(map[string]struct{})
	for _, c := range comments {
		authorIDs[c.AuthorID] = struct{}{}
	}

	users, err := uc.userRepo.List(ctx, sc, userRepo.ListOptions{
		Filter: userRepo.Filter{IDs: keys(authorIDs)},
	})
	if err != nil {
		uc.l.Warnf(ctx, "internal.video.usecase.enrichComments.users: %v", err)
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}
	for i := range comments {
		comments[i].AuthorName = names[comments[i].AuthorID]
	}

	return comments
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
