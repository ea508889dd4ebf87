package http

import (
	"time"

	"tubeline-api/internal/model"
	"tubeline-api/internal/video"
	"tubeline-api/pkg/paginator"
	"tubeline-api/pkg/response"
)

type videoResp struct {
	ID               string  `json:"id"`
	Title            string  `json:"title"`
	ChannelID        string  `json:"channel_id"`
	ChannelName      string  `json:"channel_name"`
	Status           string  `json:"status"`
	ScriptWriterID   *string `json:"script_writer_id"`
	ScriptWriterName string  `json:"script_writer_name"`
	NarratorID       *string `json:"narrator_id"`
	NarratorName     string  `json:"narrator_name"`
	EditorID         *string `json:"editor_id"`
	EditorName       string  `json:"editor_name"`
	ThumbMakerID     *string `json:"thumb_maker_id"`
	ThumbMakerName   string  `json:"thumb_maker_name"`
	Observations     *string `json:"observations,omitempty"`
	YoutubeURL       *string `json:"youtube_url,omitempty"`
	HasThumbnail     bool    `json:"has_thumbnail"`

	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newVideoResp(v model.Video) videoResp {
	return videoResp{
		ID:               v.ID,
		Title:            v.Title,
		ChannelID:        v.ChannelID,
		ChannelName:      v.ChannelName,
		Status:           v.Status.String(),
		ScriptWriterID:   v.ScriptWriterID,
		ScriptWriterName: v.ScriptWriterName,
		NarratorID:       v.NarratorID,
		NarratorName:     v.NarratorName,
		EditorID:         v.EditorID,
		EditorName:       v.EditorName,
		ThumbMakerID:     v.ThumbMakerID,
		ThumbMakerName:   v.ThumbMakerName,
		Observations:     v.Observations,
		YoutubeURL:       v.YoutubeURL,
		HasThumbnail:     v.ThumbnailKey != nil && *v.ThumbnailKey != "",
		CreatedAt:        response.DateTime(v.CreatedAt),
		UpdatedAt:        response.DateTime(v.UpdatedAt),
	}
}

type listVideoResp struct {
	Videos    []videoResp                 `json:"videos"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListVideoResp(out video.GetOutput) listVideoResp {
	items := make([]videoResp, len(out.Videos))
	for i, v := range out.Videos {
		items[i] = newVideoResp(v)
	}
	return listVideoResp{
		Videos:    items,
		Paginator: out.Paginator.ToResponse(),
	}
}

type pendingTransitionResp struct {
	VideoID      string            `json:"video_id"`
	TargetStatus string            `json:"target_status"`
	FromStatus   string            `json:"from_status"`
	CreatedAt    response.DateTime `json:"created_at"`
}

type changeStatusResp struct {
	Video             *videoResp             `json:"video,omitempty"`
	Pending           bool                   `json:"pending"`
	PendingTransition *pendingTransitionResp `json:"pending_transition,omitempty"`
	Replaced          bool                   `json:"replaced"`
	NotificationSent  bool                   `json:"notification_sent"`
}

func newChangeStatusResp(out video.ChangeStatusOutput) changeStatusResp {
	resp := changeStatusResp{
		Pending:          out.Pending,
		Replaced:         out.Replaced,
		NotificationSent: out.NotificationSent,
	}

	v := newVideoResp(out.Video)
	resp.Video = &v

	if out.PendingTransition != nil {
		resp.PendingTransition = &pendingTransitionResp{
			VideoID:      out.PendingTransition.VideoID,
			TargetStatus: out.PendingTransition.TargetStatus.String(),
			FromStatus:   out.PendingTransition.FromStatus.String(),
			CreatedAt:    response.DateTime(out.PendingTransition.CreatedAt),
		}
	}

	return resp
}

type commentResp struct {
	ID         string            `json:"id"`
	VideoID    string            `json:"video_id"`
	AuthorID   string            `json:"author_id"`
	AuthorKind string            `json:"author_kind"`
	AuthorName string            `json:"author_name"`
	Text       string            `json:"text"`
	CreatedAt  response.DateTime `json:"created_at"`
}

func newCommentResp(c model.Comment) commentResp {
	return commentResp{
		ID:         c.ID,
		VideoID:    c.VideoID,
		AuthorID:   c.AuthorID,
		AuthorKind: string(c.AuthorKind),
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  response.DateTime(c.CreatedAt),
	}
}

func newCommentListResp(comments []model.Comment) []commentResp {
	out := make([]commentResp, len(comments))
	for i, c := range comments {
		out[i] = newCommentResp(c)
	}
	return out
}

type statusListResp struct {
	Statuses []string `json:"statuses"`
}

func newStatusListResp(sts []model.Status) statusListResp {
	out := make([]string, len(sts))
	for i, s := range sts {
		out[i] = s.String()
	}
	return statusListResp{Statuses: out}
}

type thumbnailURLResp struct {
	URL       string            `json:"url"`
	ExpiresAt response.DateTime `json:"expires_at"`
}

func newThumbnailURLResp(url string, expiry time.Duration) thumbnailURLResp {
	return thumbnailURLResp{
		URL:       url,
		ExpiresAt: response.DateTime(time.Now().Add(expiry)),
	}
}
