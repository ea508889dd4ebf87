package http

import (
	"github.com/gin-gonic/gin"

	"tubeline-api/internal/model"
	"tubeline-api/internal/video"
	"tubeline-api/internal/workflow"
	"tubeline-api/pkg/paginator"
	"tubeline-api/pkg/scope"
)

// processScope pulls the authenticated scope the middleware attached.
// The second return value is false when the request carries no scope.
func (h *Handler) processScope(c *gin.Context) (model.Scope, bool) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok || sc.UserID == "" {
		return model.Scope{}, false
	}
	return sc, true
}

type getReq struct {
	ChannelID    string `form:"channel_id"`
	FreelancerID string `form:"freelancer_id"`
	Status       string `form:"status"`
	Search       string `form:"search"`
	Tab          string `form:"tab"`
	Page         int    `form:"page"`
	Limit        int64  `form:"limit"`
}

func (r getReq) toInput() (video.GetInput, error) {
	f := video.Filter{
		ChannelID:    r.ChannelID,
		FreelancerID: r.FreelancerID,
		Search:       r.Search,
		Tab:          workflow.ParseTab(r.Tab),
	}
	if r.Status != "" {
		st, err := model.ParseStatus(r.Status)
		if err != nil {
			return video.GetInput{}, video.ErrInvalidStatus
		}
		f.Status = &st
	}

	return video.GetInput{
		Filter: f,
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}, nil
}

type createReq struct {
	Title          string  `json:"title"`
	ChannelID      string  `json:"channel_id"`
	ScriptWriterID string  `json:"script_writer_id"`
	NarratorID     string  `json:"narrator_id"`
	EditorID       string  `json:"editor_id"`
	ThumbMakerID   string  `json:"thumb_maker_id"`
	Observations   *string `json:"observations"`
}

func (r createReq) toInput() video.CreateInput {
	return video.CreateInput{
		Title:          r.Title,
		ChannelID:      r.ChannelID,
		ScriptWriterID: r.ScriptWriterID,
		NarratorID:     r.NarratorID,
		EditorID:       r.EditorID,
		ThumbMakerID:   r.ThumbMakerID,
		Observations:   r.Observations,
	}
}

type updateReq struct {
	Title          string  `json:"title"`
	ChannelID      string  `json:"channel_id"`
	ScriptWriterID string  `json:"script_writer_id"`
	NarratorID     string  `json:"narrator_id"`
	EditorID       string  `json:"editor_id"`
	ThumbMakerID   string  `json:"thumb_maker_id"`
	Observations   *string `json:"observations"`
	YoutubeURL     *string `json:"youtube_url"`
}

func (r updateReq) toInput(id string) video.UpdateInput {
	return video.UpdateInput{
		ID:             id,
		Title:          r.Title,
		ChannelID:      r.ChannelID,
		ScriptWriterID: r.ScriptWriterID,
		NarratorID:     r.NarratorID,
		EditorID:       r.EditorID,
		ThumbMakerID:   r.ThumbMakerID,
		Observations:   r.Observations,
		YoutubeURL:     r.YoutubeURL,
	}
}

type changeStatusReq struct {
	Status string `json:"status"`
	// SendMessage mirrors the 0|1 wire convention. Absent means the actor
	// has not been asked yet.
	SendMessage    *int   `json:"send_message"`
	ExpectedStatus string `json:"expected_status"`
}

func (r changeStatusReq) toInput(id string) (video.ChangeStatusInput, error) {
	st, err := model.ParseStatus(r.Status)
	if err != nil {
		return video.ChangeStatusInput{}, video.ErrInvalidStatus
	}

	ip := video.ChangeStatusInput{
		VideoID: id,
		Status:  st,
	}

	if r.SendMessage != nil {
		send := *r.SendMessage != 0
		ip.SendMessage = &send
	}

	if r.ExpectedStatus != "" {
		expected, err := model.ParseStatus(r.ExpectedStatus)
		if err != nil {
			return video.ChangeStatusInput{}, video.ErrInvalidStatus
		}
		ip.ExpectedStatus = &expected
	}

	return ip, nil
}

type resolvePendingReq struct {
	SendMessage int `json:"send_message"`
}

type addCommentReq struct {
	Text string `json:"text"`
}
