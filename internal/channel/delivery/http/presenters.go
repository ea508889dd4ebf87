package http

import (
	"tubeline-api/internal/channel"
	"tubeline-api/internal/model"
	"tubeline-api/pkg/paginator"
	"tubeline-api/pkg/response"
)

type channelResp struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	YoutubeID *string `json:"youtube_id,omitempty"`

	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newChannelResp(ch model.Channel) channelResp {
	return channelResp{
		ID:        ch.ID,
		Name:      ch.Name,
		YoutubeID: ch.YoutubeID,
		CreatedAt: response.DateTime(ch.CreatedAt),
		UpdatedAt: response.DateTime(ch.UpdatedAt),
	}
}

type listChannelResp struct {
	Channels  []channelResp               `json:"channels"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListChannelResp(out channel.GetOutput) listChannelResp {
	items := make([]channelResp, len(out.Channels))
	for i, ch := range out.Channels {
		items[i] = newChannelResp(ch)
	}
	return listChannelResp{
		Channels:  items,
		Paginator: out.Paginator.ToResponse(),
	}
}
