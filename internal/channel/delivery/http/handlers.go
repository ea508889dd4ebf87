package http

import (
	"github.com/gin-gonic/gin"

	"tubeline-api/internal/channel"
	"tubeline-api/pkg/response"
)

// Get lists the company's channels.
// @Summary List channels
// @Tags Channel
// @Param search query string false "Name search term"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Resp{data=listChannelResp}
// @Router /channels [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.channel.delivery.http.Get.ShouldBindQuery: %v", err)
		response.ErrorWithMap(c, channel.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newListChannelResp(out))
}

// Detail returns one channel.
// @Summary Channel detail
// @Tags Channel
// @Param id path string true "Channel ID"
// @Success 200 {object} response.Resp{data=channelResp}
// @Router /channels/{id} [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newChannelResp(out.Channel))
}

// Create creates a channel. Admin only.
// @Summary Create channel
// @Tags Channel
// @Param body body createReq true "Channel"
// @Success 200 {object} response.Resp{data=channelResp}
// @Router /channels [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.channel.delivery.http.Create.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, channel.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newChannelResp(out.Channel))
}

// Update edits a channel. Admin only.
// @Summary Update channel
// @Tags Channel
// @Param id path string true "Channel ID"
// @Param body body updateReq true "Channel"
// @Success 200 {object} response.Resp{data=channelResp}
// @Router /channels/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.channel.delivery.http.Update.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, channel.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newChannelResp(out.Channel))
}

// Delete removes a channel. Admin only.
// @Summary Delete channel
// @Tags Channel
// @Param id path string true "Channel ID"
// @Success 200 {object} response.Resp
// @Router /channels/{id} [DELETE]
func (h *Handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, nil)
}
