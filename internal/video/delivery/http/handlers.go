package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"tubeline-api/internal/video"
	"tubeline-api/pkg/response"
)

// thumbnailURLTTL mirrors the presigned link lifetime the usecase issues.
const thumbnailURLTTL = 15 * time.Minute

// Get lists videos visible to the principal.
// @Summary List videos
// @Description List videos for the current tab, filtered by the principal's visibility.
// @Tags Video
// @Param channel_id query string false "Channel ID"
// @Param freelancer_id query string false "Freelancer ID"
// @Param status query string false "Status"
// @Param search query string false "Title search term"
// @Param tab query string false "Tab: production, published or cancelled"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Resp{data=listVideoResp}
// @Router /videos [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.video.delivery.http.Get.ShouldBindQuery: %v", err)
		response.ErrorWithMap(c, video.ErrInvalidStatus, errorMapping)
		return
	}

	ip, err := req.toInput()
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	out, err := h.uc.Get(ctx, sc, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newListVideoResp(out))
}

// Detail returns one video.
// @Summary Video detail
// @Tags Video
// @Param id path string true "Video ID"
// @Success 200 {object} response.Resp{data=videoResp}
// @Router /videos/{id} [GET]
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

	response.OK(c, newVideoResp(out.Video))
}

// Create creates a video with all four stage assignees. Admin only.
// @Summary Create video
// @Tags Video
// @Param body body createReq true "Video"
// @Success 200 {object} response.Resp{data=videoResp}
// @Router /videos [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.video.delivery.http.Create.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, video.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newVideoResp(out.Video))
}

// Update edits a video's metadata and assignees. Admin only. The status
// field is untouchable here; ChangeStatus owns the state machine.
// @Summary Update video
// @Tags Video
// @Param id path string true "Video ID"
// @Param body body updateReq true "Video"
// @Success 200 {object} response.Resp{data=videoResp}
// @Router /videos/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.video.delivery.http.Update.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, video.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newVideoResp(out.Video))
}

// Delete removes a video. Admin only.
// @Summary Delete video
// @Tags Video
// @Param id path string true "Video ID"
// @Success 200 {object} response.Resp
// @Router /videos/{id} [DELETE]
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

// ChangeStatus moves a video through the pipeline. Hand-off targets without
// a send_message answer are suspended and answered via PUT /videos/pending.
// @Summary Change video status
// @Tags Video
// @Param id path string true "Video ID"
// @Param body body changeStatusReq true "Target status"
// @Success 200 {object} response.Resp{data=changeStatusResp}
// @Success 202 {object} response.Resp{data=changeStatusResp} "Suspended awaiting notification decision"
// @Router /videos/{id}/status [PUT]
func (h *Handler) ChangeStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req changeStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.video.delivery.http.ChangeStatus.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, video.ErrInvalidStatus, errorMapping)
		return
	}

	ip, err := req.toInput(c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	out, err := h.uc.ChangeStatus(ctx, sc, ip)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	if out.Pending {
		response.Accepted(c, newChangeStatusResp(out))
		return
	}
	response.OK(c, newChangeStatusResp(out))
}

// ResolvePending answers the principal's open notification prompt.
// @Summary Resolve pending transition
// @Tags Video
// @Param body body resolvePendingReq true "Notification decision"
// @Success 200 {object} response.Resp{data=changeStatusResp}
// @Router /videos/pending [PUT]
func (h *Handler) ResolvePending(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req resolvePendingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.video.delivery.http.ResolvePending.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, video.ErrNoPendingTransition, errorMapping)
		return
	}

	out, err := h.uc.ResolvePending(ctx, sc, video.ResolvePendingInput{
		SendMessage: req.SendMessage != 0,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newChangeStatusResp(out))
}

// SelectableStatuses lists the statuses the principal may move the video to.
// @Summary Selectable statuses
// @Tags Video
// @Param id path string true "Video ID"
// @Success 200 {object} response.Resp{data=statusListResp}
// @Router /videos/{id}/statuses [GET]
func (h *Handler) SelectableStatuses(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	sts, err := h.uc.SelectableStatuses(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newStatusListResp(sts))
}

// ListComments returns a video's comments in creation order.
// @Summary List comments
// @Tags Video
// @Param id path string true "Video ID"
// @Success 200 {object} response.Resp{data=[]commentResp}
// @Router /videos/{id}/comments [GET]
func (h *Handler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	comments, err := h.uc.ListComments(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newCommentListResp(comments))
}

// AddComment appends a comment to a video.
// @Summary Add comment
// @Tags Video
// @Param id path string true "Video ID"
// @Param body body addCommentReq true "Comment"
// @Success 200 {object} response.Resp{data=commentResp}
// @Router /videos/{id}/comments [POST]
func (h *Handler) AddComment(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req addCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.video.delivery.http.AddComment.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, video.ErrCommentTextRequired, errorMapping)
		return
	}

	cmt, err := h.uc.AddComment(ctx, sc, video.AddCommentInput{
		VideoID: c.Param("id"),
		Text:    req.Text,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newCommentResp(cmt))
}

// UploadThumbnail stores the video's thumbnail image.
// @Summary Upload thumbnail
// @Tags Video
// @Accept multipart/form-data
// @Param id path string true "Video ID"
// @Param file formData file true "Thumbnail image"
// @Success 200 {object} response.Resp{data=videoResp}
// @Router /videos/{id}/thumbnail [POST]
func (h *Handler) UploadThumbnail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ErrorWithMap(c, video.ErrInvalidThumbnail, errorMapping)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.l.Errorf(ctx, "internal.video.delivery.http.UploadThumbnail.Open: %v", err)
		response.ErrorWithMap(c, video.ErrInvalidThumbnail, errorMapping)
		return
	}
	defer file.Close()

	out, err := h.uc.UploadThumbnail(ctx, sc, video.UploadThumbnailInput{
		VideoID:     c.Param("id"),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newVideoResp(out.Video))
}

// ThumbnailURL returns a time-limited link to the video's thumbnail.
// @Summary Thumbnail download link
// @Tags Video
// @Param id path string true "Video ID"
// @Success 200 {object} response.Resp{data=thumbnailURLResp}
// @Router /videos/{id}/thumbnail [GET]
func (h *Handler) ThumbnailURL(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	url, err := h.uc.ThumbnailURL(ctx, sc, c.Param("id"))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newThumbnailURLResp(url, thumbnailURLTTL))
}
