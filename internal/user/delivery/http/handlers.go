package http

import (
	"github.com/gin-gonic/gin"

	"tubeline-api/internal/user"
	"tubeline-api/pkg/response"
)

// Get lists the company's users.
// @Summary List users
// @Tags User
// @Param kind query string false "Kind: USER or FREELANCER"
// @Param role query string false "Freelancer role"
// @Param search query string false "Name or email search term"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Resp{data=listUserResp}
// @Router /users [GET]
func (h *Handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.Get.ShouldBindQuery: %v", err)
		response.ErrorWithMap(c, user.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Get(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newListUserResp(out))
}

// DetailMe returns the authenticated user.
// @Summary Current user
// @Tags User
// @Success 200 {object} response.Resp{data=userResp}
// @Router /users/me [GET]
func (h *Handler) DetailMe(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.DetailMe(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newUserResp(out.User))
}

// Detail returns one user.
// @Summary User detail
// @Tags User
// @Param id path string true "User ID"
// @Success 200 {object} response.Resp{data=userResp}
// @Router /users/{id} [GET]
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

	response.OK(c, newUserResp(out.User))
}

// Create creates an administrator or freelancer. Admin only.
// @Summary Create user
// @Tags User
// @Param body body createReq true "User"
// @Success 200 {object} response.Resp{data=userResp}
// @Router /users [POST]
func (h *Handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.Create.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, user.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newUserResp(out.User))
}

// Update edits a user. Admin only.
// @Summary Update user
// @Tags User
// @Param id path string true "User ID"
// @Param body body updateReq true "User"
// @Success 200 {object} response.Resp{data=userResp}
// @Router /users/{id} [PUT]
func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.Update.ShouldBindJSON: %v", err)
		response.ErrorWithMap(c, user.ErrFieldRequired, errorMapping)
		return
	}

	out, err := h.uc.Update(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	response.OK(c, newUserResp(out.User))
}

// Delete removes a user. Admin only.
// @Summary Delete user
// @Tags User
// @Param id path string true "User ID"
// @Success 200 {object} response.Resp
// @Router /users/{id} [DELETE]
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
