package http

import (
	"github.com/gin-gonic/gin"

	"tubeline-api/internal/model"
	"tubeline-api/pkg/response"
	"tubeline-api/pkg/scope"
)

type planResp struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	MaxVideos  *int   `json:"max_videos,omitempty"`
}

type subscriptionResp struct {
	ID          string             `json:"id"`
	Status      string             `json:"status"`
	Usable      bool               `json:"usable"`
	TrialEndsAt *response.DateTime `json:"trial_ends_at,omitempty"`
	StartsAt    response.DateTime  `json:"starts_at"`
	EndsAt      *response.DateTime `json:"ends_at,omitempty"`
	Plan        *planResp          `json:"plan,omitempty"`
}

func (h *Handler) processScope(c *gin.Context) (model.Scope, bool) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok || sc.UserID == "" {
		return model.Scope{}, false
	}
	return sc, true
}

// Detail returns the company's current subscription.
// @Summary Subscription detail
// @Tags Subscription
// @Success 200 {object} response.Resp{data=subscriptionResp}
// @Router /subscription [GET]
func (h *Handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	out, err := h.uc.Detail(ctx, sc)
	if err != nil {
		response.ErrorWithMap(c, err, errorMapping)
		return
	}

	usable, err := h.uc.IsUsable(ctx, sc)
	if err != nil {
		h.l.Warnf(ctx, "internal.subscription.delivery.http.Detail.IsUsable: %v", err)
	}

	resp := subscriptionResp{
		ID:       out.Subscription.ID,
		Status:   out.Subscription.Status.String(),
		Usable:   usable,
		StartsAt: response.DateTime(out.Subscription.StartsAt),
	}
	if out.Subscription.TrialEndsAt != nil {
		t := response.DateTime(*out.Subscription.TrialEndsAt)
		resp.TrialEndsAt = &t
	}
	if out.Subscription.EndsAt != nil {
		t := response.DateTime(*out.Subscription.EndsAt)
		resp.EndsAt = &t
	}
	if out.Plan != nil {
		resp.Plan = &planResp{
			ID:         out.Plan.ID,
			Name:       out.Plan.Name,
			PriceCents: out.Plan.PriceCents,
			MaxVideos:  out.Plan.MaxVideos,
		}
	}

	response.OK(c, resp)
}
