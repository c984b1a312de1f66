package http

import (
	"github.com/gin-gonic/gin"

	"ai-task-planner/pkg/response"
)

// CreateFromText godoc
// @Summary     Create tasks from free text
// @Description Rewrites the text (LLM or local fallback), infers the time intent and stores one task per item for today.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Free text"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request / could not extract tasks"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/create [POST]
func (h *handler) CreateFromText(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processReq[createReq](h, c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateFromText(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// EnhanceText godoc
// @Summary     Rewrite free text
// @Description Returns the text rewritten one task per line, without storing anything.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body enhanceReq true "Free text"
// @Success     200  {object} enhanceResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/enhance [POST]
func (h *handler) EnhanceText(c *gin.Context) {
	ctx := c.Request.Context()

	_, req, err := processReq[enhanceReq](h, c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.EnhanceText(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.EnhanceText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, enhanceResp{Text: output.Text})
}

// Preview godoc
// @Summary     Dry-run the text pipeline
// @Description Shows the tasks and reminders free text would produce on a given day. Nothing is stored.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body previewReq true "Free text and optional day"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/ai/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := processReq[previewReq](h, c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Preview(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Preview: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newPreviewResp(output))
}
