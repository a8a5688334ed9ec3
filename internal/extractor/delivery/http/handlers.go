package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
	"smart-todo/pkg/scope"
)

// Extract godoc
// @Summary     Extract a task from free text
// @Description Reads a natural-language instruction and returns a structured task candidate. Nothing is stored.
// @Tags        Extractor
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body extractReq true "Free-text instruction (2-500 characters)"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Validation error"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     429  {object} response.Resp "Quota exceeded, retry later"
// @Failure     500  {object} response.Resp "Not configured or extraction failed"
// @Router      /api/v1/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(output))
}
