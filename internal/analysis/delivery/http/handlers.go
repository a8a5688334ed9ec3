package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/pkg/datemath"
	"smart-todo/pkg/response"
	"smart-todo/pkg/scope"
)

// Analyze godoc
// @Summary     Analyze a task snapshot
// @Description Summarizes the given tasks that fall in the today or week window. An empty window returns a fixed response without calling the generative service.
// @Tags        Analysis
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body analyzeReq true "Tasks and period"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Malformed todos or invalid period"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     429  {object} response.Resp "Quota exceeded, retry later"
// @Failure     500  {object} response.Resp "Not configured or analysis failed"
// @Router      /api/v1/analysis [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	output, err := h.uc.Analyze(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// AnalyzeStored godoc
// @Summary     Analyze stored tasks
// @Tags        Analysis
// @Produce     json
// @Security    BearerAuth
// @Param       period query string true "today|week"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Invalid period"
// @Failure     429 {object} response.Resp "Quota exceeded, retry later"
// @Failure     500 {object} response.Resp "Not configured or analysis failed"
// @Router      /api/v1/analysis [GET]
func (h *handler) AnalyzeStored(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPeriodReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	output, err := h.uc.AnalyzeStored(ctx, sc, datemath.Period(req.Period))
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeStored: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Stats godoc
// @Summary     Productivity statistics
// @Description Raw aggregates over the caller's stored tasks. No generative service call.
// @Tags        Analysis
// @Produce     json
// @Security    BearerAuth
// @Param       period query string true "today|week"
// @Success     200 {object} statsResp
// @Failure     400 {object} response.Resp "Invalid period"
// @Router      /api/v1/analysis/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPeriodReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	output, err := h.uc.Stats(ctx, sc, datemath.Period(req.Period))
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatsResp(output))
}
