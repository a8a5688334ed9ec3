package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
	"smart-todo/pkg/scope"
)

// Create godoc
// @Summary     Create a task
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task"
// @Success     200  {object} taskResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput(h.parser)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	output, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskResp(output.Task))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks filtered and sorted. Filters are combined with AND.
// @Tags        Todo
// @Produce     json
// @Security    BearerAuth
// @Param       search   query string false "Case-insensitive title substring"
// @Param       status   query string false "all|completed|pending|waiting"
// @Param       priority query string false "all|high|medium|low"
// @Param       sort     query string false "created|due|priority|title"
// @Param       order    query string false "asc|desc"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Todo
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskResp(output.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. due_date null clears the due timestamp.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput(h.parser)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	output, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskResp(output.Task))
}

// Toggle godoc
// @Summary     Toggle completion
// @Tags        Todo
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	output, err := h.uc.Toggle(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskResp(output.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Todo
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := scope.GetScopeFromContext(ctx)
	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
