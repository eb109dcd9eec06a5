package http

import (
	"github.com/gin-gonic/gin"

	"taskmate/internal/middleware"
	"taskmate/internal/task"
	"taskmate/pkg/response"
)

// Create godoc
// @Summary     Create a new task
// @Description Creates a task. Due date, when given, must lie in the future.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTaskResp(created))
}

// List godoc
// @Summary     List tasks
// @Description Returns the user's tasks, filterable by status, priority, and favorite.
// @Tags        Task
// @Produce     json
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size (max 100)"
// @Param       status    query string false "PENDING, DONE, or MISSED"
// @Param       priority  query string false "LOW, MEDIUM, or HIGH"
// @Param       favorite  query bool   false "Favorite flag"
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	input, err := processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "task.uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(out))
}

// ByDate godoc
// @Summary     List tasks due on a given day
// @Tags        Task
// @Produce     json
// @Param       date query string true "Day in YYYY-MM-DD"
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks/date [GET]
func (h *handler) ByDate(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	date, err := processDateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.GetByDate(ctx, sc, date)
	if err != nil {
		h.l.Errorf(ctx, "task.uc.GetByDate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskListResp(tasks))
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	found, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "task.uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(found))
}

// Update godoc
// @Summary     Update a task
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Task data"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	req.ID = c.Param("id")

	updated, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "task.uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ChangeStatus godoc
// @Summary     Change task status
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Task ID"
// @Param       body body changeStatusReq true "New status"
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks/{id}/status [PATCH]
func (h *handler) ChangeStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req changeStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.uc.ChangeStatus(ctx, sc, c.Param("id"), task.Status(req.Status))
	if err != nil {
		h.l.Errorf(ctx, "task.uc.ChangeStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(updated))
}

// ChangePriority godoc
// @Summary     Change task priority
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string            true "Task ID"
// @Param       body body changePriorityReq true "New priority"
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks/{id}/priority [PATCH]
func (h *handler) ChangePriority(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req changePriorityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.uc.ChangePriority(ctx, sc, c.Param("id"), task.Priority(req.Priority))
	if err != nil {
		h.l.Errorf(ctx, "task.uc.ChangePriority: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(updated))
}

// ToggleFavorite godoc
// @Summary     Toggle the favorite flag of a task
// @Tags        Task
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks/{id}/favorite [PATCH]
func (h *handler) ToggleFavorite(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	updated, err := h.uc.ToggleFavorite(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "task.uc.ToggleFavorite: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(updated))
}

// ReplaceCategories godoc
// @Summary     Replace the categories assigned to a task
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       id   path string               true "Task ID"
// @Param       body body replaceCategoriesReq true "Category ids"
// @Success     200 {object} response.Resp
// @Router      /api/v1/tasks/{id}/categories [PUT]
func (h *handler) ReplaceCategories(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req replaceCategoriesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.uc.ReplaceCategories(ctx, sc, c.Param("id"), req.CategoryIDs)
	if err != nil {
		h.l.Errorf(ctx, "task.uc.ReplaceCategories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(updated))
}
