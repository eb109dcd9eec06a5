package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"taskmate/internal/middleware"
	"taskmate/pkg/response"
)

// ParseTask godoc
// @Summary     Create a task from natural language
// @Description Sends the text through the model and creates the parsed task.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body parseTaskReq true "Natural language input"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Model output unusable"
// @Failure     503 {object} response.Resp "Model unavailable"
// @Router      /api/v1/ai/parse-task [POST]
func (h *handler) ParseTask(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req parseTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.uc.ParseAndCreateTask(ctx, sc, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "ai.uc.ParseAndCreateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newTaskResp(created))
}

// Chat godoc
// @Summary     Handle free-form natural language input
// @Description Classifies the intent and routes to create, summarize, or categorize.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Input with optional task ids and date"
// @Success     200 {object} response.Resp
// @Router      /api/v1/ai/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	var date *time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			response.Error(c, pkgDateError())
			return
		}
		date = &parsed
	}

	result, err := h.uc.HandleUserInput(ctx, sc, req.Text, req.TaskIDs, date)
	if err != nil {
		h.l.Errorf(ctx, "ai.uc.HandleUserInput: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newChatResp(result))
}

// Categorize godoc
// @Summary     Categorize a task with model suggestions
// @Description Best effort, returns the task unchanged when no suggestion applies.
// @Tags        AI
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/ai/categorize/{id} [PATCH]
func (h *handler) Categorize(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	updated, err := h.uc.CategorizeTask(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "ai.uc.CategorizeTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Summarize godoc
// @Summary     Summarize a list of tasks
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body summarizeReq true "Task ids"
// @Success     200 {object} response.Resp
// @Router      /api/v1/ai/summarize [POST]
func (h *handler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	var req summarizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	summary := h.uc.SummarizeTasks(ctx, sc, req.TaskIDs)
	response.OK(c, summaryResp{Summary: summary})
}

// SummarizeDaily godoc
// @Summary     Summarize the tasks due on one day
// @Tags        AI
// @Produce     json
// @Param       date query string true "Day in YYYY-MM-DD"
// @Success     200 {object} response.Resp
// @Router      /api/v1/ai/summarize/daily [GET]
func (h *handler) SummarizeDaily(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		response.Error(c, pkgDateError())
		return
	}

	summary := h.uc.SummarizeDailyTasks(ctx, sc, date)
	response.OK(c, summaryResp{Summary: summary})
}

// SummarizeAll godoc
// @Summary     Summarize all tasks of the user
// @Tags        AI
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/ai/summarize/all [GET]
func (h *handler) SummarizeAll(c *gin.Context) {
	ctx := c.Request.Context()
	sc, _ := middleware.GetScope(c)

	summary := h.uc.SummarizeAllTasks(ctx, sc)
	response.OK(c, summaryResp{Summary: summary})
}

// HealthCheck godoc
// @Summary     Probe the model gateway
// @Tags        AI
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/ai/health-check [GET]
func (h *handler) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	result := h.uc.HealthCheck(ctx)
	response.OK(c, summaryResp{Summary: result})
}
