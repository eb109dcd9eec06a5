package http

import (
	"time"

	"taskmate/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title" binding:"required"`
	Content     string     `json:"content"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	IsFavorite  bool       `json:"is_favorite"`
	CategoryIDs []string   `json:"category_ids"`
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Content:     r.Content,
		DueDate:     r.DueDate,
		Status:      task.Status(r.Status),
		Priority:    task.Priority(r.Priority),
		IsFavorite:  r.IsFavorite,
		CategoryIDs: r.CategoryIDs,
	}
}

type updateReq struct {
	ID          string     `json:"-"`
	Title       string     `json:"title" binding:"required"`
	Content     string     `json:"content"`
	DueDate     *time.Time `json:"due_date"`
	Status      string     `json:"status" binding:"required"`
	Priority    string     `json:"priority" binding:"required"`
	IsFavorite  bool       `json:"is_favorite"`
	CategoryIDs []string   `json:"category_ids"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Content:     r.Content,
		DueDate:     r.DueDate,
		Status:      task.Status(r.Status),
		Priority:    task.Priority(r.Priority),
		IsFavorite:  r.IsFavorite,
		CategoryIDs: r.CategoryIDs,
	}
}

type changeStatusReq struct {
	Status string `json:"status" binding:"required"`
}

type changePriorityReq struct {
	Priority string `json:"priority" binding:"required"`
}

type replaceCategoriesReq struct {
	CategoryIDs []string `json:"category_ids"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	IsFavorite  bool       `json:"is_favorite"`
	CategoryIDs []string   `json:"category_ids"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(t task.Task) taskResp {
	ids := t.CategoryIDs
	if ids == nil {
		ids = []string{}
	}
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Content:     t.Content,
		DueDate:     t.DueDate,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		IsFavorite:  t.IsFavorite,
		CategoryIDs: ids,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newTaskListResp(tasks []task.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return out
}

type listResp struct {
	Tasks    []taskResp `json:"tasks"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
}

func newListResp(o task.ListTasksOutput) listResp {
	return listResp{
		Tasks:    newTaskListResp(o.Tasks),
		Total:    o.Total,
		Page:     o.Page,
		PageSize: o.PageSize,
	}
}
