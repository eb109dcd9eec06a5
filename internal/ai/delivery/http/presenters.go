package http

import (
	"time"

	"taskmate/internal/task"
)

// --- Request DTOs ---

type parseTaskReq struct {
	Text string `json:"text" binding:"required"`
}

type chatReq struct {
	Text    string   `json:"text" binding:"required"`
	TaskIDs []string `json:"task_ids"`
	Date    *string  `json:"date"` // YYYY-MM-DD
}

type summarizeReq struct {
	TaskIDs []string `json:"task_ids"`
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
	}
}

type summaryResp struct {
	Summary string `json:"summary"`
}

type chatResp struct {
	// Exactly one of Task and Message is set, depending on the intent.
	Task    *taskResp `json:"task,omitempty"`
	Message string    `json:"message,omitempty"`
}

func newChatResp(result any) chatResp {
	switch v := result.(type) {
	case task.Task:
		r := newTaskResp(v)
		return chatResp{Task: &r}
	case string:
		return chatResp{Message: v}
	default:
		return chatResp{}
	}
}
