package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"taskmate/internal/model"
	"taskmate/internal/task"
)

// sanitizeResponse strips markdown code fences from model output and trims
// whitespace. It never fails; callers detect absent JSON themselves.
func sanitizeResponse(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}

// complete sends a rendered prompt through the gateway and returns the
// sanitized response text.
func (uc *implUseCase) complete(ctx context.Context, prompt, operation string) (string, error) {
	raw, err := uc.gateway.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	cleaned := sanitizeResponse(raw)
	uc.l.Debugf(ctx, "ai.usecase: raw response for %s: %s", operation, cleaned)
	return cleaned, nil
}

// taskSnapshot is the JSON shape tasks take inside summary prompts.
type taskSnapshot struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content,omitempty"`
	DueDate    *string  `json:"dueDate"`
	Status     string   `json:"status"`
	Priority   string   `json:"priority"`
	IsFavorite bool     `json:"isFavorite"`
	Categories []string `json:"categories"`
}

// tasksToJSON serializes tasks for a summary prompt, resolving category ids
// to names. Serialization problems degrade to "[]".
func (uc *implUseCase) tasksToJSON(ctx context.Context, sc model.Scope, tasks []task.Task) string {
	names := uc.categoryNames(ctx, sc)

	snapshots := make([]taskSnapshot, len(tasks))
	for i, t := range tasks {
		var due *string
		if t.DueDate != nil {
			s := t.DueDate.Format(time.RFC3339)
			due = &s
		}

		categories := make([]string, 0, len(t.CategoryIDs))
		for _, id := range t.CategoryIDs {
			if name, ok := names[id]; ok {
				categories = append(categories, name)
			}
		}

		snapshots[i] = taskSnapshot{
			ID:         t.ID,
			Title:      t.Title,
			Content:    t.Content,
			DueDate:    due,
			Status:     string(t.Status),
			Priority:   string(t.Priority),
			IsFavorite: t.IsFavorite,
			Categories: categories,
		}
	}

	out, err := json.Marshal(snapshots)
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.tasksToJSON: %v", err)
		return "[]"
	}
	return string(out)
}

// categoriesToJSON serializes the user's categories for prompt context.
// Failures degrade to "[]" so prompts still render.
func (uc *implUseCase) categoriesToJSON(ctx context.Context, sc model.Scope) string {
	categories, err := uc.categoryUC.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.categoriesToJSON: %v", err)
		return "[]"
	}

	type categorySnapshot struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Icon  string `json:"icon"`
		Color string `json:"color"`
	}
	snapshots := make([]categorySnapshot, len(categories))
	for i, c := range categories {
		snapshots[i] = categorySnapshot{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color}
	}

	out, err := json.Marshal(snapshots)
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.categoriesToJSON: %v", err)
		return "[]"
	}
	return string(out)
}

func (uc *implUseCase) categoryNames(ctx context.Context, sc model.Scope) map[string]string {
	names := make(map[string]string)
	categories, err := uc.categoryUC.List(ctx, sc)
	if err != nil {
		uc.l.Warnf(ctx, "ai.usecase.categoryNames: %v", err)
		return names
	}
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names
}
