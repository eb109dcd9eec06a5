package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"taskmate/internal/ai"
	"taskmate/internal/category"
	"taskmate/internal/model"
	"taskmate/internal/task"
)

// CategorizeTask asks the model for category suggestions and attaches the
// resolved ones to the task. The operation is advisory: apart from the
// initial NotFound, every internal failure degrades to returning the task
// unchanged.
func (uc *implUseCase) CategorizeTask(ctx context.Context, sc model.Scope, taskID string) (task.Task, error) {
	existing, err := uc.taskUC.Detail(ctx, sc, taskID)
	if err != nil {
		// A missing task is a caller error, not an AI problem.
		return task.Task{}, err
	}

	content := existing.Title
	if existing.Content != "" {
		content += " " + existing.Content
	}

	prompt := ai.RenderCategorizationPrompt(uc.categoriesToJSON(ctx, sc), content)
	cleaned, err := uc.complete(ctx, prompt, "CategorizeTask")
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.CategorizeTask: gateway: %v", err)
		return existing, nil
	}
	if cleaned == "" {
		uc.l.Warnf(ctx, "ai.usecase.CategorizeTask: empty model response for task %s", taskID)
		return existing, nil
	}

	var suggestions []ai.CategorySuggestion
	if err := json.Unmarshal([]byte(cleaned), &suggestions); err != nil {
		uc.l.Errorf(ctx, "ai.usecase.CategorizeTask: unparseable suggestions %q: %v", cleaned, err)
		return existing, nil
	}
	if len(suggestions) == 0 {
		uc.l.Infof(ctx, "ai.usecase.CategorizeTask: no suggestions for task %s", taskID)
		return existing, nil
	}

	categoryIDs := uc.resolveSuggestions(ctx, sc, suggestions)
	if len(categoryIDs) == 0 {
		uc.l.Infof(ctx, "ai.usecase.CategorizeTask: no suggestion resolved for task %s", taskID)
		return existing, nil
	}

	updated, err := uc.taskUC.AddCategories(ctx, sc, taskID, categoryIDs)
	if err != nil {
		uc.l.Errorf(ctx, "ai.usecase.CategorizeTask: attach: %v", err)
		return existing, nil
	}

	uc.l.Infof(ctx, "ai.usecase: categorized task %s with %d categories", taskID, len(categoryIDs))
	return updated, nil
}

// resolveSuggestions maps each suggestion to a category id, reusing existing
// categories by exact name and creating the rest. Per-item failures are
// logged and skipped, they never abort the batch.
func (uc *implUseCase) resolveSuggestions(ctx context.Context, sc model.Scope, suggestions []ai.CategorySuggestion) []string {
	ids := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		id, err := uc.findOrCreateCategory(ctx, sc, s)
		if err != nil {
			uc.l.Errorf(ctx, "ai.usecase.resolveSuggestions: skipping %q: %v", s.Name, err)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func (uc *implUseCase) findOrCreateCategory(ctx context.Context, sc model.Scope, s ai.CategorySuggestion) (string, error) {
	found, err := uc.categoryUC.FindByExactName(ctx, sc, s.Name)
	if err != nil {
		return "", err
	}
	if found.ID != "" {
		return found.ID, nil
	}

	created, err := uc.categoryUC.Create(ctx, sc, category.CreateCategoryInput{
		Name:  s.Name,
		Icon:  s.Icon,
		Color: s.Color,
	})
	if errors.Is(err, category.ErrDuplicateName) {
		// Lost a race against a concurrent categorization, re-resolve.
		found, err = uc.categoryUC.FindByExactName(ctx, sc, s.Name)
		if err != nil {
			return "", err
		}
		if found.ID != "" {
			return found.ID, nil
		}
		return "", category.ErrNotFound
	}
	if err != nil {
		return "", err
	}

	uc.l.Infof(ctx, "ai.usecase: created category %q from model suggestion", created.Name)
	return created.ID, nil
}
