package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"taskmate/internal/model"
	"taskmate/internal/task"
	"taskmate/internal/task/repository"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.Task, error) {
	title := task.NormalizeText(input.Title)
	content := task.NormalizeText(input.Content)

	status := input.Status
	if status == "" {
		status = task.StatusPending
	}
	priority := input.Priority
	if priority == "" {
		priority = task.PriorityMedium
	}

	if err := uc.validate(title, content, status, priority); err != nil {
		return task.Task{}, err
	}
	if input.DueDate != nil && !input.DueDate.After(uc.now()) {
		return task.Task{}, task.ErrDueDateInPast
	}
	if err := uc.checkCategoryOwnership(ctx, sc, input.CategoryIDs); err != nil {
		return task.Task{}, err
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       title,
		Content:     content,
		DueDate:     input.DueDate,
		Status:      status,
		Priority:    priority,
		IsFavorite:  input.IsFavorite,
		CategoryIDs: input.CategoryIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return task.Task{}, err
	}

	uc.tryCreateCalendarEvent(ctx, created)

	return created, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.Task, error) {
	found, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Detail: %v", err)
		return task.Task{}, err
	}
	if found.ID == "" {
		return task.Task{}, task.ErrNotFound
	}

	refreshed, err := uc.rollOverMissed(ctx, []task.Task{found})
	if err != nil {
		return task.Task{}, err
	}
	return refreshed[0], nil
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:   sc.UserID,
		Status:   input.Status,
		Priority: input.Priority,
		Favorite: input.Favorite,
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListTasksOutput{}, err
	}

	tasks, err = uc.rollOverMissed(ctx, tasks)
	if err != nil {
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{
		Tasks:    tasks,
		Total:    total,
		Page:     input.Page,
		PageSize: input.PageSize,
	}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: input.ID, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: %v", err)
		return task.Task{}, err
	}
	if existing.ID == "" {
		return task.Task{}, task.ErrNotFound
	}

	title := task.NormalizeText(input.Title)
	content := task.NormalizeText(input.Content)

	if err := uc.validate(title, content, input.Status, input.Priority); err != nil {
		return task.Task{}, err
	}
	// Only a changed due date must lie in the future. An unchanged past due
	// date stays as it is so completed or missed tasks remain editable.
	if input.DueDate != nil && !sameTime(input.DueDate, existing.DueDate) && !input.DueDate.After(uc.now()) {
		return task.Task{}, task.ErrDueDateInPast
	}
	if err := uc.checkCategoryOwnership(ctx, sc, input.CategoryIDs); err != nil {
		return task.Task{}, err
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:          input.ID,
		UserID:      sc.UserID,
		Title:       title,
		Content:     content,
		DueDate:     input.DueDate,
		Status:      input.Status,
		Priority:    input.Priority,
		IsFavorite:  input.IsFavorite,
		CategoryIDs: input.CategoryIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: %v", err)
		return task.Task{}, err
	}
	if updated.ID == "" {
		return task.Task{}, task.ErrNotFound
	}
	return updated, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrNotFound
	}
	return uc.repo.DeleteTask(ctx, repository.DeleteTaskOptions{ID: id, UserID: sc.UserID})
}

func (uc *implUseCase) ChangeStatus(ctx context.Context, sc model.Scope, id string, st task.Status) (task.Task, error) {
	if !st.IsValid() {
		return task.Task{}, task.ErrInvalidStatus
	}
	return uc.patch(ctx, sc, id, func(t *task.Task) { t.Status = st })
}

func (uc *implUseCase) ChangePriority(ctx context.Context, sc model.Scope, id string, p task.Priority) (task.Task, error) {
	if !p.IsValid() {
		return task.Task{}, task.ErrInvalidPriority
	}
	return uc.patch(ctx, sc, id, func(t *task.Task) { t.Priority = p })
}

func (uc *implUseCase) ToggleFavorite(ctx context.Context, sc model.Scope, id string) (task.Task, error) {
	return uc.patch(ctx, sc, id, func(t *task.Task) { t.IsFavorite = !t.IsFavorite })
}

func (uc *implUseCase) GetByDate(ctx context.Context, sc model.Scope, date time.Time) ([]task.Task, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	tasks, _, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:  sc.UserID,
		DueFrom: &dayStart,
		DueTo:   &dayEnd,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.GetByDate: %v", err)
		return nil, err
	}
	return uc.rollOverMissed(ctx, tasks)
}

func (uc *implUseCase) GetAll(ctx context.Context, sc model.Scope) ([]task.Task, error) {
	tasks, _, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.GetAll: %v", err)
		return nil, err
	}
	return uc.rollOverMissed(ctx, tasks)
}

func (uc *implUseCase) FindByExactTitle(ctx context.Context, sc model.Scope, title string) (task.Task, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return task.Task{}, nil
	}

	found, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{
		UserID:     sc.UserID,
		ExactTitle: trimmed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.FindByExactTitle: %v", err)
		return task.Task{}, err
	}
	return found, nil
}

func (uc *implUseCase) ReplaceCategories(ctx context.Context, sc model.Scope, id string, categoryIDs []string) (task.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ReplaceCategories: %v", err)
		return task.Task{}, err
	}
	if existing.ID == "" {
		return task.Task{}, task.ErrNotFound
	}
	if err := uc.checkCategoryOwnership(ctx, sc, categoryIDs); err != nil {
		return task.Task{}, err
	}

	if err := uc.repo.ReplaceTaskCategories(ctx, repository.ReplaceTaskCategoriesOptions{
		TaskID:      id,
		CategoryIDs: categoryIDs,
	}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.ReplaceCategories: %v", err)
		return task.Task{}, err
	}

	existing.CategoryIDs = categoryIDs
	return existing, nil
}

func (uc *implUseCase) AddCategories(ctx context.Context, sc model.Scope, id string, categoryIDs []string) (task.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.AddCategories: %v", err)
		return task.Task{}, err
	}
	if existing.ID == "" {
		return task.Task{}, task.ErrNotFound
	}
	if err := uc.checkCategoryOwnership(ctx, sc, categoryIDs); err != nil {
		return task.Task{}, err
	}

	merged := existing.CategoryIDs
	seen := make(map[string]bool, len(merged))
	for _, cid := range merged {
		seen[cid] = true
	}
	for _, cid := range categoryIDs {
		if !seen[cid] {
			merged = append(merged, cid)
			seen[cid] = true
		}
	}

	if err := uc.repo.ReplaceTaskCategories(ctx, repository.ReplaceTaskCategoriesOptions{
		TaskID:      id,
		CategoryIDs: merged,
	}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.AddCategories: %v", err)
		return task.Task{}, err
	}

	existing.CategoryIDs = merged
	return existing, nil
}

func (uc *implUseCase) validate(title, content string, status task.Status, priority task.Priority) error {
	if title == "" || utf8.RuneCountInString(title) > task.MaxTitleLength {
		return task.ErrInvalidTitle
	}
	if utf8.RuneCountInString(content) > task.MaxContentLength {
		return task.ErrContentTooLong
	}
	if !status.IsValid() {
		return task.ErrInvalidStatus
	}
	if !priority.IsValid() {
		return task.ErrInvalidPriority
	}
	return nil
}

func (uc *implUseCase) checkCategoryOwnership(ctx context.Context, sc model.Scope, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	if _, err := uc.categoryUC.GetByIDs(ctx, sc, categoryIDs); err != nil {
		return task.ErrCategoryNotOwned
	}
	return nil
}

// patch applies a mutation to a task and persists the full row.
func (uc *implUseCase) patch(ctx context.Context, sc model.Scope, id string, mutate func(*task.Task)) (task.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.patch: %v", err)
		return task.Task{}, err
	}
	if existing.ID == "" {
		return task.Task{}, task.ErrNotFound
	}

	mutate(&existing)

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:          existing.ID,
		UserID:      sc.UserID,
		Title:       existing.Title,
		Content:     existing.Content,
		DueDate:     existing.DueDate,
		Status:      existing.Status,
		Priority:    existing.Priority,
		IsFavorite:  existing.IsFavorite,
		CategoryIDs: existing.CategoryIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.patch: %v", err)
		return task.Task{}, err
	}
	return updated, nil
}

// rollOverMissed marks overdue pending tasks as MISSED before returning them.
// The status change is persisted in one batch; a persistence failure only
// logs since the caller still gets the corrected view.
func (uc *implUseCase) rollOverMissed(ctx context.Context, tasks []task.Task) ([]task.Task, error) {
	now := uc.now()

	var missedIDs []string
	for i := range tasks {
		t := &tasks[i]
		if t.DueDate == nil || !t.DueDate.Before(now) {
			continue
		}
		if t.Status == task.StatusDone || t.Status == task.StatusMissed {
			continue
		}
		t.Status = task.StatusMissed
		missedIDs = append(missedIDs, t.ID)
	}

	if len(missedIDs) > 0 {
		if err := uc.repo.UpdateTaskStatuses(ctx, repository.UpdateTaskStatusesOptions{
			IDs:    missedIDs,
			Status: task.StatusMissed,
		}); err != nil {
			uc.l.Warnf(ctx, "task.usecase.rollOverMissed: persist: %v", err)
		}
	}
	return tasks, nil
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
