package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"taskmate/internal/task"
	repo "taskmate/internal/task/repository"
)

const taskColumns = `id, user_id, title, content, due_date, status, priority, is_favorite, created_at, updated_at`

// CreateTask inserts a new Task row together with its category join rows.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (task.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.CreateTask: begin tx: %v", err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO tasks (id, user_id, title, content, due_date, status, priority, is_favorite)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + taskColumns

	var t task.Task
	err = tx.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Content, opt.DueDate,
		string(opt.Status), string(opt.Priority), opt.IsFavorite,
	).Scan(scanDest(&t)...)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.CreateTask: %v", err)
		return task.Task{}, repo.ErrFailedToInsert
	}

	if err := insertTaskCategories(ctx, tx, t.ID, opt.CategoryIDs); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.CreateTask: categories: %v", err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	t.CategoryIDs = opt.CategoryIDs

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.CreateTask: commit: %v", err)
		return task.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (task.Task, error) {
	mods := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if opt.ID != "" {
		args = append(args, opt.ID)
		mods = append(mods, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.UserID != "" {
		args = append(args, opt.UserID)
		mods = append(mods, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if opt.ExactTitle != "" {
		args = append(args, opt.ExactTitle)
		mods = append(mods, fmt.Sprintf("TRIM(title) = $%d", len(args)))
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1",
		taskColumns, strings.Join(mods, " AND "))

	var t task.Task
	err := r.db.QueryRowContext(ctx, query, args...).Scan(scanDest(&t)...)
	if err == sql.ErrNoRows {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.GetOneTask: %v", err)
		return task.Task{}, repo.ErrFailedToGet
	}

	if err := r.attachCategories(ctx, []*task.Task{&t}); err != nil {
		return task.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns tasks matching the filters plus the unpaged total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]task.Task, int64, error) {
	mods := []string{"user_id = $1"}
	args := []any{opt.UserID}

	if opt.Status != nil {
		args = append(args, string(*opt.Status))
		mods = append(mods, fmt.Sprintf("status = $%d", len(args)))
	}
	if opt.Priority != nil {
		args = append(args, string(*opt.Priority))
		mods = append(mods, fmt.Sprintf("priority = $%d", len(args)))
	}
	if opt.Favorite != nil {
		args = append(args, *opt.Favorite)
		mods = append(mods, fmt.Sprintf("is_favorite = $%d", len(args)))
	}
	if opt.DueFrom != nil {
		args = append(args, *opt.DueFrom)
		mods = append(mods, fmt.Sprintf("due_date >= $%d", len(args)))
	}
	if opt.DueTo != nil {
		args = append(args, *opt.DueTo)
		mods = append(mods, fmt.Sprintf("due_date < $%d", len(args)))
	}

	where := strings.Join(mods, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.ListTasks: count: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s ORDER BY due_date ASC NULLS LAST, created_at DESC",
		taskColumns, where)
	if opt.Page > 0 && opt.PageSize > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", opt.PageSize, (opt.Page-1)*opt.PageSize)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.ListTasks: %v", err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks, err := scanTasks(rows)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.ListTasks: scan: %v", err)
		return nil, 0, repo.ErrFailedToList
	}

	refs := make([]*task.Task, len(tasks))
	for i := range tasks {
		refs[i] = &tasks[i]
	}
	if err := r.attachCategories(ctx, refs); err != nil {
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask updates an existing Task owned by the user, including its
// category join rows.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (task.Task, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.UpdateTask: begin tx: %v", err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	const query = `
		UPDATE tasks SET title = $1, content = $2, due_date = $3, status = $4,
			priority = $5, is_favorite = $6, updated_at = NOW()
		WHERE id = $7 AND user_id = $8
		RETURNING ` + taskColumns

	var t task.Task
	err = tx.QueryRowContext(ctx, query,
		opt.Title, opt.Content, opt.DueDate, string(opt.Status),
		string(opt.Priority), opt.IsFavorite, opt.ID, opt.UserID,
	).Scan(scanDest(&t)...)
	if err == sql.ErrNoRows {
		return task.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.UpdateTask: %v", err)
		return task.Task{}, repo.ErrFailedToUpdate
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_categories WHERE task_id = $1`, t.ID); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.UpdateTask: clear categories: %v", err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	if err := insertTaskCategories(ctx, tx, t.ID, opt.CategoryIDs); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.UpdateTask: categories: %v", err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	t.CategoryIDs = opt.CategoryIDs

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.UpdateTask: commit: %v", err)
		return task.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTask removes a Task owned by the user. Join rows cascade.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.DeleteTask: %v", err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// ReplaceTaskCategories rewrites the task_categories join rows for a task.
func (r *implRepository) ReplaceTaskCategories(ctx context.Context, opt repo.ReplaceTaskCategoriesOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.ReplaceTaskCategories: begin tx: %v", err)
		return repo.ErrFailedToUpdate
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_categories WHERE task_id = $1`, opt.TaskID); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.ReplaceTaskCategories: clear: %v", err)
		return repo.ErrFailedToUpdate
	}
	if err := insertTaskCategories(ctx, tx, opt.TaskID, opt.CategoryIDs); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.ReplaceTaskCategories: insert: %v", err)
		return repo.ErrFailedToUpdate
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.ReplaceTaskCategories: commit: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// UpdateTaskStatuses sets the status of the given tasks in one statement.
func (r *implRepository) UpdateTaskStatuses(ctx context.Context, opt repo.UpdateTaskStatusesOptions) error {
	if len(opt.IDs) == 0 {
		return nil
	}

	const query = `UPDATE tasks SET status = $1, updated_at = NOW() WHERE id = ANY($2)`

	if _, err := r.db.ExecContext(ctx, query, string(opt.Status), pq.Array(opt.IDs)); err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.UpdateTaskStatuses: %v", err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

func insertTaskCategories(ctx context.Context, tx *sql.Tx, taskID string, categoryIDs []string) error {
	for _, cid := range categoryIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO task_categories (task_id, category_id) VALUES ($1, $2)`,
			taskID, cid,
		); err != nil {
			return err
		}
	}
	return nil
}

// attachCategories fills CategoryIDs for the given tasks with one query.
func (r *implRepository) attachCategories(ctx context.Context, tasks []*task.Task) error {
	if len(tasks) == 0 {
		return nil
	}

	ids := make([]string, len(tasks))
	byID := make(map[string]*task.Task, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
		byID[t.ID] = t
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, category_id FROM task_categories WHERE task_id = ANY($1)`,
		pq.Array(ids),
	)
	if err != nil {
		r.l.Errorf(ctx, "task/repository/postgre.attachCategories: %v", err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, categoryID string
		if err := rows.Scan(&taskID, &categoryID); err != nil {
			return err
		}
		if t, ok := byID[taskID]; ok {
			t.CategoryIDs = append(t.CategoryIDs, categoryID)
		}
	}
	return rows.Err()
}

func scanDest(t *task.Task) []any {
	return []any{
		&t.ID, &t.UserID, &t.Title, &t.Content, &t.DueDate,
		&t.Status, &t.Priority, &t.IsFavorite, &t.CreatedAt, &t.UpdatedAt,
	}
}

func scanTasks(rows *sql.Rows) ([]task.Task, error) {
	var out []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(scanDest(&t)...); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
