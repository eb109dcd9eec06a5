package usecase

import (
	"context"
	"time"

	"taskmate/internal/task"
	"taskmate/pkg/gcalendar"
)

// tryCreateCalendarEvent creates a calendar event for a task with a due date.
// Failures only log, task creation never depends on the calendar.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t task.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     t.Title,
		Description: t.Content,
		StartTime:   *t.DueDate,
		EndTime:     t.DueDate.Add(30 * time.Minute),
	})
	if err != nil {
		uc.l.Warnf(ctx, "task.usecase.tryCreateCalendarEvent: %v", err)
		return
	}
	uc.l.Infof(ctx, "task.usecase: calendar event created for task %s", t.ID)
}
