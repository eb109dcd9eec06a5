package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskmate/internal/task"
)

func failingGateway() *mockGateway {
	return &mockGateway{respond: func(string) (string, error) { return "", errors.New("connection refused") }}
}

func TestSummarizeTasks(t *testing.T) {
	taskUC := newMockTaskUC()
	t1 := taskUC.add(task.Task{Title: "One", Status: task.StatusPending, Priority: task.PriorityLow})
	t2 := taskUC.add(task.Task{Title: "Two", Status: task.StatusDone, Priority: task.PriorityHigh})

	gw := parseGateway("Both tasks look fine.")
	uc := newTestUseCase(gw, taskUC, newMockCategoryUC(), testNow())

	if got := uc.SummarizeTasks(context.Background(), testScope, []string{t1.ID, t2.ID}); got != "Both tasks look fine." {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeTasks_EmptyIDList(t *testing.T) {
	uc := newTestUseCase(parseGateway("unused"), newMockTaskUC(), newMockCategoryUC(), testNow())

	if got := uc.SummarizeTasks(context.Background(), testScope, nil); got != "No tasks to summarize." {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeTasks_AllIDsInvalid(t *testing.T) {
	uc := newTestUseCase(parseGateway("unused"), newMockTaskUC(), newMockCategoryUC(), testNow())

	got := uc.SummarizeTasks(context.Background(), testScope, []string{"ghost-1", "ghost-2"})
	if got != "No valid tasks found to summarize." {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeTasks_SkipsFailingIDs(t *testing.T) {
	taskUC := newMockTaskUC()
	ok := taskUC.add(task.Task{Title: "Reachable", Status: task.StatusPending, Priority: task.PriorityMedium})
	taskUC.detailErrs["broken"] = errors.New("storage error")

	gw := parseGateway("One task summarized.")
	uc := newTestUseCase(gw, taskUC, newMockCategoryUC(), testNow())

	got := uc.SummarizeTasks(context.Background(), testScope, []string{"broken", ok.ID})
	if got != "One task summarized." {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeTasks_GatewayFallback(t *testing.T) {
	taskUC := newMockTaskUC()
	t1 := taskUC.add(task.Task{Title: "One", Status: task.StatusPending, Priority: task.PriorityLow})

	uc := newTestUseCase(failingGateway(), taskUC, newMockCategoryUC(), testNow())

	got := uc.SummarizeTasks(context.Background(), testScope, []string{t1.ID})
	if got != "Unable to generate task summary at this time." {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeDailyTasks(t *testing.T) {
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	due := time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC)

	taskUC := newMockTaskUC()
	taskUC.add(task.Task{Title: "Standup", DueDate: &due, Status: task.StatusPending, Priority: task.PriorityMedium})

	gw := parseGateway("One meeting in the morning.")
	uc := newTestUseCase(gw, taskUC, newMockCategoryUC(), testNow())

	if got := uc.SummarizeDailyTasks(context.Background(), testScope, date); got != "One meeting in the morning." {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeDailyTasks_NoTasks(t *testing.T) {
	uc := newTestUseCase(parseGateway("unused"), newMockTaskUC(), newMockCategoryUC(), testNow())

	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	got := uc.SummarizeDailyTasks(context.Background(), testScope, date)
	if got != "No tasks scheduled for March 12, 2026." {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeDailyTasks_GatewayFallback(t *testing.T) {
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	due1 := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
	due2 := time.Date(2026, 3, 12, 15, 0, 0, 0, time.UTC)

	taskUC := newMockTaskUC()
	taskUC.add(task.Task{Title: "A", DueDate: &due1, Status: task.StatusPending, Priority: task.PriorityMedium})
	taskUC.add(task.Task{Title: "B", DueDate: &due2, Status: task.StatusPending, Priority: task.PriorityMedium})

	uc := newTestUseCase(failingGateway(), taskUC, newMockCategoryUC(), testNow())

	got := uc.SummarizeDailyTasks(context.Background(), testScope, date)
	if got != "You have 2 task(s) scheduled for March 12, 2026." {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeAllTasks(t *testing.T) {
	taskUC := newMockTaskUC()
	taskUC.add(task.Task{Title: "Anything", Status: task.StatusPending, Priority: task.PriorityMedium})

	gw := parseGateway("# Overview\nOne pending task.")
	uc := newTestUseCase(gw, taskUC, newMockCategoryUC(), testNow())

	if got := uc.SummarizeAllTasks(context.Background(), testScope); got != "# Overview\nOne pending task." {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeAllTasks_NoTasks(t *testing.T) {
	uc := newTestUseCase(parseGateway("unused"), newMockTaskUC(), newMockCategoryUC(), testNow())

	got := uc.SummarizeAllTasks(context.Background(), testScope)
	if got != "You don't have any tasks yet. Start by creating your first task!" {
		t.Errorf("got %q", got)
	}
}

func TestSummarizeAllTasks_GatewayFallback(t *testing.T) {
	taskUC := newMockTaskUC()
	taskUC.add(task.Task{Title: "Anything", Status: task.StatusPending, Priority: task.PriorityMedium})

	uc := newTestUseCase(failingGateway(), taskUC, newMockCategoryUC(), testNow())

	got := uc.SummarizeAllTasks(context.Background(), testScope)
	if got != "Unable to generate comprehensive task summary at this time." {
		t.Errorf("got %q", got)
	}
}
