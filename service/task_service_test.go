package service

import (
	"errors"
	"testing"

	"fabshop-api/models"
)

func strPtr(s string) *string { return &s }

func TestCreateTask_IncrementsTotal(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")

	task, err := env.tasks.Create(models.CategoryPanel, TaskCreateInput{ProjectNo: "P-1", Title: "cut panel"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if task.Status != models.DefaultTaskStatus {
		t.Fatalf("expected default status %q, got %q", models.DefaultTaskStatus, task.Status)
	}

	total, completed := env.storedCounters(t, "P-1", models.CategoryPanel)
	if total != 1 || completed != 0 {
		t.Fatalf("expected counters 1/0, got %d/%d", total, completed)
	}
	env.assertCountersMatchRows(t, "P-1", models.CategoryPanel)
}

func TestCreateTask_AlreadyCompletedIncrementsBoth(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")

	if _, err := env.tasks.Create(models.CategoryDoor, TaskCreateInput{
		ProjectNo: "P-1",
		Title:     "hang door",
		Status:    "Completed",
	}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	total, completed := env.storedCounters(t, "P-1", models.CategoryDoor)
	if total != 1 || completed != 1 {
		t.Fatalf("expected counters 1/1, got %d/%d", total, completed)
	}
}

func TestUpdateTask_StatusFlipMovesCompletedOnly(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")

	task, err := env.tasks.Create(models.CategoryPanel, TaskCreateInput{ProjectNo: "P-1", Title: "weld frame"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if _, err := env.tasks.Update(models.CategoryPanel, task.ID, TaskUpdateInput{Status: strPtr("Completed")}); err != nil {
		t.Fatalf("update task: %v", err)
	}
	total, completed := env.storedCounters(t, "P-1", models.CategoryPanel)
	if total != 1 || completed != 1 {
		t.Fatalf("after completing: expected 1/1, got %d/%d", total, completed)
	}

	if _, err := env.tasks.Update(models.CategoryPanel, task.ID, TaskUpdateInput{Status: strPtr("pending")}); err != nil {
		t.Fatalf("update task: %v", err)
	}
	total, completed = env.storedCounters(t, "P-1", models.CategoryPanel)
	if total != 1 || completed != 0 {
		t.Fatalf("after reopening: expected 1/0, got %d/%d", total, completed)
	}
}

func TestUpdateTask_SameStatusNoCounterChange(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")

	task, err := env.tasks.Create(models.CategoryPanel, TaskCreateInput{
		ProjectNo: "P-1",
		Title:     "polish",
		Status:    "completed",
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	// A PATCH without a status field inherits the stored status.
	if _, err := env.tasks.Update(models.CategoryPanel, task.ID, TaskUpdateInput{Title: strPtr("polish edges")}); err != nil {
		t.Fatalf("update task: %v", err)
	}

	total, completed := env.storedCounters(t, "P-1", models.CategoryPanel)
	if total != 1 || completed != 1 {
		t.Fatalf("expected counters unchanged at 1/1, got %d/%d", total, completed)
	}
}

func TestUpdateTask_ReassignMovesCounters(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-A")
	env.mustCreateProject(t, "P-B")

	task, err := env.tasks.Create(models.CategoryCutting, TaskCreateInput{
		ProjectNo: "P-A",
		Title:     "cut sheet",
		Status:    "completed",
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	moved, err := env.tasks.Update(models.CategoryCutting, task.ID, TaskUpdateInput{ProjectNo: strPtr("P-B")})
	if err != nil {
		t.Fatalf("reassign task: %v", err)
	}
	if moved.ProjectNo != "P-B" {
		t.Fatalf("expected task on P-B, got %q", moved.ProjectNo)
	}

	aTotal, aCompleted := env.storedCounters(t, "P-A", models.CategoryCutting)
	bTotal, bCompleted := env.storedCounters(t, "P-B", models.CategoryCutting)
	if aTotal != 0 || aCompleted != 0 {
		t.Fatalf("expected P-A counters 0/0, got %d/%d", aTotal, aCompleted)
	}
	if bTotal != 1 || bCompleted != 1 {
		t.Fatalf("expected P-B counters 1/1, got %d/%d", bTotal, bCompleted)
	}
	if aTotal+bTotal != 1 {
		t.Fatalf("grand total changed across reassignment")
	}
}

func TestUpdateTask_ReassignWithStatusChange(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-A")
	env.mustCreateProject(t, "P-B")

	task, err := env.tasks.Create(models.CategoryCutting, TaskCreateInput{ProjectNo: "P-A", Title: "cut sheet"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	// move and complete in one PATCH: P-A loses a pending task, P-B
	// gains a completed one
	if _, err := env.tasks.Update(models.CategoryCutting, task.ID, TaskUpdateInput{
		ProjectNo: strPtr("P-B"),
		Status:    strPtr("Completed"),
	}); err != nil {
		t.Fatalf("reassign task: %v", err)
	}

	env.assertCountersMatchRows(t, "P-A", models.CategoryCutting)
	env.assertCountersMatchRows(t, "P-B", models.CategoryCutting)
	bTotal, bCompleted := env.storedCounters(t, "P-B", models.CategoryCutting)
	if bTotal != 1 || bCompleted != 1 {
		t.Fatalf("expected P-B counters 1/1, got %d/%d", bTotal, bCompleted)
	}
}

func TestDeleteTask_DecrementsCounters(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")

	done, err := env.tasks.Create(models.CategoryAccessories, TaskCreateInput{
		ProjectNo: "P-1",
		Title:     "fit handles",
		Status:    "completed",
	})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	pending, err := env.tasks.Create(models.CategoryAccessories, TaskCreateInput{ProjectNo: "P-1", Title: "fit hinges"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := env.tasks.Delete(models.CategoryAccessories, done.ID); err != nil {
		t.Fatalf("delete completed task: %v", err)
	}
	total, completed := env.storedCounters(t, "P-1", models.CategoryAccessories)
	if total != 1 || completed != 0 {
		t.Fatalf("after deleting completed task: expected 1/0, got %d/%d", total, completed)
	}

	if err := env.tasks.Delete(models.CategoryAccessories, pending.ID); err != nil {
		t.Fatalf("delete pending task: %v", err)
	}
	total, completed = env.storedCounters(t, "P-1", models.CategoryAccessories)
	if total != 0 || completed != 0 {
		t.Fatalf("after deleting pending task: expected 0/0, got %d/%d", total, completed)
	}
}

// The invariant holds after every operation in a mixed sequence, not
// just at the end.
func TestTaskLifecycle_InvariantHoldsAfterEachOperation(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")
	cat := models.CategoryPanel

	check := func() {
		t.Helper()
		env.assertCountersMatchRows(t, "P-1", cat)
	}

	a, err := env.tasks.Create(cat, TaskCreateInput{ProjectNo: "P-1", Title: "a"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	check()

	b, err := env.tasks.Create(cat, TaskCreateInput{ProjectNo: "P-1", Title: "b", Status: "Completed"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	check()

	if _, err := env.tasks.Update(cat, a.ID, TaskUpdateInput{Status: strPtr("COMPLETED")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	check()

	if _, err := env.tasks.Update(cat, b.ID, TaskUpdateInput{Status: strPtr("pending")}); err != nil {
		t.Fatalf("update: %v", err)
	}
	check()

	if err := env.tasks.Delete(cat, a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	check()

	if err := env.tasks.Delete(cat, b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	check()

	total, completed := env.storedCounters(t, "P-1", cat)
	if total != 0 || completed != 0 {
		t.Fatalf("expected counters back to 0/0, got %d/%d", total, completed)
	}
}

// Counter maintenance against a missing project is a logged no-op; the
// task operation of record still succeeds.
func TestCreateTask_UnknownProjectStillSucceeds(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")

	task, err := env.tasks.Create(models.CategorySystem, TaskCreateInput{ProjectNo: "P-404", Title: "orphan"})
	if err != nil {
		t.Fatalf("expected task creation to succeed, got %v", err)
	}
	if task.ID == 0 {
		t.Fatalf("expected task row to be created")
	}

	total, completed := env.storedCounters(t, "P-1", models.CategorySystem)
	if total != 0 || completed != 0 {
		t.Fatalf("expected P-1 counters untouched, got %d/%d", total, completed)
	}
}

func TestTaskValidation(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")

	if _, err := env.tasks.Create(models.CategoryPanel, TaskCreateInput{Title: "no project"}); !errors.Is(err, ErrProjectRequired) {
		t.Fatalf("expected ErrProjectRequired, got %v", err)
	}
	if _, err := env.tasks.Create(models.CategoryPanel, TaskCreateInput{ProjectNo: "P-1"}); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := env.tasks.Get(models.CategoryPanel, 9999); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
	if err := env.tasks.Delete(models.CategoryPanel, 9999); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}
