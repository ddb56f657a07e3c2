package service

import (
	"errors"
	"testing"

	"fabshop-api/models"
)

func TestProjectCreate_DuplicateIsConflict(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")

	if _, err := env.projects.Create(ProjectCreateInput{ProjectNo: "P-1"}); !errors.Is(err, ErrProjectExists) {
		t.Fatalf("expected ErrProjectExists, got %v", err)
	}
	if _, err := env.projects.Create(ProjectCreateInput{}); !errors.Is(err, ErrProjectRequired) {
		t.Fatalf("expected ErrProjectRequired, got %v", err)
	}
}

func TestProjectList_AttachesCompletion(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")
	env.mustCreateProject(t, "P-2")

	if _, err := env.tasks.Create(models.CategoryPanel, TaskCreateInput{
		ProjectNo: "P-2",
		Title:     "a",
		Status:    "Completed",
	}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	views, err := env.projects.List()
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(views))
	}

	for _, view := range views {
		if len(view.Completion) != len(models.Categories) {
			t.Fatalf("project %s missing completion categories", view.ProjectNo)
		}
	}
	if got := views[1].Completion[models.CategoryPanel]; got.Total != 1 || got.Percentage != 100 {
		t.Fatalf("expected P-2 panel {1,100%%}, got %+v", got)
	}
}

func TestProjectDelete_CascadesTasksAndFiles(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")
	env.mustCreateProject(t, "P-2")

	if _, err := env.tasks.Create(models.CategoryPanel, TaskCreateInput{ProjectNo: "P-1", Title: "a"}); err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := env.tasks.Create(models.CategoryDoor, TaskCreateInput{ProjectNo: "P-1", Title: "b"}); err != nil {
		t.Fatalf("create task: %v", err)
	}
	keep, err := env.tasks.Create(models.CategoryPanel, TaskCreateInput{ProjectNo: "P-2", Title: "keep"})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}
	if _, err := env.files.Upload(FileUploadInput{
		ProjectNo: "P-1",
		FileName:  "drawing.pdf",
		Data:      []byte("%PDF-1.4"),
	}); err != nil {
		t.Fatalf("upload file: %v", err)
	}

	if err := env.projects.Delete("P-1"); err != nil {
		t.Fatalf("delete project: %v", err)
	}

	if _, err := env.projects.Get("P-1"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected project gone, got %v", err)
	}
	for _, cat := range []models.Category{models.CategoryPanel, models.CategoryDoor} {
		tasks, err := env.tasks.ListByProject(cat, "P-1")
		if err != nil {
			t.Fatalf("list tasks: %v", err)
		}
		if len(tasks) != 0 {
			t.Fatalf("expected %s tasks cascaded, found %d", cat, len(tasks))
		}
	}
	files, err := env.files.ListByProject("P-1")
	if err != nil {
		t.Fatalf("list files: %v", err)
	}
	if len(files) != 0 {
		t.Fatalf("expected files cascaded, found %d", len(files))
	}

	// unrelated projects are untouched
	if _, err := env.tasks.Get(models.CategoryPanel, keep.ID); err != nil {
		t.Fatalf("expected P-2 task to survive, got %v", err)
	}

	if err := env.projects.Delete("P-1"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected second delete to 404, got %v", err)
	}
}

func TestProjectUpdate_PartialPatch(t *testing.T) {
	env := newTestEnv(t)
	env.mustCreateProject(t, "P-1")

	customer := "Northside Fittings"
	project, err := env.projects.Update("P-1", ProjectUpdateInput{Customer: &customer})
	if err != nil {
		t.Fatalf("update project: %v", err)
	}
	if project.Customer != customer {
		t.Fatalf("expected customer updated, got %q", project.Customer)
	}
	if project.Status != models.ProjectStatusDraft {
		t.Fatalf("expected status untouched, got %q", project.Status)
	}

	if _, err := env.projects.Update("P-404", ProjectUpdateInput{Customer: &customer}); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}
