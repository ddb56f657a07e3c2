package service

import (
	"fmt"
	"strings"
	"testing"

	"fabshop-api/internal/database"
	"fabshop-api/models"
	"fabshop-api/repository"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	fileRepo    repository.FileRepository
	ledgerRepo  repository.LedgerRepository

	counters   CounterService
	tasks      TaskService
	completion CompletionService
	projects   ProjectService
	files      FileService
	ledger     LedgerService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.RunMigrations(db, zap.NewNop()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	logger := zap.NewNop()
	env := &testEnv{
		db:          db,
		projectRepo: repository.NewProjectRepository(db),
		taskRepo:    repository.NewTaskRepository(db),
		fileRepo:    repository.NewFileRepository(db),
		ledgerRepo:  repository.NewLedgerRepository(db),
	}
	env.counters = NewCounterService(CounterServiceParams{ProjectRepo: env.projectRepo, Logger: logger})
	env.tasks = NewTaskService(TaskServiceParams{TaskRepo: env.taskRepo, Counters: env.counters, Logger: logger})
	env.completion = NewCompletionService(CompletionServiceParams{TaskRepo: env.taskRepo})
	env.projects = NewProjectService(ProjectServiceParams{
		ProjectRepo: env.projectRepo,
		TaskRepo:    env.taskRepo,
		FileRepo:    env.fileRepo,
		Completion:  env.completion,
		Logger:      logger,
	})
	env.files = NewFileService(FileServiceParams{FileRepo: env.fileRepo, ProjectRepo: env.projectRepo, Logger: logger})
	env.ledger = NewLedgerService(LedgerServiceParams{LedgerRepo: env.ledgerRepo, ProjectRepo: env.projectRepo, Logger: logger})
	return env
}

func (e *testEnv) mustCreateProject(t *testing.T, projectNo string) {
	t.Helper()
	if _, err := e.projects.Create(ProjectCreateInput{ProjectNo: projectNo, Customer: "ACME"}); err != nil {
		t.Fatalf("create project %s: %v", projectNo, err)
	}
}

func (e *testEnv) storedCounters(t *testing.T, projectNo string, cat models.Category) (total, completed int) {
	t.Helper()
	project, err := e.projectRepo.GetByProjectNo(projectNo)
	if err != nil {
		t.Fatalf("get project %s: %v", projectNo, err)
	}
	return project.Counters(cat)
}

// assertCountersMatchRows checks the core invariant: the stored counter
// pair equals the live row counts for the category/project.
func (e *testEnv) assertCountersMatchRows(t *testing.T, projectNo string, cat models.Category) {
	t.Helper()
	counts, err := e.taskRepo.CountByProject(cat, projectNo, models.CounterStatuses)
	if err != nil {
		t.Fatalf("count tasks: %v", err)
	}
	total, completed := e.storedCounters(t, projectNo, cat)
	if int64(total) != counts.Total || int64(completed) != counts.Completed {
		t.Fatalf("counter drift on %s/%s: stored %d/%d, rows %d/%d",
			projectNo, cat, total, completed, counts.Total, counts.Completed)
	}
}
