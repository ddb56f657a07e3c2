package service

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewCounterService),
	fx.Provide(NewTaskService),
	fx.Provide(NewCompletionService),
	fx.Provide(NewProjectService),
	fx.Provide(NewFileService),
	fx.Provide(NewLedgerService),
	fx.Provide(fx.Annotated{
		Group:  "routines",
		Target: NewReconcileRoutine,
	}),
)
