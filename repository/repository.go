package repository

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(NewProjectRepository),
	fx.Provide(NewTaskRepository),
	fx.Provide(NewFileRepository),
	fx.Provide(NewLedgerRepository),
)
