package in

import (
	"context"

	"github.com/johansolbakken/jobclock/internal/modules/session/dto"
)

type Usecase interface {
	Begin(ctx context.Context) (dto.BeginOutput, error)
	End(ctx context.Context) (dto.EndOutput, error)
	AddTask(ctx context.Context, input dto.AddTaskInput) (dto.AddTaskOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	ImportCommits(ctx context.Context) (dto.ImportOutput, error)
}
