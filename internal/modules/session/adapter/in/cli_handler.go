package in

import (
	"context"

	sessiondto "github.com/johansolbakken/jobclock/internal/modules/session/dto"
	sessionin "github.com/johansolbakken/jobclock/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Begin(ctx context.Context) (sessiondto.BeginOutput, error) {
	return h.usecase.Begin(ctx)
}

func (h CLIHandler) End(ctx context.Context) (sessiondto.EndOutput, error) {
	return h.usecase.End(ctx)
}

func (h CLIHandler) AddTask(ctx context.Context, name string) (sessiondto.AddTaskOutput, error) {
	return h.usecase.AddTask(ctx, sessiondto.AddTaskInput{Name: name})
}

func (h CLIHandler) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) ImportCommits(ctx context.Context) (sessiondto.ImportOutput, error) {
	return h.usecase.ImportCommits(ctx)
}
