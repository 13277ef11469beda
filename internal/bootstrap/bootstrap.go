package bootstrap

import (
	sessioninadapter "github.com/johansolbakken/jobclock/internal/modules/session/adapter/in"
	sessionoutadapter "github.com/johansolbakken/jobclock/internal/modules/session/adapter/out"
	sessionservice "github.com/johansolbakken/jobclock/internal/modules/session/service"
	sessionusecase "github.com/johansolbakken/jobclock/internal/modules/session/usecase"
	"github.com/johansolbakken/jobclock/internal/platform/clock"
	"github.com/johansolbakken/jobclock/internal/platform/config"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
}

func New(cfg config.Config) *App {
	clk := clock.SystemClock{}

	sessionUC := sessionusecase.NewInteractor(
		sessionservice.NewSessionService(clk),
		sessionoutadapter.NewFileSessionStore(cfg.StorePath),
		sessionoutadapter.NewGitLogSource(cfg.RepoPath),
	)

	return &App{SessionCLI: sessioninadapter.NewCLIHandler(sessionUC)}
}
