package usecase

import (
	"context"
	"fmt"

	"github.com/johansolbakken/jobclock/internal/modules/session/domain"
	sessiondto "github.com/johansolbakken/jobclock/internal/modules/session/dto"
	sessionin "github.com/johansolbakken/jobclock/internal/modules/session/port/in"
	sessionout "github.com/johansolbakken/jobclock/internal/modules/session/port/out"
	"github.com/johansolbakken/jobclock/internal/modules/session/service"
	apperrors "github.com/johansolbakken/jobclock/internal/platform/errors"
)

type Interactor struct {
	svc     *service.SessionService
	store   sessionout.SessionStore
	commits sessionout.CommitSource
}

func NewInteractor(svc *service.SessionService, store sessionout.SessionStore, commits sessionout.CommitSource) sessionin.Usecase {
	return &Interactor{svc: svc, store: store, commits: commits}
}

// loadOrInit returns the stored session, seeding and persisting the idle
// default when no record exists yet.
func (i *Interactor) loadOrInit(ctx context.Context) (domain.Session, error) {
	session, err := i.store.Load(ctx)
	if err == nil {
		return session, nil
	}
	if err != apperrors.ErrNotFound {
		return domain.Session{}, err
	}
	session = i.svc.Fresh(ctx)
	if err := i.store.Save(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

func (i *Interactor) Begin(ctx context.Context) (sessiondto.BeginOutput, error) {
	session, err := i.loadOrInit(ctx)
	if err != nil {
		return sessiondto.BeginOutput{}, err
	}
	session, err = i.svc.Begin(ctx, session)
	if err != nil {
		return sessiondto.BeginOutput{}, err
	}
	if err := i.store.Save(ctx, session); err != nil {
		return sessiondto.BeginOutput{}, err
	}
	return sessiondto.BeginOutput{StartedAt: session.StartTime}, nil
}

func (i *Interactor) End(ctx context.Context) (sessiondto.EndOutput, error) {
	session, err := i.loadOrInit(ctx)
	if err != nil {
		return sessiondto.EndOutput{}, err
	}
	session, report, err := i.svc.End(ctx, session)
	if err != nil {
		return sessiondto.EndOutput{}, err
	}
	if err := i.store.Save(ctx, session); err != nil {
		return sessiondto.EndOutput{}, err
	}
	return sessiondto.EndOutput{
		StartedAt:  report.StartTime,
		EndedAt:    report.EndedAt,
		Timeline:   taskOutputs(report.Timeline),
		Summary:    report.Summary,
		Hours:      report.Elapsed.Hours,
		Minutes:    report.Elapsed.Minutes,
		Seconds:    report.Elapsed.Seconds,
		TotalHours: report.Elapsed.TotalHours,
	}, nil
}

func (i *Interactor) AddTask(ctx context.Context, input sessiondto.AddTaskInput) (sessiondto.AddTaskOutput, error) {
	session, err := i.loadOrInit(ctx)
	if err != nil {
		return sessiondto.AddTaskOutput{}, err
	}
	session, task, err := i.svc.AddTask(ctx, session, input.Name)
	if err != nil {
		return sessiondto.AddTaskOutput{}, err
	}
	if err := i.store.Save(ctx, session); err != nil {
		return sessiondto.AddTaskOutput{}, err
	}
	return sessiondto.AddTaskOutput{Name: task.Name, CreatedAt: task.CreatedAt}, nil
}

func (i *Interactor) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	session, err := i.loadOrInit(ctx)
	if err != nil {
		return sessiondto.StatusOutput{}, err
	}
	report, err := i.svc.Report(ctx, session)
	if err != nil {
		return sessiondto.StatusOutput{}, err
	}
	return sessiondto.StatusOutput{
		StartedAt: report.StartTime,
		Tasks:     taskOutputs(report.Timeline),
		Hours:     report.Elapsed.Hours,
		Minutes:   report.Elapsed.Minutes,
		Seconds:   report.Elapsed.Seconds,
	}, nil
}

// ImportCommits appends history entries newer than the session start. A
// failing source degrades to zero imports with a diagnostic; only store
// failures surface as errors.
func (i *Interactor) ImportCommits(ctx context.Context) (sessiondto.ImportOutput, error) {
	session, err := i.loadOrInit(ctx)
	if err != nil {
		return sessiondto.ImportOutput{}, err
	}
	if !session.Working {
		return sessiondto.ImportOutput{}, apperrors.ErrNoActiveSession
	}
	if i.commits == nil {
		return sessiondto.ImportOutput{}, fmt.Errorf("commit source is not configured")
	}
	commits, err := i.commits.CommitsSince(ctx, session.StartTime)
	if err != nil {
		return sessiondto.ImportOutput{Diagnostic: err.Error()}, nil
	}
	session, imported := i.svc.AppendCommits(ctx, session, commits)
	if err := i.store.Save(ctx, session); err != nil {
		return sessiondto.ImportOutput{}, err
	}
	return sessiondto.ImportOutput{Imported: imported}, nil
}

func taskOutputs(tasks []domain.Task) []sessiondto.TaskOutput {
	outputs := make([]sessiondto.TaskOutput, len(tasks))
	for i, task := range tasks {
		outputs[i] = sessiondto.TaskOutput{Name: task.Name, CreatedAt: task.CreatedAt}
	}
	return outputs
}
