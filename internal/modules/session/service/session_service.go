package service

import (
	"context"
	"strings"

	"github.com/johansolbakken/jobclock/internal/modules/session/domain"
	"github.com/johansolbakken/jobclock/internal/platform/clock"
	apperrors "github.com/johansolbakken/jobclock/internal/platform/errors"
)

// SessionService owns the session state machine. Transitions take and
// return session values; callers decide whether the result is persisted.
type SessionService struct {
	clock clock.Clock
}

func NewSessionService(clock clock.Clock) *SessionService {
	return &SessionService{clock: clock}
}

func (s *SessionService) Fresh(_ context.Context) domain.Session {
	return domain.NewSession(s.clock.Now())
}

func (s *SessionService) Begin(_ context.Context, session domain.Session) (domain.Session, error) {
	if session.Working {
		return domain.Session{}, apperrors.ErrActiveSessionExists
	}
	session.StartTime = s.clock.Now()
	session.Tasks = []domain.Task{}
	session.Working = true
	return session, nil
}

func (s *SessionService) End(_ context.Context, session domain.Session) (domain.Session, domain.Report, error) {
	if !session.Working {
		return domain.Session{}, domain.Report{}, apperrors.ErrNoActiveSession
	}
	report := domain.BuildReport(session, s.clock.Now())
	session.Tasks = []domain.Task{}
	session.Working = false
	return session, report, nil
}

func (s *SessionService) AddTask(_ context.Context, session domain.Session, name string) (domain.Session, domain.Task, error) {
	if !session.Working {
		return domain.Session{}, domain.Task{}, apperrors.ErrNoActiveSession
	}
	if strings.TrimSpace(name) == "" {
		return domain.Session{}, domain.Task{}, apperrors.ErrTaskNameRequired
	}
	task := domain.Task{Name: name, CreatedAt: s.clock.Now()}
	session.Tasks = append(session.Tasks, task)
	return session, task, nil
}

func (s *SessionService) Report(_ context.Context, session domain.Session) (domain.Report, error) {
	if !session.Working {
		return domain.Report{}, apperrors.ErrNoActiveSession
	}
	return domain.BuildReport(session, s.clock.Now()), nil
}

func (s *SessionService) AppendCommits(_ context.Context, session domain.Session, commits []domain.Commit) (domain.Session, int) {
	for _, commit := range commits {
		session.Tasks = append(session.Tasks, domain.Task{Name: commit.Title, CreatedAt: commit.Date})
	}
	return session, len(commits)
}
