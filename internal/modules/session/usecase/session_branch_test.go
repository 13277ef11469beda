package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/johansolbakken/jobclock/internal/modules/session/domain"
	sessiondto "github.com/johansolbakken/jobclock/internal/modules/session/dto"
	"github.com/johansolbakken/jobclock/internal/modules/session/service"
	"github.com/johansolbakken/jobclock/internal/modules/session/usecase"
	apperrors "github.com/johansolbakken/jobclock/internal/platform/errors"
)

type failingStore struct {
	session domain.Session
	loadErr error
	saveErr error
	saves   int
}

func (f *failingStore) Load(context.Context) (domain.Session, error) {
	if f.loadErr != nil {
		return domain.Session{}, f.loadErr
	}
	return f.session, nil
}

func (f *failingStore) Save(context.Context, domain.Session) error {
	f.saves++
	return f.saveErr
}

func testClock() *fakeClock {
	return &fakeClock{values: []time.Time{time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}}
}

func TestLoadFailurePropagates(t *testing.T) {
	t.Parallel()
	loadErr := errors.New("read session record: permission denied")
	store := &failingStore{loadErr: loadErr}
	uc := usecase.NewInteractor(service.NewSessionService(testClock()), store, &fakeCommitSource{})

	if _, err := uc.Begin(context.Background()); err != loadErr {
		t.Fatalf("begin must surface load failure, got %v", err)
	}
	if _, err := uc.Status(context.Background()); err != loadErr {
		t.Fatalf("status must surface load failure, got %v", err)
	}
}

func TestSeedSaveFailurePropagates(t *testing.T) {
	t.Parallel()
	saveErr := errors.New("write session record: disk full")
	store := &failingStore{loadErr: apperrors.ErrNotFound, saveErr: saveErr}
	uc := usecase.NewInteractor(service.NewSessionService(testClock()), store, &fakeCommitSource{})

	if _, err := uc.Status(context.Background()); err != saveErr {
		t.Fatalf("seeding the idle default must surface save failure, got %v", err)
	}
}

func TestSaveFailurePropagatesAfterTransition(t *testing.T) {
	t.Parallel()
	saveErr := errors.New("write session record: disk full")
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	store := &failingStore{
		session: domain.Session{StartTime: start, Working: true},
		saveErr: saveErr,
	}
	uc := usecase.NewInteractor(service.NewSessionService(testClock()), store, &fakeCommitSource{})

	if _, err := uc.AddTask(context.Background(), sessiondto.AddTaskInput{Name: "x"}); err != saveErr {
		t.Fatalf("add task must surface save failure, got %v", err)
	}
	if _, err := uc.End(context.Background()); err != saveErr {
		t.Fatalf("end must surface save failure, got %v", err)
	}
}

func TestRejectedTransitionsSkipSaving(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	store := &failingStore{
		session: domain.Session{StartTime: start, Working: true},
		saveErr: errors.New("write session record: disk full"),
	}
	uc := usecase.NewInteractor(service.NewSessionService(testClock()), store, &fakeCommitSource{})

	if _, err := uc.Begin(context.Background()); err != apperrors.ErrActiveSessionExists {
		t.Fatalf("expected active session exists error, got %v", err)
	}
	if _, err := uc.AddTask(context.Background(), sessiondto.AddTaskInput{Name: " "}); err != apperrors.ErrTaskNameRequired {
		t.Fatalf("expected task name required error, got %v", err)
	}
	if store.saves != 0 {
		t.Fatalf("rejected transitions must not write, got %d saves", store.saves)
	}
}

func TestImportWithoutConfiguredSourceFails(t *testing.T) {
	t.Parallel()
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	store := &failingStore{session: domain.Session{StartTime: start, Working: true}}
	uc := usecase.NewInteractor(service.NewSessionService(testClock()), store, nil)

	if _, err := uc.ImportCommits(context.Background()); err == nil {
		t.Fatalf("import without a commit source must fail")
	}
}

func TestImportSaveFailurePropagates(t *testing.T) {
	t.Parallel()
	saveErr := errors.New("write session record: disk full")
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	store := &failingStore{
		session: domain.Session{StartTime: start, Working: true},
		saveErr: saveErr,
	}
	source := &fakeCommitSource{commits: []domain.Commit{{Title: "x", Date: start.Add(time.Minute)}}}
	uc := usecase.NewInteractor(service.NewSessionService(testClock()), store, source)

	if _, err := uc.ImportCommits(context.Background()); err != saveErr {
		t.Fatalf("import must surface save failure, got %v", err)
	}
}
