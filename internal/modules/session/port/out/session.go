package out

import (
	"context"
	"time"

	"github.com/johansolbakken/jobclock/internal/modules/session/domain"
)

// SessionStore holds the single persisted session record. Load returns
// apperrors.ErrNotFound when no record has been written yet.
type SessionStore interface {
	Load(ctx context.Context) (domain.Session, error)
	Save(ctx context.Context, session domain.Session) error
}

// CommitSource yields commits strictly newer than since, in the order
// the underlying history produces them.
type CommitSource interface {
	CommitsSince(ctx context.Context, since time.Time) ([]domain.Commit, error)
}
