package domain

import (
	"sort"
	"strings"
	"time"
)

type Task struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	Tasks     []Task    `json:"tasks"`
	StartTime time.Time `json:"start_time"`
	Working   bool      `json:"working"`
}

// Commit is one imported history entry; it lives only for the duration
// of the import call that produced it.
type Commit struct {
	Title string
	Date  time.Time
}

type Breakdown struct {
	Hours      int
	Minutes    int
	Seconds    int
	TotalHours float64
}

// Report is a point-in-time view of an active session, shared by the
// status and end renderings.
type Report struct {
	StartTime time.Time
	EndedAt   time.Time
	Timeline  []Task
	Summary   string
	Elapsed   Breakdown
}

func NewSession(now time.Time) Session {
	return Session{Tasks: []Task{}, StartTime: now, Working: false}
}

// SortedTasks orders tasks by creation time ascending; tasks sharing an
// instant keep their relative insertion order.
func (s Session) SortedTasks() []Task {
	tasks := make([]Task, len(s.Tasks))
	copy(tasks, s.Tasks)
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
	return tasks
}

// Summary joins task names in insertion order, not timeline order.
func (s Session) Summary() string {
	if len(s.Tasks) == 0 {
		return ""
	}
	names := make([]string, len(s.Tasks))
	for i, task := range s.Tasks {
		names[i] = task.Name
	}
	return strings.Join(names, ". ") + "."
}

func (s Session) Elapsed(now time.Time) Breakdown {
	seconds := int64(now.Sub(s.StartTime) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	return Breakdown{
		Hours:      int(seconds / 3600),
		Minutes:    int(seconds % 3600 / 60),
		Seconds:    int(seconds % 60),
		TotalHours: float64(seconds) / 3600.0,
	}
}

func BuildReport(session Session, now time.Time) Report {
	return Report{
		StartTime: session.StartTime,
		EndedAt:   now,
		Timeline:  session.SortedTasks(),
		Summary:   session.Summary(),
		Elapsed:   session.Elapsed(now),
	}
}
