package dto

import "time"

type BeginOutput struct {
	StartedAt time.Time
}

type AddTaskInput struct {
	Name string
}

type AddTaskOutput struct {
	Name      string
	CreatedAt time.Time
}

type TaskOutput struct {
	Name      string
	CreatedAt time.Time
}

type StatusOutput struct {
	StartedAt time.Time
	Tasks     []TaskOutput
	Hours     int
	Minutes   int
	Seconds   int
}

type EndOutput struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Timeline   []TaskOutput
	Summary    string
	Hours      int
	Minutes    int
	Seconds    int
	TotalHours float64
}

type ImportOutput struct {
	Imported   int
	Diagnostic string
}
