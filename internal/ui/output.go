// Package ui provides color helpers for user-facing CLI output. Colors
// degrade to plain text when stdout is not a terminal.
package ui

import "github.com/fatih/color"

var (
	Bold   = color.New(color.Bold).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
)
