package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/johansolbakken/jobclock/internal/bootstrap"
	sessiondto "github.com/johansolbakken/jobclock/internal/modules/session/dto"
	"github.com/johansolbakken/jobclock/internal/platform/config"
	apperrors "github.com/johansolbakken/jobclock/internal/platform/errors"
	"github.com/johansolbakken/jobclock/internal/ui"
)

const version = "0.2.0"

const timeLayout = "02-01-2006 15:04:05"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, ui.Red(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jobclock",
		Short:         "Track work sessions from the command line",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Red("ERROR: No subcommand found"))
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Red("ERROR: Invalid command entered: "+args[0]))
			}
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(newBeginCmd())
	root.AddCommand(newEndCmd())
	root.AddCommand(newTaskCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newGitCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func loadApp() (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg), nil
}

func newBeginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "begin",
		Short: "Start a new job session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			if _, err := app.SessionCLI.Begin(context.Background()); err != nil {
				if errors.Is(err, apperrors.ErrActiveSessionExists) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Yellow("Job session already started"))
					return nil
				}
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Green("Job session started"))
			return nil
		},
	}
}

func newEndCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the current job session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.End(context.Background())
			if err != nil {
				if errors.Is(err, apperrors.ErrNoActiveSession) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Yellow("No job session to end"))
					return nil
				}
				return err
			}
			renderEndReport(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newTaskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "task <name>",
		Short: "Add a new task to the current job session",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			name := strings.Join(args, " ")
			if _, err := app.SessionCLI.AddTask(context.Background(), name); err != nil {
				switch {
				case errors.Is(err, apperrors.ErrNoActiveSession):
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Yellow("No job session started"))
					return nil
				case errors.Is(err, apperrors.ErrTaskNameRequired):
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Yellow("Task name is required"))
					return nil
				}
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Green("Task added to job session"))
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current job session status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Status(context.Background())
			if err != nil {
				if errors.Is(err, apperrors.ErrNoActiveSession) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Yellow("No job session started"))
					return nil
				}
				return err
			}
			renderStatus(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newGitCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "git",
		Aliases: []string{"import"},
		Short:   "Import commits since session start as tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.ImportCommits(context.Background())
			if err != nil {
				if errors.Is(err, apperrors.ErrNoActiveSession) {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Yellow("No job session started"))
					return nil
				}
				return err
			}
			if out.Diagnostic != "" {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), ui.Yellow(out.Diagnostic))
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks from git history\n", out.Imported)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the jobclock version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Jobclock v%s\n", version)
			return nil
		},
	}
}

func renderStatus(w io.Writer, out sessiondto.StatusOutput) {
	_, _ = fmt.Fprintf(w, "Job session started at %s\n", out.StartedAt.Format(timeLayout))
	_, _ = fmt.Fprintln(w, ui.Bold("Tasks:"))
	if len(out.Tasks) == 0 {
		_, _ = fmt.Fprintln(w, "  No tasks added")
	}
	for _, task := range out.Tasks {
		_, _ = fmt.Fprintf(w, "  %s - %s\n", task.CreatedAt.Format(timeLayout), task.Name)
	}
	_, _ = fmt.Fprintf(w, "Total time: %dh %dm %ds\n", out.Hours, out.Minutes, out.Seconds)
}

func renderEndReport(w io.Writer, out sessiondto.EndOutput) {
	_, _ = fmt.Fprintln(w, ui.Green("Job session ended"))
	_, _ = fmt.Fprintln(w, ui.Bold("Timeline:"))
	_, _ = fmt.Fprintf(w, "  %s - Begin job session\n", out.StartedAt.Format(timeLayout))
	for _, task := range out.Timeline {
		_, _ = fmt.Fprintf(w, "  %s - Task: %s\n", task.CreatedAt.Format(timeLayout), task.Name)
	}
	_, _ = fmt.Fprintf(w, "  %s - End job session\n", out.EndedAt.Format(timeLayout))
	_, _ = fmt.Fprintf(w, "Total time: %dh %dm %ds\n", out.Hours, out.Minutes, out.Seconds)
	if out.Summary == "" {
		_, _ = fmt.Fprintln(w, "No tasks added")
	} else {
		_, _ = fmt.Fprintf(w, "\n%s\n%s\n", ui.Bold("Summary:"), out.Summary)
	}
	_, _ = fmt.Fprintf(w, "Hours: %.2f\n", out.TotalHours)
}
