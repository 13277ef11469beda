package out

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/johansolbakken/jobclock/internal/modules/session/domain"
	sessionout "github.com/johansolbakken/jobclock/internal/modules/session/port/out"
)

const authorDateLayout = "Mon Jan 2 15:04:05 2006 -0700"

// maxLineBytes caps a single log line. Commit bodies can carry lines
// (pasted output, minified text) far past the scanner default of 64KB.
const maxLineBytes = 1 << 20

// GitLogSource reads commit history by running `git log` in the
// configured repository, or the working directory when unset.
type GitLogSource struct {
	repoPath string
}

func NewGitLogSource(repoPath string) sessionout.CommitSource {
	return &GitLogSource{repoPath: repoPath}
}

func (g *GitLogSource) CommitsSince(ctx context.Context, since time.Time) ([]domain.Commit, error) {
	cmd := exec.CommandContext(ctx, gitBin(), "log")
	if g.repoPath != "" {
		cmd.Dir = g.repoPath
	}
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("git log failed: exit code %d, stderr: %s", exitErr.ExitCode(), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("run git log: %w", err)
	}
	return parseLog(string(output), since)
}

// gitBin finds the git executable, preferring PATH and falling back to
// well-known locations.
func gitBin() string {
	if p, err := exec.LookPath("git"); err == nil {
		return p
	}
	for _, candidate := range []string{
		"/usr/bin/git",
		"/usr/local/bin/git",
		"/opt/homebrew/bin/git",
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "git"
}

// parseLog extracts (title, author date) pairs from default git log
// output, keeping only commits dated after since. Records missing a
// parseable date or a subject are skipped; scan errors are returned.
func parseLog(output string, since time.Time) ([]domain.Commit, error) {
	var commits []domain.Commit
	var current domain.Commit
	open := false

	flush := func() {
		if open && current.Title != "" && !current.Date.IsZero() && current.Date.After(since) {
			commits = append(commits, current)
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "commit "):
			flush()
			current = domain.Commit{}
			open = true
		case !open:
		case strings.HasPrefix(line, "Date:"):
			raw := strings.TrimSpace(strings.TrimPrefix(line, "Date:"))
			if date, err := time.Parse(authorDateLayout, raw); err == nil {
				current.Date = date
			}
		case strings.HasPrefix(line, "    ") && current.Title == "":
			current.Title = strings.TrimSpace(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan git log output: %w", err)
	}
	flush()
	return commits, nil
}
