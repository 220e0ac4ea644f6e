package gitsource

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultDiffLimit caps the diff text handed to the prompt at 10KB. Anything
// longer is cut and flagged as truncated.
const DefaultDiffLimit = 10 * 1024

// CommitInfo is one commit as read from git log.
type CommitInfo struct {
	Hash        string
	Subject     string
	Author      string
	CommittedAt time.Time
}

// GitSource reads commit metadata, file lists and diffs from a local git
// repository via the git CLI.
type GitSource struct {
	repoPath  string
	diffLimit int
}

func New(repoPath string) *GitSource {
	return &GitSource{repoPath: repoPath, diffLimit: DefaultDiffLimit}
}

// fieldSep keeps subjects containing whitespace intact in log output.
const fieldSep = "\x1f"

// ListCommits returns up to limit commits, newest first. A non-positive
// limit returns full history.
func (g *GitSource) ListCommits(ctx context.Context, limit int) ([]CommitInfo, error) {
	args := []string{"log", "--pretty=format:%H" + fieldSep + "%s" + fieldSep + "%an" + fieldSep + "%cI"}
	if limit > 0 {
		args = append(args, fmt.Sprintf("-n%d", limit))
	}
	out, err := g.run(ctx, args...)
	if err != nil {
		return nil, err
	}
	return parseLogOutput(out)
}

// FilesForCommit returns the paths touched by one commit, empty when the
// commit is unknown.
func (g *GitSource) FilesForCommit(ctx context.Context, hash string) ([]string, error) {
	out, err := g.run(ctx, "show", "--name-only", "--pretty=format:", hash)
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// DiffForCommit returns the commit's diff text, truncated to the configured
// limit. The second return reports whether truncation happened.
func (g *GitSource) DiffForCommit(ctx context.Context, hash string) (string, bool, error) {
	out, err := g.run(ctx, "show", "--pretty=format:", hash)
	if err != nil {
		return "", false, err
	}
	diff, truncated := truncate(out, g.diffLimit)
	return diff, truncated, nil
}

func (g *GitSource) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.repoPath
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %v: %s", args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

func parseLogOutput(out string) ([]CommitInfo, error) {
	var commits []CommitInfo
	for _, line := range splitLines(out) {
		parts := strings.SplitN(line, fieldSep, 4)
		if len(parts) != 4 {
			return nil, fmt.Errorf("unexpected git log line: %q", line)
		}
		committedAt, err := time.Parse(time.RFC3339, parts[3])
		if err != nil {
			return nil, fmt.Errorf("unexpected commit date %q: %w", parts[3], err)
		}
		commits = append(commits, CommitInfo{
			Hash:        parts[0],
			Subject:     parts[1],
			Author:      parts[2],
			CommittedAt: committedAt,
		})
	}
	return commits, nil
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// truncate cuts s at limit bytes, backing up to the previous newline so the
// prompt never ends mid-hunk.
func truncate(s string, limit int) (string, bool) {
	if limit <= 0 || len(s) <= limit {
		return s, false
	}
	cut := s[:limit]
	if idx := strings.LastIndexByte(cut, '\n'); idx > 0 {
		cut = cut[:idx]
	}
	return cut, true
}
