package git

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Runner executes a git command in dir and returns its stdout. Injectable
// so tests can stub the subprocess.
type Runner func(ctx context.Context, dir string, args ...string) (string, error)

func defaultRunner(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}

// Client reads commit activity from a single local repository. All
// operations are read-only.
type Client struct {
	dir    string
	logger *slog.Logger
	run    Runner
}

func NewClient(dir string, logger *slog.Logger) *Client {
	return &Client{dir: dir, logger: logger, run: defaultRunner}
}

// NewClientWithRunner is NewClient with a stub runner, for tests.
func NewClientWithRunner(dir string, logger *slog.Logger, run Runner) *Client {
	return &Client{dir: dir, logger: logger, run: run}
}

// Sample is one tick's worth of repository activity. Both counts are
// absolute counts over trailing windows ending at TakenAt; the 1-hour
// window is contained in the 24-hour one.
type Sample struct {
	Commits24h   int
	Commits1h    int
	LastCommit   time.Time
	LastRelative string
	HasCommits   bool
	TakenAt      time.Time
}

// CheckWorkTree verifies the client's directory is inside a git work tree.
// Used once at startup; a failure here is a setup error.
func (c *Client) CheckWorkTree(ctx context.Context) error {
	out, err := c.run(ctx, c.dir, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		return fmt.Errorf("%s is not a git repository", c.dir)
	}
	if strings.TrimSpace(out) != "true" {
		return fmt.Errorf("%s is not a git work tree", c.dir)
	}
	return nil
}

// Sample captures commit counts for the trailing 24-hour and 1-hour
// windows plus the most recent commit's timestamp. Query failures (empty
// repository, detached edge cases) degrade to zero counts rather than an
// error: the render loop never stops over a bad sample.
func (c *Client) Sample(ctx context.Context, now time.Time) Sample {
	s := Sample{TakenAt: now}
	s.Commits24h = c.countSince(ctx, now.Add(-24*time.Hour))
	s.Commits1h = c.countSince(ctx, now.Add(-time.Hour))

	if t, rel, ok := c.lastCommit(ctx); ok {
		s.LastCommit = t
		s.LastRelative = rel
		s.HasCommits = true
	}
	return s
}

func (c *Client) countSince(ctx context.Context, since time.Time) int {
	out, err := c.run(ctx, c.dir, "rev-list", "--count", "HEAD", "--since="+since.Format(time.RFC3339))
	if err != nil {
		c.logger.Debug("rev-list failed, counting as zero", "err", err)
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil || n < 0 {
		c.logger.Debug("unparseable rev-list output", "out", out)
		return 0
	}
	return n
}

// lastCommit returns the most recent commit's time along with git's own
// human-relative rendering of it ("2 hours ago").
func (c *Client) lastCommit(ctx context.Context) (time.Time, string, bool) {
	out, err := c.run(ctx, c.dir, "log", "-1", "--format=%ct%n%cr")
	if err != nil {
		c.logger.Debug("log -1 failed, treating as no commits", "err", err)
		return time.Time{}, "", false
	}
	fields := strings.SplitN(strings.TrimSpace(out), "\n", 2)
	if len(fields) != 2 {
		return time.Time{}, "", false
	}
	sec, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		c.logger.Debug("unparseable commit timestamp", "out", fields[0])
		return time.Time{}, "", false
	}
	return time.Unix(sec, 0), strings.TrimSpace(fields[1]), true
}
