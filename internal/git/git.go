package git

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Options configures a git client
type Options struct {
	// Dir is the working directory git runs in; empty means the current one.
	Dir string
	// DryRun prints deletions instead of executing them.
	DryRun bool
	// Out receives dry run notices. Defaults to os.Stdout.
	Out io.Writer
	// Logger receives a debug entry per executed command.
	Logger *zap.Logger
}

type gitClient struct {
	dir    string
	dryRun bool
	out    io.Writer
	logger *zap.Logger
}

// NewGitClient creates a git client backed by the git executable
func NewGitClient(opts Options) GitClient {
	client := &gitClient{
		dir:    opts.Dir,
		dryRun: opts.DryRun,
		out:    opts.Out,
		logger: opts.Logger,
	}
	if client.out == nil {
		client.out = os.Stdout
	}
	if client.logger == nil {
		client.logger = zap.NewNop()
	}
	return client
}

// run executes git with the given arguments. Arguments are passed as an
// argv vector, never through a shell.
func (c *gitClient) run(args ...string) Outcome {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()
	outcome := Outcome{
		Args:   args,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			outcome.ExitCode = exitErr.ExitCode()
		} else {
			// git could not be started at all
			outcome.ExitCode = -1
			if outcome.Stderr == "" {
				outcome.Stderr = err.Error()
			}
		}
	}

	c.logger.Debug("git command finished",
		zap.Strings("args", args),
		zap.Int("exit_code", outcome.ExitCode),
		zap.Duration("elapsed", time.Since(started)),
		zap.Bool("stderr", strings.TrimSpace(outcome.Stderr) != ""),
	)
	return outcome
}

// runCmd executes git and returns stdout, or an *ExecutionError
func (c *gitClient) runCmd(args ...string) (string, error) {
	outcome := c.run(args...)
	if err := outcome.Err(); err != nil {
		return "", err
	}
	return outcome.Stdout, nil
}

// GetRepoRoot returns the root directory of the git repository
func (c *gitClient) GetRepoRoot() (string, error) {
	output, err := c.runCmd("rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}

// ListBranches returns all local branches in git's order
func (c *gitClient) ListBranches() ([]string, error) {
	output, err := c.runCmd("branch")
	if err != nil {
		return nil, err
	}
	return ParseBranchList(output), nil
}

// ListUnmergedBranches returns local branches not merged into HEAD
func (c *gitClient) ListUnmergedBranches() ([]string, error) {
	output, err := c.runCmd("branch", "--no-merged")
	if err != nil {
		return nil, err
	}
	return ParseBranchList(output), nil
}

// DeleteBranch deletes a branch safely (equivalent to git branch -d)
// This will fail if the branch has unmerged commits
func (c *gitClient) DeleteBranch(name string) error {
	return c.deleteBranch("-d", name)
}

// DeleteBranchForce force deletes a branch (equivalent to git branch -D)
func (c *gitClient) DeleteBranchForce(name string) error {
	return c.deleteBranch("-D", name)
}

func (c *gitClient) deleteBranch(flag, name string) error {
	if c.dryRun {
		fmt.Fprintf(c.out, "  [DRY RUN] git branch %s %s\n", flag, name)
		return nil
	}
	_, err := c.runCmd("branch", flag, name)
	return err
}
