package git

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGitClient(t *testing.T) {
	client := NewGitClient(Options{})
	assert.NotNil(t, client)
}

func TestGitClientInterface(t *testing.T) {
	var _ GitClient = &gitClient{}
}

func TestDryRunDeletePrintsCommand(t *testing.T) {
	var out bytes.Buffer
	client := NewGitClient(Options{DryRun: true, Out: &out, Dir: t.TempDir()})

	require.NoError(t, client.DeleteBranch("feature/a"))
	require.NoError(t, client.DeleteBranchForce("wip"))

	assert.Equal(t, "  [DRY RUN] git branch -d feature/a\n  [DRY RUN] git branch -D wip\n", out.String())
}

// newScratchRepo creates a repository with a single commit on main
func newScratchRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")

	dir := t.TempDir()
	gitIn(t, dir, "-c", "init.defaultBranch=main", "init", "-q")
	gitIn(t, dir, "-c", "commit.gpgsign=false", "commit", "-q", "--allow-empty", "-m", "initial")
	return dir
}

func gitIn(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
}

func TestGitClientAgainstRepository(t *testing.T) {
	dir := newScratchRepo(t)
	gitIn(t, dir, "branch", "feature/a")
	gitIn(t, dir, "checkout", "-q", "-b", "wip")
	gitIn(t, dir, "-c", "commit.gpgsign=false", "commit", "-q", "--allow-empty", "-m", "wip")
	gitIn(t, dir, "checkout", "-q", "main")

	client := NewGitClient(Options{Dir: dir})

	branches, err := client.ListBranches()
	require.NoError(t, err)
	assert.Equal(t, []string{"feature/a", "main", "wip"}, branches)

	unmerged, err := client.ListUnmergedBranches()
	require.NoError(t, err)
	assert.Equal(t, []string{"wip"}, unmerged)

	err = client.DeleteBranch("wip")
	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr), "safe delete of unmerged branch must fail")
	assert.Contains(t, execErr.Message, "wip")

	require.NoError(t, client.DeleteBranch("feature/a"))
	require.NoError(t, client.DeleteBranchForce("wip"))

	branches, err = client.ListBranches()
	require.NoError(t, err)
	assert.Equal(t, []string{"main"}, branches)
}

func TestGitClientKeepsNamesStartingWithMarkers(t *testing.T) {
	dir := newScratchRepo(t)
	gitIn(t, dir, "branch", "+hotfix")
	gitIn(t, dir, "branch", "(wip)")
	gitIn(t, dir, "checkout", "-q", "-b", "hotfix")
	gitIn(t, dir, "-c", "commit.gpgsign=false", "commit", "-q", "--allow-empty", "-m", "hotfix")
	gitIn(t, dir, "checkout", "-q", "main")

	client := NewGitClient(Options{Dir: dir})

	branches, err := client.ListBranches()
	require.NoError(t, err)
	assert.Equal(t, []string{"(wip)", "+hotfix", "hotfix", "main"}, branches)

	unmerged, err := client.ListUnmergedBranches()
	require.NoError(t, err)
	assert.Equal(t, []string{"hotfix"}, unmerged)

	require.NoError(t, client.DeleteBranch("+hotfix"))

	branches, err = client.ListBranches()
	require.NoError(t, err)
	assert.Equal(t, []string{"(wip)", "hotfix", "main"}, branches)
}

func TestGitClientOutsideRepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(t.TempDir()))

	client := NewGitClient(Options{Dir: t.TempDir()})
	_, err := client.ListBranches()

	var execErr *ExecutionError
	require.True(t, errors.As(err, &execErr))
	assert.Contains(t, execErr.Message, "not a git repository")
}
