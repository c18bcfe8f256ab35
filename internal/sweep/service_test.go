package sweep

import (
	"bytes"
	"errors"
	"testing"

	"github.com/javoire/branchsweep/internal/spinner"
	"github.com/javoire/branchsweep/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceListBranchesShowsNotice(t *testing.T) {
	testutil.SetupTest()
	defer testutil.TeardownTest()

	var out bytes.Buffer
	previous := spinner.Output
	spinner.Output = &out
	t.Cleanup(func() { spinner.Output = previous })

	mockGit := new(testutil.MockGitClient)
	mockGit.On("ListBranches").Return([]string{"main", "feature/a"}, nil).Twice()

	service := NewService(mockGit, nil)
	first, err := service.ListBranches()
	require.NoError(t, err)
	second, err := service.ListBranches()
	require.NoError(t, err)

	assert.Equal(t, []string{"main", "feature/a"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, "Loading branches...\nLoading branches...\n", out.String())
	mockGit.AssertExpectations(t)
}

func TestServiceCheckRepository(t *testing.T) {
	t.Run("inside a repository", func(t *testing.T) {
		mockGit := new(testutil.MockGitClient)
		mockGit.On("GetRepoRoot").Return("/repo", nil).Once()

		assert.NoError(t, NewService(mockGit, nil).CheckRepository())
		mockGit.AssertExpectations(t)
	})

	t.Run("outside a repository", func(t *testing.T) {
		mockGit := new(testutil.MockGitClient)
		mockGit.On("GetRepoRoot").Return("", errors.New("fatal: not a git repository")).Once()

		assert.EqualError(t, NewService(mockGit, nil).CheckRepository(), "fatal: not a git repository")
	})
}

func TestServiceIsUnmerged(t *testing.T) {
	testutil.SetupTest()
	defer testutil.TeardownTest()

	tests := []struct {
		name     string
		unmerged []string
		branch   string
		expected bool
	}{
		{"listed branch", []string{"wip", "spike"}, "wip", true},
		{"not listed", []string{"wip"}, "feature/a", false},
		{"nothing unmerged", []string{}, "feature/a", false},
		{"prefix is not a match", []string{"wip-2"}, "wip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockGit := new(testutil.MockGitClient)
			mockGit.On("ListUnmergedBranches").Return(tt.unmerged, nil).Once()

			unmerged, err := NewService(mockGit, nil).IsUnmerged(tt.branch)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, unmerged)
			mockGit.AssertExpectations(t)
		})
	}
}

func TestServiceIsUnmergedError(t *testing.T) {
	mockGit := new(testutil.MockGitClient)
	mockGit.On("ListUnmergedBranches").Return(nil, errors.New("fatal: boom"))

	_, err := NewService(mockGit, nil).IsUnmerged("wip")

	assert.EqualError(t, err, "fatal: boom")
}

func TestServiceDelete(t *testing.T) {
	t.Run("safe", func(t *testing.T) {
		mockGit := new(testutil.MockGitClient)
		mockGit.On("DeleteBranch", "feature/a").Return(nil).Once()

		require.NoError(t, NewService(mockGit, nil).Delete("feature/a", Safe))
		mockGit.AssertExpectations(t)
		mockGit.AssertNotCalled(t, "DeleteBranchForce", "feature/a")
	})

	t.Run("forced", func(t *testing.T) {
		mockGit := new(testutil.MockGitClient)
		mockGit.On("DeleteBranchForce", "wip").Return(nil).Once()

		require.NoError(t, NewService(mockGit, nil).Delete("wip", Forced))
		mockGit.AssertExpectations(t)
		mockGit.AssertNotCalled(t, "DeleteBranch", "wip")
	})

	t.Run("failure is passed through", func(t *testing.T) {
		mockGit := new(testutil.MockGitClient)
		mockGit.On("DeleteBranch", "wip").Return(errors.New("error: the branch 'wip' is not fully merged.")).Once()

		err := NewService(mockGit, nil).Delete("wip", Safe)

		assert.EqualError(t, err, "error: the branch 'wip' is not fully merged.")
		mockGit.AssertNumberOfCalls(t, "DeleteBranch", 1)
	})

	t.Run("unknown mode", func(t *testing.T) {
		mockGit := new(testutil.MockGitClient)

		assert.Error(t, NewService(mockGit, nil).Delete("wip", DeletionMode(9)))
	})
}

func TestDeletionModeString(t *testing.T) {
	assert.Equal(t, "safe", Safe.String())
	assert.Equal(t, "forced", Forced.String())
	assert.Equal(t, "presenting", Presenting.String())
	assert.Equal(t, "state(42)", State(42).String())
}
