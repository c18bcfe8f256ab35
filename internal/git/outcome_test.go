package git

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeErr(t *testing.T) {
	t.Run("clean outcome", func(t *testing.T) {
		outcome := Outcome{Args: []string{"branch"}, Stdout: "* main\n"}
		assert.False(t, outcome.Failed())
		assert.NoError(t, outcome.Err())
	})

	t.Run("stderr output fails even with zero exit", func(t *testing.T) {
		outcome := Outcome{Args: []string{"branch", "-d", "x"}, Stderr: "warning: something\n"}
		require.True(t, outcome.Failed())

		var execErr *ExecutionError
		require.True(t, errors.As(outcome.Err(), &execErr))
		assert.Equal(t, "warning: something", execErr.Error())
		assert.Equal(t, "git branch -d x", execErr.Command())
	})

	t.Run("raw message is kept", func(t *testing.T) {
		outcome := Outcome{
			Args:     []string{"branch"},
			Stderr:   "fatal: not a git repository (or any of the parent directories): .git\n",
			ExitCode: 128,
		}
		assert.EqualError(t, outcome.Err(), "fatal: not a git repository (or any of the parent directories): .git")
	})

	t.Run("non-zero exit without stderr", func(t *testing.T) {
		outcome := Outcome{Args: []string{"branch", "--no-merged"}, ExitCode: 1}
		assert.EqualError(t, outcome.Err(), "git branch --no-merged exited with status 1")
	})
}
