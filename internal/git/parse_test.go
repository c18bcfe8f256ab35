package git

import (
	"testing"

	"github.com/javoire/branchsweep/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestParseBranchList(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected []string
	}{
		{
			name:     "empty output",
			output:   "",
			expected: []string{},
		},
		{
			name:     "whitespace only",
			output:   "  \n\n",
			expected: []string{},
		},
		{
			name:     "current branch marker is stripped",
			output:   testutil.BranchListing("main", "feature/a", "main"),
			expected: []string{"feature/a", "main"},
		},
		{
			name:     "current branch first",
			output:   "* develop\n  main\n",
			expected: []string{"develop", "main"},
		},
		{
			name:     "worktree marker is stripped",
			output:   "+ hotfix\n* main\n  wip\n",
			expected: []string{"hotfix", "main", "wip"},
		},
		{
			name:     "only one marker is stripped",
			output:   "* *odd\n",
			expected: []string{"*odd"},
		},
		{
			name:     "detached head is skipped",
			output:   "* (HEAD detached at 1a2b3c4)\n  main\n",
			expected: []string{"main"},
		},
		{
			name:     "rebase in progress is skipped",
			output:   "* (no branch, rebasing topic)\n  main\n  topic\n",
			expected: []string{"main", "topic"},
		},
		{
			name:     "names starting with marker characters are kept",
			output:   "  (wip)\n  +hotfix\n  hotfix\n* main\n",
			expected: []string{"(wip)", "+hotfix", "hotfix", "main"},
		},
		{
			name:     "worktree marker before a plus name",
			output:   "+ +hotfix\n* main\n",
			expected: []string{"+hotfix", "main"},
		},
		{
			name:     "crlf line endings",
			output:   "* main\r\n  topic\r\n",
			expected: []string{"main", "topic"},
		},
		{
			name:     "no current branch in unmerged listing",
			output:   "  wip\n  spike/x\n",
			expected: []string{"wip", "spike/x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBranchList(tt.output))
		})
	}
}

func TestParseBranchListIsStable(t *testing.T) {
	output := testutil.BranchListing("main", "a", "b", "main")
	assert.Equal(t, ParseBranchList(output), ParseBranchList(output))
}
