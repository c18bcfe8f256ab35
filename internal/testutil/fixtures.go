package testutil

import (
	"strings"

	"github.com/javoire/branchsweep/internal/prompt"
)

// BranchListing renders branches the way `git branch` prints them, marking
// current as the checked out branch
func BranchListing(current string, branches ...string) string {
	var b strings.Builder
	for _, branch := range branches {
		if branch == current {
			b.WriteString("* ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(branch)
		b.WriteString("\n")
	}
	return b.String()
}

// Pick is the selection of a single branch
func Pick(branch string) prompt.Selection {
	return prompt.Selection{Branch: branch}
}
