package git

import "strings"

// ParseBranchList turns `git branch` output into branch names.
//
// git prints every branch behind a two column slot: "* " for the branch
// checked out here, "+ " for one checked out in another worktree and two
// spaces otherwise. Only that slot is removed, so names that themselves
// start with "+" or "(" survive. Blank lines and the detached HEAD entry
// are skipped; empty output gives an empty slice.
func ParseBranchList(output string) []string {
	branches := []string{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || isDetachedHead(line) {
			continue
		}
		if len(line) >= 2 && isMarkerSlot(line[:2]) {
			line = line[2:]
		}
		branches = append(branches, strings.TrimSpace(line))
	}
	return branches
}

func isMarkerSlot(prefix string) bool {
	return prefix == "* " || prefix == "+ " || prefix == "  "
}

// git names the detached HEAD entry "(HEAD detached at ...)", "(HEAD
// detached from ...)" or "(no branch, rebasing ...)"; it is always current.
func isDetachedHead(line string) bool {
	return strings.HasPrefix(line, "* (HEAD detached") || strings.HasPrefix(line, "* (no branch")
}
