// Package sweep drives the interactive branch deletion session: list the
// local branches, let the user pick one, confirm force deletion of unmerged
// work, delete, and list again.
package sweep
