package git

// GitClient defines the git operations branchsweep relies on
type GitClient interface {
	GetRepoRoot() (string, error)
	ListBranches() ([]string, error)
	ListUnmergedBranches() ([]string, error)
	DeleteBranch(name string) error
	DeleteBranchForce(name string) error
}
