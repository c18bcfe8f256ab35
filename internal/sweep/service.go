package sweep

import (
	"fmt"
	"slices"

	"github.com/javoire/branchsweep/internal/git"
	"github.com/javoire/branchsweep/internal/spinner"
	"go.uber.org/zap"
)

// DeletionMode selects between git branch -d and git branch -D
type DeletionMode int

const (
	// Safe refuses to delete a branch with unmerged commits
	Safe DeletionMode = iota
	// Forced deletes the branch regardless
	Forced
)

func (m DeletionMode) String() string {
	if m == Forced {
		return "forced"
	}
	return "safe"
}

// Service lists, checks and deletes branches through a git client
type Service struct {
	git    git.GitClient
	logger *zap.Logger
}

// NewService creates a branch service
func NewService(gitClient git.GitClient, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{git: gitClient, logger: logger}
}

// CheckRepository fails with git's own message when the working directory
// is not inside a repository
func (s *Service) CheckRepository() error {
	root, err := s.git.GetRepoRoot()
	if err != nil {
		return err
	}
	s.logger.Debug("repository found", zap.String("root", root))
	return nil
}

// ListBranches fetches the local branches, showing a loading notice meanwhile
func (s *Service) ListBranches() ([]string, error) {
	var branches []string
	err := spinner.Wrap("Loading branches...", func() error {
		var err error
		branches, err = s.git.ListBranches()
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("branches loaded", zap.Int("count", len(branches)))
	return branches, nil
}

// IsUnmerged reports whether name has commits not merged into HEAD.
// Merge status is queried fresh on every call.
func (s *Service) IsUnmerged(name string) (bool, error) {
	unmerged, err := s.git.ListUnmergedBranches()
	if err != nil {
		return false, err
	}
	return slices.Contains(unmerged, name), nil
}

// Delete removes a branch with the given mode. There is exactly one attempt.
func (s *Service) Delete(name string, mode DeletionMode) error {
	s.logger.Debug("deleting branch", zap.String("branch", name), zap.Stringer("mode", mode))

	var err error
	switch mode {
	case Safe:
		err = s.git.DeleteBranch(name)
	case Forced:
		err = s.git.DeleteBranchForce(name)
	default:
		return fmt.Errorf("unknown deletion mode %d", mode)
	}
	return err
}
