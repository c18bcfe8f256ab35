package testutil

import (
	"github.com/javoire/branchsweep/internal/prompt"
	"github.com/stretchr/testify/mock"
)

// MockGitClient is a mock implementation of git.GitClient for testing
type MockGitClient struct {
	mock.Mock
}

func (m *MockGitClient) GetRepoRoot() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitClient) ListBranches() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGitClient) ListUnmergedBranches() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockGitClient) DeleteBranch(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

func (m *MockGitClient) DeleteBranchForce(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// MockPrompter is a mock implementation of prompt.Prompter for testing
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) SelectBranch(branches []string) (prompt.Selection, error) {
	args := m.Called(branches)
	return args.Get(0).(prompt.Selection), args.Error(1)
}

func (m *MockPrompter) Confirm(question string) (bool, error) {
	args := m.Called(question)
	return args.Bool(0), args.Error(1)
}

func (m *MockPrompter) Close() error {
	args := m.Called()
	return args.Error(0)
}
