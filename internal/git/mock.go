package git

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
)

// MockGitClient implements GitClient for testing. Repositories are tracked by
// directory; a directory is inside a repo when it or an ancestor was initialized.
type MockGitClient struct {
	mu    sync.RWMutex
	repos map[string]bool
	inits []string
	ctx   context.Context

	// Hooks for testing error scenarios
	InitError      error
	IsGitRepoError error
}

// NewMockGitClient creates a new MockGitClient with no repositories
func NewMockGitClient() *MockGitClient {
	return &MockGitClient{
		repos: make(map[string]bool),
		ctx:   context.Background(),
	}
}

// WithContext returns a client sharing state with m and using ctx
func (m *MockGitClient) WithContext(ctx context.Context) GitClient {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ctx = ctx
	return m
}

func (m *MockGitClient) Init(dir string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InitError != nil {
		return m.InitError
	}

	clean := filepath.Clean(dir)
	m.repos[clean] = true
	m.inits = append(m.inits, clean)
	return nil
}

func (m *MockGitClient) IsGitRepo(dir string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.IsGitRepoError != nil {
		return false, m.IsGitRepoError
	}

	clean := filepath.Clean(dir)
	for repo := range m.repos {
		if clean == repo || strings.HasPrefix(clean, repo+string(filepath.Separator)) {
			return true, nil
		}
	}
	return false, nil
}

// AddRepo marks dir as an existing repository
func (m *MockGitClient) AddRepo(dir string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.repos[filepath.Clean(dir)] = true
}

// InitCalls returns the directories passed to Init, in order
func (m *MockGitClient) InitCalls() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]string(nil), m.inits...)
}
