package pkgmanager

import (
	"context"
	"sync"
)

// RunCall records one invocation of MockRunner.Run.
type RunCall struct {
	Dir  string
	Argv []string
}

// MockRunner implements Runner for testing.
type MockRunner struct {
	mu    sync.Mutex
	calls []RunCall

	// Err is returned from every Run call when set.
	Err error
}

// NewMockRunner creates a new MockRunner
func NewMockRunner() *MockRunner {
	return &MockRunner{}
}

func (m *MockRunner) Run(_ context.Context, dir string, argv []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, RunCall{Dir: dir, Argv: append([]string(nil), argv...)})
	return m.Err
}

// Calls returns the recorded invocations in order.
func (m *MockRunner) Calls() []RunCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]RunCall(nil), m.calls...)
}
