package git

import "context"

// MockResolver is a test double for Resolver.
// It allows tests to provide predefined answers without a real repository.
type MockResolver struct {
	Root  string
	Name  string
	Files []string
	Diff  string
	Error error
}

// Toplevel returns the predefined root or error.
func (m *MockResolver) Toplevel(_ context.Context, _ string) (string, error) {
	return m.Root, m.Error
}

// UserName returns the predefined name or error.
func (m *MockResolver) UserName(_ context.Context, _ string) (string, error) {
	return m.Name, m.Error
}

// DiffFiles returns the predefined file list or error.
func (m *MockResolver) DiffFiles(_ context.Context, _ DiffQuery) ([]string, error) {
	return m.Files, m.Error
}

// FileDiff returns the predefined diff or error.
func (m *MockResolver) FileDiff(_ context.Context, _ DiffQuery, _ string) (string, error) {
	return m.Diff, m.Error
}

// Compile-time interface conformance check.
var _ RepositoryResolver = (*MockResolver)(nil)
