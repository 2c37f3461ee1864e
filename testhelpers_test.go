package pomresolve

import (
	"testing"

	"github.com/pomexplorer/pomresolve/pom"
)

// mustProject builds a Project from a model, failing the test on error.
func mustProject(t *testing.T, path string, model *pom.Model) *Project {
	t.Helper()
	p, err := NewProject(path, model, false)
	if err != nil {
		t.Fatalf("NewProject(%s) error = %v", path, err)
	}
	return p
}

// mustSession builds a Session over a MemoryContainer, failing the test on
// error.
func mustSession(t *testing.T, opts ...Option) (*Session, *MemoryContainer) {
	t.Helper()
	container := NewMemoryContainer()
	s, err := NewSession(container, opts...)
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return s, container
}
