package pomresolve

import "github.com/pomexplorer/pomresolve/coordinate"

// ProjectContainer is the universe of Project values a Session resolves
// against. It is deliberately a small, two-method abstraction (§9): an
// in-memory implementation is enough for most callers, and the
// registry package supplies one that reaches outside the process.
type ProjectContainer interface {
	// ForGav returns the Project for a GAV, or ok=false if it is not known.
	ForGav(g coordinate.Gav) (*Project, bool)
	// ParentOf returns p's parent Project, or ok=false at the chain root or
	// when the parent is declared but not present in this universe.
	ParentOf(p *Project) (*Project, bool)
}

// MemoryContainer is a ProjectContainer backed by an in-memory map, keyed by
// GAV. It is the reference implementation; registry.ChainContainer and its
// siblings compose with it for "local first, then remote" lookups.
type MemoryContainer struct {
	projects map[coordinate.Gav]*Project
}

// NewMemoryContainer returns an empty MemoryContainer.
func NewMemoryContainer() *MemoryContainer {
	return &MemoryContainer{projects: make(map[coordinate.Gav]*Project)}
}

// Add registers a Project under its own GAV, overwriting any project
// previously registered under the same coordinate.
func (m *MemoryContainer) Add(p *Project) {
	m.projects[p.Gav] = p
}

// ForGav implements ProjectContainer.
func (m *MemoryContainer) ForGav(g coordinate.Gav) (*Project, bool) {
	p, ok := m.projects[g]
	return p, ok
}

// ParentOf implements ProjectContainer.
func (m *MemoryContainer) ParentOf(p *Project) (*Project, bool) {
	if p.ParentGav == nil {
		return nil, false
	}
	return m.ForGav(*p.ParentGav)
}

// Len reports how many projects are registered.
func (m *MemoryContainer) Len() int {
	return len(m.projects)
}
