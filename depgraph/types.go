// Package depgraph answers "why" questions about a resolved project
// universe after the fact: which project in an ancestor chain contributed
// the dependency management entry that won, and what the full set of
// candidates looked like before nearest-wins picked one. It is read-only —
// nothing here feeds back into resolution, it only re-examines the same
// ProjectContainer a Session already resolved against.
package depgraph

import "github.com/pomexplorer/pomresolve/coordinate"

// Candidate is one project's own (uninherited) contribution to a dependency
// management key, whether or not it ended up winning.
type Candidate struct {
	// Project is the GAV string of the project that declared this entry.
	Project string
	// Depth is this project's distance from the queried project in the
	// ancestor chain; 0 is the queried project itself.
	Depth int
	// Source distinguishes where the entry came from: "local", "profile",
	// or "bom-import".
	Source string
	// Version and Scope are the entry's own raw (uninterpolated) strings.
	Version string
	Scope   string
	// Selected is true for the single candidate nearest-wins actually picked.
	Selected bool
}

// Explanation is the result of explaining one dependency management key
// against one project.
type Explanation struct {
	Project    string
	Key        coordinate.DependencyKey
	Candidates []Candidate
	// Winner is the resolved version/scope the engine actually produced for
	// this key, or the zero value if no candidate in the chain covers it.
	Winner coordinate.VersionScope
	Found  bool
}

// PropertyHop is one step along the chain a property lookup walked before
// it either resolved or gave up.
type PropertyHop struct {
	Project string
	// Defined is true if this hop is where the property was actually found.
	Defined bool
	Value   string
}

// PropertyExplanation is the result of explaining a single property name
// against one project.
type PropertyExplanation struct {
	Project string
	Name    string
	Hops    []PropertyHop
	Value   string
	Found   bool
}
