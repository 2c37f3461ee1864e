package pomresolve

import (
	"strings"

	"github.com/pomexplorer/pomresolve/coordinate"
	"github.com/pomexplorer/pomresolve/pom"
)

// parentVersionExpr is the one interpolation Project initialization performs
// on its own, before any Session exists to run the general interpolator
// (§8 boundary behavior): a literal "${parent.version}" in <version> is
// replaced with the parent's own resolved version.
const parentVersionExpr = "${parent.version}"

// Project owns a parsed POM, its resolved coordinate, and the memoization
// caches every resolution layer above it reads and writes. Caches are
// populated lazily and never invalidated — the universe is treated as
// immutable for the lifetime of a resolution session (§5).
type Project struct {
	// PomFile is the path the Project was constructed from.
	PomFile string
	// IsExternal marks a Project fetched from outside the local universe
	// (e.g. via the registry package). It behaves identically to a local
	// Project for resolution; the flag only lets callers suppress build
	// actions.
	IsExternal bool

	Model *pom.Model

	Gav       coordinate.Gav
	ParentGav *coordinate.Gav

	// Properties holds this project's own <properties> only — never an
	// ancestor's.
	Properties map[string]string

	interpolationCache   map[string]ValueResolution
	unresolvedProperties map[string]struct{}

	dmCache          map[string]map[coordinate.DependencyKey]DependencyManagementEntry
	pluginDMCache    map[coordinate.GroupArtifact]PluginManagementEntry
	pluginDMComputed bool

	declaredDepsCache map[string][]Dependency
	pluginDepsCache   map[string][]PluginDependency
}

// NewProject initializes a Project from an already-parsed POM model. It
// computes the project's own GAV (inheriting groupId/version from <parent>
// when absent), snapshots local properties, and validates invariant 1 (the
// GAV must be fully resolved). It does not touch the ProjectContainer —
// parent inheritance at this stage uses only the literal <parent> reference,
// never a loaded parent Project.
func NewProject(path string, model *pom.Model, isExternal bool) (*Project, error) {
	if model == nil {
		return nil, &InitializationError{Path: path, Err: ErrPOMUnreadable}
	}

	p := &Project{
		PomFile:              path,
		IsExternal:           isExternal,
		Model:                model,
		Properties:           copyProps(model.Properties),
		interpolationCache:   make(map[string]ValueResolution),
		unresolvedProperties: make(map[string]struct{}),
		dmCache:              make(map[string]map[coordinate.DependencyKey]DependencyManagementEntry),
		pluginDMCache:        make(map[coordinate.GroupArtifact]PluginManagementEntry),
		declaredDepsCache:    make(map[string][]Dependency),
		pluginDepsCache:      make(map[string][]PluginDependency),
	}

	var parent *coordinate.Gav
	if model.Parent != nil {
		g := coordinate.NewGav(model.Parent.GroupID, model.Parent.ArtifactID, model.Parent.Version)
		if !g.IsResolved() {
			return nil, &InitializationError{Path: path, Gav: g.String(), Err: ErrUnresolvedParentGAV}
		}
		parent = &g
	}
	p.ParentGav = parent

	groupID := model.GroupID
	if groupID == "" {
		if parent == nil {
			return nil, &InitializationError{Path: path, Err: ErrMissingGroupID}
		}
		groupID = parent.GroupID
	}

	version := model.Version
	if version == "" {
		if parent == nil {
			return nil, &InitializationError{Path: path, Err: ErrMissingVersion}
		}
		version = parent.Version
	}
	if parent != nil && strings.Contains(version, parentVersionExpr) {
		version = strings.ReplaceAll(version, parentVersionExpr, parent.Version)
	}

	p.Gav = coordinate.NewGav(groupID, model.ArtifactID, version)
	if !p.Gav.IsResolved() {
		return nil, &InitializationError{Path: path, Gav: p.Gav.String(), Err: ErrUnresolvedGAV}
	}

	return p, nil
}

func copyProps(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// UnresolvedProperties returns the property names this project's own
// resolution calls failed to resolve, in no particular order.
func (p *Project) UnresolvedProperties() []string {
	names := make([]string, 0, len(p.unresolvedProperties))
	for n := range p.unresolvedProperties {
		names = append(names, n)
	}
	return names
}
