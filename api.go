package pomresolve

import "github.com/pomexplorer/pomresolve/coordinate"

// Session resolves projects against a fixed ProjectContainer. It owns no
// state beyond configuration — every memoized result lives on the Project
// values themselves, so a Session can be discarded and recreated freely
// over the same universe.
type Session struct {
	container ProjectContainer
	cfg       *sessionConfig
}

// NewSession builds a Session over the given universe. An error is returned
// only if the options themselves are inconsistent (see sessionConfig.validate).
func NewSession(container ProjectContainer, opts ...Option) (*Session, error) {
	cfg, err := newSessionConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Session{container: container, cfg: cfg}, nil
}

// ResolvedGav returns a project's own coordinate. It is always fully
// resolved (invariant 1) once a *Project exists.
func (s *Session) ResolvedGav(p *Project) coordinate.Gav {
	return p.Gav
}

// InterpolatedValue resolves a single raw string against p's property
// chain, with full provenance.
func (s *Session) InterpolatedValue(p *Project, raw string) ValueResolution {
	return s.interpolate(p, raw, true, 0)
}

// InterpolatedDependencies returns p's own declared dependencies —
// including those declared by its active profiles — interpolated, but
// never consulted against dependency management (§6). A dependency whose
// own <version> is absent comes back with an empty Version; see
// EffectiveDependencies for the DM-resolved form.
func (s *Session) InterpolatedDependencies(p *Project, profiles ActiveProfiles) []Dependency {
	return s.interpolatedDependencies(p, profiles)
}

// EffectiveDependencies returns p's own declared dependencies, interpolated
// and with effective version/scope computed against the hierarchical
// dependency management visible under the given active profiles (§4.6).
func (s *Session) EffectiveDependencies(p *Project, profiles ActiveProfiles) []Dependency {
	return s.declaredDependencies(p, profiles)
}

// InterpolatedPluginDependencies returns p's own declared build plugins —
// including those declared by its active profiles — interpolated, but never
// consulted against plugin management (§6). A plugin whose own <version> is
// absent comes back with an empty Version; see EffectivePluginDependencies
// for the DM-resolved form.
func (s *Session) InterpolatedPluginDependencies(p *Project, profiles ActiveProfiles) []PluginDependency {
	return s.interpolatedPluginDependencies(p, profiles)
}

// EffectivePluginDependencies returns p's own declared build plugins, with
// missing versions substituted from the hierarchical plugin management
// (§4.7).
func (s *Session) EffectivePluginDependencies(p *Project, profiles ActiveProfiles) []PluginDependency {
	return s.localPluginDependencies(p, profiles)
}

// HierarchicalDependencyManagement returns the dependency management
// visible to p: its own DM, its ancestors' DM, and all BOMs transitively
// imported by any of them, nearest-wins (§4.5). When
// versionCanBeSelfManaged is false the caller receives a shallow copy with
// every VersionSelfManaged bit forced false; the underlying cache keeps the
// "as if self-managed were allowed" view.
func (s *Session) HierarchicalDependencyManagement(p *Project, profiles ActiveProfiles, versionCanBeSelfManaged bool) map[coordinate.DependencyKey]DependencyManagementEntry {
	return s.hierarchicalDM(p, profiles, versionCanBeSelfManaged, 0)
}

// HierarchicalPluginManagement returns the plugin management visible to p
// (§4.7). Profiles are never consulted here, matching the source.
func (s *Session) HierarchicalPluginManagement(p *Project) map[coordinate.GroupArtifact]PluginManagementEntry {
	return s.hierarchicalPluginDM(p, 0)
}

// Submodules returns the GAV of every submodule referenced by p's own
// <modules> and by the <modules> of every one of p's profiles, active or
// not (§4.9).
func (s *Session) Submodules(p *Project) []coordinate.Gav {
	return s.submodules(p)
}

// UnresolvedProperties returns the property names p's own resolution calls
// failed to resolve.
func (s *Session) UnresolvedProperties(p *Project) []string {
	return p.UnresolvedProperties()
}
