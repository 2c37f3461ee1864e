package pomresolve

import "github.com/pomexplorer/pomresolve/coordinate"

// ValueResolution is the result of interpolating one raw string against a
// Project's property chain.
type ValueResolution struct {
	Raw      string
	Resolved string
	// SelfManaged is the AND of every property lookup's self-managed flag
	// encountered while producing Resolved.
	SelfManaged bool
	// HasUnresolvedProperties is true if any referenced property could not
	// be resolved; Resolved then contains the literal text "null" at that
	// position, matching the source behavior (§4.4).
	HasUnresolvedProperties bool
	// PropertiesReferenced maps each "${name}" segment encountered to the
	// value it resolved to, or nil if it did not resolve.
	PropertiesReferenced map[string]*string
}

// PropertyLocation is the result of a single property lookup (§4.3).
type PropertyLocation struct {
	DefiningProject *Project
	Name            string
	Value           string
	// SelfManaged is true iff the definition lives in the querying project
	// itself and the caller has not already crossed a project boundary.
	SelfManaged bool
}

// DependencyManagementEntry is one entry in a hierarchical dependency
// management map: a version+scope plus the exclusions declared alongside
// it.
type DependencyManagementEntry struct {
	VersionScope coordinate.VersionScope
	Exclusions   map[coordinate.GroupArtifact]struct{}
}

// Demoted returns a copy with VersionScope.VersionSelfManaged forced false,
// used when handing a DM entry across a project or BOM-import boundary.
func (e DependencyManagementEntry) Demoted() DependencyManagementEntry {
	e.VersionScope = e.VersionScope.Demoted()
	return e
}

// Dependency is a declared dependency after interpolation. From
// EffectiveDependencies its VersionScope is the effective one computed
// against dependency management (§4.6); from InterpolatedDependencies it is
// only what the declaration itself interpolated to.
type Dependency struct {
	Key          coordinate.DependencyKey
	VersionScope coordinate.VersionScope
	Optional     bool
	Exclusions   map[coordinate.GroupArtifact]struct{}
}

// PluginManagementEntry mirrors DependencyManagementEntry but for
// <pluginManagement>: version-only, no scope, no exclusions (§4.7).
type PluginManagementEntry struct {
	Version            string
	VersionSelfManaged bool
}

// PluginDependency is a declared plugin after interpolation. From
// EffectivePluginDependencies a missing version is substituted from the
// hierarchical plugin DM; from InterpolatedPluginDependencies it is not.
type PluginDependency struct {
	GroupArtifact      coordinate.GroupArtifact
	Version            string
	VersionSelfManaged bool
}
