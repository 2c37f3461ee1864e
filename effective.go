package pomresolve

import (
	"github.com/pomexplorer/pomresolve/coordinate"
	"github.com/pomexplorer/pomresolve/pom"
)

// effectiveVersionScope implements §4.6: given an interpolated declared
// dependency whose version/scope strings may be empty (not declared), fill
// in whatever the hierarchical dependency management provides and compute
// the final self-managed bit.
//
// An empty version or scope string is treated as "not declared" — Maven
// POMs never declare an empty <version> element meaningfully, so the two
// cases coincide.
func (s *Session) effectiveVersionScope(
	projectGav string,
	key coordinate.DependencyKey,
	version, scope string,
	versionSelfManaged, callerAllowsSelfManaged bool,
	dm map[coordinate.DependencyKey]DependencyManagementEntry,
) coordinate.VersionScope {
	if version != "" && scope != "" {
		return coordinate.VersionScope{
			Version:            version,
			Scope:              coordinate.ScopeFromString(scope),
			VersionSelfManaged: versionSelfManaged && callerAllowsSelfManaged,
		}
	}

	dmEntry, hasDM := dm[key]
	versionFromDM := false
	if version == "" {
		if hasDM && dmEntry.VersionScope.HasVersion() {
			version = dmEntry.VersionScope.Version
			versionSelfManaged = dmEntry.VersionScope.VersionSelfManaged
			versionFromDM = true
		}
	}
	if scope == "" && hasDM {
		scope = dmEntry.VersionScope.Scope.String()
	}

	if version == "" {
		s.cfg.warn(Warning{
			Project: projectGav,
			Kind:    "missing-version",
			Message: "missing version for dependency " + key.String(),
		})
	}

	sc := coordinate.Compile
	if scope != "" {
		sc = coordinate.ScopeFromString(scope)
	}

	final := callerAllowsSelfManaged && versionSelfManaged
	if versionFromDM {
		final = final && dmEntry.VersionScope.VersionSelfManaged
	}

	return coordinate.VersionScope{Version: version, Scope: sc, VersionSelfManaged: final}
}

// declaredDependencies implements the bulk of EffectiveDependencies:
// interpolate every one of p's own <dependencies> entries and compute its
// effective version/scope against the hierarchical DM visible under
// profiles. A dependency's DependencyKey is also its dedup slot (spec §3):
// p's own declarations win over a profile's redeclaration of the same key,
// and earlier profiles win over later ones, matching Project.java's
// getLocalDependencies "if res.containsKey(key)) continue" rule.
func (s *Session) declaredDependencies(p *Project, profiles ActiveProfiles) []Dependency {
	key := profileKey(profiles)
	if cached, ok := p.declaredDepsCache[key]; ok {
		return cached
	}

	dm := s.hierarchicalDM(p, profiles, true, 0)

	var result []Dependency
	seen := make(map[coordinate.DependencyKey]struct{})
	appendAll := func(decls []pom.Dependency) {
		for _, d := range decls {
			dep := s.effectiveDeclaredDependency(p, d, dm)
			if _, exists := seen[dep.Key]; exists {
				continue
			}
			seen[dep.Key] = struct{}{}
			result = append(result, dep)
		}
	}
	appendAll(p.Model.Dependencies)
	for _, prof := range activeProfiles(p, profiles) {
		appendAll(prof.Dependencies)
	}

	p.declaredDepsCache[key] = result
	return result
}

// interpolatedDependency interpolates one declared dependency's GAV,
// classifier, type and exclusions, without consulting any dependency
// management — the "interpolated dependencies" query of spec §6, as
// distinct from the DM-resolved "effective" one. Its VersionScope carries
// whatever the declaration itself interpolated to, which may have an empty
// Version.
func (s *Session) interpolatedDependency(p *Project, d pom.Dependency) Dependency {
	gr := s.interpolateGav(p, d.GroupID, d.ArtifactID, d.Version, true, 0)
	classifier := s.interpolate(p, d.Classifier, true, 0).Resolved
	typ := s.interpolate(p, d.Type, true, 0).Resolved
	scope := s.interpolate(p, d.Scope, true, 0).Resolved
	key := coordinate.NewDependencyKey(gr.Gav.GroupID, gr.Gav.ArtifactID, classifier, typ)

	exclusions := make(map[coordinate.GroupArtifact]struct{})
	for _, ex := range d.Exclusions {
		group := s.interpolate(p, ex.GroupID, true, 0).Resolved
		artifact := s.interpolate(p, ex.ArtifactID, true, 0).Resolved
		exclusions[coordinate.GA(group, artifact)] = struct{}{}
	}

	return Dependency{
		Key: key,
		VersionScope: coordinate.VersionScope{
			Version:            gr.Gav.Version,
			Scope:              coordinate.ScopeFromString(scope),
			VersionSelfManaged: gr.SelfManaged,
		},
		Optional:   d.Optional,
		Exclusions: exclusions,
	}
}

func (s *Session) effectiveDeclaredDependency(p *Project, d pom.Dependency, dm map[coordinate.DependencyKey]DependencyManagementEntry) Dependency {
	dep := s.interpolatedDependency(p, d)
	scope := s.interpolate(p, d.Scope, true, 0).Resolved
	dep.VersionScope = s.effectiveVersionScope(p.Gav.String(), dep.Key, dep.VersionScope.Version, scope, dep.VersionScope.VersionSelfManaged, true, dm)
	return dep
}

// interpolatedDependencies implements the "interpolated dependencies" query
// of spec §6: every one of p's own <dependencies>, plus its active
// profiles', interpolated but never consulted against dependency
// management. Deduplicated the same way declaredDependencies is — own
// declarations beat a profile's redeclaration of the same key.
func (s *Session) interpolatedDependencies(p *Project, profiles ActiveProfiles) []Dependency {
	var result []Dependency
	seen := make(map[coordinate.DependencyKey]struct{})
	appendAll := func(decls []pom.Dependency) {
		for _, d := range decls {
			dep := s.interpolatedDependency(p, d)
			if _, exists := seen[dep.Key]; exists {
				continue
			}
			seen[dep.Key] = struct{}{}
			result = append(result, dep)
		}
	}
	appendAll(p.Model.Dependencies)
	for _, prof := range activeProfiles(p, profiles) {
		appendAll(prof.Dependencies)
	}
	return result
}
