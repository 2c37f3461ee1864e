package pomresolve

import (
	"github.com/pomexplorer/pomresolve/coordinate"
	"github.com/pomexplorer/pomresolve/pom"
)

// exclusionAdder is the single-method sink the DM composer feeds interpolated
// exclusions through (§9): a closure suffices, no interface hierarchy needed.
type exclusionAdder func(coordinate.GroupArtifact)

// ancestorChain walks p's parent references via the Session's
// ProjectContainer, nearest first, bounded by the configured max depth as a
// safety net against an un-terminated chain (§9; invariant 5 rules out a
// true cycle, but a misconfigured universe could still loop).
func (s *Session) ancestorChain(p *Project) []*Project {
	chain := []*Project{p}
	cur := p
	for i := 0; cur.ParentGav != nil && i < s.cfg.maxDepth; i++ {
		parent, ok := s.container.ParentOf(cur)
		if !ok {
			break
		}
		chain = append(chain, parent)
		cur = parent
	}
	return chain
}

// hierarchicalDM implements §4.5. The per-project cache always stores the
// "as if self-managed were allowed" view; a caller asking for
// versionCanBeSelfManaged=false gets a demoted shallow copy, never the
// cached map itself.
func (s *Session) hierarchicalDM(p *Project, profiles ActiveProfiles, versionCanBeSelfManaged bool, depth int) map[coordinate.DependencyKey]DependencyManagementEntry {
	key := profileKey(profiles)
	cached, ok := p.dmCache[key]
	if !ok {
		cached = s.computeHierarchicalDM(p, profiles, depth)
		p.dmCache[key] = cached
	}

	out := make(map[coordinate.DependencyKey]DependencyManagementEntry, len(cached))
	for k, v := range cached {
		if versionCanBeSelfManaged {
			out[k] = v
		} else {
			out[k] = v.Demoted()
		}
	}
	return out
}

func (s *Session) computeHierarchicalDM(p *Project, profiles ActiveProfiles, depth int) map[coordinate.DependencyKey]DependencyManagementEntry {
	acc := make(map[coordinate.DependencyKey]DependencyManagementEntry)
	for i, c := range s.ancestorChain(p) {
		// Only the nearest project in the chain may contribute self-managed
		// versions; every ancestor is demoted regardless of the caller's
		// own flag (§4.5 step 4).
		selfManagedAllowed := i == 0
		s.foldLocalDependencyManagement(c, profiles, selfManagedAllowed, depth, acc)
	}
	return acc
}

// foldLocalDependencyManagement folds one project's own DM, its active
// profiles' DM, and the BOMs any of those import, into acc under
// first-writer-wins (§4.5 steps 3a-3c).
func (s *Session) foldLocalDependencyManagement(c *Project, profiles ActiveProfiles, selfManagedAllowed bool, depth int, acc map[coordinate.DependencyKey]DependencyManagementEntry) {
	var imports []pom.Dependency

	insert := func(entries []pom.Dependency) {
		for _, d := range entries {
			key, entry, resolvedScope := s.buildDMEntry(c, d, selfManagedAllowed, depth)
			if _, exists := acc[key]; !exists {
				acc[key] = entry
			}
			if coordinate.ScopeFromString(resolvedScope) == coordinate.Import {
				imports = append(imports, d)
			}
		}
	}

	insert(c.Model.DependencyManagement)
	for _, prof := range activeProfiles(c, profiles) {
		insert(prof.DependencyManagement)
	}

	for _, d := range imports {
		s.foldBomImport(c, d, profiles, depth, acc)
	}
}

func (s *Session) foldBomImport(c *Project, d pom.Dependency, profiles ActiveProfiles, depth int, acc map[coordinate.DependencyKey]DependencyManagementEntry) {
	if depth >= s.cfg.maxDepth {
		return
	}
	gr := s.interpolateGav(c, d.GroupID, d.ArtifactID, d.Version, false, depth)
	bom, ok := s.container.ForGav(gr.Gav)
	if !ok {
		s.cfg.warn(Warning{
			Project: c.Gav.String(),
			Kind:    "missing-bom-project",
			Message: "missing project for BOM import " + gr.Gav.String(),
		})
		return
	}

	bomDM := s.hierarchicalDM(bom, profiles, false, depth+1)
	for k, v := range bomDM {
		if _, exists := acc[k]; !exists {
			acc[k] = v
		}
	}
}

// buildDMEntry interpolates one raw DM entry and computes its VersionScope
// and exclusions. It also returns the interpolated scope string so callers
// that need to test for an import scope (§4.5 step 3c) reuse the same
// resolution instead of re-deriving it from the raw, uninterpolated string.
func (s *Session) buildDMEntry(c *Project, d pom.Dependency, selfManagedAllowed bool, depth int) (coordinate.DependencyKey, DependencyManagementEntry, string) {
	gr := s.interpolateGav(c, d.GroupID, d.ArtifactID, d.Version, selfManagedAllowed, depth)
	classifier := s.interpolate(c, d.Classifier, selfManagedAllowed, depth).Resolved
	typ := s.interpolate(c, d.Type, selfManagedAllowed, depth).Resolved
	scope := s.interpolate(c, d.Scope, selfManagedAllowed, depth).Resolved

	key := coordinate.NewDependencyKey(gr.Gav.GroupID, gr.Gav.ArtifactID, classifier, typ)

	exclusions := make(map[coordinate.GroupArtifact]struct{})
	addExclusion := exclusionAdder(func(ga coordinate.GroupArtifact) {
		exclusions[ga] = struct{}{}
	})
	for _, ex := range d.Exclusions {
		interpolateExclusion(s, c, ex, selfManagedAllowed, depth, addExclusion)
	}

	entry := DependencyManagementEntry{
		VersionScope: coordinate.VersionScope{
			Version:            gr.Gav.Version,
			Scope:              coordinate.ScopeFromString(scope),
			VersionSelfManaged: selfManagedAllowed && gr.SelfManaged,
		},
		Exclusions: exclusions,
	}
	return key, entry, scope
}

func interpolateExclusion(s *Session, c *Project, ex pom.Exclusion, selfManagedAllowed bool, depth int, add exclusionAdder) {
	group := s.interpolate(c, ex.GroupID, selfManagedAllowed, depth).Resolved
	artifact := s.interpolate(c, ex.ArtifactID, selfManagedAllowed, depth).Resolved
	add(coordinate.GA(group, artifact))
}
