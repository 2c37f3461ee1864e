package pomresolve

import (
	"github.com/pomexplorer/pomresolve/coordinate"
	"github.com/pomexplorer/pomresolve/pom"
)

// hierarchicalPluginDM implements §4.7: mirrors hierarchicalDM but keyed by
// GroupArtifact, version-only, and fed only from each ancestor's own
// <pluginManagement> — profiles are never consulted here, matching the
// explicit simplification noted in §9. Entries whose version does not
// resolve (empty, or referencing an unresolved property anywhere in the
// coordinate) are skipped silently rather than recorded.
func (s *Session) hierarchicalPluginDM(p *Project, depth int) map[coordinate.GroupArtifact]PluginManagementEntry {
	if p.pluginDMComputed {
		return copyPluginDM(p.pluginDMCache)
	}

	acc := make(map[coordinate.GroupArtifact]PluginManagementEntry)
	for i, c := range s.ancestorChain(p) {
		selfManagedAllowed := i == 0
		for _, pl := range c.Model.PluginManagement {
			gr := s.interpolateGav(c, pl.GroupID, pl.ArtifactID, pl.Version, selfManagedAllowed, depth)
			if gr.Gav.Version == "" || gr.HasUnresolvedProperties {
				continue
			}
			ga := gr.Gav.GroupArtifact()
			if _, exists := acc[ga]; exists {
				continue
			}
			acc[ga] = PluginManagementEntry{
				Version:            gr.Gav.Version,
				VersionSelfManaged: selfManagedAllowed && gr.SelfManaged,
			}
		}
	}

	p.pluginDMCache = acc
	p.pluginDMComputed = true
	return copyPluginDM(acc)
}

func copyPluginDM(in map[coordinate.GroupArtifact]PluginManagementEntry) map[coordinate.GroupArtifact]PluginManagementEntry {
	out := make(map[coordinate.GroupArtifact]PluginManagementEntry, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// localPluginDependencies implements §4.7's localPluginDependencies:
// interpolate every one of p's own declared build plugins (including those
// declared by active profiles) and, where the declaration's own version is
// missing, substitute the hierarchical plugin management's version. A
// plugin's GroupArtifact is also its dedup slot: p's own declarations win
// over a profile's redeclaration of the same plugin, matching Java's
// getLocalPluginDependencies, which collects into a Set<Gav>.
func (s *Session) localPluginDependencies(p *Project, profiles ActiveProfiles) []PluginDependency {
	key := profileKey(profiles)
	if cached, ok := p.pluginDepsCache[key]; ok {
		return cached
	}

	pluginDM := s.hierarchicalPluginDM(p, 0)

	var result []PluginDependency
	seen := make(map[coordinate.GroupArtifact]struct{})
	appendAll := func(plugins []pom.Plugin) {
		for _, pl := range plugins {
			dep := s.effectiveDeclaredPlugin(p, pl, pluginDM)
			if _, exists := seen[dep.GroupArtifact]; exists {
				continue
			}
			seen[dep.GroupArtifact] = struct{}{}
			result = append(result, dep)
		}
	}
	appendAll(p.Model.Plugins)
	for _, prof := range activeProfiles(p, profiles) {
		appendAll(prof.Plugins)
	}

	p.pluginDepsCache[key] = result
	return result
}

// interpolatedPlugin interpolates one declared plugin's GroupArtifact and
// version, without consulting any plugin management — the "interpolated
// plugin dependencies" query of spec §6, as distinct from the DM-resolved
// "effective" one. Version may come back empty.
func (s *Session) interpolatedPlugin(p *Project, pl pom.Plugin) PluginDependency {
	gr := s.interpolateGav(p, pl.GroupID, pl.ArtifactID, pl.Version, true, 0)
	return PluginDependency{
		GroupArtifact:      coordinate.GA(gr.Gav.GroupID, gr.Gav.ArtifactID),
		Version:            gr.Gav.Version,
		VersionSelfManaged: gr.SelfManaged,
	}
}

func (s *Session) effectiveDeclaredPlugin(p *Project, pl pom.Plugin, pluginDM map[coordinate.GroupArtifact]PluginManagementEntry) PluginDependency {
	dep := s.interpolatedPlugin(p, pl)

	if dep.Version != "" {
		return dep
	}

	if dmEntry, ok := pluginDM[dep.GroupArtifact]; ok {
		return PluginDependency{GroupArtifact: dep.GroupArtifact, Version: dmEntry.Version, VersionSelfManaged: dmEntry.VersionSelfManaged}
	}

	s.cfg.warn(Warning{
		Project: p.Gav.String(),
		Kind:    "unresolvable-plugin-version",
		Message: "unresolvable plugin version for " + dep.GroupArtifact.String(),
	})
	return PluginDependency{GroupArtifact: dep.GroupArtifact, Version: "", VersionSelfManaged: false}
}

// interpolatedPluginDependencies implements the "interpolated plugin
// dependencies" query of spec §6: every one of p's own declared build
// plugins, plus its active profiles', interpolated but never consulted
// against plugin management. Deduplicated the same way
// localPluginDependencies is — own declarations beat a profile's
// redeclaration of the same plugin.
func (s *Session) interpolatedPluginDependencies(p *Project, profiles ActiveProfiles) []PluginDependency {
	var result []PluginDependency
	seen := make(map[coordinate.GroupArtifact]struct{})
	appendAll := func(plugins []pom.Plugin) {
		for _, pl := range plugins {
			dep := s.interpolatedPlugin(p, pl)
			if _, exists := seen[dep.GroupArtifact]; exists {
				continue
			}
			seen[dep.GroupArtifact] = struct{}{}
			result = append(result, dep)
		}
	}
	appendAll(p.Model.Plugins)
	for _, prof := range activeProfiles(p, profiles) {
		appendAll(prof.Plugins)
	}
	return result
}
