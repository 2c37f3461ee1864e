package depgraph

import (
	"github.com/pomexplorer/pomresolve"
	"github.com/pomexplorer/pomresolve/coordinate"
	"github.com/pomexplorer/pomresolve/pom"
)

// maxBomImportDepth bounds how many nested BOM imports collectCandidates
// will follow while hunting for candidates, the same safety net
// foldBomImport's own recursion into hierarchicalDM relies on (the
// specification does not mandate cycle detection).
const maxBomImportDepth = 64

// ExplainDependencyManagement walks p's own ancestor chain — the same chain
// hierarchicalDM composes over — re-collecting every project's own
// (uninherited) dependency management entry for key, including entries
// reached through a BOM import, and tagging which one nearest-wins actually
// selected.
func ExplainDependencyManagement(
	s *pomresolve.Session,
	container pomresolve.ProjectContainer,
	p *pomresolve.Project,
	key coordinate.DependencyKey,
	profiles pomresolve.ActiveProfiles,
) Explanation {
	exp := Explanation{Project: p.Gav.String(), Key: key}

	winnerDM := s.HierarchicalDependencyManagement(p, profiles, true)
	if entry, ok := winnerDM[key]; ok {
		exp.Winner = entry.VersionScope
		exp.Found = true
	}

	winnerPicked := false
	depth := 0
	for cur := p; cur != nil; depth++ {
		candidates := collectCandidates(s, container, cur, key, profiles, depth, 0)
		for i := range candidates {
			if !winnerPicked && exp.Found && matchesWinner(candidates[i], exp.Winner) {
				candidates[i].Selected = true
				winnerPicked = true
			}
		}
		exp.Candidates = append(exp.Candidates, candidates...)

		parent, ok := container.ParentOf(cur)
		if !ok {
			break
		}
		cur = parent
	}

	return exp
}

func matchesWinner(c Candidate, winner coordinate.VersionScope) bool {
	return c.Version == winner.Version
}

// collectCandidates gathers p's own and its active profiles' DM entries for
// key, plus — recursing into any BOM p or its profiles import, bounded by
// bomDepth — the entries those BOMs contribute too.
func collectCandidates(
	s *pomresolve.Session,
	container pomresolve.ProjectContainer,
	p *pomresolve.Project,
	key coordinate.DependencyKey,
	profiles pomresolve.ActiveProfiles,
	depth, bomDepth int,
) []Candidate {
	var out []Candidate

	matches := func(d pom.Dependency) bool {
		groupID := s.InterpolatedValue(p, d.GroupID).Resolved
		artifactID := s.InterpolatedValue(p, d.ArtifactID).Resolved
		classifier := s.InterpolatedValue(p, d.Classifier).Resolved
		typ := s.InterpolatedValue(p, d.Type).Resolved
		return coordinate.NewDependencyKey(groupID, artifactID, classifier, typ) == key
	}

	collect := func(entries []pom.Dependency, source string) {
		for _, d := range entries {
			if matches(d) {
				out = append(out, candidateFrom(p, d, source, depth))
			}
			resolvedScope := s.InterpolatedValue(p, d.Scope).Resolved
			if bomDepth < maxBomImportDepth && coordinate.ScopeFromString(resolvedScope) == coordinate.Import {
				out = append(out, collectBomCandidates(s, container, p, d, key, profiles, depth, bomDepth+1)...)
			}
		}
	}

	collect(p.Model.DependencyManagement, "local")
	for _, prof := range p.Model.Profiles {
		if !profileActive(prof, profiles) {
			continue
		}
		collect(prof.DependencyManagement, "profile")
	}
	return out
}

// collectBomCandidates resolves a single "import"-scoped DM entry to its BOM
// project, mirroring foldBomImport's own lookup, and collects that BOM's own
// candidates (tagged "bom-import") plus whatever it in turn imports.
func collectBomCandidates(
	s *pomresolve.Session,
	container pomresolve.ProjectContainer,
	p *pomresolve.Project,
	d pom.Dependency,
	key coordinate.DependencyKey,
	profiles pomresolve.ActiveProfiles,
	depth, bomDepth int,
) []Candidate {
	groupID := s.InterpolatedValue(p, d.GroupID).Resolved
	artifactID := s.InterpolatedValue(p, d.ArtifactID).Resolved
	version := s.InterpolatedValue(p, d.Version).Resolved

	bom, ok := container.ForGav(coordinate.NewGav(groupID, artifactID, version))
	if !ok {
		return nil
	}

	out := collectCandidates(s, container, bom, key, profiles, depth, bomDepth)
	for i := range out {
		if out[i].Source == "local" || out[i].Source == "profile" {
			out[i].Source = "bom-import"
		}
	}
	return out
}

func candidateFrom(p *pomresolve.Project, d pom.Dependency, source string, depth int) Candidate {
	return Candidate{
		Project: p.Gav.String(),
		Depth:   depth,
		Source:  source,
		Version: d.Version,
		Scope:   d.Scope,
	}
}

// profileActive mirrors the engine's own profile-activation rule (§4.8):
// caller-supplied membership, or the profile's own activeByDefault flag.
func profileActive(prof pom.Profile, profiles pomresolve.ActiveProfiles) bool {
	return profiles.Contains(prof.ID) || prof.Activation.ActiveByDefault
}

// ExplainProperty walks p's own delegation chain for name, recording the
// value seen at each hop, terminating at whichever project actually defines
// it (or at the chain root if none does).
func ExplainProperty(
	container pomresolve.ProjectContainer,
	p *pomresolve.Project,
	name string,
) PropertyExplanation {
	exp := PropertyExplanation{Project: p.Gav.String(), Name: name}

	for cur := p; cur != nil; {
		if v, ok := cur.Properties[name]; ok {
			exp.Hops = append(exp.Hops, PropertyHop{Project: cur.Gav.String(), Defined: true, Value: v})
			exp.Value = v
			exp.Found = true
			return exp
		}
		exp.Hops = append(exp.Hops, PropertyHop{Project: cur.Gav.String(), Defined: false})

		parent, ok := container.ParentOf(cur)
		if !ok {
			break
		}
		cur = parent
	}

	return exp
}
