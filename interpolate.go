package pomresolve

import (
	"strings"

	"github.com/pomexplorer/pomresolve/coordinate"
)

// unresolvedLiteral is what interpolate emits in place of a property
// reference it could not resolve (§4.4).
const unresolvedLiteral = "null"

// GavResolution is the result of interpolating all three components of a
// GAV independently (§4.4).
type GavResolution struct {
	Gav                     coordinate.Gav
	SelfManaged             bool
	HasUnresolvedProperties bool
}

// interpolate implements §4.4: scan raw left to right for "${name}"
// segments, resolving each through resolveProperty, recursively
// re-interpolating any resolved value that itself still contains "${...}".
// The specification does not support nested "${${x}}" syntax — only a
// resolved value's own unexpanded references are re-interpolated.
//
// Results are cached keyed by the *output* (resolved) string, not the raw
// input — a deliberate preservation of the source's behavior (§9).
func (s *Session) interpolate(p *Project, raw string, canBeSelfManaged bool, depth int) ValueResolution {
	if depth > s.cfg.maxDepth {
		return ValueResolution{Raw: raw, Resolved: raw, SelfManaged: false, HasUnresolvedProperties: true}
	}

	if cached, ok := p.interpolationCache[raw]; ok {
		s.cfg.recorderOrNoop().InterpolationCacheHit(p.Gav.String())
		return cached
	}

	var sb strings.Builder
	selfManaged := canBeSelfManaged
	hasUnresolved := false
	refs := make(map[string]*string)

	i := 0
	for i < len(raw) {
		start := strings.Index(raw[i:], "${")
		if start == -1 {
			sb.WriteString(raw[i:])
			break
		}
		start += i
		sb.WriteString(raw[i:start])

		closeIdx := strings.IndexByte(raw[start+2:], '}')
		if closeIdx == -1 {
			sb.WriteString(raw[start:])
			break
		}
		end := start + 2 + closeIdx
		name := raw[start+2 : end]

		loc, ok := s.resolveProperty(p, name, canBeSelfManaged, depth)
		if !ok {
			sb.WriteString(unresolvedLiteral)
			hasUnresolved = true
			refs[name] = nil
			selfManaged = false
			s.cfg.warn(Warning{
				Project: p.Gav.String(),
				Kind:    "unresolved-property",
				Message: "unresolved property reference: " + name,
			})
		} else {
			value := loc.Value
			nestedSelfManaged := loc.SelfManaged
			if strings.Contains(value, "${") {
				nested := s.interpolate(loc.DefiningProject, value, loc.SelfManaged, depth+1)
				value = nested.Resolved
				nestedSelfManaged = loc.SelfManaged && nested.SelfManaged
				if nested.HasUnresolvedProperties {
					hasUnresolved = true
				}
			}
			sb.WriteString(value)
			v := value
			refs[name] = &v
			selfManaged = selfManaged && nestedSelfManaged
		}

		i = end + 1
	}

	result := ValueResolution{
		Raw:                     raw,
		Resolved:                sb.String(),
		SelfManaged:             selfManaged,
		HasUnresolvedProperties: hasUnresolved,
		PropertiesReferenced:    refs,
	}
	p.interpolationCache[result.Resolved] = result
	return result
}

// interpolateGav interpolates each of a GAV's three raw components
// independently (§4.4).
func (s *Session) interpolateGav(p *Project, groupID, artifactID, version string, canBeSelfManaged bool, depth int) GavResolution {
	g := s.interpolate(p, groupID, canBeSelfManaged, depth)
	a := s.interpolate(p, artifactID, canBeSelfManaged, depth)
	v := s.interpolate(p, version, canBeSelfManaged, depth)
	return GavResolution{
		Gav:                     coordinate.NewGav(g.Resolved, a.Resolved, v.Resolved),
		SelfManaged:             g.SelfManaged && a.SelfManaged && v.SelfManaged,
		HasUnresolvedProperties: g.HasUnresolvedProperties || a.HasUnresolvedProperties || v.HasUnresolvedProperties,
	}
}
