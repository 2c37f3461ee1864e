package pomresolve

import "strings"

// fixedMavenVersion is the built-in value for the "mavenVersion" property.
const fixedMavenVersion = "3.1.1"

// javaVersionQuirk is the literal value the "java.version" built-in returns.
// This is not a real Java version — it is a known quirk of the source this
// engine was built from (§9 open question 1) and is preserved deliberately.
const javaVersionQuirk = "java.version"

// resolveProperty implements §4.3: local properties, then the built-in
// table, then — after rewriting a "project.parent." prefix to "project." —
// delegation to the parent project with self-managed forced false.
func (s *Session) resolveProperty(p *Project, name string, canBeSelfManaged bool, depth int) (PropertyLocation, bool) {
	name = strings.TrimSuffix(strings.TrimPrefix(name, "${"), "}")

	if v, ok := p.Properties[name]; ok {
		return PropertyLocation{DefiningProject: p, Name: name, Value: v, SelfManaged: canBeSelfManaged}, true
	}

	if loc, ok := s.resolveBuiltin(p, name, canBeSelfManaged); ok {
		return loc, true
	}

	effectiveName := name
	if strings.HasPrefix(name, "project.parent.") {
		effectiveName = "project." + strings.TrimPrefix(name, "project.parent.")
	}

	if depth < s.cfg.maxDepth && p.ParentGav != nil {
		if parent, ok := s.container.ForGav(*p.ParentGav); ok {
			return s.resolveProperty(parent, effectiveName, false, depth+1)
		}
		s.cfg.warn(Warning{
			Project: p.Gav.String(),
			Kind:    "missing-parent",
			Message: "missing parent project while resolving property " + name,
		})
	}

	p.unresolvedProperties[name] = struct{}{}
	return PropertyLocation{}, false
}

// resolveBuiltin implements the built-in property table of §4.3.
func (s *Session) resolveBuiltin(p *Project, name string, canBeSelfManaged bool) (PropertyLocation, bool) {
	loc := func(value string) (PropertyLocation, bool) {
		return PropertyLocation{DefiningProject: p, Name: name, Value: value, SelfManaged: canBeSelfManaged}, true
	}
	illegal := func(value string) (PropertyLocation, bool) {
		s.cfg.warn(Warning{
			Project: p.Gav.String(),
			Kind:    "illegal-shorthand-property",
			Message: "illegal shorthand property: " + name,
		})
		return loc(value)
	}

	switch name {
	case "project.version", "pom.version":
		return loc(p.Gav.Version)
	case "version":
		return illegal(p.Gav.Version)
	case "project.groupId", "pom.groupId":
		return loc(p.Gav.GroupID)
	case "groupId", "@project.groupId@":
		return illegal(p.Gav.GroupID)
	case "project.artifactId", "pom.artifactId":
		return loc(p.Gav.ArtifactID)
	case "artifactId":
		return illegal(p.Gav.ArtifactID)
	case "project.prerequisites.maven":
		if p.Model.Prerequisites == nil || p.Model.Prerequisites.Maven == "" {
			return PropertyLocation{}, false
		}
		return loc(p.Model.Prerequisites.Maven)
	case "mavenVersion":
		return loc(fixedMavenVersion)
	case "java.version":
		return loc(javaVersionQuirk)
	default:
		return PropertyLocation{}, false
	}
}
