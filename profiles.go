package pomresolve

import (
	"sort"
	"strings"

	"github.com/pomexplorer/pomresolve/pom"
)

// ActiveProfiles is the caller-supplied set of active profile ids (§6). Only
// key membership is inspected — the value type is left to the caller.
type ActiveProfiles map[string]any

// Contains reports whether id is a key in the map, treating a nil map as
// empty.
func (a ActiveProfiles) Contains(id string) bool {
	if a == nil {
		return false
	}
	_, ok := a[id]
	return ok
}

// isProfileActive implements §4.8: a profile is active iff its id is in the
// caller-supplied active set, or its own model declares activeByDefault.
func isProfileActive(prof pom.Profile, profiles ActiveProfiles) bool {
	return profiles.Contains(prof.ID) || prof.Activation.ActiveByDefault
}

// activeProfiles returns p's own profiles that are active under the given
// active-profiles set, in declaration order.
func activeProfiles(p *Project, profiles ActiveProfiles) []pom.Profile {
	var active []pom.Profile
	for _, prof := range p.Model.Profiles {
		if isProfileActive(prof, profiles) {
			active = append(active, prof)
		}
	}
	return active
}

// profileKey produces a stable cache key for a profile set: profile
// identity for caching purposes is which ids are active, not the opaque
// values attached to them.
func profileKey(profiles ActiveProfiles) string {
	if len(profiles) == 0 {
		return ""
	}
	ids := make([]string, 0, len(profiles))
	for id := range profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
