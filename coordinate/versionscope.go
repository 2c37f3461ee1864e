package coordinate

// VersionScope pairs a resolved version and scope with provenance: whether
// the version came from an expression whose entire resolution chain stayed
// inside the owning project's own properties.
type VersionScope struct {
	Version            string
	Scope              Scope
	VersionSelfManaged bool
}

// HasVersion reports whether a version was ever assigned.
func (vs VersionScope) HasVersion() bool {
	return vs.Version != ""
}

// Demoted returns a copy with VersionSelfManaged forced to false. Used when
// a VersionScope is handed across a project boundary (parent, BOM import).
func (vs VersionScope) Demoted() VersionScope {
	vs.VersionSelfManaged = false
	return vs
}
