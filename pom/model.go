// Package pom defines the read-only input model the resolution engine
// consumes: a parsed POM descriptor. Parsing the actual Maven XML is
// explicitly out of scope — callers deliver an already-decoded Model, built
// however their own toolchain prefers (a hand-built struct literal in tests,
// a fetched-and-decoded document in registry, or their own XML layer).
package pom

// Model is a parsed POM file's contents, exposing exactly the fields the
// resolution engine needs.
type Model struct {
	Parent     *Parent
	GroupID    string
	ArtifactID string
	Version    string

	// Properties holds the <properties> block, name to literal text.
	Properties map[string]string

	Dependencies         []Dependency
	DependencyManagement []Dependency

	Plugins          []Plugin
	PluginManagement []Plugin

	Profiles []Profile

	Modules []string

	Prerequisites *Prerequisites
}

// Parent is the <parent> reference.
type Parent struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Dependency is one <dependency> entry, used both for plain dependencies
// and for dependencyManagement entries (where Scope may be "import").
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string
	Type       string
	Scope      string
	Optional   bool
	Exclusions []Exclusion
}

// Exclusion is a <exclusion> entry.
type Exclusion struct {
	GroupID    string
	ArtifactID string
}

// Plugin is a <plugin> entry, used both under <build>/<plugins> and under
// <pluginManagement>/<plugins>.
type Plugin struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Profile is a <profile> entry.
type Profile struct {
	ID                   string
	Activation           Activation
	Properties           map[string]string
	Dependencies         []Dependency
	DependencyManagement []Dependency
	Plugins              []Plugin
	PluginManagement     []Plugin
	Modules              []string
}

// Activation is a <profile>/<activation> block. Only ActiveByDefault is
// consulted by the engine; OS/JDK/file activation are not evaluated.
type Activation struct {
	ActiveByDefault bool
}

// Prerequisites is the <prerequisites> block.
type Prerequisites struct {
	Maven string
}
