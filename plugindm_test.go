package pomresolve

import (
	"testing"

	"github.com/pomexplorer/pomresolve/coordinate"
	"github.com/pomexplorer/pomresolve/pom"
)

func TestHierarchicalPluginManagement_ProfilesNotConsulted(t *testing.T) {
	s, container := mustSession(t)
	p := mustProject(t, "p/pom.xml", &pom.Model{
		GroupID: "com.x", ArtifactID: "p", Version: "1.0.0",
		Profiles: []pom.Profile{
			{
				ID:         "only-profile",
				Activation: pom.Activation{ActiveByDefault: true},
				PluginManagement: []pom.Plugin{
					{GroupID: "org.plug", ArtifactID: "maven-plugin", Version: "1.0"},
				},
			},
		},
	})
	container.Add(p)

	pdm := s.HierarchicalPluginManagement(p)
	ga := coordinate.GA("org.plug", "maven-plugin")
	if _, ok := pdm[ga]; ok {
		t.Error("expected plugin management from a profile to be ignored, even when activeByDefault")
	}
}

func TestHierarchicalPluginManagement_AncestorNearestWins(t *testing.T) {
	s, container := mustSession(t)

	parent := mustProject(t, "parent/pom.xml", &pom.Model{
		GroupID: "com.x", ArtifactID: "parent", Version: "1.0.0",
		PluginManagement: []pom.Plugin{
			{GroupID: "org.plug", ArtifactID: "maven-plugin", Version: "1.0"},
		},
	})
	container.Add(parent)

	child := mustProject(t, "child/pom.xml", &pom.Model{
		Parent:     &pom.Parent{GroupID: "com.x", ArtifactID: "parent", Version: "1.0.0"},
		ArtifactID: "child",
		PluginManagement: []pom.Plugin{
			{GroupID: "org.plug", ArtifactID: "maven-plugin", Version: "2.0"},
		},
	})
	container.Add(child)

	pdm := s.HierarchicalPluginManagement(child)
	ga := coordinate.GA("org.plug", "maven-plugin")
	if pdm[ga].Version != "2.0" {
		t.Errorf("Version = %q, want 2.0", pdm[ga].Version)
	}
}

func TestEffectivePluginDependencies_VersionFromDM(t *testing.T) {
	s, container := mustSession(t)
	p := mustProject(t, "p/pom.xml", &pom.Model{
		GroupID: "com.x", ArtifactID: "p", Version: "1.0.0",
		PluginManagement: []pom.Plugin{
			{GroupID: "org.plug", ArtifactID: "maven-plugin", Version: "3.3.3"},
		},
		Plugins: []pom.Plugin{
			{GroupID: "org.plug", ArtifactID: "maven-plugin"},
		},
	})
	container.Add(p)

	plugins := s.EffectivePluginDependencies(p, nil)
	if len(plugins) != 1 {
		t.Fatalf("len(plugins) = %d, want 1", len(plugins))
	}
	if plugins[0].Version != "3.3.3" {
		t.Errorf("Version = %q, want 3.3.3", plugins[0].Version)
	}
}

func TestEffectivePluginDependencies_UnresolvableWarns(t *testing.T) {
	var warnings []Warning
	s, container := mustSession(t, WithWarningSink(func(w Warning) { warnings = append(warnings, w) }))
	p := mustProject(t, "p/pom.xml", &pom.Model{
		GroupID: "com.x", ArtifactID: "p", Version: "1.0.0",
		Plugins: []pom.Plugin{
			{GroupID: "org.plug", ArtifactID: "unmanaged-plugin"},
		},
	})
	container.Add(p)

	plugins := s.EffectivePluginDependencies(p, nil)
	if plugins[0].Version != "" {
		t.Errorf("expected empty version, got %q", plugins[0].Version)
	}
	found := false
	for _, w := range warnings {
		if w.Kind == "unresolvable-plugin-version" {
			found = true
		}
	}
	if !found {
		t.Error("expected an unresolvable-plugin-version warning")
	}
}

func TestInterpolatedPluginDependencies_DoesNotConsultDM(t *testing.T) {
	s, container := mustSession(t)
	p := mustProject(t, "p/pom.xml", &pom.Model{
		GroupID: "com.x", ArtifactID: "p", Version: "1.0.0",
		PluginManagement: []pom.Plugin{
			{GroupID: "org.plug", ArtifactID: "maven-plugin", Version: "3.3.3"},
		},
		Plugins: []pom.Plugin{
			{GroupID: "org.plug", ArtifactID: "maven-plugin"},
		},
	})
	container.Add(p)

	plugins := s.InterpolatedPluginDependencies(p, nil)
	if len(plugins) != 1 {
		t.Fatalf("len(plugins) = %d, want 1", len(plugins))
	}
	if plugins[0].Version != "" {
		t.Errorf("Version = %q, want empty — InterpolatedPluginDependencies must not fall back to plugin management", plugins[0].Version)
	}
}

func TestEffectivePluginDependencies_OwnDeclarationBeatsProfileRedeclaration(t *testing.T) {
	s, container := mustSession(t)
	p := mustProject(t, "p/pom.xml", &pom.Model{
		GroupID: "com.x", ArtifactID: "p", Version: "1.0.0",
		Plugins: []pom.Plugin{
			{GroupID: "org.plug", ArtifactID: "maven-plugin", Version: "1.0"},
		},
		Profiles: []pom.Profile{
			{
				ID: "override",
				Plugins: []pom.Plugin{
					{GroupID: "org.plug", ArtifactID: "maven-plugin", Version: "2.0"},
				},
			},
		},
	})
	container.Add(p)

	plugins := s.EffectivePluginDependencies(p, ActiveProfiles{"override": true})
	if len(plugins) != 1 {
		t.Fatalf("len(plugins) = %d, want 1 (profile redeclaration must dedup against own declaration)", len(plugins))
	}
	if plugins[0].Version != "1.0" {
		t.Errorf("Version = %q, want 1.0 (own declaration must win over profile's)", plugins[0].Version)
	}
}
