package pomresolve

import (
	"errors"
	"testing"

	"github.com/pomexplorer/pomresolve/pom"
)

func TestNewProject_ResolvesGav(t *testing.T) {
	model := &pom.Model{GroupID: "com.x", ArtifactID: "lib", Version: "1.2.3"}
	p, err := NewProject("lib/pom.xml", model, false)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	if !p.Gav.IsResolved() {
		t.Errorf("expected resolved gav, got %+v", p.Gav)
	}
	if p.Gav.String() != "com.x:lib:1.2.3" {
		t.Errorf("Gav.String() = %q", p.Gav.String())
	}
}

func TestNewProject_InheritsGroupAndVersionFromParent(t *testing.T) {
	model := &pom.Model{
		Parent:     &pom.Parent{GroupID: "com.x", ArtifactID: "parent", Version: "1.0.0"},
		ArtifactID: "child",
	}
	p, err := NewProject("child/pom.xml", model, false)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	if p.Gav.GroupID != "com.x" || p.Gav.Version != "1.0.0" {
		t.Errorf("Gav = %+v, want inherited group/version", p.Gav)
	}
}

func TestNewProject_ParentVersionExpression(t *testing.T) {
	model := &pom.Model{
		Parent:     &pom.Parent{GroupID: "com.x", ArtifactID: "parent", Version: "2.0.0"},
		GroupID:    "com.x",
		ArtifactID: "child",
		Version:    "${parent.version}",
	}
	p, err := NewProject("child/pom.xml", model, false)
	if err != nil {
		t.Fatalf("NewProject() error = %v", err)
	}
	if p.Gav.Version != "2.0.0" {
		t.Errorf("Gav.Version = %q, want %q", p.Gav.Version, "2.0.0")
	}
}

func TestNewProject_MissingGroupIDNoParent(t *testing.T) {
	model := &pom.Model{ArtifactID: "lib", Version: "1.0.0"}
	_, err := NewProject("lib/pom.xml", model, false)
	if !errors.Is(err, ErrMissingGroupID) {
		t.Fatalf("expected ErrMissingGroupID, got %v", err)
	}
}

func TestNewProject_MissingVersionNoParent(t *testing.T) {
	model := &pom.Model{GroupID: "com.x", ArtifactID: "lib"}
	_, err := NewProject("lib/pom.xml", model, false)
	if !errors.Is(err, ErrMissingVersion) {
		t.Fatalf("expected ErrMissingVersion, got %v", err)
	}
}

func TestNewProject_UnresolvedParentGav(t *testing.T) {
	model := &pom.Model{
		Parent:     &pom.Parent{GroupID: "com.x", ArtifactID: "parent", Version: "${rev}"},
		ArtifactID: "child",
	}
	_, err := NewProject("child/pom.xml", model, false)
	if !errors.Is(err, ErrUnresolvedParentGAV) {
		t.Fatalf("expected ErrUnresolvedParentGAV, got %v", err)
	}
}

func TestNewProject_NilModel(t *testing.T) {
	_, err := NewProject("x/pom.xml", nil, false)
	if !errors.Is(err, ErrPOMUnreadable) {
		t.Fatalf("expected ErrPOMUnreadable, got %v", err)
	}
}
