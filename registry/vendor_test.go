package registry

import (
	"testing"

	"github.com/pomexplorer/pomresolve/coordinate"
	"github.com/pomexplorer/pomresolve/pom"
)

func TestNewVendorContainer_MissingDirectoryErrors(t *testing.T) {
	_, err := NewVendorContainer("/does/not/exist", fakeDecoder(&pom.Model{}))
	if err == nil {
		t.Fatal("expected an error for a missing vendor directory")
	}
}

func TestVendorContainer_HasAndForGav(t *testing.T) {
	root := t.TempDir()
	writeFakePom(t, root, "com/x", "lib", "1.0.0")

	vendor, err := NewVendorContainer(root, fakeDecoder(&pom.Model{
		GroupID: "com.x", ArtifactID: "lib", Version: "1.0.0",
	}))
	if err != nil {
		t.Fatalf("NewVendorContainer() error = %v", err)
	}

	gav := coordinate.NewGav("com.x", "lib", "1.0.0")
	if !vendor.Has(gav) {
		t.Error("expected Has to report the vendored artifact present")
	}
	if _, ok := vendor.ForGav(gav); !ok {
		t.Error("expected ForGav to resolve the vendored artifact")
	}

	missing := coordinate.NewGav("com.x", "absent", "1.0.0")
	if vendor.Has(missing) {
		t.Error("expected Has to report an unvendored artifact absent")
	}
}
