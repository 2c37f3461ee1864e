package registry

import (
	"fmt"
	"os"

	"github.com/pomexplorer/pomresolve"
	"github.com/pomexplorer/pomresolve/coordinate"
)

// VendorContainer reads POM documents from a pre-fetched vendor directory —
// the same local-repository layout as LocalRepositoryContainer, but treated
// as the preferred source in an airgapped or reproducible build rather than
// as a cache of a remote one.
type VendorContainer struct {
	local *LocalRepositoryContainer
}

// NewVendorContainer builds a VendorContainer rooted at vendorDir. It
// returns an error if vendorDir does not exist, since a misconfigured
// vendor path silently resolving nothing is worse than failing fast.
func NewVendorContainer(vendorDir string, decode Decoder) (*VendorContainer, error) {
	info, err := os.Stat(vendorDir)
	if err != nil {
		return nil, fmt.Errorf("vendor directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vendor path is not a directory: %s", vendorDir)
	}
	return &VendorContainer{local: NewLocalRepositoryContainer(vendorDir, decode)}, nil
}

// ForGav implements pomresolve.ProjectContainer.
func (v *VendorContainer) ForGav(gav coordinate.Gav) (*pomresolve.Project, bool) {
	return v.local.ForGav(gav)
}

// ParentOf implements pomresolve.ProjectContainer.
func (v *VendorContainer) ParentOf(p *pomresolve.Project) (*pomresolve.Project, bool) {
	return v.local.ParentOf(p)
}

// Has reports whether gav's POM document is present in the vendor
// directory, without attempting to decode it.
func (v *VendorContainer) Has(gav coordinate.Gav) bool {
	_, err := os.Stat(v.local.pomPath(gav))
	return err == nil
}
