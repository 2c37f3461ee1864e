package pomresolve

import (
	"path/filepath"
	"strings"

	"github.com/pomexplorer/pomresolve/coordinate"
)

// submodules implements §4.9: emit the GAV of every submodule referenced by
// p's own <modules> and by every profile's <modules>, activation not
// applied — all are emitted regardless of whether the profile is active.
func (s *Session) submodules(p *Project) []coordinate.Gav {
	if s.cfg.pomLoader == nil {
		return nil
	}

	names := append([]string{}, p.Model.Modules...)
	for _, prof := range p.Model.Profiles {
		names = append(names, prof.Modules...)
	}

	dir := filepath.Dir(p.PomFile)
	var gavs []coordinate.Gav
	for _, m := range names {
		path := submodulePomPath(dir, m)
		model, err := s.cfg.pomLoader.Load(path)
		if err != nil || model == nil {
			continue
		}
		transient, err := NewProject(path, model, false)
		if err != nil {
			continue
		}
		gavs = append(gavs, transient.Gav)
	}
	return gavs
}

// submodulePomPath implements the ".pom" vs "/pom.xml" module-path rule.
func submodulePomPath(parentDir, module string) string {
	if strings.HasSuffix(module, ".pom") {
		return filepath.Join(parentDir, module)
	}
	return filepath.Join(parentDir, module, "pom.xml")
}
