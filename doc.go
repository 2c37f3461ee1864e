// Package pomresolve is a POM resolution and dependency-graph engine for a
// Maven-style project universe.
//
// # Overview
//
// Given a [ProjectContainer] exposing a universe of [Project] values, the
// engine computes, for each project: its canonical coordinate, a fully
// interpolated view of its dependencies/plugins/dependency-management, an
// effective version and scope for every declared dependency (with
// "self-managed" provenance — did the project pin this itself, or did it
// inherit it), and the set of properties it could not resolve.
//
// The hard part, and the only part this package implements, is the
// resolution engine: property interpolation with multi-level fallback
// (project.go, property.go, interpolate.go), hierarchical
// dependency-management composition with BOM import
// (depmanagement.go, plugindm.go), and effective version/scope computation
// with provenance tracking (effective.go). Parsing raw POM XML, serving
// projects over HTTP, and discovering projects on disk are deliberately not
// this package's job — see the [pom] package for the assumed input shape and
// the [github.com/pomexplorer/pomresolve/registry] package for an optional,
// external project source.
//
// # Quick Start
//
//	universe := pomresolve.NewMemoryContainer()
//	universe.Add(child)
//	universe.Add(parent)
//
//	session, err := pomresolve.NewSession(universe, pomresolve.WithLogger(slog.Default()))
//	if err != nil {
//		log.Fatal(err)
//	}
//	deps := session.EffectiveDependencies(child, activeProfiles)
//
// # Thread Safety
//
// A [Session] and the [Project] values it touches are not safe for
// concurrent use by multiple goroutines: per-project memoization caches are
// mutated without locking, by design (see the project.go entry in
// DESIGN.md). Give each worker goroutine its own Session over a shared,
// read-only [ProjectContainer] if you need parallelism across projects.
package pomresolve
