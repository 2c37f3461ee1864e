// Package registry supplies ProjectContainer implementations that look a
// GAV up somewhere other than an in-memory map: a local Maven repository
// directory, a vendored snapshot, or a remote repository server, chained
// together the way a real build tool falls back through several sources
// before giving up.
//
// None of these containers parse POM XML — that remains the caller's
// concern (see the pom package's doc comment) — they locate and decode a
// document through an injected Decoder and hand the
// resulting *pomresolve.Project to the cache and the chain.
package registry
