// Package graph provides a small in-memory RDF store for plugin descriptions.
//
// A Graph is loaded once from a document and then queried by
// (subject, predicate, object) patterns. Triples keep document order, so a
// lookup that may match several values always returns the first one parsed.
//
// Lookups return an explicit (value, ok) pair; callers decide what an
// absent value means.
package graph
