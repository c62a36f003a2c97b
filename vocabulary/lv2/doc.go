// Package lv2 provides vocabulary terms for LV2 plugin port descriptions.
//
// LV2 plugins describe their ports in RDF using the lv2core vocabulary.
// Each port is typed as an input or output port and carries an integer
// index and a C-identifier-like symbol. This package exposes the IRIs
// needed to query those descriptions and registers the port predicates
// with the semstreams vocabulary registry.
//
// Import this package to auto-register predicates:
//
//	import _ "github.com/c360studio/ttl2port/vocabulary/lv2"
package lv2
