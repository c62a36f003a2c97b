package lv2

import (
	"errors"
	"fmt"

	"github.com/c360studio/semstreams/vocabulary"
)

// ErrUnregisteredPredicate is returned when a predicate has no registered IRI.
var ErrUnregisteredPredicate = errors.New("predicate not registered")

// PredicateIRI returns the RDF property IRI registered for a dotted predicate.
func PredicateIRI(predicate string) (string, error) {
	meta := vocabulary.GetPredicateMetadata(predicate)
	if meta == nil || meta.StandardIRI == "" {
		return "", fmt.Errorf("%w: %s", ErrUnregisteredPredicate, predicate)
	}
	return meta.StandardIRI, nil
}
