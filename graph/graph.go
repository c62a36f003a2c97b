package graph

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/knakk/rdf"
)

// Namespace is an IRI base that terms are appended to.
type Namespace string

// Term returns the IRI for name within the namespace.
func (n Namespace) Term(name string) rdf.IRI {
	return MustIRI(string(n) + name)
}

// MustIRI builds an IRI and panics if it is malformed. Use it for constants.
func MustIRI(iri string) rdf.IRI {
	v, err := rdf.NewIRI(iri)
	if err != nil {
		panic(fmt.Sprintf("invalid IRI %q: %v", iri, err))
	}
	return v
}

// RDFType is the rdf:type predicate.
var RDFType = MustIRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")

// Graph is an in-memory triple store indexed for pattern lookups.
type Graph struct {
	triples    []rdf.Triple
	seen       map[string]struct{}
	bySubjPred map[string][]rdf.Object
	byPredObj  map[string][]rdf.Subject
	namespaces map[string]Namespace
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		triples:    make([]rdf.Triple, 0),
		seen:       make(map[string]struct{}),
		bySubjPred: make(map[string][]rdf.Object),
		byPredObj:  make(map[string][]rdf.Subject),
		namespaces: make(map[string]Namespace),
	}
}

// Load reads the document at path into a new graph.
func Load(path string, format Format) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g := New()
	if err := g.Parse(f, format); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return g, nil
}

// Parse decodes every triple from r and adds it to the graph.
func (g *Graph) Parse(r io.Reader, format Format) error {
	info, ok := GetFormatInfo(format)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	dec := rdf.NewTripleDecoder(r, info.decoder)
	for {
		t, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		g.Add(t)
	}
}

// Bind associates prefix with iri and returns the namespace.
func (g *Graph) Bind(prefix, iri string) Namespace {
	ns := Namespace(iri)
	g.namespaces[prefix] = ns
	return ns
}

// Namespaces returns a copy of the prefix bindings.
func (g *Graph) Namespaces() map[string]Namespace {
	out := make(map[string]Namespace, len(g.namespaces))
	for k, v := range g.namespaces {
		out[k] = v
	}
	return out
}

// Add inserts a triple. Duplicate triples are ignored.
func (g *Graph) Add(t rdf.Triple) {
	k := termKey(t.Subj) + " " + termKey(t.Pred) + " " + termKey(t.Obj)
	if _, dup := g.seen[k]; dup {
		return
	}
	g.seen[k] = struct{}{}
	g.triples = append(g.triples, t)

	sp := pairKey(t.Subj, t.Pred)
	g.bySubjPred[sp] = append(g.bySubjPred[sp], t.Obj)

	po := pairKey(t.Pred, t.Obj)
	g.byPredObj[po] = append(g.byPredObj[po], t.Subj)
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int {
	return len(g.triples)
}

// Subjects returns the distinct subjects of triples matching (?, pred, obj)
// in the order they were first seen.
func (g *Graph) Subjects(pred rdf.Predicate, obj rdf.Object) []rdf.Subject {
	matches := g.byPredObj[pairKey(pred, obj)]
	out := make([]rdf.Subject, len(matches))
	copy(out, matches)
	return out
}

// Objects returns every object of triples matching (subj, pred, ?).
func (g *Graph) Objects(subj rdf.Subject, pred rdf.Predicate) []rdf.Object {
	matches := g.bySubjPred[pairKey(subj, pred)]
	out := make([]rdf.Object, len(matches))
	copy(out, matches)
	return out
}

// Value returns the first object of (subj, pred, ?). The boolean is false
// when the graph holds no such triple.
func (g *Graph) Value(subj rdf.Subject, pred rdf.Predicate) (rdf.Object, bool) {
	matches := g.bySubjPred[pairKey(subj, pred)]
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

func pairKey(a, b rdf.Term) string {
	return termKey(a) + " " + termKey(b)
}

// termKey gives each distinct RDF term a distinct string.
func termKey(t rdf.Term) string {
	switch v := t.(type) {
	case rdf.IRI:
		return "<" + v.String() + ">"
	case rdf.Blank:
		return "_:" + v.String()
	case rdf.Literal:
		return fmt.Sprintf("%q@%s^^%s", v.String(), v.Lang(), v.DataType.String())
	default:
		return fmt.Sprintf("%d:%s", t.Type(), t.String())
	}
}
