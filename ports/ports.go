// Package ports extracts LV2 port declarations from a plugin graph.
package ports

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/c360studio/ttl2port/graph"
	"github.com/c360studio/ttl2port/vocabulary/lv2"
	"github.com/knakk/rdf"
)

// Direction is the data flow of a port relative to the plugin.
type Direction int

const (
	Input Direction = iota
	Output
)

func (d Direction) String() string {
	if d == Output {
		return "output"
	}
	return "input"
}

// Port is a single port declaration.
type Port struct {
	Index     int
	Symbol    string
	Direction Direction
	// Name is the optional lv2:name label; empty when not declared.
	Name string
	// Subject is the IRI or blank node label the port was read from.
	Subject string
}

var (
	inputPort  = graph.MustIRI(lv2.ClassInputPort)
	outputPort = graph.MustIRI(lv2.ClassOutputPort)
)

// properties holds the predicate IRIs resolved from the vocabulary registry.
type properties struct {
	symbol rdf.IRI
	index  rdf.IRI
	name   rdf.IRI
}

func resolveProperties() (properties, error) {
	var props properties
	for _, p := range []struct {
		predicate string
		dst       *rdf.IRI
	}{
		{lv2.PortSymbol, &props.symbol},
		{lv2.PortIndex, &props.index},
		{lv2.PortName, &props.name},
	} {
		iri, err := lv2.PredicateIRI(p.predicate)
		if err != nil {
			return properties{}, err
		}
		v, err := rdf.NewIRI(iri)
		if err != nil {
			return properties{}, fmt.Errorf("predicate %s: %w", p.predicate, err)
		}
		*p.dst = v
	}
	return props, nil
}

// Extract reads every input port and then every output port from g.
// Ports are returned in scan order; use Sort to order them by index.
func Extract(g *graph.Graph) ([]Port, error) {
	props, err := resolveProperties()
	if err != nil {
		return nil, fmt.Errorf("resolve port predicates: %w", err)
	}

	var out []Port
	for _, scan := range []struct {
		class rdf.IRI
		dir   Direction
	}{
		{inputPort, Input},
		{outputPort, Output},
	} {
		for _, s := range g.Subjects(graph.RDFType, scan.class) {
			p, err := readPort(g, props, s, scan.dir)
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}
	}
	return out, nil
}

func readPort(g *graph.Graph, props properties, s rdf.Subject, dir Direction) (Port, error) {
	subject := s.String()

	symbol, ok := g.Value(s, props.symbol)
	if !ok {
		return Port{}, &Error{Subject: subject, Err: ErrMissingSymbol}
	}

	rawIndex, ok := g.Value(s, props.index)
	if !ok {
		return Port{}, &Error{Subject: subject, Err: ErrMissingIndex}
	}

	index, err := strconv.Atoi(strings.TrimSpace(rawIndex.String()))
	if err != nil {
		return Port{}, &Error{Subject: subject, Err: fmt.Errorf("%w: %q", ErrInvalidIndex, rawIndex.String())}
	}

	p := Port{
		Index:     index,
		Symbol:    symbol.String(),
		Direction: dir,
		Subject:   subject,
	}
	if name, ok := g.Value(s, props.name); ok {
		p.Name = name.String()
	}
	return p, nil
}

// Sort orders ports by ascending index, breaking ties by symbol.
func Sort(ports []Port) {
	sort.SliceStable(ports, func(i, j int) bool {
		if ports[i].Index != ports[j].Index {
			return ports[i].Index < ports[j].Index
		}
		return ports[i].Symbol < ports[j].Symbol
	})
}

// Duplicates returns the indices claimed by more than one port, ascending.
func Duplicates(ports []Port) []int {
	counts := make(map[int]int, len(ports))
	for _, p := range ports {
		counts[p.Index]++
	}

	var dups []int
	for index, n := range counts {
		if n > 1 {
			dups = append(dups, index)
		}
	}
	sort.Ints(dups)
	return dups
}

// Validate reports duplicate indices as an error wrapping ErrDuplicateIndex.
func Validate(ports []Port) error {
	dups := Duplicates(ports)
	if len(dups) == 0 {
		return nil
	}

	parts := make([]string, len(dups))
	for i, d := range dups {
		parts[i] = strconv.Itoa(d)
	}
	return fmt.Errorf("%w: %s", ErrDuplicateIndex, strings.Join(parts, ", "))
}
