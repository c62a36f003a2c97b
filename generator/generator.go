// Package generator turns an LV2 plugin description into a port header.
package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/c360studio/ttl2port/config"
	"github.com/c360studio/ttl2port/graph"
	"github.com/c360studio/ttl2port/header"
	"github.com/c360studio/ttl2port/ports"
	"github.com/c360studio/ttl2port/vocabulary/lv2"
)

// Result summarizes a generator run.
type Result struct {
	InputPath  string
	OutputPath string
	Guard      string
	Ports      []ports.Port
	// Duplicates lists indices shared by more than one port.
	Duplicates []int
}

// Generator runs the load, extract, sort, render pipeline.
type Generator struct {
	cfg    *config.Config
	logger *slog.Logger
	writer *header.Writer
}

// New creates a generator. A nil cfg uses config.DefaultConfig.
func New(cfg *config.Config, logger *slog.Logger) *Generator {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		cfg:    cfg,
		logger: logger,
		writer: header.NewWriter(cfg.Generator.EnumPrefix),
	}
}

// Run reads the plugin description at input and writes the header to output.
// The output file is only touched once every port has been read and checked.
func (g *Generator) Run(ctx context.Context, input, output string) (*Result, error) {
	format, err := g.inputFormat(input)
	if err != nil {
		return nil, err
	}

	g.logger.Debug("Loading plugin description", "path", input, "format", format)
	rdfGraph, err := graph.Load(input, format)
	if err != nil {
		return nil, fmt.Errorf("load plugin description: %w", err)
	}
	for prefix, iri := range lv2.Prefixes() {
		rdfGraph.Bind(prefix, iri)
	}
	g.logger.Debug("Loaded graph", "triples", rdfGraph.Len())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	list, err := ports.Extract(rdfGraph)
	if err != nil {
		return nil, fmt.Errorf("extract ports: %w", err)
	}
	ports.Sort(list)
	g.logger.Debug("Extracted ports", "count", len(list))
	for _, p := range list {
		g.logger.Debug("Port",
			"index", p.Index,
			"symbol", p.Symbol,
			"direction", p.Direction.String(),
			"name", p.Name)
	}

	dups := ports.Duplicates(list)
	if len(dups) > 0 {
		if g.cfg.Generator.IsStrict() {
			return nil, fmt.Errorf("validate ports: %w", ports.Validate(list))
		}
		g.logger.Warn("Ports share an index; generated enum will not compile", "indices", dups)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := g.writer.WriteFile(output, list); err != nil {
		return nil, err
	}

	result := &Result{
		InputPath:  input,
		OutputPath: output,
		Guard:      header.Guard(output),
		Ports:      list,
		Duplicates: dups,
	}
	g.logger.Info("Generated port header", "output", output, "ports", len(list), "guard", result.Guard)
	return result, nil
}

func (g *Generator) inputFormat(input string) (graph.Format, error) {
	if g.cfg.Input.Format == "" {
		return graph.FormatFromPath(input), nil
	}
	return graph.ParseFormat(g.cfg.Input.Format)
}
