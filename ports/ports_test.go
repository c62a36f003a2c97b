package ports_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/c360studio/ttl2port/graph"
	"github.com/c360studio/ttl2port/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const prefixes = `@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
@prefix ex: <http://example.org/> .
`

func load(t *testing.T, body string) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.Parse(strings.NewReader(prefixes+body), graph.FormatTurtle))
	return g
}

func TestExtractScansInputsBeforeOutputs(t *testing.T) {
	g := load(t, `
ex:out a lv2:OutputPort ; lv2:index 0 ; lv2:symbol "out" .
ex:gain a lv2:InputPort ; lv2:index 1 ; lv2:symbol "gain" .
ex:cutoff a lv2:InputPort ; lv2:index 2 ; lv2:symbol "cutoff" .
`)

	got, err := ports.Extract(g)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "gain", got[0].Symbol)
	assert.Equal(t, ports.Input, got[0].Direction)
	assert.Equal(t, "cutoff", got[1].Symbol)
	assert.Equal(t, "out", got[2].Symbol)
	assert.Equal(t, ports.Output, got[2].Direction)
	assert.Equal(t, "http://example.org/out", got[2].Subject)
}

func TestExtractIgnoresOtherSubjects(t *testing.T) {
	g := load(t, `
ex:plugin a lv2:Plugin ; lv2:symbol "plugin" ; lv2:index 99 .
ex:gain a lv2:InputPort ; lv2:index 0 ; lv2:symbol "gain" .
`)

	got, err := ports.Extract(g)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, ports.Port{Index: 0, Symbol: "gain", Direction: ports.Input, Subject: "http://example.org/gain"}, got[0])
}

func TestExtractEmptyGraph(t *testing.T) {
	got, err := ports.Extract(graph.New())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{
			name:    "missing symbol",
			body:    `ex:gain a lv2:InputPort ; lv2:index 0 .`,
			wantErr: ports.ErrMissingSymbol,
		},
		{
			name:    "missing index",
			body:    `ex:out a lv2:OutputPort ; lv2:symbol "out" .`,
			wantErr: ports.ErrMissingIndex,
		},
		{
			name:    "non-integer index",
			body:    `ex:gain a lv2:InputPort ; lv2:index "first" ; lv2:symbol "gain" .`,
			wantErr: ports.ErrInvalidIndex,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ports.Extract(load(t, tt.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var portErr *ports.Error
			require.True(t, errors.As(err, &portErr))
			assert.True(t, strings.HasPrefix(portErr.Subject, "http://example.org/"))
		})
	}
}

func TestSort(t *testing.T) {
	list := []ports.Port{
		{Index: 2, Symbol: "b"},
		{Index: 0, Symbol: "z"},
		{Index: 1, Symbol: "y"},
		{Index: 1, Symbol: "a"},
	}

	ports.Sort(list)

	want := []ports.Port{
		{Index: 0, Symbol: "z"},
		{Index: 1, Symbol: "a"},
		{Index: 1, Symbol: "y"},
		{Index: 2, Symbol: "b"},
	}
	assert.Equal(t, want, list)
}

func TestSortNumericNotLexical(t *testing.T) {
	list := []ports.Port{{Index: 10, Symbol: "ten"}, {Index: 9, Symbol: "nine"}}
	ports.Sort(list)
	assert.Equal(t, "nine", list[0].Symbol)
}

func TestDuplicatesAndValidate(t *testing.T) {
	list := []ports.Port{
		{Index: 3, Symbol: "c"},
		{Index: 1, Symbol: "a"},
		{Index: 3, Symbol: "d"},
		{Index: 1, Symbol: "b"},
		{Index: 2, Symbol: "e"},
	}

	assert.Equal(t, []int{1, 3}, ports.Duplicates(list))

	err := ports.Validate(list)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ports.ErrDuplicateIndex))
	assert.Contains(t, err.Error(), "1, 3")

	assert.NoError(t, ports.Validate(list[1:3]))
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "input", ports.Input.String())
	assert.Equal(t, "output", ports.Output.String())
}

func TestExtractDualTypedSubject(t *testing.T) {
	g := load(t, `ex:p a lv2:InputPort , lv2:OutputPort ; lv2:index 0 ; lv2:symbol "p" .`)

	got, err := ports.Extract(g)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, ports.Input, got[0].Direction)
	assert.Equal(t, ports.Output, got[1].Direction)
	for _, p := range got {
		assert.Equal(t, 0, p.Index)
		assert.Equal(t, "p", p.Symbol)
	}
}

func TestExtractReadsOptionalName(t *testing.T) {
	g := load(t, `
ex:cutoff a lv2:InputPort ; lv2:index 0 ; lv2:symbol "cutoff" ; lv2:name "VCF Cutoff" .
ex:out a lv2:OutputPort ; lv2:index 1 ; lv2:symbol "out" .
`)

	got, err := ports.Extract(g)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "VCF Cutoff", got[0].Name)
	assert.Empty(t, got[1].Name)
}
