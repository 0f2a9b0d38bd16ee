// File: manifest.go
// Role: YAML manifest decoding into a Collection of mlgraph graphs.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlgen/mlgraph"
)

// Sentinel errors for manifest loading.
var (
	// ErrManifest indicates a structurally invalid manifest.
	ErrManifest = errors.New("dataset: invalid manifest")

	// ErrNoGraphs indicates a manifest without any graphs.
	ErrNoGraphs = errors.New("dataset: manifest contains no graphs")
)

// gzipSuffix marks manifests Load decompresses transparently.
const gzipSuffix = ".gz"

// defaultEdgeWeight is used when an edge omits its weight.
const defaultEdgeWeight = 1.0

// NodeSpec is one node entry of a manifest.
type NodeSpec struct {
	ID       string    `yaml:"id"`
	Type     string    `yaml:"type,omitempty"`
	Features []float64 `yaml:"features"`
}

// EdgeSpec is one edge entry of a manifest.
type EdgeSpec struct {
	Source string   `yaml:"source"`
	Target string   `yaml:"target"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// GraphSpec is one graph entry of a manifest.
type GraphSpec struct {
	Name     string     `yaml:"name,omitempty"`
	Directed bool       `yaml:"directed,omitempty"`
	Loops    bool       `yaml:"loops,omitempty"`
	Nodes    []NodeSpec `yaml:"nodes"`
	Edges    []EdgeSpec `yaml:"edges,omitempty"`
}

// Manifest is the on-disk description of a graph collection.
type Manifest struct {
	Name    string      `yaml:"name,omitempty"`
	Graphs  []GraphSpec `yaml:"graphs"`
	Targets [][]float64 `yaml:"targets,omitempty"`
}

// Collection is a decoded graph collection ready for a generator.
// Targets is nil when the manifest declares none.
type Collection struct {
	Name    string
	Graphs  []*mlgraph.Graph
	Targets [][]float64
}

// Load reads a YAML manifest from path and decodes it. Files ending in
// ".gz" are decompressed first.
// Returns ErrManifest/ErrNoGraphs for structural problems and wrapped
// mlgraph sentinels for per-graph violations.
func Load(path string) (*Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, gzipSuffix) {
		gz, gzErr := gzip.NewReader(f)
		if gzErr != nil {
			return nil, fmt.Errorf("dataset: gunzip %s: %w", path, gzErr)
		}
		defer gz.Close()
		r = gz
	}

	return Decode(r)
}

// Decode parses a YAML manifest from r and materializes the collection.
func Decode(r io.Reader) (*Collection, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifest, err)
	}

	return m.Build()
}

// Build materializes the manifest into mlgraph graphs, validating targets
// against the graph count.
func (m *Manifest) Build() (*Collection, error) {
	if len(m.Graphs) == 0 {
		return nil, ErrNoGraphs
	}
	if m.Targets != nil && len(m.Targets) != len(m.Graphs) {
		return nil, fmt.Errorf("%w: %d targets vs %d graphs",
			ErrManifest, len(m.Targets), len(m.Graphs))
	}

	graphs := make([]*mlgraph.Graph, len(m.Graphs))
	for i, spec := range m.Graphs {
		g, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("dataset: graph %d (%s): %w", i, spec.Name, err)
		}
		graphs[i] = g
	}

	return &Collection{Name: m.Name, Graphs: graphs, Targets: m.Targets}, nil
}

// build materializes a single GraphSpec.
func (spec *GraphSpec) build() (*mlgraph.Graph, error) {
	opts := []mlgraph.Option{
		mlgraph.WithName(spec.Name),
		mlgraph.WithDirected(spec.Directed),
	}
	if spec.Loops {
		opts = append(opts, mlgraph.WithLoops())
	}
	g := mlgraph.New(opts...)

	for _, n := range spec.Nodes {
		if err := g.AddNode(n.ID, n.Type, n.Features); err != nil {
			return nil, err
		}
	}
	for _, e := range spec.Edges {
		weight := defaultEdgeWeight
		if e.Weight != nil {
			weight = *e.Weight
		}
		if err := g.AddEdge(e.Source, e.Target, weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}
