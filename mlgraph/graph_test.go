package mlgraph_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlgen/mlgraph"
)

// TestAddNode_Errors verifies node construction rejections.
func TestAddNode_Errors(t *testing.T) {
	g := mlgraph.New()
	if err := g.AddNode("", "atom", []float64{1}); !errors.Is(err, mlgraph.ErrEmptyNodeID) {
		t.Errorf("empty ID: want ErrEmptyNodeID, got %v", err)
	}
	if err := g.AddNode("a", "atom", []float64{1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddNode("a", "atom", []float64{2}); !errors.Is(err, mlgraph.ErrDuplicateNode) {
		t.Errorf("duplicate: want ErrDuplicateNode, got %v", err)
	}
}

// TestAddNode_DefaultType verifies empty types resolve to DefaultNodeType.
func TestAddNode_DefaultType(t *testing.T) {
	g := mlgraph.New()
	if err := g.AddNode("a", "", []float64{1}); err != nil {
		t.Fatal(err)
	}
	typ, err := g.NodeType("a")
	if err != nil {
		t.Fatal(err)
	}
	if typ != mlgraph.DefaultNodeType {
		t.Errorf("NodeType = %q; want %q", typ, mlgraph.DefaultNodeType)
	}
}

// TestAddEdge_Errors covers endpoint, loop, weight and duplicate rejections.
func TestAddEdge_Errors(t *testing.T) {
	g := mlgraph.New()
	g.AddNode("a", "", []float64{1})
	g.AddNode("b", "", []float64{1})

	if err := g.AddEdge("a", "missing", 1); !errors.Is(err, mlgraph.ErrNodeNotFound) {
		t.Errorf("missing endpoint: want ErrNodeNotFound, got %v", err)
	}
	if err := g.AddEdge("a", "a", 1); !errors.Is(err, mlgraph.ErrLoopNotAllowed) {
		t.Errorf("loop: want ErrLoopNotAllowed, got %v", err)
	}
	if err := g.AddEdge("a", "b", math.NaN()); !errors.Is(err, mlgraph.ErrBadWeight) {
		t.Errorf("NaN weight: want ErrBadWeight, got %v", err)
	}
	if err := g.AddEdge("a", "b", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.AddEdge("a", "b", 2); !errors.Is(err, mlgraph.ErrDuplicateEdge) {
		t.Errorf("duplicate: want ErrDuplicateEdge, got %v", err)
	}

	// loops become legal with WithLoops
	gl := mlgraph.New(mlgraph.WithLoops())
	gl.AddNode("a", "", []float64{1})
	if err := gl.AddEdge("a", "a", 1); err != nil {
		t.Errorf("WithLoops: unexpected error: %v", err)
	}
}

// TestUndirectedMirroring verifies undirected edges are visible both ways
// and directed ones are not.
func TestUndirectedMirroring(t *testing.T) {
	g := mlgraph.New()
	g.AddNode("a", "", []float64{1})
	g.AddNode("b", "", []float64{1})
	g.AddEdge("a", "b", 2.5)

	if w, ok := g.EdgeWeight("b", "a"); !ok || w != 2.5 {
		t.Errorf("mirror: got (%v,%v); want (2.5,true)", w, ok)
	}
	if g.NumEdges() != 1 {
		t.Errorf("NumEdges = %d; want 1", g.NumEdges())
	}

	d := mlgraph.New(mlgraph.WithDirected(true))
	d.AddNode("a", "", []float64{1})
	d.AddNode("b", "", []float64{1})
	d.AddEdge("a", "b", 1)
	if _, ok := d.EdgeWeight("b", "a"); ok {
		t.Error("directed edge must not be mirrored")
	}
}

// TestDeterministicOrder verifies Nodes and Neighbors sort ascending.
func TestDeterministicOrder(t *testing.T) {
	g := mlgraph.New()
	for _, id := range []string{"c", "a", "b"} {
		g.AddNode(id, "", []float64{1})
	}
	g.AddEdge("b", "c", 1)
	g.AddEdge("b", "a", 1)

	if got, want := g.Nodes(), []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Nodes = %v; want %v", got, want)
	}
	nbrs, err := g.Neighbors("b")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a", "c"}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("Neighbors(b) = %v; want %v", nbrs, want)
	}
	if _, err = g.Neighbors("zz"); !errors.Is(err, mlgraph.ErrNodeNotFound) {
		t.Errorf("unknown node: want ErrNodeNotFound, got %v", err)
	}
}
