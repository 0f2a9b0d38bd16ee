package generator_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgen/generator"
	"github.com/katalvlaran/lvlgen/mlgraph"
)

// graphSpec shapes the test fixtures: node count, feature width, node type.
type graphSpec struct {
	nodes int
	width int
	typ   string
}

// makeGraph builds a connected path graph per spec.
func makeGraph(t *testing.T, spec graphSpec) *mlgraph.Graph {
	t.Helper()
	g := mlgraph.New()
	for i := 0; i < spec.nodes; i++ {
		feats := make([]float64, spec.width)
		for f := range feats {
			feats[f] = float64(i)
		}
		require.NoError(t, g.AddNode(fmt.Sprintf("n%d", i), spec.typ, feats))
	}
	for i := 0; i+1 < spec.nodes; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1), 1))
	}

	return g
}

// twoTypeGraph builds a graph carrying two node types.
func twoTypeGraph(t *testing.T) *mlgraph.Graph {
	t.Helper()
	g := mlgraph.New()
	require.NoError(t, g.AddNode("a", "atom", []float64{1, 2}))
	require.NoError(t, g.AddNode("b", "bond", []float64{3, 4}))

	return g
}

// TestNewGraphGenerator_Validation covers construction acceptance and
// rejection.
func TestNewGraphGenerator_Validation(t *testing.T) {
	t.Parallel()

	ok := makeGraph(t, graphSpec{nodes: 2, width: 4, typ: "atom"})

	gen, err := generator.NewGraphGenerator([]*mlgraph.Graph{ok, ok},
		generator.WithGeneratorName("train-gen"))
	require.NoError(t, err)
	require.Equal(t, "train-gen", gen.Name())
	require.Equal(t, 2, gen.NumGraphs())
	require.Equal(t, 4, gen.NodeFeatureSize())

	_, err = generator.NewGraphGenerator(nil)
	require.ErrorIs(t, err, generator.ErrNoGraphs)

	_, err = generator.NewGraphGenerator([]*mlgraph.Graph{ok, nil})
	require.ErrorIs(t, err, generator.ErrGraphNil)

	_, err = generator.NewGraphGenerator([]*mlgraph.Graph{twoTypeGraph(t)})
	require.ErrorIs(t, err, mlgraph.ErrMultipleNodeTypes)

	bare := mlgraph.New()
	require.NoError(t, bare.AddNode("a", "atom", nil))
	_, err = generator.NewGraphGenerator([]*mlgraph.Graph{bare})
	require.ErrorIs(t, err, mlgraph.ErrMissingFeatures)
}

// TestGraphGenerator_NoCrossDimCheck pins the intentional asymmetry: the
// unpadded generator accepts mixed feature widths and records the first
// graph's width.
func TestGraphGenerator_NoCrossDimCheck(t *testing.T) {
	t.Parallel()

	wide := makeGraph(t, graphSpec{nodes: 2, width: 4, typ: "atom"})
	slim := makeGraph(t, graphSpec{nodes: 2, width: 3, typ: "atom"})

	gen, err := generator.NewGraphGenerator([]*mlgraph.Graph{wide, slim})
	require.NoError(t, err)
	require.Equal(t, 4, gen.NodeFeatureSize())
}

// TestGraphGenerator_Flow covers selection, target pairing and rejection.
func TestGraphGenerator_Flow(t *testing.T) {
	t.Parallel()

	g := makeGraph(t, graphSpec{nodes: 2, width: 4, typ: "atom"})
	gen, err := generator.NewGraphGenerator([]*mlgraph.Graph{g, g, g})
	require.NoError(t, err)

	tests := []struct {
		name    string
		ilocs   []int
		opts    []generator.FlowOption
		wantErr error
	}{
		{
			name:  "TargetsMatched",
			ilocs: []int{0, 1},
			opts:  []generator.FlowOption{generator.WithTargets([][]float64{{1}, {0}})},
		},
		{
			name:    "NoIlocs",
			ilocs:   nil,
			wantErr: generator.ErrNoIlocs,
		},
		{
			name:    "IlocOutOfRange",
			ilocs:   []int{0, 3},
			wantErr: generator.ErrIlocOutOfRange,
		},
		{
			name:    "NegativeIloc",
			ilocs:   []int{-1},
			wantErr: generator.ErrIlocOutOfRange,
		},
		{
			name:    "TargetLengthMismatch",
			ilocs:   []int{0, 1},
			opts:    []generator.FlowOption{generator.WithTargets([][]float64{{1}})},
			wantErr: generator.ErrTargetLength,
		},
		{
			name:    "RaggedTargets",
			ilocs:   []int{0, 1},
			opts:    []generator.FlowOption{generator.WithTargets([][]float64{{1}, {0, 1}})},
			wantErr: generator.ErrTargetRagged,
		},
		{
			name:    "ZeroBatchSize",
			ilocs:   []int{0},
			opts:    []generator.FlowOption{generator.WithBatchSize(0)},
			wantErr: generator.ErrBatchSize,
		},
		{
			name:    "PaddedOnlyNormalization",
			ilocs:   []int{0},
			opts:    []generator.FlowOption{generator.WithSymmetricNormalization(false)},
			wantErr: generator.ErrOptionViolation,
		},
		{
			name:    "PaddedOnlyShuffle",
			ilocs:   []int{0},
			opts:    []generator.FlowOption{generator.WithShuffle(7)},
			wantErr: generator.ErrOptionViolation,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			seq, flowErr := gen.Flow(tc.ilocs, tc.opts...)
			if tc.wantErr != nil {
				require.ErrorIs(t, flowErr, tc.wantErr)
				require.Nil(t, seq)
				return
			}
			require.NoError(t, flowErr)
			require.Equal(t, len(tc.ilocs), seq.Items())
		})
	}
}

// TestGraphGenerator_FlowWithoutTargets verifies target-free sequences.
func TestGraphGenerator_FlowWithoutTargets(t *testing.T) {
	t.Parallel()

	g := makeGraph(t, graphSpec{nodes: 2, width: 4, typ: "atom"})
	gen, err := generator.NewGraphGenerator([]*mlgraph.Graph{g, g})
	require.NoError(t, err)

	seq, err := gen.Flow([]int{1})
	require.NoError(t, err)
	require.Equal(t, 1, seq.Items())

	b, err := seq.Batch(0)
	require.NoError(t, err)
	require.Nil(t, b.Targets)
}
