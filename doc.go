// Package lvlgen feeds graph-structured datasets into mini-batch training
// loops for graph classification models.
//
// 🚀 What is lvlgen?
//
//	A validation-first data-generator library that takes a collection of
//	feature-carrying graphs, selects a working subset by index (train /
//	validation / test splits), optionally attaches numeric targets, and
//	packages everything into a sequence object a training driver can
//	iterate batch by batch:
//	  • mlgraph   — ML-ready graph type: topology, node types, node features
//	  • matrix    — dense numerics: adjacency, degree normalization, padding
//	  • sequence  — GraphSequence (unpadded) & PaddedGraphSequence (padded+mask)
//	  • generator — GraphGenerator & PaddedGraphGenerator: validate, then delegate
//	  • dataset   — YAML manifest loading and deterministic synthetic collections
//
// ✨ Why choose lvlgen?
//
//   - Fail-fast guarantees — every type, shape and length mismatch is caught
//     eagerly at construction or Flow time, never mid-epoch
//   - Deterministic everywhere — sorted node order, seeded shuffling,
//     reproducible synthetic data
//   - Framework-neutral — batches are flat float64 buffers plus shape
//     metadata, trivial to hand to any tensor library
//   - Pure Go core — no cgo, no tensor-runtime dependency
//
// Typical pipeline:
//
//	coll, _ := dataset.Load("mutag.yaml.gz")
//	gen, _  := generator.NewPaddedGraphGenerator(coll.Graphs)
//	seq, _  := gen.Flow([]int{0, 1, 2},
//	    generator.WithTargets(coll.Targets[:3]),
//	    generator.WithBatchSize(2),
//	)
//	for i := 0; i < seq.Len(); i++ {
//	    b, _ := seq.Batch(i)
//	    // feed b.Features / b.Adjacency / b.Mask / b.Targets to the model
//	}
//	seq.OnEpochEnd() // reshuffle when the flow was configured with a seed
//
// See each subpackage's doc.go for contracts, sentinel errors and examples.
package lvlgen
