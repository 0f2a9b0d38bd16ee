// Package dataset builds graph collections for the lvlgen generators:
// either loaded from a YAML manifest (optionally gzip-compressed) or
// synthesized deterministically for tests and benchmarks.
//
// Manifest format:
//
//	name: mutag-sample
//	targets:            # optional, one row per graph
//	  - [1.0]
//	  - [0.0]
//	graphs:
//	  - name: g0
//	    directed: false
//	    nodes:
//	      - id: a
//	        type: atom        # optional, defaults to "default"
//	        features: [1, 0, 0, 1]
//	      - id: b
//	        features: [0, 1, 0, 1]
//	    edges:
//	      - source: a
//	        target: b
//	        weight: 1         # optional, defaults to 1
//
// Load transparently decompresses files ending in ".gz". Every structural
// problem in a manifest (missing IDs, ragged features, unknown edge
// endpoints) surfaces as a wrapped mlgraph sentinel naming the graph and
// element involved.
//
// Synthetic collections use an Erdős–Rényi-like edge model with a seeded
// RNG: fixed config and seed always produce byte-identical collections.
package dataset
