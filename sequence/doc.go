// Package sequence packages selected graph subsets into batch providers a
// training driver can iterate: GraphSequence delivers graphs unpadded,
// PaddedGraphSequence stacks them into fixed-size padded tensors with
// validity masks.
//
// Both types implement the Sequence interface:
//
//	Len() int                  — number of mini-batches per epoch
//	Items() int                — number of selected graphs
//	Batch(i int) (*Batch, error)
//	OnEpochEnd()               — reshuffles item order when configured
//	Name() string
//
// A Batch carries flat row-major float64 buffers plus explicit shape
// metadata instead of a tensor-library type, so consumers can convert to
// whatever tensor representation their framework uses without lvlgen
// taking on that dependency.
//
// Shapes (k = graphs in the batch, n = node count, f = feature width,
// t = target width):
//
//	GraphSequence        Features [k,n,f]  Adjacency [k,n,n]  Targets [k,t]
//	PaddedGraphSequence  Features [k,N,f]  Adjacency [k,N,N]  Mask [k,N]
//	                     Targets [k,t]     (N = largest node count selected)
//
// All construction-time violations (empty collections, target length or
// raggedness, non-positive batch size, unstackable shapes) surface as
// sentinel errors immediately; Batch never fails on well-constructed
// sequences except for an out-of-range index.
package sequence
