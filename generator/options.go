// File: options.go
// Role: functional configuration for generator construction and Flow.
//
// Invalid option values are recorded inside the option set and surfaced
// when Flow is invoked, so building an option never panics and a bad
// value cannot be silently dropped.
package generator

import "fmt"

// Defaults — single source of truth for zero-option Flow behavior.
const (
	// DefaultBatchSize is used when WithBatchSize is not supplied.
	DefaultBatchSize = 1

	// DefaultSymmetricNormalization applies D^{-1/2}(A+I)D^{-1/2} unless
	// WithSymmetricNormalization(false) selects one-sided D^{-1}(A+I).
	DefaultSymmetricNormalization = true
)

// GeneratorOption configures a generator at construction.
type GeneratorOption func(*generatorConfig)

type generatorConfig struct {
	name string
}

// WithGeneratorName attaches an optional name to the generator.
func WithGeneratorName(name string) GeneratorOption {
	return func(c *generatorConfig) { c.name = name }
}

// FlowOption configures a single Flow invocation.
type FlowOption func(*flowConfig)

// flowConfig is the resolved Flow configuration. setSymmetric/setShuffle
// track padded-only options so the unpadded generator can reject them.
type flowConfig struct {
	targets   [][]float64
	batchSize int
	name      string
	symmetric bool
	shuffle   bool
	seed      int64

	setSymmetric bool
	setShuffle   bool

	// first recorded option error, surfaced by Flow
	err error
}

// defaultFlowConfig returns the documented Flow defaults.
func defaultFlowConfig() flowConfig {
	return flowConfig{
		batchSize: DefaultBatchSize,
		symmetric: DefaultSymmetricNormalization,
	}
}

// WithTargets supplies the 2-D numeric target array, one row per selected
// graph. Length and raggedness are validated by Flow against the ilocs.
func WithTargets(targets [][]float64) FlowOption {
	return func(c *flowConfig) { c.targets = targets }
}

// WithBatchSize sets the number of graphs per mini-batch.
//
//	b >= 1: valid
//	b <  1: recorded as ErrBatchSize and surfaced by Flow
func WithBatchSize(b int) FlowOption {
	return func(c *flowConfig) {
		if b < 1 {
			c.recordErr(fmt.Errorf("%w: got %d", ErrBatchSize, b))
			return
		}
		c.batchSize = b
	}
}

// WithFlowName names the returned sequence object.
func WithFlowName(name string) FlowOption {
	return func(c *flowConfig) { c.name = name }
}

// WithSymmetricNormalization selects the adjacency normalization mode of
// the padded variant: true for symmetric square-root degree scaling on
// both sides, false for one-sided degree division.
// GraphGenerator.Flow rejects this option (unpadded normalization is
// always symmetric).
func WithSymmetricNormalization(symmetric bool) FlowOption {
	return func(c *flowConfig) {
		c.symmetric = symmetric
		c.setSymmetric = true
	}
}

// WithShuffle enables reshuffling of the selected graphs at the end of
// every epoch, driven by an RNG seeded with seed (deterministic per seed).
// GraphGenerator.Flow rejects this option (unpadded order is fixed).
func WithShuffle(seed int64) FlowOption {
	return func(c *flowConfig) {
		c.shuffle = true
		c.seed = seed
		c.setShuffle = true
	}
}

// recordErr keeps the first option error only.
func (c *flowConfig) recordErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// gatherFlowOptions resolves opts against the defaults.
func gatherFlowOptions(opts []FlowOption) flowConfig {
	c := defaultFlowConfig()
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
