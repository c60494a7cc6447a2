package exact

import "fmt"

// Backend selects the SAT engine behind MinCover.
type Backend uint8

const (
	// Gini descends a sorting-network cardinality bound on a CDCL solver.
	Gini Backend = iota
	// MaxSAT solves one weighted partial MaxSAT instance.
	MaxSAT
)

// DefaultBackend is used when WithBackend is absent. The descend handles
// deadlines mid-search, which the one-shot MaxSAT call cannot.
const DefaultBackend = Gini

// String returns the lowercase backend name.
func (b Backend) String() string {
	switch b {
	case Gini:
		return "gini"
	case MaxSAT:
		return "maxsat"
	default:
		return fmt.Sprintf("backend(%d)", uint8(b))
	}
}

const panicBackendUnknown = "exact: WithBackend: unknown backend"

// Option configures MinCover.
type Option func(*options)

type options struct {
	backend Backend
}

// WithBackend selects the SAT engine. Panics on a value outside the
// declared set.
func WithBackend(b Backend) Option {
	if b > MaxSAT {
		panic(panicBackendUnknown)
	}

	return func(o *options) { o.backend = b }
}

// gatherOptions folds the callers' choices over the defaults,
// last writer wins.
func gatherOptions(opts ...Option) options {
	o := options{backend: DefaultBackend}
	for _, set := range opts {
		set(&o)
	}

	return o
}
