// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Matrix construction.
// Options are resolved once by gatherOptions; WithX constructors panic only on
// nonsensical values (programmer error).
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDegree is the B-tree degree of the Coordinate Store.
	// Each node holds between DefaultDegree-1 and 2*DefaultDegree-1 cells.
	DefaultDegree = 32

	// minDegree is the smallest degree google/btree accepts.
	minDegree = 2
)

const panicDegreeInvalid = "sparse: WithDegree: degree must be >= 2"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	degree int // B-tree degree; DefaultDegree
}

// WithDegree sets the B-tree degree used by the Coordinate Store.
// Larger degrees favour enumeration, smaller ones favour frequent writes.
// Panics if d < 2.
func WithDegree(d int) Option {
	if d < minDegree {
		panic(panicDegreeInvalid)
	}

	return func(o *Options) { o.degree = d }
}

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{degree: DefaultDegree}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
