package entropy

// Source is the capability the converter consumes: something that produces
// one integer symbol per call, drawn uniformly and independently from the
// inclusive interval reported by Bounds.
//
// Uniformity and independence are assumed, not verified; the converter only
// range-checks each symbol. A source that violates the assumption invalidates
// the uniformity of the output without being detectable here.
type Source interface {
	// Next returns the next symbol.
	Next() uint64

	// Bounds reports the inclusive interval [min, max] that Next draws from.
	Bounds() (min, max uint64)
}

// SourceFunc adapts a plain function with explicit bounds into a Source.
// It is the bridge for call sites that have "a callable returning an integer"
// rather than a concrete source type, e.g. re-basing digit streams where one
// converter feeds another.
type SourceFunc struct {
	Min, Max uint64
	Fn       func() uint64
}

func (s SourceFunc) Next() uint64 {
	return s.Fn()
}

func (s SourceFunc) Bounds() (uint64, uint64) {
	return s.Min, s.Max
}
