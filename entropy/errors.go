package entropy

import "errors"

// Errors reported by the conversion entry points.
//
// All of them are detected synchronously, before the offending mutation, so a
// failed call leaves the Converter usable and its stored entropy intact. The
// internal rejection/retry loop of the conversion algorithm is normal, silent
// operation and is never surfaced as an error.
var (
	// ErrInvalidRange reports an impossible output or input interval:
	// target <= 0, outMin > outMax, or inMin >= inMax. Always a programming
	// error at the call site.
	ErrInvalidRange = errors.New("invalid range: interval is empty or reversed")

	// ErrRangeTooLarge reports that the requested output cardinality cannot be
	// satisfied by the accumulator width without risking overflow. Resolution
	// is a wider accumulator type or a smaller request.
	ErrRangeTooLarge = errors.New("output range too large for accumulator width")

	// ErrSourceOutOfRange reports that the source returned a value outside its
	// declared bounds. A contract violation by the source, not by the caller.
	ErrSourceOutOfRange = errors.New("source value outside declared bounds")
)
