package timeorder

import "errors"

// ErrMissingInput indicates the layered partial order references a node
// outside [0, N), or an allowed-subset argument references one.
// Usage: if errors.Is(err, ErrMissingInput) { /* reject malformed input */ }.
var ErrMissingInput = errors.New("timeorder: node reference out of range")

// ErrNotMeasurable indicates a focus step named a node that is not
// currently in measurable ∪ deferred — its predecessors are unmet, or it
// was excluded from the allowed subset.
// Usage: if errors.Is(err, ErrNotMeasurable) { /* caller supplied an illegal subset */ }.
var ErrNotMeasurable = errors.New("timeorder: node not measurable")

// ErrAlreadyMeasured indicates a focus step named a node that has already
// been measured.
// Usage: if errors.Is(err, ErrAlreadyMeasured) { /* caller supplied a stale subset */ }.
var ErrAlreadyMeasured = errors.New("timeorder: node already measured")
