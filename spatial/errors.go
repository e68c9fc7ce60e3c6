package spatial

import "errors"

// ErrMissingInput indicates an edge referencing a node outside [0, N), or
// a focus subset referencing a node outside [0, N).
// Usage: if errors.Is(err, ErrMissingInput) { /* reject malformed input */ }.
var ErrMissingInput = errors.New("spatial: node reference out of range")

// ErrAlreadyMeasured indicates a focus step named a node that is already
// Measured.
// Usage: if errors.Is(err, ErrAlreadyMeasured) { /* caller supplied a stale subset */ }.
var ErrAlreadyMeasured = errors.New("spatial: node already measured")

// ErrNotLive names a node that is neither Live nor Uninitialized (the only
// two states from which a node may be focused). Measured is the only other
// status, and the focus methods report such a node with ErrAlreadyMeasured;
// no function in this package returns ErrNotLive.
var ErrNotLive = errors.New("spatial: node not live or uninitialized")
