package mbqcsched

import "errors"

// ErrProbabilisticNeedsAccept is returned when Options.Probabilistic is
// true but Options.Accept is nil.
var ErrProbabilisticNeedsAccept = errors.New("mbqcsched: probabilistic search requires a non-nil Accept function")
