package boost

import (
	"errors"
	"fmt"
)

var (
	ErrNotTrained          = errors.New("not trained")
	ErrDegenerateErrorRate = errors.New("degenerate error rate")
	ErrLearnerConstruction = errors.New("could not construct weak learner")
	ErrEmptyDataset        = errors.New("empty dataset")
	ErrInvalidConfig       = errors.New("invalid config")
)

// DegenerateError reports a round whose weighted error reached 0 or 1,
// where the hypothesis weight ln((1-e)/e) is not finite.
type DegenerateError struct {
	Round int
	Rate  float64
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("round %d: weighted error %v: %s", e.Round, e.Rate, ErrDegenerateErrorRate.Error())
}

func (e *DegenerateError) Unwrap() error {
	return ErrDegenerateErrorRate
}
