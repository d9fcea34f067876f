package boost

import (
	"fmt"
	"time"

	"github.com/drakos74/free-boost/internal/buffer"
	"github.com/drakos74/free-boost/internal/storage"
)

const reportLabel = "report"

// Summary describes the spread of a per-round quantity.
type Summary struct {
	Avg   float64 `json:"avg"`
	StDev float64 `json:"stdev"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

func summarize(stats *buffer.Stats) Summary {
	return Summary{
		Avg:   stats.Avg(),
		StDev: stats.StDev(),
		Min:   stats.Min(),
		Max:   stats.Max(),
	}
}

// Report is the training history of an ensemble.
// It carries the round statistics only, not the hypotheses.
type Report struct {
	ID       string        `json:"id"`
	Time     time.Time     `json:"time"`
	Rounds   []Round       `json:"rounds"`
	Error    Summary       `json:"error"`
	Weight   Summary       `json:"weight"`
	Duration time.Duration `json:"duration"`
	Test     *Result       `json:"test,omitempty"`
}

// NewReport creates the training report of the ensemble.
func NewReport[L comparable](e *Ensemble[L]) (Report, error) {
	if e.Size() == 0 {
		return Report{}, ErrNotTrained
	}
	errs := buffer.NewStats()
	weights := buffer.NewStats()
	var d time.Duration
	rounds := e.Rounds()
	for _, r := range rounds {
		errs.Push(r.Error)
		weights.Push(r.Weight)
		d += r.Duration
	}
	return Report{
		ID:       e.ID(),
		Time:     time.Now(),
		Rounds:   rounds,
		Error:    summarize(errs),
		Weight:   summarize(weights),
		Duration: d,
	}, nil
}

// WithTest attaches a test result to the report.
func (r Report) WithTest(result Result) Report {
	r.Test = &result
	return r
}

// Store saves the report under its run id.
func (r Report) Store(p storage.Persistence) error {
	if err := p.Store(storage.Key{Run: r.ID, Label: reportLabel}, r); err != nil {
		return fmt.Errorf("could not store report '%s': %w", r.ID, err)
	}
	return nil
}

// LoadReport loads the report of the given run.
func LoadReport(p storage.Persistence, id string) (Report, error) {
	var r Report
	if err := p.Load(storage.Key{Run: id, Label: reportLabel}, &r); err != nil {
		return Report{}, fmt.Errorf("could not load report '%s': %w", id, err)
	}
	return r, nil
}
