package boost

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/drakos74/free-boost/internal/metrics"
	"github.com/drakos74/free-boost/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Round describes the outcome of one boosting round.
type Round struct {
	Index    int           `json:"index"`
	Error    float64       `json:"error"`
	Weight   float64       `json:"weight"`
	Misses   int           `json:"misses"`
	Duration time.Duration `json:"duration"`
}

// Boost trains cfg.Rounds weak learners from the factory on the dataset
// and combines them into a weighted majority ensemble.
// Rounds run strictly in sequence, the context is checked before every round.
// Any error aborts the run and no ensemble is returned.
func Boost[L comparable](ctx context.Context, ds model.Dataset[L], factory Factory[L], cfg Config) (*Ensemble[L], error) {
	t := &trainer[L]{cfg: cfg}
	return t.run(ctx, ds, factory)
}

type trainer[L comparable] struct {
	cfg Config
	// observe is called with a copy of the normalised weights at the end of every accepted round.
	observe func(id string, round Round, w Weights)
}

func (t *trainer[L]) run(ctx context.Context, ds model.Dataset[L], factory Factory[L]) (*Ensemble[L], error) {
	start := time.Now()
	ensemble, err := t.boost(ctx, ds, factory)
	metrics.Observer.Trained(time.Since(start), err)
	return ensemble, err
}

func (t *trainer[L]) boost(ctx context.Context, ds model.Dataset[L], factory Factory[L]) (*Ensemble[L], error) {
	if err := t.cfg.Validate(); err != nil {
		return nil, err
	}
	cfg := t.cfg.withDefaults()
	if factory == nil {
		return nil, fmt.Errorf("no factory: %w", ErrLearnerConstruction)
	}
	if ds == nil || ds.Size() == 0 {
		return nil, ErrEmptyDataset
	}

	id := uuid.New().String()
	n := ds.Size()
	w, err := NewWeights(n)
	if err != nil {
		return nil, err
	}

	hypotheses := make([]Learner[L], 0, cfg.Rounds)
	z := make([]float64, 0, cfg.Rounds)
	rounds := make([]Round, 0, cfg.Rounds)

	for k := 0; k < cfg.Rounds; k++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("round %d: %w", k, err)
		}
		roundStart := time.Now()

		h, err := construct(factory)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", k, err)
		}
		if err := fit(cfg, h, ds, w, k); err != nil {
			return nil, fmt.Errorf("round %d: could not train weak learner: %w", k, err)
		}
		correct, misses, err := evaluate(ctx, h, ds, cfg.Workers)
		if err != nil {
			return nil, fmt.Errorf("round %d: could not evaluate weak learner: %w", k, err)
		}

		rate := w.Error(correct)
		if misses == n {
			rate = 1
		}

		if degenerate(rate) {
			metrics.Observer.Degenerate()
			derr := &DegenerateError{Round: k, Rate: rate}
			if cfg.Degenerate != Stop {
				return nil, derr
			}
			if misses == 0 {
				weight := perfectWeight(cfg.PerfectWeight, z)
				round := Round{
					Index:    k,
					Weight:   weight,
					Duration: time.Since(roundStart),
				}
				hypotheses = append(hypotheses, h)
				z = append(z, weight)
				rounds = append(rounds, round)
				if t.observe != nil {
					t.observe(id, round, w.copy())
				}
			}
			if len(hypotheses) == 0 {
				return nil, derr
			}
			log.Warn().
				Str("id", id).
				Int("round", k).
				Float64("error", rate).
				Int("hypotheses", len(hypotheses)).
				Msg("stop boosting on degenerate round")
			break
		}

		if err := w.Rescale(k, correct, rate); err != nil {
			return nil, err
		}
		if w, err = w.Normalize(); err != nil {
			return nil, fmt.Errorf("round %d: %w", k, err)
		}

		weight := confidence(rate)
		round := Round{
			Index:    k,
			Error:    rate,
			Weight:   weight,
			Misses:   misses,
			Duration: time.Since(roundStart),
		}
		hypotheses = append(hypotheses, h)
		z = append(z, weight)
		rounds = append(rounds, round)

		metrics.Observer.Round(rate, weight)
		if t.observe != nil {
			t.observe(id, round, w.copy())
		}
		log.Debug().
			Str("id", id).
			Int("round", k).
			Float64("error", rate).
			Float64("weight", weight).
			Int("misses", misses).
			Int("examples", n).
			Msg("boosting round")
	}

	ensemble := newEnsemble(id, hypotheses, z, rounds)
	log.Info().
		Str("id", id).
		Int("hypotheses", ensemble.Size()).
		Int("examples", n).
		Str("strategy", string(cfg.Strategy)).
		Msg("trained ensemble")
	return ensemble, nil
}

// perfectWeight is the voting weight of a zero error hypothesis.
// It outweighs all the kept hypotheses together, so the ensemble agrees with it on every example.
func perfectWeight(floor float64, z []float64) float64 {
	var total float64
	for _, v := range z {
		total += math.Abs(v)
	}
	return math.Max(floor, total+1)
}

func construct[L comparable](factory Factory[L]) (Learner[L], error) {
	h, err := factory()
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrLearnerConstruction)
	}
	if h == nil {
		return nil, fmt.Errorf("nil learner: %w", ErrLearnerConstruction)
	}
	return h, nil
}

// fit trains the round learner according to the configured strategy.
func fit[L comparable](cfg Config, h Learner[L], ds model.Dataset[L], w Weights, round int) error {
	if cfg.Strategy == Uniform {
		return h.Train(ds)
	}
	if wl, ok := h.(WeightedLearner[L]); ok {
		return wl.TrainWeighted(ds, w.copy())
	}
	return h.Train(resample(ds, w, uint64(cfg.Seed)+uint64(round)))
}

// evaluate predicts every example once and reports which ones the hypothesis got right.
// Each worker owns a contiguous range of indices, so the outcome does not depend on scheduling.
func evaluate[L comparable](ctx context.Context, h Learner[L], ds model.Dataset[L], workers int) ([]bool, int, error) {
	n := ds.Size()
	correct := make([]bool, n)
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for from := 0; from < n; from += chunk {
		from := from
		to := from + chunk
		if to > n {
			to = n
		}
		g.Go(func() error {
			for j := from; j < to; j++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				e := ds.Example(j)
				y, err := h.Predict(e)
				if err != nil {
					return fmt.Errorf("example %d: %w", j, err)
				}
				correct[j] = y == e.Label
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	misses := 0
	for _, ok := range correct {
		if !ok {
			misses++
		}
	}
	return correct, misses, nil
}
