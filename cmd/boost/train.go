package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/drakos74/free-boost/infra/config"
	"github.com/drakos74/free-boost/internal/algo/boost"
	"github.com/drakos74/free-boost/internal/math/ml"
	"github.com/drakos74/free-boost/internal/metrics"
	"github.com/drakos74/free-boost/internal/model"
	"github.com/drakos74/free-boost/internal/server"
	"github.com/drakos74/free-boost/internal/storage"
	"github.com/drakos74/free-boost/internal/storage/file/json"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const roundsLabel = "rounds"

const (
	stumpLearner    = "stump"
	forestLearner   = "forest"
	treeLearner     = "tree"
	logisticLearner = "logistic"
)

type trainOptions struct {
	data        string
	headers     bool
	config      string
	learner     string
	trees       int
	split       float64
	storage     string
	metricsPort int
	dryRun      bool
	overrides   boost.Overrides
	strategy    string
	degenerate  string
}

func newTrainCommand() *cobra.Command {
	opts := &trainOptions{}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train an ensemble on a csv dataset",
		Long: `Train an AdaBoost ensemble on a csv dataset.

The last column of every row is the label, all other numeric columns are features.
With --split the dataset is shuffled and the ensemble is tested on the held out part,
otherwise it is tested on the training set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrain(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.data, "data", "", "Csv dataset file")
	cmd.Flags().BoolVar(&opts.headers, "headers", false, "The csv file starts with a header row")
	cmd.Flags().StringVar(&opts.config, "config", "", "Boosting config file (json or yaml)")
	cmd.Flags().StringVar(&opts.learner, "learner", stumpLearner, "Weak learner: stump, forest, tree or logistic")
	cmd.Flags().IntVar(&opts.trees, "trees", 10, "Number of trees of the forest learner")
	cmd.Flags().Float64Var(&opts.split, "split", 1, "Fraction of the dataset used for training")
	cmd.Flags().StringVar(&opts.storage, "storage", storage.DefaultDir, "Directory for the training reports")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Do not store the training report and rounds")
	cmd.Flags().IntVar(&opts.metricsPort, "metrics-port", 0, "Expose prometheus metrics on the given port")
	cmd.Flags().IntVar(&opts.overrides.Rounds, "rounds", 0, "Number of boosting rounds")
	cmd.Flags().IntVar(&opts.overrides.Workers, "workers", 0, "Number of goroutines evaluating each round")
	cmd.Flags().Int64Var(&opts.overrides.Seed, "seed", 0, "Seed for sampling and splitting")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "Weighting strategy: weighted or uniform")
	cmd.Flags().StringVar(&opts.degenerate, "degenerate", "", "Degenerate round policy: fail or stop")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runTrain(cmd *cobra.Command, opts *trainOptions) error {
	cfg := boost.DefaultConfig()
	if opts.config != "" {
		if err := config.Load(opts.config, &cfg); err != nil {
			return err
		}
	}
	opts.overrides.Strategy = boost.Strategy(opts.strategy)
	opts.overrides.Degenerate = boost.Policy(opts.degenerate)
	cfg.ApplyOverrides(opts.overrides)
	if err := cfg.Validate(); err != nil {
		return err
	}

	factory, err := newFactory(opts)
	if err != nil {
		return err
	}

	set, err := model.ReadCSV(opts.data, opts.headers)
	if err != nil {
		return err
	}
	train, test := set, set
	if opts.split < 1 {
		train, test, err = model.Split[string](set, opts.split, uint64(cfg.Seed))
		if err != nil {
			return err
		}
	}

	if opts.metricsPort > 0 {
		srv := server.NewServer("metrics", opts.metricsPort).
			Add(server.Live()).
			Handle("/metrics", metrics.Handler())
		go func() {
			if err := srv.Run(); err != nil {
				log.Error().Err(err).Int("port", opts.metricsPort).Msg("metrics server stopped")
			}
		}()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shard := storage.VoidShard()
	learner := boost.New(factory, cfg)
	if !opts.dryRun {
		shard = json.BlobShard(opts.storage, "boost")
		roundLog := events(opts.storage)
		learner.OnRound(func(id string, r boost.Round) {
			if err := roundLog.Append(storage.Key{Run: id, Label: roundsLabel}, r); err != nil {
				log.Warn().Err(err).Str("id", id).Int("round", r.Index).Msg("could not log round")
			}
		})
	}
	if err := learner.TrainContext(ctx, train); err != nil {
		return fmt.Errorf("could not train ensemble: %w", err)
	}
	ensemble, err := learner.Ensemble()
	if err != nil {
		return err
	}
	result, err := learner.Test(test)
	if err != nil {
		return fmt.Errorf("could not test ensemble: %w", err)
	}

	report, err := boost.NewReport(ensemble)
	if err != nil {
		return err
	}
	report = report.WithTest(result)
	p, err := shard(storage.ReportsDir)
	if err != nil {
		return err
	}
	if err := report.Store(p); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", ensemble.ID())
	for _, r := range ensemble.Rounds() {
		fmt.Fprintf(out, "round %d: error %.4f weight %.4f\n", r.Index, r.Error, r.Weight)
	}
	fmt.Fprintf(out, "correct: %d\n", result.Correct)
	fmt.Fprintf(out, "incorrect: %d\n", result.Incorrect)
	fmt.Fprintf(out, "accuracy: %.4f\n", result.Accuracy())
	return nil
}

func newFactory(opts *trainOptions) (boost.Factory[string], error) {
	switch opts.learner {
	case stumpLearner:
		return boost.Of[string](ml.NewStump[string]), nil
	case forestLearner:
		return boost.Of[string](ml.ConstructForest[string](opts.trees)), nil
	case treeLearner:
		return boost.Of[string](ml.ConstructTree[string](0)), nil
	case logisticLearner:
		return boost.Of[string](ml.ConstructLogistic[string](0.01, 500)), nil
	default:
		return nil, fmt.Errorf("unknown learner '%s'", opts.learner)
	}
}
