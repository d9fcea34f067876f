package main

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/drakos74/free-boost/internal/algo/boost"
	"github.com/drakos74/free-boost/internal/metrics"
	"github.com/drakos74/free-boost/internal/server"
	"github.com/drakos74/free-boost/internal/storage"
	"github.com/drakos74/free-boost/internal/storage/file/json"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	port    int
	storage string
}

func newServeCommand() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve training reports and metrics over http",
		Long: `Serve the stored training reports and the prometheus metrics.

  GET /data                    liveness
  GET /api/report?id=<run>     training report of a run
  GET /api/rounds?id=<run>     round events of a run
  GET /metrics                 prometheus metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newReportServer(opts).Run()
		},
	}

	cmd.Flags().IntVar(&opts.port, "port", 6021, "Port to listen on")
	cmd.Flags().StringVar(&opts.storage, "storage", storage.DefaultDir, "Directory of the training reports")

	return cmd
}

func reports(dir string) (storage.Persistence, error) {
	return json.BlobShard(dir, "boost")(storage.ReportsDir)
}

func events(dir string) *json.EventLog {
	return json.NewEventLog(dir, filepath.Join("boost", "events"))
}

// runID reads the run id query parameter, which must be a uuid.
func runID(r *http.Request) (string, error) {
	id := r.URL.Query().Get("id")
	if id == "" {
		return "", errors.New("missing run id")
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", fmt.Errorf("invalid run id '%s': %w", id, err)
	}
	return id, nil
}

func newReportServer(opts *serveOptions) *server.Server {
	eventLog := events(opts.storage)
	return server.NewServer("boost", opts.port).
		Add(server.Live()).
		AddRoute(server.GET, server.Api, "report", func(r *http.Request) ([]byte, int, error) {
			id, err := runID(r)
			if err != nil {
				return []byte(err.Error()), http.StatusBadRequest, nil
			}
			p, err := reports(opts.storage)
			if err != nil {
				return nil, 0, err
			}
			report, err := boost.LoadReport(p, id)
			if errors.Is(err, storage.NotFoundErr) {
				return []byte(fmt.Sprintf("no report for run '%s'", id)), http.StatusNotFound, nil
			}
			if err != nil {
				return nil, 0, err
			}
			return server.Json(report)
		}).
		AddRoute(server.GET, server.Api, "rounds", func(r *http.Request) ([]byte, int, error) {
			id, err := runID(r)
			if err != nil {
				return []byte(err.Error()), http.StatusBadRequest, nil
			}
			rounds, err := json.ReadEvents[boost.Round](eventLog, storage.Key{Run: id, Label: roundsLabel})
			if errors.Is(err, storage.NotFoundErr) {
				return []byte(fmt.Sprintf("no rounds for run '%s'", id)), http.StatusNotFound, nil
			}
			if err != nil {
				return nil, 0, err
			}
			return server.Json(rounds)
		}).
		Handle("/metrics", metrics.Handler())
}
