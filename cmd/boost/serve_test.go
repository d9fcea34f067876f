package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/drakos74/free-boost/internal/algo/boost"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, target string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(target)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, b
}

func TestServe(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "train", "--data", writeDataset(t), "--headers", "--storage", dir, "--rounds", "2", "--degenerate", "stop")
	require.NoError(t, err)
	match := regexp.MustCompile(`run: (\S+)`).FindStringSubmatch(out)
	require.Len(t, match, 2)
	id := match[1]

	ts := httptest.NewServer(newReportServer(&serveOptions{storage: dir}).Handler())
	defer ts.Close()

	code, b := get(t, ts.URL+"/api/report?id="+id)
	assert.Equal(t, http.StatusOK, code)
	var report boost.Report
	require.NoError(t, json.Unmarshal(b, &report))
	assert.Equal(t, id, report.ID)
	require.NotNil(t, report.Test)
	assert.Equal(t, 40, report.Test.Total())

	code, b = get(t, ts.URL+"/api/rounds?id="+id)
	assert.Equal(t, http.StatusOK, code)
	var rounds []boost.Round
	require.NoError(t, json.Unmarshal(b, &rounds))
	assert.Equal(t, report.Rounds, rounds)

	code, _ = get(t, ts.URL+"/api/report?id="+uuid.New().String())
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = get(t, ts.URL+"/api/rounds")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
}

func TestServe_InvalidRunID(t *testing.T) {
	dir := t.TempDir()
	// a report outside the reports directory that a relative id could reach
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "boost"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "boost", "x_report.json"), []byte(`{"id":"x"}`), 0o644))

	ts := httptest.NewServer(newReportServer(&serveOptions{storage: dir}).Handler())
	defer ts.Close()

	for name, id := range map[string]string{
		"parent":   "../x",
		"nested":   "../../x",
		"plain":    "x",
		"absolute": "/etc/passwd",
	} {
		t.Run(name, func(t *testing.T) {
			for _, route := range []string{"report", "rounds"} {
				code, _ := get(t, ts.URL+"/api/"+route+"?id="+url.QueryEscape(id))
				assert.Equal(t, http.StatusBadRequest, code)
			}
		})
	}
}
