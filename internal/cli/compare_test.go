package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCompareRun(t *testing.T, dir, csvName string) string {
	t.Helper()
	content := `dataset: ` + csvName + `
target: y
folds: 3
seed: 9
metrics: [RMSE, R2]
variants:
  - trainer: linear
  - trainer: mean
`
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCompareCommandText(t *testing.T) {
	dir := t.TempDir()
	writeLineCSV(t, dir, 30)
	runPath := writeCompareRun(t, dir, "line.csv")

	out, err := execute(t, "compare", runPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Variant")
	assert.Contains(t, out, "RMSE")
	assert.Contains(t, out, "R2")
	assert.Contains(t, out, "linear")
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "3 folds, seed 9")
}

func TestCompareCommandJSON(t *testing.T) {
	dir := t.TempDir()
	writeLineCSV(t, dir, 30)
	runPath := writeCompareRun(t, dir, "line.csv")

	out, err := execute(t, "--format", "json", "compare", runPath)
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Target   string `json:"target"`
			Folds    int    `json:"folds"`
			Variants []struct {
				Name    string `json:"name"`
				Trainer string `json:"trainer"`
				Metrics []struct {
					Name  string    `json:"name"`
					Folds []float64 `json:"folds"`
				} `json:"metrics"`
			} `json:"variants"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "y", resp.Data.Target)
	assert.Equal(t, 3, resp.Data.Folds)
	require.Len(t, resp.Data.Variants, 2)
	assert.Equal(t, "linear", resp.Data.Variants[0].Name)
	assert.Equal(t, "mean", resp.Data.Variants[1].Name)
	require.Len(t, resp.Data.Variants[0].Metrics, 2)
	assert.Len(t, resp.Data.Variants[0].Metrics[0].Folds, 3)
}

func TestCompareCommandLinearBeatsBaseline(t *testing.T) {
	dir := t.TempDir()
	writeLineCSV(t, dir, 30)
	runPath := writeCompareRun(t, dir, "line.csv")

	out, err := execute(t, "--format", "json", "compare", runPath)
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Variants []struct {
				Name    string `json:"name"`
				Metrics []struct {
					Name string  `json:"name"`
					Mean float64 `json:"mean"`
				} `json:"metrics"`
			} `json:"variants"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	rmse := make(map[string]float64)
	for _, v := range resp.Data.Variants {
		for _, m := range v.Metrics {
			if m.Name == "RMSE" {
				rmse[v.Name] = m.Mean
			}
		}
	}
	assert.Less(t, rmse["linear"], rmse["mean"])
}

func TestCompareCommandErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing run file", func(t *testing.T) {
		_, err := execute(t, "compare", filepath.Join(dir, "absent.yaml"))
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("missing dataset", func(t *testing.T) {
		runPath := writeCompareRun(t, dir, "nope.csv")
		_, err := execute(t, "compare", runPath)
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("bad variant trainer", func(t *testing.T) {
		csvDir := t.TempDir()
		writeLineCSV(t, csvDir, 20)
		content := `dataset: line.csv
target: y
variants:
  - trainer: forest
`
		runPath := filepath.Join(csvDir, "run.yaml")
		require.NoError(t, os.WriteFile(runPath, []byte(content), 0o644))

		_, err := execute(t, "compare", runPath)
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})
}
