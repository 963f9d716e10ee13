package report

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/present-value/internal/check"
)

func sampleResults(t *testing.T) []check.Result {
	t.Helper()
	broken := check.Scenario{Name: "broken", FutureValue: 100, AnnualTerm: 0.5, AnnualRate: -1.5, Expected: 1, DecimalPlaces: 2}
	results, err := check.Run([]check.Scenario{check.Default(), broken})
	require.Error(t, err)
	return results
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	require.NoError(t, Write(sampleResults(t), dir))

	b, err := os.ReadFile(filepath.Join(dir, "results.json"))
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, true, decoded[0]["passed"])
	assert.Equal(t, 48.51, decoded[0]["rounded"])
	assert.NotContains(t, decoded[0], "error")
	assert.Equal(t, false, decoded[1]["passed"])
	assert.Contains(t, decoded[1]["error"], "domain error")

	f, err := os.Open(filepath.Join(dir, "results.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "name", rows[0][0])
	assert.Equal(t, []string{"default", "48.81", "0.051587301587301584", "0.1265"}, rows[1][:4])
	assert.Equal(t, []string{"48.51", "48.51", "true", ""}, rows[1][5:])
	assert.Equal(t, "false", rows[2][7])
	assert.Contains(t, rows[2][8], "fractional term")
}

func TestWriteCSV_MissingDir(t *testing.T) {
	err := WriteCSV(nil, filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}
