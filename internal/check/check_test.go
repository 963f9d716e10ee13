package check

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/present-value/internal/pricing"
)

func TestEvaluate_Default(t *testing.T) {
	r := Evaluate(Default())

	require.NoError(t, r.Err)
	assert.True(t, r.Passed)
	assert.Equal(t, 48.51, r.Rounded)
	assert.InDelta(t, 48.511, r.PresentValue, 1e-3)
	assert.Equal(t, "Result: true (default: pu=48.51 expected=48.51)", Line(r))
}

func TestEvaluate_Mismatch(t *testing.T) {
	s := Default()
	s.Expected = 48.52

	r := Evaluate(s)
	require.NoError(t, r.Err)
	assert.False(t, r.Passed)
	assert.Equal(t, "Result: false (default: pu=48.51 expected=48.52)", Line(r))
}

func TestEvaluate_ExpectedIsRoundedToo(t *testing.T) {
	s := Default()
	s.Expected = 48.5112

	assert.True(t, Evaluate(s).Passed)
}

func TestEvaluate_DomainError(t *testing.T) {
	s := Scenario{Name: "bad-rate", FutureValue: 100, AnnualTerm: 0.5, AnnualRate: -1.5, Expected: 1, DecimalPlaces: 2}

	r := Evaluate(s)
	assert.False(t, r.Passed)
	assert.ErrorIs(t, r.Err, pricing.ErrDomain)
	assert.Contains(t, Line(r), "Result: false (bad-rate:")
	assert.NotEmpty(t, r.ErrorMessage())
}

func TestRun(t *testing.T) {
	pass := Default()
	fail := Default()
	fail.Name = "wrong"
	fail.Expected = 40
	broken := Scenario{Name: "broken", FutureValue: 100, AnnualTerm: 0.5, AnnualRate: -1.5, Expected: 1, DecimalPlaces: 2}

	results, err := Run([]Scenario{pass})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Passed)

	results, err = Run([]Scenario{pass, fail, broken})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAssertionFailure)
	assert.ErrorIs(t, err, pricing.ErrDomain)
	assert.Contains(t, err.Error(), `scenario "wrong"`)
	require.Len(t, results, 3)
	assert.True(t, results[0].Passed)
	assert.False(t, results[1].Passed)
	assert.False(t, results[2].Passed)
}

func TestLoadScenarios(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.json")
	body := `[
  {"name": "lft", "future_value": 48.81, "annual_term": 0.051587301587301584, "annual_rate": 0.1265, "expected": 48.51},
  {"future_value": 1000, "annual_term": 1, "annual_rate": 0.1, "expected": 909.0909, "decimal_places": 4}
]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	scenarios, err := LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, "lft", scenarios[0].Name)
	assert.Equal(t, pricing.DefaultDecimalPlaces, scenarios[0].DecimalPlaces)
	assert.Equal(t, "scenario-2", scenarios[1].Name)
	assert.Equal(t, 4, scenarios[1].DecimalPlaces)

	results, err := Run(scenarios)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestLoadScenarios_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadScenarios(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	tests := map[string]string{
		"malformed":       `{"name":`,
		"empty":           `[]`,
		"no future value": `[{"annual_term": 1, "annual_rate": 0.1, "expected": 1}]`,
		"negative places": `[{"future_value": 1, "expected": 1, "decimal_places": -1}]`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, "s.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := LoadScenarios(path)
			assert.Error(t, err)
		})
	}
}
