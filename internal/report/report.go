package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/contactkeval/present-value/internal/check"
)

const (
	jsonFile = "results.json"
	csvFile  = "results.csv"
)

type jsonResult struct {
	check.Result
	Error string `json:"error,omitempty"`
}

// WriteJSON writes results to <outdir>/results.json.
func WriteJSON(results []check.Result, outdir string) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		out = append(out, jsonResult{Result: r, Error: r.ErrorMessage()})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, jsonFile), b, 0644)
}

// WriteCSV writes one row per result to <outdir>/results.csv.
func WriteCSV(results []check.Result, outdir string) error {
	f, err := os.Create(filepath.Join(outdir, csvFile))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	headers := []string{"name", "future_value", "annual_term", "annual_rate", "present_value", "rounded", "expected", "passed", "error"}
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, r := range results {
		s := r.Scenario
		row := []string{
			s.Name,
			formatFloat(s.FutureValue),
			formatFloat(s.AnnualTerm),
			formatFloat(s.AnnualRate),
			formatFloat(r.PresentValue),
			fmt.Sprintf("%.*f", s.DecimalPlaces, r.Rounded),
			fmt.Sprintf("%.*f", s.DecimalPlaces, s.Expected),
			strconv.FormatBool(r.Passed),
			r.ErrorMessage(),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Write creates outdir if needed and writes both report formats.
func Write(results []check.Result, outdir string) error {
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return fmt.Errorf("creating report dir %s: %w", outdir, err)
	}
	if err := WriteJSON(results, outdir); err != nil {
		return fmt.Errorf("writing %s: %w", jsonFile, err)
	}
	if err := WriteCSV(results, outdir); err != nil {
		return fmt.Errorf("writing %s: %w", csvFile, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
