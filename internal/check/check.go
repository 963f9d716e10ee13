// Package check evaluates present-value scenarios against expected prices.
//
// A scenario passes when its present value, rounded to the scenario's decimal
// places, equals the expected value rounded the same way.
package check

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/contactkeval/present-value/internal/logger"
	"github.com/contactkeval/present-value/internal/pricing"
)

// ErrAssertionFailure is returned when a computed PU does not match its expected value.
var ErrAssertionFailure = errors.New("assertion failure")

// Scenario is a single PU check.
type Scenario struct {
	Name          string  `json:"name"`
	FutureValue   float64 `json:"future_value" validate:"required"`
	AnnualTerm    float64 `json:"annual_term"`
	AnnualRate    float64 `json:"annual_rate"`
	Expected      float64 `json:"expected" validate:"required"`
	DecimalPlaces int     `json:"decimal_places" validate:"gte=0,lte=15"`
}

// Quote returns the pricing inputs of the scenario.
func (s Scenario) Quote() pricing.Quote {
	return pricing.Quote{
		FutureValue: s.FutureValue,
		AnnualTerm:  s.AnnualTerm,
		AnnualRate:  s.AnnualRate,
	}
}

// Default returns the embedded scenario: 13 business days at 12.65% a.a.
func Default() Scenario {
	return Scenario{
		Name:          "default",
		FutureValue:   48.81,
		AnnualTerm:    pricing.AnnualTerm(13),
		AnnualRate:    0.1265,
		Expected:      48.51,
		DecimalPlaces: pricing.DefaultDecimalPlaces,
	}
}

// Result is the outcome of evaluating a Scenario.
type Result struct {
	Scenario     Scenario `json:"scenario"`
	PresentValue float64  `json:"present_value"`
	Rounded      float64  `json:"rounded"`
	Passed       bool     `json:"passed"`
	Err          error    `json:"-"`
}

// ErrorMessage returns the calculation error message, if any.
func (r Result) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// Evaluate computes the PU of s and compares it with s.Expected.
func Evaluate(s Scenario) Result {
	res := Result{Scenario: s}

	pv, err := s.Quote().PresentValue()
	if err != nil {
		res.Err = err
		return res
	}
	res.PresentValue = pv

	rounded, err := pricing.Round(pv, s.DecimalPlaces)
	if err != nil {
		res.Err = err
		return res
	}
	res.Rounded = rounded

	expected, err := pricing.Round(s.Expected, s.DecimalPlaces)
	if err != nil {
		res.Err = err
		return res
	}

	res.Passed = decimal.NewFromFloat(rounded).Equal(decimal.NewFromFloat(expected))
	logger.Debugf("scenario %q: pu=%.10f rounded=%v expected=%v passed=%t", s.Name, pv, rounded, expected, res.Passed)
	return res
}

// Run evaluates scenarios in order. The error wraps ErrAssertionFailure once per
// failing scenario; results are returned either way.
func Run(scenarios []Scenario) ([]Result, error) {
	results := make([]Result, 0, len(scenarios))
	var errs []error

	for _, s := range scenarios {
		r := Evaluate(s)
		results = append(results, r)
		if r.Passed {
			continue
		}
		if r.Err != nil {
			logger.Errorf("scenario %q: %v", s.Name, r.Err)
			errs = append(errs, fmt.Errorf("%w: scenario %q: %w", ErrAssertionFailure, s.Name, r.Err))
			continue
		}
		logger.Errorf("scenario %q: got %v, expected %v", s.Name, r.Rounded, s.Expected)
		errs = append(errs, fmt.Errorf("%w: scenario %q: got %v, expected %v", ErrAssertionFailure, s.Name, r.Rounded, s.Expected))
	}

	return results, errors.Join(errs...)
}

// Line renders the single report line printed for a result.
func Line(r Result) string {
	if r.Err != nil {
		return fmt.Sprintf("Result: %t (%s: %v)", r.Passed, r.Scenario.Name, r.Err)
	}
	places := r.Scenario.DecimalPlaces
	got, _ := pricing.Format(r.Rounded, places)
	want, _ := pricing.Format(r.Scenario.Expected, places)
	return fmt.Sprintf("Result: %t (%s: pu=%s expected=%s)", r.Passed, r.Scenario.Name, got, want)
}
