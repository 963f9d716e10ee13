package pricing

import (
	"fmt"
	"math"
)

// BusinessDaysPerYear is the day-count base used to annualize a term (DU/252).
const BusinessDaysPerYear = 252

// Quote groups the inputs of a single discounted cash flow.
type Quote struct {
	FutureValue float64 `json:"future_value"`
	AnnualTerm  float64 `json:"annual_term"`
	AnnualRate  float64 `json:"annual_rate"`
}

// PresentValue discounts q at its own rate and term.
func (q Quote) PresentValue() (float64, error) {
	return PresentValue(q.FutureValue, q.AnnualTerm, q.AnnualRate)
}

// PresentValue computes the present value (PU) of a single cash flow using
// compound discounting:
//
//	PU = FV / (1 + rate) ^ term
//
// Parameters:
//   - futureValue: nominal amount received at maturity
//   - annualTerm: time to maturity in years, may be fractional (see AnnualTerm)
//   - annualRate: annual rate as a decimal (0.1265 for 12.65% a.a.)
//
// Returns:
//
//	The present value. A zero term returns futureValue unchanged.
//
// Errors:
//   - ErrInvalidInput if any argument is NaN or ±Inf
//   - ErrDomain if 1+annualRate is negative and annualTerm is not an integer,
//     if 1+annualRate is zero and annualTerm is not, or if the result overflows
func PresentValue(futureValue, annualTerm, annualRate float64) (float64, error) {
	for _, v := range []float64{futureValue, annualTerm, annualRate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: fv=%v term=%v rate=%v", ErrInvalidInput, futureValue, annualTerm, annualRate)
		}
	}

	base := 1 + annualRate
	switch {
	case base < 0 && annualTerm != math.Trunc(annualTerm):
		return 0, fmt.Errorf("%w: rate below -100%% combined with fractional term (rate=%v term=%v)", ErrDomain, annualRate, annualTerm)
	case base == 0 && annualTerm != 0:
		return 0, fmt.Errorf("%w: rate of -100%% leaves no discount factor (term=%v)", ErrDomain, annualTerm)
	}

	pv := futureValue / math.Pow(base, annualTerm)
	if math.IsNaN(pv) || math.IsInf(pv, 0) {
		return 0, fmt.Errorf("%w: present value overflows (fv=%v term=%v rate=%v)", ErrDomain, futureValue, annualTerm, annualRate)
	}
	return pv, nil
}

// AnnualTerm converts a count of business days into years on a 252-day basis.
func AnnualTerm(businessDays int) float64 {
	return float64(businessDays) / BusinessDaysPerYear
}
