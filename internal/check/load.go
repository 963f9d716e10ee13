package check

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/contactkeval/present-value/internal/logger"
	"github.com/contactkeval/present-value/internal/pricing"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// UnmarshalJSON decodes a scenario, defaulting decimal_places to two.
func (s *Scenario) UnmarshalJSON(b []byte) error {
	type plain Scenario
	p := plain{DecimalPlaces: pricing.DefaultDecimalPlaces}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*s = Scenario(p)
	return nil
}

// Validate checks the fields of s that can be checked without pricing it.
func Validate(s Scenario) error {
	return validate.Struct(s)
}

// LoadScenarios reads a JSON array of scenarios from path.
// A scenario without a name is named after its position in the file.
func LoadScenarios(path string) ([]Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenarios: %w", err)
	}

	var scenarios []Scenario
	if err := json.Unmarshal(b, &scenarios); err != nil {
		return nil, fmt.Errorf("invalid scenarios file %s: %w", path, err)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("scenarios file %s is empty", path)
	}

	for i := range scenarios {
		if scenarios[i].Name == "" {
			scenarios[i].Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if err := Validate(scenarios[i]); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenarios[i].Name, err)
		}
	}

	logger.Infof("loaded %d scenarios from %s", len(scenarios), path)
	return scenarios, nil
}
