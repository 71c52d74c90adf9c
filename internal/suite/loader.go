package suite

import (
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/arith-hunter/internal/apperr"
	"gopkg.in/yaml.v3"
)

func LoadFromFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}
	if s.Tolerance < 0 {
		return nil, fmt.Errorf("tolerance must not be negative, got %v", s.Tolerance)
	}
	if s.Tolerance == 0 {
		s.Tolerance = DefaultTolerance
	}

	seen := make(map[string]struct{}, len(s.Cases))
	for i, c := range s.Cases {
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = struct{}{}

		if c.Expect != nil && c.Error != "" {
			return nil, fmt.Errorf("case %q sets both expect and error", c.ID)
		}
		if c.Expect == nil && c.Error == "" {
			return nil, fmt.Errorf("case %q sets neither expect nor error", c.ID)
		}
		if c.Error != "" {
			if _, err := apperr.ParseKind(c.Error); err != nil {
				return nil, fmt.Errorf("case %q: %w", c.ID, err)
			}
		}
	}

	return &s, nil
}
