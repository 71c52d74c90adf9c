package suite

import "github.com/DjordjeVuckovic/arith-hunter/internal/apperr"

const DefaultTolerance = 1e-9

type Suite struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Tolerance   float64 `yaml:"tolerance,omitempty"`
	Cases       []Case  `yaml:"cases"`
}

// Case is one expression with either an expected value or an expected error kind.
type Case struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description,omitempty"`
	Expression  string   `yaml:"expression"`
	Expect      *float64 `yaml:"expect,omitempty"`
	Error       string   `yaml:"error,omitempty"`
}

// ExpectsError reports whether the case expects evaluation to fail.
func (c *Case) ExpectsError() bool {
	return c.Error != ""
}

// ErrorKind returns the expected error kind. Only valid for cases that passed validation.
func (c *Case) ErrorKind() apperr.Kind {
	return apperr.Kind(c.Error)
}
