package lib

import (
	"io/ioutil"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ExpectTolerance is the absolute difference allowed between an expected
// and an actual case value.
const ExpectTolerance = 1e-9

// Case is a named expression with an optional expected value or expected
// error text.
type Case struct {
	Name       string   `yaml:"name"`
	Expression string   `yaml:"expression"`
	Expect     *float64 `yaml:"expect,omitempty"`
	Error      string   `yaml:"error,omitempty"`
}

// CaseResult is the outcome of evaluating one case. Err is empty when
// evaluation succeeded.
type CaseResult struct {
	Case   Case
	Value  float64
	Err    string
	Passed bool
}

// Display formats the value or error for reports.
func (r CaseResult) Display() string {
	if r.Err != "" {
		return "error: " + r.Err
	}
	return FormatValue(r.Value)
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

func LoadCases(path string) ([]Case, error) {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cases, err := ParseCases(bytes)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to load cases from %s", path)
	}
	return cases, nil
}

func ParseCases(data []byte) ([]Case, error) {
	file := caseFile{}
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal cases yaml")
	}

	seen := map[string]bool{}
	for i, c := range file.Cases {
		if c.Name == "" {
			return nil, errors.Errorf("Case #%d has no name", i+1)
		}
		if seen[c.Name] {
			return nil, errors.Errorf("Case named '%s' already exists", c.Name)
		}
		seen[c.Name] = true

		if c.Expect != nil && c.Error != "" {
			return nil, errors.Errorf("Case '%s' cannot expect both a value and an error", c.Name)
		}
	}
	return file.Cases, nil
}

func RunCases(cases []Case) []CaseResult {
	results := make([]CaseResult, 0, len(cases))
	for _, c := range cases {
		results = append(results, RunCase(c))
	}
	return results
}

func RunCase(c Case) CaseResult {
	result := CaseResult{Case: c}

	value, err := Eval(c.Expression)
	if err != nil {
		result.Err = err.Error()
		result.Passed = c.Error != "" &&
			strings.Contains(strings.ToLower(result.Err), strings.ToLower(c.Error))
		return result
	}

	result.Value = value
	switch {
	case c.Error != "":
		result.Passed = false
	case c.Expect != nil:
		result.Passed = valuesMatch(*c.Expect, value)
	default:
		result.Passed = true
	}
	return result
}

func valuesMatch(expected float64, actual float64) bool {
	if math.IsNaN(expected) || math.IsNaN(actual) {
		return math.IsNaN(expected) && math.IsNaN(actual)
	}
	if math.IsInf(expected, 0) || math.IsInf(actual, 0) {
		return expected == actual
	}
	return math.Abs(expected-actual) <= ExpectTolerance
}

// FormatValue renders a result the way the command line tools print it.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
