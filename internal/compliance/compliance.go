// Package compliance provides a small scenario-runner harness for exercising
// the engine against literal (path, document, expected values) triples,
// modeled on python-jsonpath's compliance test runner.
package compliance

import (
	"fmt"

	"github.com/jsonpathkit/jsonpathkit/jsonpath"
	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

// Scenario is one literal end-to-end test case: a JSONPath query evaluated
// against a document, expected to produce exactly Want (in order, compared
// by deep equality) — or, if WantErr is true, expected to fail to compile
// or evaluate.
type Scenario struct {
	Name     string
	Path     string
	Document string // JSON or YAML source, decoded via jsonvalue.Decode
	Want     []any
	WantErr  bool
	Opts     []jsonpath.Option
}

// Run evaluates s and returns a descriptive error if the outcome does not
// match s.Want/s.WantErr, or nil if it does.
func Run(s Scenario) error {
	doc, err := jsonvalue.Decode([]byte(s.Document))
	if err != nil {
		return fmt.Errorf("%s: decoding document: %w", s.Name, err)
	}

	nodes, err := jsonpath.FindAll(s.Path, doc, s.Opts...)
	if s.WantErr {
		if err == nil {
			return fmt.Errorf("%s: expected an error, got none", s.Name)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", s.Name, err)
	}

	got := nodes.Values()
	if len(got) != len(s.Want) {
		return fmt.Errorf("%s: got %d results %v, want %d %v", s.Name, len(got), got, len(s.Want), s.Want)
	}
	for i := range got {
		if !jsonvalue.DeepEqual(got[i], s.Want[i]) {
			return fmt.Errorf("%s: result[%d] = %v, want %v", s.Name, i, got[i], s.Want[i])
		}
	}
	return nil
}
