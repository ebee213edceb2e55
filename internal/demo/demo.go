// Package demo holds the fixed example packages shown by the CLI
package demo

import (
	"github.com/muliwe/go-dispatch-sorter/internal/classifier"
	"github.com/muliwe/go-dispatch-sorter/internal/logger"
)

// Example is one demonstration input
type Example struct {
	Description string
	Inputs      [4]any // width, height, length, mass
}

// Outcome is the result of running one Example
type Outcome struct {
	Example  Example
	Decision classifier.Decision
	Err      error
}

// OK reports whether the example classified without error
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Examples returns the demonstration set: nine valid packages covering every
// stack and each inclusive limit, then two invalid inputs
func Examples() []Example {
	return []Example{
		{"Standard package", [4]any{50, 50, 50, 10}},
		{"Heavy package", [4]any{50, 50, 50, 25}},
		{"Bulky package (large dimension)", [4]any{160, 50, 50, 10}},
		{"Bulky package (large volume)", [4]any{100, 100, 100, 10}},
		{"Rejected package (bulky and heavy)", [4]any{100, 100, 100, 25}},
		{"Rejected package (large dimension and heavy)", [4]any{160, 50, 50, 21}},
		{"Edge case - exactly at volume limit", [4]any{100, 100, 100, 19.9}},
		{"Edge case - exactly at dimension limit", [4]any{150, 50, 50, 19.9}},
		{"Edge case - exactly at mass limit", [4]any{50, 50, 50, 20}},
		{"Invalid - non-positive dimension", [4]any{0, 50, 50, 10}},
		{"Invalid - non-numeric input", [4]any{50, 50, "abc", 10}},
	}
}

// Run classifies one example
func Run(ex Example) Outcome {
	d, err := classifier.Explain(ex.Inputs[0], ex.Inputs[1], ex.Inputs[2], ex.Inputs[3])
	return Outcome{Example: ex, Decision: d, Err: err}
}

// RunAll classifies every example in order, logging each outcome under runID
func RunAll(runID string, examples []Example, log *logger.Logger) []Outcome {
	if log == nil {
		log = logger.Discard()
	}

	outcomes := make([]Outcome, 0, len(examples))
	for _, ex := range examples {
		o := Run(ex)
		if o.OK() {
			log.LogDecision(runID, o.Decision)
		} else {
			log.LogRejectedInput(runID, o.Err)
		}
		outcomes = append(outcomes, o)
	}
	return outcomes
}
