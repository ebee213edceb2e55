// Package render writes classification outcomes as a table, JSON or YAML
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/muliwe/go-dispatch-sorter/internal/classifier"
	"github.com/muliwe/go-dispatch-sorter/internal/demo"
)

// Output formats
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Renderer writes outcomes to w
type Renderer interface {
	Render(w io.Writer, outcomes []demo.Outcome) error
}

// New returns the renderer for format
func New(format string, noColor bool) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatTable:
		return tableRenderer{noColor: noColor}, nil
	case FormatJSON:
		return jsonRenderer{}, nil
	case FormatYAML:
		return yamlRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

// Record is the serialized form of one outcome
type Record struct {
	Description    string   `json:"description,omitempty" yaml:"description,omitempty"`
	Inputs         []string `json:"inputs" yaml:"inputs"`
	Classification string   `json:"classification,omitempty" yaml:"classification,omitempty"`
	Volume         *float64 `json:"volume,omitempty" yaml:"volume,omitempty"` // nil if the product overflowed
	Bulky          bool     `json:"bulky" yaml:"bulky"`
	Heavy          bool     `json:"heavy" yaml:"heavy"`
	Reason         string   `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error          string   `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind      string   `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
	Field          string   `json:"field,omitempty" yaml:"field,omitempty"`
}

// Error kinds as they appear in records
const (
	KindInvalidType  = "invalid_type"
	KindInvalidValue = "invalid_value"
)

// NewRecord flattens an outcome
func NewRecord(o demo.Outcome) Record {
	r := Record{
		Description: o.Example.Description,
		Inputs:      make([]string, len(o.Example.Inputs)),
	}
	for i, in := range o.Example.Inputs {
		r.Inputs[i] = fmt.Sprintf("%v", in)
	}

	if o.Err != nil {
		r.Error = o.Err.Error()
		switch {
		case errors.Is(o.Err, classifier.ErrInvalidType):
			r.ErrorKind = KindInvalidType
		case errors.Is(o.Err, classifier.ErrInvalidValue):
			r.ErrorKind = KindInvalidValue
		}
		var inputErr *classifier.InputError
		if errors.As(o.Err, &inputErr) {
			r.Field = inputErr.Field.String()
		}
		return r
	}

	d := o.Decision
	r.Classification = d.Classification.String()
	if !math.IsInf(d.Volume, 0) && !math.IsNaN(d.Volume) {
		v := d.Volume
		r.Volume = &v
	}
	r.Bulky = d.Bulky
	r.Heavy = d.Heavy
	r.Reason = d.Reason
	return r
}

func records(outcomes []demo.Outcome) []Record {
	out := make([]Record, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, NewRecord(o))
	}
	return out
}

type jsonRenderer struct{}

func (jsonRenderer) Render(w io.Writer, outcomes []demo.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records(outcomes)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

type yamlRenderer struct{}

func (yamlRenderer) Render(w io.Writer, outcomes []demo.Outcome) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records(outcomes)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
