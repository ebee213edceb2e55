// Package classifier sorts packages into dispatch stacks by size and mass
package classifier

import (
	"fmt"
	"math"
	"strings"
)

// Thresholds. VolumeLimit is kept as its own constant rather than derived
// from DimensionLimit
const (
	DimensionLimit = 150       // cm
	MassLimit      = 20        // kg
	VolumeLimit    = 1_000_000 // cm³
)

// Classification is the dispatch stack a package is sent to
type Classification string

const (
	ClassificationStandard Classification = "STANDARD"
	ClassificationSpecial  Classification = "SPECIAL"
	ClassificationRejected Classification = "REJECTED"
)

// Classifications returns every stack in severity order
func Classifications() []Classification {
	return []Classification{ClassificationStandard, ClassificationSpecial, ClassificationRejected}
}

func (c Classification) String() string {
	return string(c)
}

// Valid reports whether c is one of the three known stacks
func (c Classification) Valid() bool {
	switch c {
	case ClassificationStandard, ClassificationSpecial, ClassificationRejected:
		return true
	}
	return false
}

// ParseClassification converts a case-insensitive label into a Classification
func ParseClassification(s string) (Classification, error) {
	c := Classification(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown classification %q", s)
	}
	return c, nil
}

// Decision holds a classification together with the checks that produced it
type Decision struct {
	Package          Package
	Volume           float64
	BulkyByVolume    bool
	BulkyByDimension bool
	Bulky            bool
	Heavy            bool
	Classification   Classification
	Reason           string
}

// Sort classifies a package from four arbitrary values.
//
// Each value must be a real number: any Go integer or float kind, or a
// *big.Int, *big.Float or *big.Rat. NaN and infinite floats are rejected.
// Values are checked in the order width, height, length, mass and the first
// offending one is reported, with type errors taking precedence over
// non-positive values
func Sort(width, height, length, mass any) (Classification, error) {
	p, err := NewPackage(width, height, length, mass)
	if err != nil {
		return "", err
	}
	return p.classification(), nil
}

// Explain is Sort returning the full decision instead of just the stack
func Explain(width, height, length, mass any) (Decision, error) {
	p, err := NewPackage(width, height, length, mass)
	if err != nil {
		return Decision{}, err
	}
	return p.decide(), nil
}

// Classify validates p and returns its dispatch stack
func Classify(p Package) (Classification, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p.classification(), nil
}

// Evaluate validates p and returns the full decision
func Evaluate(p Package) (Decision, error) {
	if err := p.Validate(); err != nil {
		return Decision{}, err
	}
	return p.decide(), nil
}

func (p Package) decide() Decision {
	volume := p.Volume()
	d := Decision{
		Package:          p,
		Volume:           volume,
		BulkyByVolume:    bulkyVolume(volume),
		BulkyByDimension: p.bulkyDimension(),
		Heavy:            p.IsHeavy(),
	}
	d.Bulky = d.BulkyByVolume || d.BulkyByDimension
	d.Classification = stack(d.Bulky, d.Heavy)
	d.Reason = reason(d)
	return d
}

func (p Package) classification() Classification {
	return stack(p.IsBulky(), p.IsHeavy())
}

func stack(bulky, heavy bool) Classification {
	switch {
	case bulky && heavy:
		return ClassificationRejected
	case bulky || heavy:
		return ClassificationSpecial
	default:
		return ClassificationStandard
	}
}

// bulkyVolume treats an overflowed product as bulky
func bulkyVolume(volume float64) bool {
	return math.IsInf(volume, 1) || volume >= VolumeLimit
}

// reason explains which limits a decision tripped
func reason(d Decision) string {
	var hits []string
	if d.BulkyByDimension {
		hits = append(hits, fmt.Sprintf("dimension at or above %d cm", DimensionLimit))
	}
	if d.BulkyByVolume {
		hits = append(hits, fmt.Sprintf("volume at or above %d cm³", VolumeLimit))
	}
	if d.Heavy {
		hits = append(hits, fmt.Sprintf("mass at or above %d kg", MassLimit))
	}

	if len(hits) == 0 {
		return "Within all size and mass limits"
	}

	switch d.Classification {
	case ClassificationRejected:
		return "Bulky and heavy: " + strings.Join(hits, ", ")
	case ClassificationSpecial:
		if d.Heavy {
			return "Heavy: " + strings.Join(hits, ", ")
		}
		return "Bulky: " + strings.Join(hits, ", ")
	}
	return strings.Join(hits, ", ")
}
