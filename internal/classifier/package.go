package classifier

import "fmt"

// Field identifies one of the four measurements, in validation order
type Field int

const (
	FieldWidth Field = iota
	FieldHeight
	FieldLength
	FieldMass
)

// Fields returns the measurements in the order they are validated
func Fields() []Field {
	return []Field{FieldWidth, FieldHeight, FieldLength, FieldMass}
}

func (f Field) String() string {
	switch f {
	case FieldWidth:
		return "width"
	case FieldHeight:
		return "height"
	case FieldLength:
		return "length"
	case FieldMass:
		return "mass"
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Package is a parcel's outer dimensions in centimeters and mass in kilograms
type Package struct {
	Width  float64
	Height float64
	Length float64
	Mass   float64
}

// NewPackage builds a Package from arbitrary numeric values, rejecting
// anything that is not a positive real number
func NewPackage(width, height, length, mass any) (Package, error) {
	raw := [...]any{width, height, length, mass}

	var ms [4]measurement
	for i, v := range raw {
		m, ok := toMeasurement(v)
		if !ok {
			return Package{}, newTypeError(Field(i), v)
		}
		ms[i] = m
	}
	for i, m := range ms {
		if m.sign <= 0 {
			return Package{}, newValueError(Field(i), raw[i])
		}
	}

	return Package{
		Width:  ms[FieldWidth].value,
		Height: ms[FieldHeight].value,
		Length: ms[FieldLength].value,
		Mass:   ms[FieldMass].value,
	}, nil
}

// Validate checks that every measurement is a finite number above zero
func (p Package) Validate() error {
	_, err := NewPackage(p.Width, p.Height, p.Length, p.Mass)
	return err
}

// Value returns the measurement for f
func (p Package) Value(f Field) float64 {
	switch f {
	case FieldWidth:
		return p.Width
	case FieldHeight:
		return p.Height
	case FieldLength:
		return p.Length
	case FieldMass:
		return p.Mass
	}
	return 0
}

// Volume is width × height × length. It is +Inf if the product overflows
func (p Package) Volume() float64 {
	return p.Width * p.Height * p.Length
}

// IsBulky reports whether the volume or any single dimension reaches its limit
func (p Package) IsBulky() bool {
	return bulkyVolume(p.Volume()) || p.bulkyDimension()
}

// IsHeavy reports whether the mass reaches the mass limit
func (p Package) IsHeavy() bool {
	return p.Mass >= MassLimit
}

func (p Package) bulkyDimension() bool {
	return p.Width >= DimensionLimit || p.Height >= DimensionLimit || p.Length >= DimensionLimit
}
