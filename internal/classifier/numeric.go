package classifier

import (
	"math"
	"math/big"
	"reflect"
)

// measurement is a value that passed the numeric type guard. sign is taken
// from the exact input, so a big value that rounds to 0 as a float64 is still
// positive
type measurement struct {
	value float64
	sign  int
}

// toMeasurement converts v to a float64 if it is a real number. NaN and
// infinities are not real numbers. Big values outside float64 range are
// clamped to the largest or smallest finite float64 of the same sign
func toMeasurement(v any) (measurement, bool) {
	switch n := v.(type) {
	case nil:
		return measurement{}, false
	case *big.Int:
		if n == nil {
			return measurement{}, false
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return bigMeasurement(f, n.Sign()), true
	case *big.Float:
		if n == nil || n.IsInf() {
			return measurement{}, false
		}
		f, _ := n.Float64()
		return bigMeasurement(f, n.Sign()), true
	case *big.Rat:
		if n == nil {
			return measurement{}, false
		}
		f, _ := n.Float64()
		return bigMeasurement(f, n.Sign()), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := rv.Int()
		return measurement{value: float64(i), sign: signOf(float64(i))}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		return measurement{value: float64(u), sign: signOf(float64(u))}, true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return measurement{}, false
		}
		return measurement{value: f, sign: signOf(f)}, true
	}
	return measurement{}, false
}

// bigMeasurement keeps a rounded big value finite and on the side of zero
// its exact sign says it is on
func bigMeasurement(f float64, sign int) measurement {
	switch {
	case math.IsInf(f, 0):
		f = math.Copysign(math.MaxFloat64, f)
	case f == 0 && sign != 0:
		f = float64(sign) * math.SmallestNonzeroFloat64
	}
	return measurement{value: f, sign: sign}
}

func signOf(f float64) int {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	}
	return 0
}
