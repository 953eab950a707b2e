package wealth

import (
	"encoding/json"
	"fmt"
	"math"
)

// Value is a number that may be undefined.
//
// Statistics are undefined at the boundaries of a series (no previous row, not enough rows for
// a window) or when a division has a zero denominator. Non-finite results are always Null.
type Value struct {
	v  float64
	ok bool
}

// Null is the undefined Value.
var Null = Value{}

// Some returns a defined Value, or Null if v is NaN or infinite.
func Some(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null
	}
	return Value{v: v, ok: true}
}

// Float returns the value and whether it is defined.
func (x Value) Float() (float64, bool) { return x.v, x.ok }

// IsNull reports whether x is undefined.
func (x Value) IsNull() bool { return !x.ok }

// Or returns the value, or def when it is undefined.
func (x Value) Or(def float64) float64 {
	if !x.ok {
		return def
	}
	return x.v
}

// Add returns x+y, Null if any is Null.
func (x Value) Add(y Value) Value {
	if !x.ok || !y.ok {
		return Null
	}
	return Some(x.v + y.v)
}

// Sub returns x-y, Null if any is Null.
func (x Value) Sub(y Value) Value {
	if !x.ok || !y.ok {
		return Null
	}
	return Some(x.v - y.v)
}

// Div returns x/y, Null if any is Null or if y is zero.
func (x Value) Div(y Value) Value {
	if !x.ok || !y.ok {
		return Null
	}
	return Some(x.v / y.v)
}

// Equal reports whether x and y are both Null, or both defined and within 1e-9 of each other.
func (x Value) Equal(y Value) bool {
	if x.ok != y.ok {
		return false
	}
	return !x.ok || math.Abs(x.v-y.v) < 1e-9
}

// String formats the value with two decimals, "-" when undefined.
func (x Value) String() string {
	if !x.ok {
		return "-"
	}
	return fmt.Sprintf("%.2f", x.v)
}

func (x Value) MarshalJSON() ([]byte, error) {
	if !x.ok {
		return []byte("null"), nil
	}
	return json.Marshal(x.v)
}

func (x *Value) UnmarshalJSON(data []byte) error {
	var v *float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*x = Null
		return nil
	}
	*x = Some(*v)
	return nil
}
