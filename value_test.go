package wealth

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSome_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if !Some(v).IsNull() {
			t.Errorf("Some(%v) is defined, want Null", v)
		}
	}
	if Some(0).IsNull() {
		t.Errorf("Some(0) is Null, want defined")
	}
}

func TestValue_Arithmetic(t *testing.T) {
	testCases := []struct {
		name string
		got  Value
		want Value
	}{
		{"add", Some(1).Add(Some(2)), Some(3)},
		{"add null", Some(1).Add(Null), Null},
		{"sub", Some(3).Sub(Some(2)), Some(1)},
		{"sub null", Null.Sub(Some(2)), Null},
		{"div", Some(1).Div(Some(4)), Some(0.25)},
		{"div by zero", Some(1).Div(Some(0)), Null},
		{"zero by zero", Some(0).Div(Some(0)), Null},
		{"div null", Some(1).Div(Null), Null},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertValue(t, tc.name, tc.got, tc.want)
		})
	}
}

func TestValue_JSON(t *testing.T) {
	data, err := json.Marshal([]Value{Some(1.5), Null})
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if string(data) != "[1.5,null]" {
		t.Errorf("json.Marshal() = %s, want [1.5,null]", data)
	}

	var got []Value
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(got) != 2 || !got[0].Equal(Some(1.5)) || !got[1].IsNull() {
		t.Errorf("json.Unmarshal() = %v, want [1.50 -]", got)
	}
}

func TestFormat(t *testing.T) {
	if got := FormatRatio(Some(0.1)); got != "10.00%" {
		t.Errorf("FormatRatio(0.1) = %q, want %q", got, "10.00%")
	}
	if got := FormatRatio(Null); got != "-" {
		t.Errorf("FormatRatio(Null) = %q, want %q", got, "-")
	}
	if got := FormatValue(Null, "BRL"); got != "-" {
		t.Errorf("FormatValue(Null) = %q, want %q", got, "-")
	}
	if got := FormatValue(Some(1000), "USD"); got != "$1,000.00" {
		t.Errorf("FormatValue(1000) = %q, want %q", got, "$1,000.00")
	}
}
