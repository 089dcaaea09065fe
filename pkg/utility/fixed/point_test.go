package fixed

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFixedPoint_FromInt64(t *testing.T) {
	tests := []struct {
		name  string
		value int64
		scale int
		want  string
	}{
		{"zero", 0, 0, "0"},
		{"positive", 123, 0, "123"},
		{"negative", -456, 0, "-456"},
		{"with scale", 123, 2, "1.23"},
		{"board lot threshold", 1, 4, "0.0001"},
		{"large number", 9223372036854775807, 0, "9223372036854775807"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromInt64(tt.value, tt.scale)
			if got.String() != tt.want {
				t.Errorf("FromInt64(%d, %d) = %s; want %s", tt.value, tt.scale, got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_FromFloat64(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"zero", 0.0, "0"},
		{"price", 5.1, "5.1"},
		{"negative", -67.89, "-67.89"},
		{"small decimal", 0.0001, "0.0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromFloat64(tt.value)
			if got.String() != tt.want {
				t.Errorf("FromFloat64(%f) = %s; want %s", tt.value, got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_FromFloat64Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("FromFloat64(NaN) did not panic")
		}
	}()
	FromFloat64(math.NaN())
}

func TestFixedPoint_Parse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"integer", "10000", "10000", false},
		{"rate", "0.25", "0.25", false},
		{"negative", "-1.5", "-1.5", false},
		{"empty", "", "", true},
		{"garbage", "twenty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("Parse(%q) = %s; want %s", tt.input, got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", MustParse("8000").Add(MustParse("23.6")), MustParse("8023.6")},
		{"sub", MustParse("15872.8").Sub(MustParse("8023.6")), MustParse("7849.2")},
		{"mul", MustParse("5.1").MulInt64(10), FromInt64(51, 0)},
		{"div", FromInt64(10000, 0).Div(FromInt64(2000, 0)), FromInt64(5, 0)},
		{"div int", FromInt64(100, 0).DivInt(4), FromInt64(25, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Eq(tt.want) {
				t.Errorf("got %s; want %s", tt.got, tt.want)
			}
		})
	}
}

func TestFixedPoint_DivPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Div by zero did not panic")
		}
	}()
	FromInt64(10, 0).Div(Zero)
}

func TestFixedPoint_Comparisons(t *testing.T) {
	a := FromInt64(10, 0)
	b := FromInt64(20, 0)
	c := FromInt64(1000, 2)
	d := FromInt64(-5, 0)

	tests := []struct {
		name   string
		fn     func() bool
		expect bool
	}{
		{"10 == 10.00", func() bool { return a.Eq(c) }, true},
		{"10 == 20", func() bool { return a.Eq(b) }, false},
		{"20 > 10", func() bool { return b.Gt(a) }, true},
		{"10 < 20", func() bool { return a.Lt(b) }, true},
		{"10 >= 10.00", func() bool { return a.Gte(c) }, true},
		{"10 <= 10.00", func() bool { return a.Lte(c) }, true},
		{"-5 is negative", func() bool { return d.IsNeg() }, true},
		{"10 is positive", func() bool { return a.IsPos() }, true},
		{"zero is not positive", func() bool { return Zero.IsPos() }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(); got != tt.expect {
				t.Errorf("got %v; want %v", got, tt.expect)
			}
		})
	}
}

func TestFixedPoint_MaxMin(t *testing.T) {
	floor := FromInt64(20, 0)
	if got := MustParse("0.1275").Max(floor); !got.Eq(floor) {
		t.Errorf("Max() = %s; want %s", got, floor)
	}
	if got := MustParse("25").Max(floor); !got.Eq(MustParse("25")) {
		t.Errorf("Max() = %s; want 25", got)
	}
	if got := MustParse("25").Min(floor); !got.Eq(floor) {
		t.Errorf("Min() = %s; want %s", got, floor)
	}
}

func TestFixedPoint_Int64(t *testing.T) {
	tests := []struct {
		name  string
		point Point
		want  int64
	}{
		{"whole", FromInt64(5, 0), 5},
		{"fraction truncated", MustParse("4.0118"), 4},
		{"below one", MustParse("0.0005"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.point.Int64()
			if !ok {
				t.Fatalf("Int64() not ok")
			}
			if got != tt.want {
				t.Errorf("Int64() = %d; want %d", got, tt.want)
			}
		})
	}
}

func TestFixedPoint_RoundingAndScale(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want string
	}{
		{"round", MustParse("73.40765").Round(2), "73.41"},
		{"floor", MustParse("5.99").Floor(0), "5"},
		{"rescale", FromInt64(123, 0).Rescale(2), "123.00"},
		{"trim", MustParse("8023.600").Trim(0), "8023.6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %s; want %s", tt.got.String(), tt.want)
			}
		})
	}
}

func TestFixedPoint_JSON(t *testing.T) {
	payload := struct {
		Total Point `json:"total"`
	}{Total: MustParse("8023.600")}

	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"total":8023.6}` {
		t.Errorf("Marshal() = %s", b)
	}
}

func TestFixedPoint_UnmarshalText(t *testing.T) {
	var p Point
	if err := p.UnmarshalText([]byte("11904.6")); err != nil {
		t.Fatal(err)
	}
	if !p.Eq(MustParse("11904.6")) {
		t.Errorf("UnmarshalText() = %s", p)
	}

	if err := p.UnmarshalText([]byte("abc")); err == nil {
		t.Error("UnmarshalText(abc) expected an error")
	}
}
