package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-bmi/internal/config"
)

// TestNormalizeHeight covers the three-step unit correction heuristic,
// including the thresholds themselves.
func TestNormalizeHeight(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
		desc string
	}{
		{"Metres", 1.75, 1.75, "Values <= 3 pass through"},
		{"Exactly 3", 3, 3, "3 is not > 3, kept as is"},
		{"Residual 3.5", 3.5, 0.035, "Second pass divides by 100"},
		{"Exactly 10", 10, 0.1, "10 skips the cm branch but trips the residual pass"},
		{"Centimetres", 175, 1.75, "175 > 10"},
		{"Exactly 999", 999, 9.99 / 100, "999 is cm scale, then still > 3"},
		{"Millimetres", 1780, 1.78, "1780 > 999"},
		{"Centimetres 350", 350, 0.035, "3.5 after the cm pass, divided again"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeHeight(tt.in), 1e-12, tt.desc)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"1.75", 1.75, true},
		{"1,75", 1.75, true},
		{"175", 175, true},
		{".5", 0.5, true},
		{"1.", 1, true},
		{"  70", 70, true},
		{"1.75.3", 1.75, true},
		{"1,7,5", 1.7, true},
		{"70kg", 70, true},
		{"abc", 0, false},
		{"", 0, false},
		{".", 0, false},
		{",", 0, false},
		{"-5", -5, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseDecimal(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 24.22, roundTo(24.2214532871972, 2))
	assert.Equal(t, 25.0, roundTo(24.9975, 2))
	assert.Equal(t, 18.5, roundTo(18.499, 2))
}

func TestValidate_OrderOfChecks(t *testing.T) {
	// Missing fields win over non-numeric content elsewhere.
	_, err := validate(RawInputs{Name: "", HeightText: "abc", WeightText: "70"})
	assert.Equal(t, MissingFields, err.Kind)
	assert.Equal(t, FieldFlags{Name: true}, err.Fields)

	// Non-numeric wins over range problems.
	_, err = validate(RawInputs{Name: "Ana", HeightText: "80", WeightText: "x"})
	assert.Equal(t, NonNumeric, err.Kind)

	m, err := validate(RawInputs{Name: "Ana", HeightText: "175", WeightText: "70,5"})
	assert.Nil(t, err)
	assert.InDelta(t, 1.75, m.HeightM, 1e-12)
	assert.InDelta(t, 70.5, m.WeightKg, 1e-12)
}

func TestHistoryPush_Capacity(t *testing.T) {
	var h History
	for i := 0; i < config.HistoryCapacity+3; i++ {
		h = h.Push(HistoryEntry{BMI: float64(i)})
	}
	assert.Len(t, h, config.HistoryCapacity)
	assert.Equal(t, float64(config.HistoryCapacity+2), h[0].BMI)

	// An oversized history handed in from outside is trimmed on the next push.
	big := make(History, 9)
	assert.Len(t, big.Push(HistoryEntry{}), config.HistoryCapacity)
}

func TestKind_Strings(t *testing.T) {
	assert.Equal(t, config.ErrMissingFields, MissingFields.String())
	assert.Equal(t, config.MsgWeightRange, WeightOutOfRange.Message())
	assert.Equal(t, config.ErrUnknownKind, Kind(0).String())
	assert.Equal(t, "name,weight", FieldFlags{Name: true, Weight: true}.String())
	assert.False(t, FieldFlags{}.Any())
}
