package engine

import (
	"math"

	"github.com/tartampluch/go-bmi/internal/config"
)

// Band is one of the six fixed classification ranges.
// A band covers [Lower, Upper); the last band is open-ended.
type Band struct {
	Label  string
	Marker string
	Lower  float64
	Upper  float64
}

var bands = [...]Band{
	{Label: config.LabelUnderweight, Marker: config.MarkerUnderweight, Lower: 0, Upper: config.BoundNormal},
	{Label: config.LabelNormal, Marker: config.MarkerNormal, Lower: config.BoundNormal, Upper: config.BoundOverweight},
	{Label: config.LabelOverweight, Marker: config.MarkerOverweight, Lower: config.BoundOverweight, Upper: config.BoundObesityI},
	{Label: config.LabelObesityI, Marker: config.MarkerObesityI, Lower: config.BoundObesityI, Upper: config.BoundObesityII},
	{Label: config.LabelObesityII, Marker: config.MarkerObesityII, Lower: config.BoundObesityII, Upper: config.BoundObesityIII},
	{Label: config.LabelObesityIII, Marker: config.MarkerObesityIII, Lower: config.BoundObesityIII, Upper: math.Inf(1)},
}

// Contains reports whether bmi falls in the band's half-open interval.
func (b Band) Contains(bmi float64) bool {
	return bmi >= b.Lower && bmi < b.Upper
}

// Bands returns the classification bands in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands[:])
	return out
}

// Classify maps an unrounded BMI to its band. First match wins, so a value
// equal to a bound lands in the upper band.
func Classify(bmi float64) Band {
	switch {
	case bmi < config.BoundNormal:
		return bands[0]
	case bmi < config.BoundOverweight:
		return bands[1]
	case bmi < config.BoundObesityI:
		return bands[2]
	case bmi < config.BoundObesityII:
		return bands[3]
	case bmi < config.BoundObesityIII:
		return bands[4]
	default:
		return bands[5]
	}
}
