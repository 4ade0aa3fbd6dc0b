package engine

// RawInputs holds the three text fields exactly as the presentation layer
// collected them.
type RawInputs struct {
	Name       string
	HeightText string
	WeightText string
}

// Measurement is a height/weight pair after unit correction and range checks.
// Once produced, HeightM lies in [config.MinHeightM, config.MaxHeightM] and
// WeightKg in [config.MinWeightKg, config.MaxWeightKg].
type Measurement struct {
	HeightM  float64
	WeightKg float64
}

// BmiResult is the outcome of a successful computation.
// It is a value type; callers receive copies and never share it.
type BmiResult struct {
	Name string

	// BMI is rounded to config.BMIDecimals for display.
	BMI float64

	// Band is selected from the unrounded index, so boundary behaviour does
	// not depend on display rounding.
	Band Band

	// IdealWeightDeltaKg is weight minus the ideal weight. Positive means
	// above the ideal.
	IdealWeightDeltaKg float64

	// DeltaMessage is the human-readable form of IdealWeightDeltaKg.
	DeltaMessage string

	Measurement Measurement
}

// Marker returns the symbolic annotation of the result's band.
func (r BmiResult) Marker() string {
	return r.Band.Marker
}
