package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-bmi/internal/config"
)

// Calculator is the BMI engine. It holds no session state: every Compute call
// is an independent transaction, so one Calculator can serve any number of
// sessions concurrently.
type Calculator struct {
	// FormatDelta allows the UI to inject a localized ideal-weight message.
	// deltaKg is the magnitude of the difference; above tells the polarity.
	FormatDelta func(deltaKg float64, above bool) string
}

// Compute validates the raw inputs, derives the BMI and its band, and returns
// the result together with prior advanced by one entry.
//
// On failure the error is a *ValidationError, the zero BmiResult is returned
// and prior is handed back untouched. prior is never modified in place.
func (c *Calculator) Compute(in RawInputs, prior History) (BmiResult, History, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompEngine)

	m, verr := validate(in)
	if verr != nil {
		log.Debug(config.MsgRejected,
			config.LogKeyKind, verr.Kind.String(),
			config.LogKeyFields, verr.Fields.String(),
		)
		return BmiResult{}, prior, verr
	}

	// Band and delta use the unrounded index; rounding is for display only.
	raw := m.WeightKg / (m.HeightM * m.HeightM)
	band := Classify(raw)
	delta := m.WeightKg - IdealWeight(m.HeightM)

	res := BmiResult{
		Name:               strings.TrimSpace(in.Name),
		BMI:                roundTo(raw, config.BMIDecimals),
		Band:               band,
		IdealWeightDeltaKg: delta,
		DeltaMessage:       c.deltaMessage(delta),
		Measurement:        m,
	}

	next := prior.Push(HistoryEntry{
		Name:     res.Name,
		HeightM:  m.HeightM,
		WeightKg: m.WeightKg,
		BMI:      res.BMI,
		Label:    band.Label,
	})

	log.Debug(config.MsgComputed,
		config.LogKeyHeight, m.HeightM,
		config.LogKeyWeight, m.WeightKg,
		config.LogKeyBMI, res.BMI,
		config.LogKeyBand, band.Label,
		config.LogKeyDelta, delta,
		config.LogKeyHistory, len(next),
		config.LogKeyDuration, time.Since(start).Microseconds(),
	)
	return res, next, nil
}

// validate runs the presence, parsing, normalization and range steps in order.
func validate(in RawInputs) (Measurement, *ValidationError) {
	missing := FieldFlags{
		Name:   strings.TrimSpace(in.Name) == "",
		Height: strings.TrimSpace(in.HeightText) == "",
		Weight: strings.TrimSpace(in.WeightText) == "",
	}
	if missing.Any() {
		return Measurement{}, newValidationError(MissingFields, missing)
	}

	h, okH := ParseDecimal(in.HeightText)
	w, okW := ParseDecimal(in.WeightText)
	if !okH || !okW || h <= 0 || w <= 0 {
		return Measurement{}, newValidationError(NonNumeric, FieldFlags{Height: true, Weight: true})
	}

	h = NormalizeHeight(h)

	if h < config.MinHeightM || h > config.MaxHeightM {
		return Measurement{}, newValidationError(HeightOutOfRange, FieldFlags{Height: true})
	}
	if w < config.MinWeightKg || w > config.MaxWeightKg {
		return Measurement{}, newValidationError(WeightOutOfRange, FieldFlags{Weight: true})
	}

	return Measurement{HeightM: h, WeightKg: w}, nil
}

// IdealWeight returns the reference weight for a height in metres.
func IdealWeight(heightM float64) float64 {
	return config.IdealBMI * heightM * heightM
}

// DeltaMessage describes a signed ideal-weight delta with the default
// strings. A zero delta reads as "below".
func DeltaMessage(deltaKg float64) string {
	if deltaKg > 0 {
		return fmt.Sprintf(config.FallbackDeltaAbove, FormatDeltaKg(deltaKg))
	}
	return fmt.Sprintf(config.FallbackDeltaBelow, FormatDeltaKg(math.Abs(deltaKg)))
}

func (c *Calculator) deltaMessage(deltaKg float64) string {
	if c.FormatDelta == nil {
		return DeltaMessage(deltaKg)
	}
	above := deltaKg > 0
	if msg := c.FormatDelta(math.Abs(deltaKg), above); msg != "" {
		return msg
	}
	return DeltaMessage(deltaKg)
}

// FormatBMI prints a BMI with the display precision.
func FormatBMI(bmi float64) string {
	return strconv.FormatFloat(bmi, 'f', config.BMIDecimals, 64)
}

// FormatDeltaKg prints a delta magnitude with the message precision.
// Ties round away from zero, so 0.25 reads "0.3".
func FormatDeltaKg(deltaKg float64) string {
	return strconv.FormatFloat(roundTo(deltaKg, config.DeltaDecimals), 'f', config.DeltaDecimals, 64)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
