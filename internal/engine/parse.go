package engine

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/tartampluch/go-bmi/internal/config"
)

// leadingDecimal matches the longest decimal literal at the start of a string.
var leadingDecimal = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseDecimal reads a number typed with either '.' or ',' as the decimal
// separator. Like a lenient form field, it parses the leading numeric prefix
// and ignores trailing garbage, so "1,75" and "1.75.3" both yield 1.75.
// It reports false when no number starts the text.
func ParseDecimal(text string) (float64, bool) {
	s := strings.ReplaceAll(text, config.AltDecimalSeparator, config.DecimalSeparator)
	s = strings.TrimLeft(s, " \t\r\n")

	lit := leadingDecimal.FindString(s)
	if lit == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return v, true
}

// NormalizeHeight turns a height typed in millimetres or centimetres into
// metres. It is a best-effort heuristic, not a unit parser:
//
//	> 999  -> divide by 1000  ("1780" -> 1.78)
//	> 10   -> divide by 100   ("175"  -> 1.75)
//	then, if still > 3, divide by 100 again ("3.5" -> 0.035)
//
// Values already in metres ("1.75") pass through untouched.
func NormalizeHeight(h float64) float64 {
	if h > config.HeightMillimetreThreshold {
		h /= config.MillimetresPerMetre
	} else if h > config.HeightCentimetreThreshold {
		h /= config.CentimetresPerMetre
	}

	if h > config.HeightResidualThreshold {
		h /= config.CentimetresPerMetre
	}
	return h
}
