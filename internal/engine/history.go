package engine

import (
	"fmt"
	"strconv"

	"github.com/tartampluch/go-bmi/internal/config"
)

// HistoryEntry is a frozen snapshot of one successful computation.
type HistoryEntry struct {
	Name     string
	HeightM  float64
	WeightKg float64
	BMI      float64 // Rounded, as displayed.
	Label    string
}

// String renders the entry as a single history line.
func (e HistoryEntry) String() string {
	return fmt.Sprintf(config.FormatHistoryEntry,
		e.Name,
		formatPlain(e.WeightKg),
		formatPlain(e.HeightM),
		FormatBMI(e.BMI),
		e.Label,
	)
}

// History is ordered newest first and never holds more than
// config.HistoryCapacity entries once it has passed through Push.
type History []HistoryEntry

// Push returns a new history with e prepended and the oldest entries beyond
// capacity dropped. The receiver is not modified.
func (h History) Push(e HistoryEntry) History {
	n := min(len(h)+1, config.HistoryCapacity)
	out := make(History, 0, n)
	out = append(out, e)
	return append(out, h[:n-1]...)
}

// formatPlain prints the shortest representation that round-trips.
func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
