package ui

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-bmi/internal/config"
)

// DecimalEntry is a custom Entry widget that only accepts digits and the two
// decimal separators ('.' and ','), up to MaxChars characters.
// It embeds widget.Entry to inherit all standard behavior.
type DecimalEntry struct {
	widget.Entry

	// MaxChars caps the text length in runes. Zero means unlimited.
	MaxChars int
}

// NewDecimalEntry creates a new instance of DecimalEntry.
func NewDecimalEntry(maxChars int) *DecimalEntry {
	entry := &DecimalEntry{MaxChars: maxChars}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
func (e *DecimalEntry) TypedRune(r rune) {
	if !strings.ContainsRune(config.AllowedDecimalRunes, r) {
		return
	}
	if e.MaxChars > 0 && utf8.RuneCountInString(e.Text) >= e.MaxChars {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedShortcut filters pasted text through the same rules as typing.
// Other shortcuts (copy, select all, ...) keep their default behavior.
func (e *DecimalEntry) TypedShortcut(s fyne.Shortcut) {
	paste, ok := s.(*fyne.ShortcutPaste)
	if !ok || paste.Clipboard == nil {
		e.Entry.TypedShortcut(s)
		return
	}

	room := 0
	if e.MaxChars > 0 {
		room = e.MaxChars - utf8.RuneCountInString(e.Text)
		if room <= 0 {
			return
		}
	}
	raw := paste.Clipboard.Content()
	clean := FilterDecimal(raw, room)
	if clean != raw {
		slog.Debug(config.MsgInputFiltered,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyDropped, utf8.RuneCountInString(raw)-utf8.RuneCountInString(clean),
		)
	}
	for _, r := range clean {
		e.Entry.TypedRune(r)
	}
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a decimal keypad is shown.
func (e *DecimalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// FilterDecimal applies the DecimalEntry rules to arbitrary text: it drops
// every disallowed character and truncates to maxChars runes (0 = no cap).
func FilterDecimal(s string, maxChars int) string {
	var b strings.Builder
	n := 0
	for _, r := range s {
		if !strings.ContainsRune(config.AllowedDecimalRunes, r) {
			continue
		}
		if maxChars > 0 && n >= maxChars {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
