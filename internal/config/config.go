package config

import (
	"io/fs"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go BMI"
	AppID       = "com.github.tartampluch.go-bmi"
	LogFileName = "app.log"
	IconFile    = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Measurement Limits & Heuristics
// -----------------------------------------------------------------------------

const (
	// Realistic ranges, inclusive on both ends.
	MinHeightM  = 1.2
	MaxHeightM  = 2.3
	MinWeightKg = 20.0
	MaxWeightKg = 300.0

	// Height unit correction thresholds, applied in this order.
	// >999 reads as millimetres, >10 as centimetres, and anything still >3
	// after the first pass is divided by 100 once more.
	HeightMillimetreThreshold = 999.0
	HeightCentimetreThreshold = 10.0
	HeightResidualThreshold   = 3.0
	MillimetresPerMetre       = 1000.0
	CentimetresPerMetre       = 100.0

	// IdealBMI is the reference index used for the ideal weight (22 * h^2).
	IdealBMI = 22.0

	// Display precision.
	BMIDecimals   = 2
	DeltaDecimals = 1

	// HistoryCapacity bounds the rolling list of past results.
	HistoryCapacity = 5

	DecimalSeparator    = "."
	AltDecimalSeparator = ","
)

// -----------------------------------------------------------------------------
// Classification Bands
// -----------------------------------------------------------------------------

// Lower bounds of each band above the first, ascending. A BMI equal to a
// bound belongs to the upper band.
const (
	BoundNormal     = 18.5
	BoundOverweight = 25.0
	BoundObesityI   = 30.0
	BoundObesityII  = 35.0
	BoundObesityIII = 40.0
)

const (
	LabelUnderweight = "Underweight"
	LabelNormal      = "Normal weight"
	LabelOverweight  = "Overweight"
	LabelObesityI    = "Obesity grade I"
	LabelObesityII   = "Obesity grade II"
	LabelObesityIII  = "Obesity grade III"

	MarkerUnderweight = "🥦"
	MarkerNormal      = "😎"
	MarkerOverweight  = "😅"
	MarkerObesityI    = "😬"
	MarkerObesityII   = "😭⚖️"
	MarkerObesityIII  = "💀⚖️"
)

// -----------------------------------------------------------------------------
// Field Names
// -----------------------------------------------------------------------------

const (
	FieldName   = "name"
	FieldHeight = "height"
	FieldWeight = "weight"
)

// -----------------------------------------------------------------------------
// Input Filtering (Presentation Boundary)
// -----------------------------------------------------------------------------

const (
	MaxHeightChars = 5
	MaxWeightChars = 6

	// AllowedDecimalRunes lists the characters accepted by height/weight inputs.
	AllowedDecimalRunes = "0123456789.,"
)

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 420
	MainWindowHeight = 560

	LayoutColumnsDouble = 2
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle        = "win_title"
	TKeyPhName          = "placeholder_name"
	TKeyPhHeight        = "placeholder_height"
	TKeyPhWeight        = "placeholder_weight"
	TKeyBtnCalculate    = "btn_calculate"
	TKeyBtnClear        = "btn_clear"
	TKeyLblHistory      = "lbl_history"
	TKeyResultHeading   = "result_heading" // Requires Marker, Name, BMI
	TKeyResultClass     = "result_class"   // Requires Label
	TKeyDeltaAbove      = "delta_above"    // Requires Delta
	TKeyDeltaBelow      = "delta_below"    // Requires Delta
	TKeyErrMissing      = "err_missing_fields"
	TKeyErrNonNumeric   = "err_non_numeric"
	TKeyErrHeightRange  = "err_height_range"
	TKeyErrWeightRange  = "err_weight_range"
	TKeyErrFieldInvalid = "err_field_invalid"
)

// -----------------------------------------------------------------------------
// User-Facing Messages & Fallbacks
// -----------------------------------------------------------------------------

const (
	MsgMissingFields = "⚠️ Please fill in all fields correctly!"
	MsgNonNumeric    = "⚠️ Enter valid numeric values only!"
	MsgHeightRange   = "⚠️ Height outside the realistic range (1.2m to 2.3m)"
	MsgWeightRange   = "⚠️ Weight outside the realistic range (20kg to 300kg)"

	FallbackDeltaAbove    = "You are %s kg above ideal weight."
	FallbackDeltaBelow    = "You are %s kg below ideal weight."
	FallbackResultHeading = "%s %s, your BMI is: %s"
	FallbackResultClass   = "Classification: %s"
	FallbackFieldInvalid  = "invalid"

	// FormatHistoryEntry renders name, weight, height, bmi and label.
	FormatHistoryEntry = "%s — %s kg / %s m → BMI: %s (%s)"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrMissingFields = "missing fields"
	ErrNonNumeric    = "non-numeric input"
	ErrHeightRange   = "height out of range"
	ErrWeightRange   = "weight out of range"
	ErrLogFile       = "failed to open log file"
	ErrCacheDir      = "could not determine user cache dir"
	ErrCreateDir     = "could not create app cache dir"
	ErrAppFailed     = "application failed unexpectedly"
	ErrLocalesAccess = "failed to access embedded locales"
	ErrLocaleLoad    = "failed to load locale file"
	ErrUnknownKind   = "unknown validation error"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop       = "Application stopped gracefully"
	MsgAppStarting   = "Starting application"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgComputed      = "BMI computed"
	MsgRejected      = "Input rejected"
	MsgCalcRequested = "Calculation requested"
	MsgCleared       = "Form cleared"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgInputFiltered = "Input filtered"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyKind      = "kind"
	LogKeyFields    = "fields"
	LogKeyBMI       = "bmi"
	LogKeyBand      = "band"
	LogKeyHeight    = "height_m"
	LogKeyWeight    = "weight_kg"
	LogKeyDelta     = "delta_kg"
	LogKeyHistory   = "history_len"
	LogKeyDropped   = "dropped_runes"
	LogKeyDuration  = "duration_us"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompEngine = "engine"
	CompMain   = "main"
	CompI18n   = "i18n"
)

// DefaultLanguage is the only shipped locale.
const DefaultLanguage = "en"
