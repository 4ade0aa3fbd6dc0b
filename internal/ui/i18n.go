package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-bmi/internal/config"
	"github.com/tartampluch/go-bmi/internal/engine"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n loads the embedded message catalogue.
func (app *BMIApp) SetupI18n() {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, "active."), ".json")
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	app.I18nBundle = bundle
	app.Localizer = i18n.NewLocalizer(bundle, config.DefaultLanguage)
}

// GetMsg is a helper to translate a key safely. It returns the key itself
// when no translation exists.
func (app *BMIApp) GetMsg(key string) string {
	return app.localize(key, nil)
}

// localize renders a templated message, or "" when unavailable.
func (app *BMIApp) localize(key string, data map[string]interface{}) string {
	if app.Localizer == nil {
		if data == nil {
			return key
		}
		return ""
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		if data == nil {
			return key
		}
		return ""
	}
	return msg
}

// buildDeltaFormatter returns a closure that localizes the ideal-weight message.
// An empty string tells the engine to use its default wording.
func (app *BMIApp) buildDeltaFormatter() func(deltaKg float64, above bool) string {
	return func(deltaKg float64, above bool) string {
		key := config.TKeyDeltaBelow
		if above {
			key = config.TKeyDeltaAbove
		}
		return app.localize(key, map[string]interface{}{"Delta": engine.FormatDeltaKg(deltaKg)})
	}
}

// alertMessage returns the localized alert for a validation failure.
func (app *BMIApp) alertMessage(err *engine.ValidationError) string {
	if err == nil {
		return ""
	}

	var key string
	switch err.Kind {
	case engine.MissingFields:
		key = config.TKeyErrMissing
	case engine.NonNumeric:
		key = config.TKeyErrNonNumeric
	case engine.HeightOutOfRange:
		key = config.TKeyErrHeightRange
	case engine.WeightOutOfRange:
		key = config.TKeyErrWeightRange
	default:
		return err.Message
	}

	if msg := app.GetMsg(key); msg != key {
		return msg
	}
	return err.Message
}

// resultHeading renders "marker name, your BMI is: x".
func (app *BMIApp) resultHeading(r engine.BmiResult) string {
	bmi := engine.FormatBMI(r.BMI)
	msg := app.localize(config.TKeyResultHeading, map[string]interface{}{
		"Marker": r.Marker(),
		"Name":   r.Name,
		"BMI":    bmi,
	})
	if msg == "" {
		return fmt.Sprintf(config.FallbackResultHeading, r.Marker(), r.Name, bmi)
	}
	return msg
}

// resultClass renders "Classification: label".
func (app *BMIApp) resultClass(r engine.BmiResult) string {
	msg := app.localize(config.TKeyResultClass, map[string]interface{}{"Label": r.Band.Label})
	if msg == "" {
		return fmt.Sprintf(config.FallbackResultClass, r.Band.Label)
	}
	return msg
}
