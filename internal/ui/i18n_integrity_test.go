package ui_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-bmi/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in the locale JSON file.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyWinTitle,
		config.TKeyPhName,
		config.TKeyPhHeight,
		config.TKeyPhWeight,
		config.TKeyBtnCalculate,
		config.TKeyBtnClear,
		config.TKeyLblHistory,
		config.TKeyResultHeading,
		config.TKeyResultClass,
		config.TKeyDeltaAbove,
		config.TKeyDeltaBelow,
		config.TKeyErrMissing,
		config.TKeyErrNonNumeric,
		config.TKeyErrHeightRange,
		config.TKeyErrWeightRange,
		config.TKeyErrFieldInvalid,
	}

	definedKeys := make(map[string]bool)
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	// Adjust path if running test from internal/ui or root
	path := "locales/active.en.json"
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		path = filepath.Join("..", "..", "internal", "ui", "locales", "active.en.json")
		content, err = os.ReadFile(path)
	}
	require.NoError(t, err, "Must load active.en.json")

	var jsonMap map[string]interface{}
	require.NoError(t, json.Unmarshal(content, &jsonMap), "JSON must be valid")

	for key := range definedKeys {
		_, exists := jsonMap[key]
		assert.Truef(t, exists, "Key '%s' defined in config.go is missing in active.en.json", key)
	}

	// Orphan keys exist in JSON but nowhere in Go.
	for jsonKey := range jsonMap {
		if strings.HasPrefix(jsonKey, "_") {
			continue
		}
		assert.Truef(t, definedKeys[jsonKey], "Key '%s' in active.en.json is not referenced by config.go", jsonKey)
	}
}

// TestI18nAlertsMatchEngine keeps the catalogue and the engine's fallback
// alerts in sync.
func TestI18nAlertsMatchEngine(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("locales", "active.en.json"))
	require.NoError(t, err)

	var jsonMap map[string]string
	require.NoError(t, json.Unmarshal(content, &jsonMap))

	assert.Equal(t, config.MsgMissingFields, jsonMap[config.TKeyErrMissing])
	assert.Equal(t, config.MsgNonNumeric, jsonMap[config.TKeyErrNonNumeric])
	assert.Equal(t, config.MsgHeightRange, jsonMap[config.TKeyErrHeightRange])
	assert.Equal(t, config.MsgWeightRange, jsonMap[config.TKeyErrWeightRange])
	assert.Equal(t, config.FallbackFieldInvalid, jsonMap[config.TKeyErrFieldInvalid])
}
