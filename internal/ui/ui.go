package ui

import (
	_ "embed"
	"errors"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-bmi/internal/config"
	"github.com/tartampluch/go-bmi/internal/engine"
)

//go:embed Icon.png
var appIconData []byte

// BMIApp encapsulates the form widgets and the session state behind them.
type BMIApp struct {
	App        fyne.App
	Window     fyne.Window
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer

	Calc *engine.Calculator

	// Session State. Only Calculate and Clear replace it.
	sessionMut sync.RWMutex
	session    engine.Session

	NameEntry   *widget.Entry
	HeightEntry *DecimalEntry
	WeightEntry *DecimalEntry
	CalcButton  *widget.Button
	ClearButton *widget.Button
	AlertLabel  *widget.Label
	ResultCard  *widget.Card
	HistoryCard *widget.Card
	historyBox  *fyne.Container

	alertText   binding.String
	headingText binding.String
	classText   binding.String
	deltaText   binding.String
}

// NewBMIApp constructs the application and wires dependencies.
func NewBMIApp(a fyne.App) *BMIApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	app := &BMIApp{
		App:         a,
		alertText:   binding.NewString(),
		headingText: binding.NewString(),
		classText:   binding.NewString(),
		deltaText:   binding.NewString(),
	}
	app.Calc = &engine.Calculator{FormatDelta: app.buildDeltaFormatter()}
	return app
}

// Run builds the window and blocks in the UI loop until it closes.
func (app *BMIApp) Run() {
	app.SetupI18n()
	app.BuildMainWindow()
	app.Window.Show()
	app.App.Run()
}

// Session returns a snapshot of the current state.
func (app *BMIApp) Session() engine.Session {
	app.sessionMut.RLock()
	defer app.sessionMut.RUnlock()
	return app.session
}

// BuildMainWindow creates the single form window. SetupI18n must run first
// for labels to be translated.
func (app *BMIApp) BuildMainWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	// --- Inputs ---
	app.NameEntry = widget.NewEntry()
	app.NameEntry.SetPlaceHolder(app.GetMsg(config.TKeyPhName))

	app.HeightEntry = NewDecimalEntry(config.MaxHeightChars)
	app.HeightEntry.SetPlaceHolder(app.GetMsg(config.TKeyPhHeight))

	app.WeightEntry = NewDecimalEntry(config.MaxWeightChars)
	app.WeightEntry.SetPlaceHolder(app.GetMsg(config.TKeyPhWeight))

	// Enter in any field submits the form.
	submit := func(string) { app.Calculate() }
	app.NameEntry.OnSubmitted = submit
	app.HeightEntry.OnSubmitted = submit
	app.WeightEntry.OnSubmitted = submit

	// --- Actions ---
	app.CalcButton = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCalculate), theme.ConfirmIcon(), app.Calculate)
	app.CalcButton.Importance = widget.HighImportance
	app.ClearButton = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnClear), theme.ContentClearIcon(), app.Clear)

	app.AlertLabel = widget.NewLabelWithData(app.alertText)
	app.AlertLabel.Importance = widget.DangerImportance
	app.AlertLabel.Wrapping = fyne.TextWrapWord

	// --- Result ---
	heading := widget.NewLabelWithData(app.headingText)
	heading.TextStyle = fyne.TextStyle{Bold: true}
	heading.Wrapping = fyne.TextWrapWord
	class := widget.NewLabelWithData(app.classText)
	delta := widget.NewLabelWithData(app.deltaText)
	delta.Wrapping = fyne.TextWrapWord
	app.ResultCard = widget.NewCard("", "", container.NewVBox(heading, class, delta))

	// --- History ---
	app.historyBox = container.NewVBox()
	app.HistoryCard = widget.NewCard(app.GetMsg(config.TKeyLblHistory), "", app.historyBox)

	title := widget.NewLabel(app.GetMsg(config.TKeyWinTitle))
	title.Alignment = fyne.TextAlignCenter
	title.TextStyle = fyne.TextStyle{Bold: true}

	content := container.NewPadded(container.NewVBox(
		title,
		app.NameEntry,
		app.HeightEntry,
		app.WeightEntry,
		container.NewGridWithColumns(config.LayoutColumnsDouble, app.CalcButton, app.ClearButton),
		app.AlertLabel,
		app.ResultCard,
		app.HistoryCard,
	))

	w.SetContent(container.NewVScroll(content))
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))
	w.SetMaster()

	app.render(app.Session())
}

// Calculate reads the form and runs the engine on it.
func (app *BMIApp) Calculate() {
	in := engine.RawInputs{
		Name:       app.NameEntry.Text,
		HeightText: app.HeightEntry.Text,
		WeightText: app.WeightEntry.Text,
	}
	slog.Info(config.MsgCalcRequested, config.LogKeyComponent, config.CompUI)

	app.sessionMut.Lock()
	app.session = app.Calc.Calculate(app.session.WithInputs(in))
	s := app.session
	app.sessionMut.Unlock()

	if s.Err != nil {
		slog.Info(config.MsgRejected,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyKind, s.Err.Kind.String(),
			config.LogKeyFields, s.Flags().String(),
		)
	}
	app.render(s)
}

// Clear empties the form, the result and the alert. History is kept.
func (app *BMIApp) Clear() {
	app.sessionMut.Lock()
	app.session = engine.Clear(app.session)
	s := app.session
	app.sessionMut.Unlock()

	app.NameEntry.SetText(s.Inputs.Name)
	app.HeightEntry.SetText(s.Inputs.HeightText)
	app.WeightEntry.SetText(s.Inputs.WeightText)

	slog.Info(config.MsgCleared,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyHistory, len(s.History))
	app.render(s)
}

// render projects a session onto the widgets.
func (app *BMIApp) render(s engine.Session) {
	// Alert line, only while an error exists.
	_ = app.alertText.Set(app.alertMessage(s.Err))
	if s.Err != nil {
		app.AlertLabel.Show()
	} else {
		app.AlertLabel.Hide()
	}

	// Field highlighting.
	flags := s.Flags()
	app.flagEntry(app.NameEntry, flags.Name)
	app.flagEntry(app.HeightEntry, flags.Height)
	app.flagEntry(app.WeightEntry, flags.Weight)

	// Result block, only while a result exists.
	if s.Result != nil {
		_ = app.headingText.Set(app.resultHeading(*s.Result))
		_ = app.classText.Set(app.resultClass(*s.Result))
		_ = app.deltaText.Set(s.Result.DeltaMessage)
		app.ResultCard.Show()
	} else {
		_ = app.headingText.Set("")
		_ = app.classText.Set("")
		_ = app.deltaText.Set("")
		app.ResultCard.Hide()
	}

	// History, newest first, hidden while empty.
	objs := make([]fyne.CanvasObject, 0, len(s.History))
	for _, e := range s.History {
		objs = append(objs, widget.NewLabel(e.String()))
	}
	app.historyBox.Objects = objs
	app.historyBox.Refresh()
	if len(s.History) > 0 {
		app.HistoryCard.Show()
	} else {
		app.HistoryCard.Hide()
	}
}

// validatable is satisfied by widget.Entry and everything embedding it.
type validatable interface {
	SetValidationError(err error)
}

// flagEntry toggles the validation error state used to highlight a field.
func (app *BMIApp) flagEntry(e validatable, flagged bool) {
	if !flagged {
		e.SetValidationError(nil)
		return
	}
	msg := app.GetMsg(config.TKeyErrFieldInvalid)
	if msg == config.TKeyErrFieldInvalid {
		msg = config.FallbackFieldInvalid
	}
	e.SetValidationError(errors.New(msg))
}
