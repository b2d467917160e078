package model

import (
	"paletteai/internal/palette"
	"paletteai/internal/wizard"
)

// FieldKind selects how a form field is edited and drawn.
type FieldKind int

const (
	// KindSelect cycles through Options with ←/→.
	KindSelect FieldKind = iota
	// KindText is the free-text audience input.
	KindText
	// KindGrid is a select drawn as a grid of options.
	KindGrid
	// KindToggleGrid is the multi-select usage grid; ←/→ moves the cursor
	// and space toggles.
	KindToggleGrid
)

// FieldUsage names the usage multi-select, which has no palette.Field.
const FieldUsage palette.Field = "usage"

// FormField describes one control on an input step.
type FormField struct {
	Field   palette.Field
	Label   string
	Kind    FieldKind
	Options []string
	// Placeholder is shown while the value is empty.
	Placeholder string
}

// StepFields lists the controls of each input step in focus order.
var StepFields = [][]FormField{
	wizard.StepBusiness: {
		{Field: palette.FieldBusinessType, Label: "Business Type", Kind: KindSelect, Options: palette.BusinessTypes, Placeholder: "Select..."},
		{Field: palette.FieldIndustry, Label: "Industry", Kind: KindSelect, Options: palette.Industries, Placeholder: "Select..."},
		{Field: palette.FieldAudience, Label: "Target Audience", Kind: KindText},
	},
	wizard.StepDesign: {
		{Field: palette.FieldDesignStyle, Label: "Design Style", Kind: KindGrid, Options: palette.DesignStyles, Placeholder: "Select..."},
		{Field: palette.FieldColorPref, Label: "Color Preference", Kind: KindSelect, Options: palette.ColorPrefs},
	},
	wizard.StepUsage: {
		{Field: FieldUsage, Label: "Where Will You Use This Palette?", Kind: KindToggleGrid, Options: palette.Usages},
	},
}

// StepTitles heads each input step.
var StepTitles = []string{"Business Information", "Design Preferences", "Where Will You Use This Palette?"}

// OptionLabel is the display text of a select option.
func OptionLabel(f FormField, value string) string {
	if value == "" {
		if f.Field == palette.FieldColorPref {
			return "No preference"
		}
		return f.Placeholder
	}
	return value
}

// CurrentFields returns the controls of the active input step, or nil on the
// result step.
func (m *Model) CurrentFields() []FormField {
	st := m.Wizard.State()
	if st.ResultVisible || st.Step >= len(StepFields) {
		return nil
	}
	return StepFields[st.Step]
}

// FocusedField returns the control that has keyboard focus.
func (m *Model) FocusedField() (FormField, bool) {
	fields := m.CurrentFields()
	if len(fields) == 0 {
		return FormField{}, false
	}
	if m.FocusIndex < 0 || m.FocusIndex >= len(fields) {
		m.FocusIndex = 0
	}
	return fields[m.FocusIndex], true
}

// FocusNext moves focus forward, wrapping around.
func (m *Model) FocusNext() { m.moveFocus(1) }

// FocusPrev moves focus backward, wrapping around.
func (m *Model) FocusPrev() { m.moveFocus(-1) }

func (m *Model) moveFocus(delta int) {
	fields := m.CurrentFields()
	if len(fields) == 0 {
		return
	}
	m.FocusIndex = (m.FocusIndex + delta + len(fields)) % len(fields)
	m.OptionCursor = 0
	m.syncFocus()
}

// ResetFocus puts focus on the first control of the current step.
func (m *Model) ResetFocus() {
	m.FocusIndex = 0
	m.OptionCursor = 0
	m.syncFocus()
}

// syncFocus keeps the audience input's text in line with the form and
// focuses it only while it is the active control.
func (m *Model) syncFocus() {
	m.AudienceInput.SetValue(m.Wizard.Form().Audience)
	f, ok := m.FocusedField()
	if ok && f.Kind == KindText {
		m.AudienceInput.CursorEnd()
		m.AudienceInput.Focus()
		return
	}
	m.AudienceInput.Blur()
}

// CycleOption moves the focused select to the next (delta > 0) or previous
// option. From an empty value the first step lands on the first or last
// option.
func (m *Model) CycleOption(delta int) error {
	f, ok := m.FocusedField()
	if !ok {
		return nil
	}
	switch f.Kind {
	case KindSelect, KindGrid:
		current := m.Wizard.Form().Get(f.Field)
		idx := indexOf(f.Options, current)
		n := len(f.Options)
		switch {
		case idx < 0 && delta > 0:
			idx = 0
		case idx < 0:
			idx = n - 1
		default:
			idx = ((idx+delta)%n + n) % n
		}
		m.OptionCursor = idx
		return m.Wizard.SetField(f.Field, f.Options[idx])
	case KindToggleGrid:
		n := len(f.Options)
		m.OptionCursor = ((m.OptionCursor+delta)%n + n) % n
	}
	return nil
}

// ToggleAtCursor flips the usage under the cursor.
func (m *Model) ToggleAtCursor() error {
	f, ok := m.FocusedField()
	if !ok || f.Kind != KindToggleGrid {
		return nil
	}
	if m.OptionCursor < 0 || m.OptionCursor >= len(f.Options) {
		m.OptionCursor = 0
	}
	return m.Wizard.ToggleUsage(f.Options[m.OptionCursor])
}

func indexOf(options []string, v string) int {
	for i, o := range options {
		if o == v {
			return i
		}
	}
	return -1
}
