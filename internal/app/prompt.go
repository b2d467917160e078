package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"paletteai/internal/palette"
)

// PromptForm asks for the wizard's fields on the terminal, one group per
// wizard step. Values already set in seed are used as defaults.
func PromptForm(ctx context.Context, seed palette.FormInput) (palette.FormInput, error) {
	form := seed.Clone()
	if err := promptForm(&form).RunWithContext(ctx); err != nil {
		return palette.FormInput{}, err
	}
	if missing := missingFields(form); len(missing) > 0 {
		return palette.FormInput{}, &MissingFieldsError{Fields: missing}
	}
	return form, nil
}

func promptForm(form *palette.FormInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Business Type").
				Options(huh.NewOptions(palette.BusinessTypes...)...).
				Value(&form.BusinessType),
			huh.NewSelect[string]().
				Title("Industry").
				Options(huh.NewOptions(palette.Industries...)...).
				Value(&form.Industry),
			huh.NewInput().
				Title("Target Audience").
				Placeholder("e.g. Young professionals").
				Value(&form.Audience).
				Validate(validateAudience),
		).Title("Business Information"),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Design Style").
				Options(huh.NewOptions(palette.DesignStyles...)...).
				Value(&form.DesignStyle),
			huh.NewSelect[string]().
				Title("Color Preference").
				Options(colorPrefOptions()...).
				Value(&form.ColorPref),
		).Title("Design Preferences"),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Where Will You Use This Palette?").
				Options(huh.NewOptions(palette.Usages...)...).
				Value(&form.Usage),
		).Title("Usage"),
	)
}

func colorPrefOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(palette.ColorPrefs))
	for _, v := range palette.ColorPrefs {
		label := v
		if v == "" {
			label = "No preference"
		}
		opts = append(opts, huh.NewOption(label, v))
	}
	return opts
}

func validateAudience(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("target audience is required")
	}
	return nil
}

// MissingFieldsError lists required form fields that were left empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// missingFields checks the fields both input steps require.
func missingFields(f palette.FormInput) []string {
	return append(f.Missing(0), f.Missing(1)...)
}

// ValidateForm reports the required fields a non-interactive form is missing.
func ValidateForm(f palette.FormInput) error {
	if missing := missingFields(f); len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}
	return nil
}
