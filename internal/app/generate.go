package app

import (
	"context"
	"fmt"
	"io"

	"paletteai/internal/palette"
	"paletteai/internal/wizard"
)

// GenerateOptions configures a non-interactive run.
type GenerateOptions struct {
	Form     palette.FormInput
	NoExport bool
	Out      io.Writer
}

// RunGenerate drives the wizard without a terminal UI: it fills the form,
// submits it, prints the palette and, unless disabled, exports the PNG.
func RunGenerate(ctx context.Context, services *Services, opts GenerateOptions) error {
	ctrl := wizard.New()
	if err := fillWizard(ctrl, opts.Form); err != nil {
		return err
	}
	if err := ctrl.Generate(ctx, services.Generator); err != nil {
		return err
	}

	PrintPalette(opts.Out, ctrl.Palette(), ctrl.Form())
	if opts.NoExport {
		return nil
	}

	art, err := ctrl.Export(ctx, services.Exporter)
	if err != nil {
		return err
	}
	fmt.Fprintln(opts.Out)
	PrintSaved(opts.Out, art)
	return nil
}

// fillWizard walks the controller to the usage step with form's values.
func fillWizard(ctrl *wizard.Controller, form palette.FormInput) error {
	if err := ValidateForm(form); err != nil {
		return err
	}
	steps := [][]palette.Field{
		{palette.FieldBusinessType, palette.FieldIndustry, palette.FieldAudience},
		{palette.FieldDesignStyle, palette.FieldColorPref},
	}
	for _, fields := range steps {
		for _, f := range fields {
			if err := ctrl.SetField(f, form.Get(f)); err != nil {
				return fmt.Errorf("set %s: %w", f, err)
			}
		}
		if !ctrl.NextStep() {
			return fmt.Errorf("cannot advance past %s: missing %v", wizard.StepNames[ctrl.State().Step], ctrl.Missing())
		}
	}
	seen := make(map[string]bool, len(form.Usage))
	for _, u := range form.Usage {
		if seen[u] {
			continue
		}
		seen[u] = true
		if err := ctrl.ToggleUsage(u); err != nil {
			return fmt.Errorf("set usage %q: %w", u, err)
		}
	}
	return nil
}
