package palette

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Option lists offered by the wizard. Usages also defines the canonical order
// of FormInput.Usage.
var (
	BusinessTypes = []string{"Startup", "Small Business", "Corporate", "Non-Profit", "Personal Brand"}
	Industries    = []string{"Technology", "Healthcare", "Finance", "Education", "Food & Beverage", "Fashion & Beauty", "Other"}
	DesignStyles  = []string{"Modern", "Minimalist", "Bold", "Elegant", "Playful", "Corporate"}
	ColorPrefs    = []string{"", "Warm", "Cool", "Neutral"}
	Usages        = []string{"Website", "Logo", "Marketing", "Business Cards", "App", "Print"}
)

// Field identifies one editable FormInput field.
type Field string

const (
	FieldBusinessType Field = "businessType"
	FieldIndustry     Field = "industry"
	FieldAudience     Field = "audience"
	FieldDesignStyle  Field = "designStyle"
	FieldColorPref    Field = "colorPref"
)

// FormInput is the user's answers across the three input steps. The zero
// value is the empty form.
type FormInput struct {
	BusinessType string   `json:"businessType" yaml:"businessType"`
	Industry     string   `json:"industry" yaml:"industry"`
	Audience     string   `json:"audience" yaml:"audience"`
	DesignStyle  string   `json:"designStyle" yaml:"designStyle"`
	ColorPref    string   `json:"colorPref" yaml:"colorPref"`
	Usage        []string `json:"usage" yaml:"usage"`
}

// MarshalJSON always encodes usage as an array, never null.
func (f FormInput) MarshalJSON() ([]byte, error) {
	type plain FormInput
	out := plain(f)
	if out.Usage == nil {
		out.Usage = []string{}
	}
	return json.Marshal(out)
}

// Set assigns a single text field.
func (f *FormInput) Set(field Field, value string) error {
	switch field {
	case FieldBusinessType:
		f.BusinessType = value
	case FieldIndustry:
		f.Industry = value
	case FieldAudience:
		f.Audience = value
	case FieldDesignStyle:
		f.DesignStyle = value
	case FieldColorPref:
		f.ColorPref = value
	default:
		return fmt.Errorf("unknown form field %q", field)
	}
	return nil
}

// Get returns the value of a single text field.
func (f FormInput) Get(field Field) string {
	switch field {
	case FieldBusinessType:
		return f.BusinessType
	case FieldIndustry:
		return f.Industry
	case FieldAudience:
		return f.Audience
	case FieldDesignStyle:
		return f.DesignStyle
	case FieldColorPref:
		return f.ColorPref
	}
	return ""
}

// HasUsage reports whether v is among the selected usages.
func (f FormInput) HasUsage(v string) bool {
	for _, u := range f.Usage {
		if u == v {
			return true
		}
	}
	return false
}

// ToggleUsage adds v when absent and removes it when present. The result is
// kept in canonical order, so toggling the same value twice restores the
// original slice contents.
func (f *FormInput) ToggleUsage(v string) {
	next := make([]string, 0, len(f.Usage)+1)
	found := false
	for _, u := range f.Usage {
		if u == v {
			found = true
			continue
		}
		next = append(next, u)
	}
	if !found {
		next = append(next, v)
	}
	sortUsages(next)
	f.Usage = next
}

// Clone returns a deep copy so callers cannot alias the usage slice.
func (f FormInput) Clone() FormInput {
	out := f
	if f.Usage != nil {
		out.Usage = append([]string(nil), f.Usage...)
	}
	return out
}

// Missing lists the required fields that are still empty for an input step.
// Step 0 needs business type, industry and audience; step 1 needs a design
// style. Step 2 has no required fields.
func (f FormInput) Missing(step int) []string {
	var missing []string
	switch step {
	case 0:
		if f.BusinessType == "" {
			missing = append(missing, string(FieldBusinessType))
		}
		if f.Industry == "" {
			missing = append(missing, string(FieldIndustry))
		}
		if f.Audience == "" {
			missing = append(missing, string(FieldAudience))
		}
	case 1:
		if f.DesignStyle == "" {
			missing = append(missing, string(FieldDesignStyle))
		}
	}
	return missing
}

// usageRank orders unknown values after the canonical ones.
func usageRank(v string) int {
	for i, u := range Usages {
		if u == v {
			return i
		}
	}
	return len(Usages)
}

func sortUsages(us []string) {
	sort.SliceStable(us, func(i, j int) bool {
		ri, rj := usageRank(us[i]), usageRank(us[j])
		if ri != rj {
			return ri < rj
		}
		return us[i] < us[j]
	})
}
