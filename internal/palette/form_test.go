package palette

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleUsage(t *testing.T) {
	tests := []struct {
		name    string
		initial []string
		toggle  string
		want    []string
	}{
		{
			name:    "adds to empty",
			initial: nil,
			toggle:  "Logo",
			want:    []string{"Logo"},
		},
		{
			name:    "adds in canonical order",
			initial: []string{"Website", "Print"},
			toggle:  "App",
			want:    []string{"Website", "App", "Print"},
		},
		{
			name:    "removes present value",
			initial: []string{"Website", "Logo", "Print"},
			toggle:  "Logo",
			want:    []string{"Website", "Print"},
		},
		{
			name:    "removes last value",
			initial: []string{"Marketing"},
			toggle:  "Marketing",
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FormInput{Usage: tt.initial}
			f.ToggleUsage(tt.toggle)
			assert.Equal(t, tt.want, f.Usage)
		})
	}
}

func TestToggleUsage_Involution(t *testing.T) {
	for _, u := range Usages {
		f := FormInput{Usage: []string{"Website", "Business Cards", "Print"}}
		before := append([]string(nil), f.Usage...)

		f.ToggleUsage(u)
		f.ToggleUsage(u)

		assert.Equal(t, before, f.Usage, "toggling %q twice", u)
	}
}

func TestHasUsage(t *testing.T) {
	f := FormInput{Usage: []string{"App"}}
	assert.True(t, f.HasUsage("App"))
	assert.False(t, f.HasUsage("Logo"))
}

func TestMissing(t *testing.T) {
	tests := []struct {
		name string
		form FormInput
		step int
		want []string
	}{
		{"empty step 0", FormInput{}, 0, []string{"businessType", "industry", "audience"}},
		{"audience only missing", FormInput{BusinessType: "Startup", Industry: "Finance"}, 0, []string{"audience"}},
		{"step 0 complete", FormInput{BusinessType: "Startup", Industry: "Finance", Audience: "Gen Z"}, 0, nil},
		{"step 1 needs style", FormInput{ColorPref: "Warm"}, 1, []string{"designStyle"}},
		{"step 1 complete", FormInput{DesignStyle: "Bold"}, 1, nil},
		{"step 2 never blocks", FormInput{}, 2, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.form.Missing(tt.step))
		})
	}
}

func TestFormInput_MarshalUsesArray(t *testing.T) {
	data, err := json.Marshal(FormInput{BusinessType: "Startup"})
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, []interface{}{}, raw["usage"])
	assert.Equal(t, "Startup", raw["businessType"])
	assert.Contains(t, raw, "colorPref")
}

func TestFormInput_SetGet(t *testing.T) {
	var f FormInput
	require.NoError(t, f.Set(FieldAudience, "Parents"))
	assert.Equal(t, "Parents", f.Get(FieldAudience))

	assert.Error(t, f.Set(Field("usage"), "Logo"))
}

func TestFormInput_CloneDoesNotAlias(t *testing.T) {
	f := FormInput{Usage: []string{"Logo"}}
	c := f.Clone()
	c.Usage[0] = "Print"
	assert.Equal(t, "Logo", f.Usage[0])
}
