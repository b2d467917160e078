package palette

import "strings"

// Slot is one of the eight color roles in canonical order.
type Slot int

const (
	SlotPrimary Slot = iota
	SlotSecondary
	SlotAccent
	SlotNeutral
	SlotBackground
	SlotHighlight
	SlotMuted
	SlotSuccess
)

// Slots lists every slot in canonical order.
var Slots = []Slot{
	SlotPrimary, SlotSecondary, SlotAccent, SlotNeutral,
	SlotBackground, SlotHighlight, SlotMuted, SlotSuccess,
}

var slotKeys = [...]string{"primary", "secondary", "accent", "neutral", "background", "highlight", "muted", "success"}

// Key returns the wire key of the slot, e.g. "primary".
func (s Slot) Key() string {
	if s < 0 || int(s) >= len(slotKeys) {
		return ""
	}
	return slotKeys[s]
}

// DefaultRole is the capitalized key, used when the service sends no role label.
func (s Slot) DefaultRole() string {
	k := s.Key()
	if k == "" {
		return ""
	}
	return strings.ToUpper(k[:1]) + k[1:]
}

func (s Slot) String() string { return s.DefaultRole() }

// ColorName pairs a role label with a human color name.
type ColorName struct {
	Role string `json:"role" yaml:"role"`
	Name string `json:"name" yaml:"name"`
}

// Palette is the generation service's result, decoded verbatim. Callers treat
// it as immutable once received.
type Palette struct {
	Primary            string      `json:"primary" yaml:"primary"`
	Secondary          string      `json:"secondary" yaml:"secondary"`
	Accent             string      `json:"accent" yaml:"accent"`
	Neutral            string      `json:"neutral" yaml:"neutral"`
	Background         string      `json:"background" yaml:"background"`
	Highlight          string      `json:"highlight" yaml:"highlight"`
	Muted              string      `json:"muted" yaml:"muted"`
	Success            string      `json:"success" yaml:"success"`
	FontSuggestion     string      `json:"fontSuggestion" yaml:"fontSuggestion"`
	ColorNamesDetailed []ColorName `json:"colorNamesDetailed,omitempty" yaml:"colorNamesDetailed,omitempty"`
	ColorNames         []string    `json:"colorNames,omitempty" yaml:"colorNames,omitempty"`
	ColorPsychology    []string    `json:"colorPsychology,omitempty" yaml:"colorPsychology,omitempty"`
}

// Hex returns the raw value stored for a slot.
func (p Palette) Hex(s Slot) string {
	switch s {
	case SlotPrimary:
		return p.Primary
	case SlotSecondary:
		return p.Secondary
	case SlotAccent:
		return p.Accent
	case SlotNeutral:
		return p.Neutral
	case SlotBackground:
		return p.Background
	case SlotHighlight:
		return p.Highlight
	case SlotMuted:
		return p.Muted
	case SlotSuccess:
		return p.Success
	}
	return ""
}

// Clone returns a deep copy of the palette.
func (p Palette) Clone() Palette {
	out := p
	out.ColorNamesDetailed = append([]ColorName(nil), p.ColorNamesDetailed...)
	out.ColorNames = append([]string(nil), p.ColorNames...)
	out.ColorPsychology = append([]string(nil), p.ColorPsychology...)
	return out
}

// IsEmpty reports whether no slot carries a color.
func (p Palette) IsEmpty() bool {
	for _, s := range Slots {
		if p.Hex(s) != "" {
			return false
		}
	}
	return true
}
