package palette

// Swatch is one displayable color: the slot, its hex value and the labels
// derived from the palette's parallel lists.
type Swatch struct {
	Slot       Slot
	Key        string
	Hex        string
	Role       string
	Name       string
	Psychology string
}

// Swatches returns the present colors in canonical slot order. Slots with an
// empty hex are skipped. Index i of the parallel lists always refers to
// Slots[i], whether or not earlier slots were skipped.
func (p Palette) Swatches() []Swatch {
	out := make([]Swatch, 0, len(Slots))
	for i, s := range Slots {
		hex := p.Hex(s)
		if hex == "" {
			continue
		}
		role, name := p.label(i, s)
		sw := Swatch{
			Slot: s,
			Key:  s.Key(),
			Hex:  hex,
			Role: role,
			Name: name,
		}
		if i < len(p.ColorPsychology) {
			sw.Psychology = p.ColorPsychology[i]
		}
		out = append(out, sw)
	}
	return out
}

func (p Palette) label(i int, s Slot) (role, name string) {
	if i < len(p.ColorNamesDetailed) {
		cn := p.ColorNamesDetailed[i]
		role = cn.Role
		if role == "" {
			role = s.DefaultRole()
		}
		return role, cn.Name
	}
	if i < len(p.ColorNames) && p.ColorNames[i] != "" {
		return p.ColorNames[i], ""
	}
	return s.DefaultRole(), ""
}

// WithPsychology filters swatches down to those carrying a psychology note.
func WithPsychology(sw []Swatch) []Swatch {
	var out []Swatch
	for _, s := range sw {
		if s.Psychology != "" {
			out = append(out, s)
		}
	}
	return out
}
