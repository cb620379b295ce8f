package twinkle

// Scheme selects how a light's brightness maps onto its RGB channels.
// The set is closed; dispatch is a plain switch rather than an interface.
type Scheme uint8

const (
	SchemeRed Scheme = iota
	SchemeYellow
	SchemeGreen
	SchemeCyan
	SchemeBlue
	SchemeMagenta
	SchemePurple
	SchemeWhite
	SchemeOffWhite
	SchemeXmas
)

var schemeNames = map[Scheme]string{
	SchemeRed:      "red",
	SchemeYellow:   "yellow",
	SchemeGreen:    "green",
	SchemeCyan:     "cyan",
	SchemeBlue:     "blue",
	SchemeMagenta:  "magenta",
	SchemePurple:   "purple",
	SchemeWhite:    "white",
	SchemeOffWhite: "offwhite",
	SchemeXmas:     "xmas",
}

func (s Scheme) String() string {
	if n, ok := schemeNames[s]; ok {
		return n
	}
	return "unknown"
}

// SchemeByName resolves a config name like "xmas" to its scheme.
func SchemeByName(name string) (Scheme, bool) {
	for s, n := range schemeNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// ParseScheme maps a command letter to its scheme, case-insensitively.
func ParseScheme(tok byte) (Scheme, bool) {
	if tok >= 'A' && tok <= 'Z' {
		tok += 'a' - 'A'
	}
	switch tok {
	case 'r':
		return SchemeRed, true
	case 'y':
		return SchemeYellow, true
	case 'g':
		return SchemeGreen, true
	case 'c':
		return SchemeCyan, true
	case 'b':
		return SchemeBlue, true
	case 'm':
		return SchemeMagenta, true
	case 'p':
		return SchemePurple, true
	case 'w':
		return SchemeWhite, true
	case 'o':
		return SchemeOffWhite, true
	case 'x':
		return SchemeXmas, true
	}
	return 0, false
}

// level quantizes a brightness fraction to one channel byte. Fractions are
// truncated rather than rounded so every channel quantizes identically.
func level(f float64) byte {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return byte(f * 255)
}

// Map converts one light's brightness fraction into an RGB triple. The
// light index only matters for SchemeXmas, which alternates pure red and
// pure green down the chain. Pure function; the render loop re-evaluates
// it every frame for every light.
func (s Scheme) Map(f float64, index int) (r, g, b byte) {
	v := level(f)
	switch s {
	case SchemeRed:
		return v, 0, 0
	case SchemeYellow:
		return v, v, 0
	case SchemeGreen:
		return 0, v, 0
	case SchemeCyan:
		return 0, v, v
	case SchemeBlue:
		return 0, 0, v
	case SchemeMagenta:
		return v, 0, v
	case SchemePurple:
		return level(f * 0.5), 0, v
	case SchemeWhite:
		return v, v, v
	case SchemeOffWhite:
		return v, level(f * 0.7), level(f * 0.35)
	case SchemeXmas:
		if index%2 == 0 {
			return v, 0, 0
		}
		return 0, v, 0
	}
	return 0, 0, 0
}
