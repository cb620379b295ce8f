package twinkle

// Apply interprets a single command token against the run state:
//
//	'1'..'9'              cycle duration in seconds
//	'n', 'N'              draw a new randomized pattern
//	r y g c b m p w o x   colour scheme (case-insensitive)
//
// Every token is a complete command; there are no multi-byte sequences.
// Unrecognized tokens change nothing and report false. Digits are the only
// path that writes the cycle duration, which keeps it positive always.
func Apply(tok byte, st *RunState, gen *Generator, lights []Oscillator) bool {
	switch {
	case tok >= '1' && tok <= '9':
		st.SetCycleSeconds(float64(tok - '0'))
		return true
	case tok == 'n' || tok == 'N':
		gen.Randomize(lights)
		return true
	}
	if sc, ok := ParseScheme(tok); ok {
		st.SetScheme(sc)
		return true
	}
	return false
}
