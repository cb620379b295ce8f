package twinkle_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/peter-bloomfield/arduino-christmas-lights/internal/twinkle"
)

var allSchemes = []Scheme{
	SchemeRed, SchemeYellow, SchemeGreen, SchemeCyan, SchemeBlue,
	SchemeMagenta, SchemePurple, SchemeWhite, SchemeOffWhite, SchemeXmas,
}

var TestTokenMapsToScheme = []struct {
	Tok    byte
	Expect Scheme
	OK     bool
}{
	{'r', SchemeRed, true},
	{'R', SchemeRed, true},
	{'y', SchemeYellow, true},
	{'g', SchemeGreen, true},
	{'c', SchemeCyan, true},
	{'b', SchemeBlue, true},
	{'m', SchemeMagenta, true},
	{'p', SchemePurple, true},
	{'P', SchemePurple, true},
	{'w', SchemeWhite, true},
	{'o', SchemeOffWhite, true},
	{'x', SchemeXmas, true},
	{'X', SchemeXmas, true},
	{'z', 0, false},
	{'5', 0, false},
	{' ', 0, false},
}

func TestParseScheme(t *testing.T) {
	for k, v := range TestTokenMapsToScheme {
		t.Run("Given token "+strconv.Itoa(k), func(t *testing.T) {
			sc, ok := ParseScheme(v.Tok)
			assert.Equal(t, v.OK, ok)
			if v.OK {
				assert.Equal(t, v.Expect, sc)
			}
		})
	}
}

var TestFullBrightnessTriples = []struct {
	Scheme  Scheme
	Index   int
	R, G, B byte
}{
	{SchemeRed, 0, 255, 0, 0},
	{SchemeYellow, 0, 255, 255, 0},
	{SchemeGreen, 0, 0, 255, 0},
	{SchemeCyan, 0, 0, 255, 255},
	{SchemeBlue, 0, 0, 0, 255},
	{SchemeMagenta, 0, 255, 0, 255},
	{SchemePurple, 0, 127, 0, 255},
	{SchemeWhite, 0, 255, 255, 255},
	{SchemeOffWhite, 0, 255, 178, 89},
	{SchemeXmas, 0, 255, 0, 0},
	{SchemeXmas, 1, 0, 255, 0},
	{SchemeXmas, 2, 255, 0, 0},
	{SchemeXmas, 3, 0, 255, 0},
}

func TestMapAtFullBrightness(t *testing.T) {
	for k, v := range TestFullBrightnessTriples {
		t.Run("Given scheme "+strconv.Itoa(k), func(t *testing.T) {
			r, g, b := v.Scheme.Map(1.0, v.Index)
			assert.Equal(t, v.R, r, "red channel")
			assert.Equal(t, v.G, g, "green channel")
			assert.Equal(t, v.B, b, "blue channel")
		})
	}
}

func TestMapClampsFraction(t *testing.T) {
	for _, s := range allSchemes {
		r, g, b := s.Map(-0.5, 0)
		assert.Equal(t, byte(0), r, s.String())
		assert.Equal(t, byte(0), g, s.String())
		assert.Equal(t, byte(0), b, s.String())

		r1, g1, b1 := s.Map(1.0, 0)
		r2, g2, b2 := s.Map(1.5, 0)
		assert.Equal(t, r1, r2, s.String())
		assert.Equal(t, g1, g2, s.String())
		assert.Equal(t, b1, b2, s.String())
	}
}

// Every channel must be monotonically non-decreasing in the brightness
// fraction, for every scheme and both index parities.
func TestMapMonotonic(t *testing.T) {
	for _, s := range allSchemes {
		for index := 0; index < 2; index++ {
			var pr, pg, pb byte
			for i := 0; i <= 100; i++ {
				f := float64(i) / 100
				r, g, b := s.Map(f, index)
				if r < pr || g < pg || b < pb {
					t.Fatalf("%s idx=%d: channel decreased at f=%.2f: (%d,%d,%d) after (%d,%d,%d)",
						s, index, f, r, g, b, pr, pg, pb)
				}
				pr, pg, pb = r, g, b
			}
		}
	}
}

func TestSchemeByName(t *testing.T) {
	for _, s := range allSchemes {
		got, ok := SchemeByName(s.String())
		assert.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}
	_, ok := SchemeByName("plaid")
	assert.False(t, ok)
}
