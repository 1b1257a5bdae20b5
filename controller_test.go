package tft

import (
	"testing"

	"github.com/flavioheleno/tft/gfx"
)

func TestControllers(t *testing.T) {
	for name, c := range Controllers {
		if c.Name != name || c.String() != name {
			t.Errorf("controller %q named %q", name, c)
		}
		if c.W >= c.H {
			t.Errorf("%s: %dx%d is not portrait", c, c.W, c.H)
		}
		seen := map[byte]bool{}
		for _, b := range c.MADCTL {
			if seen[b] {
				t.Errorf("%s: MADCTL %#02x used twice", c, b)
			}
			seen[b] = true
		}
	}
}

func TestScript(t *testing.T) {
	for _, tc := range []struct {
		c    *Controller
		r    gfx.Rotation
		tail []byte
	}{
		{ST7796, gfx.Landscape, []byte{cmdMADCTL, cmdDISPON}},
		{ILI9341, gfx.Portrait2, []byte{cmdMADCTL, cmdRGBSET, cmdDISPON}},
	} {
		s := tc.c.script(tc.r)
		if len(s) != len(tc.c.Init)+len(tc.tail) {
			t.Fatalf("%s: %d steps", tc.c, len(s))
		}
		for i, cmd := range tc.tail {
			if got := s[len(tc.c.Init)+i].Cmd; got != cmd {
				t.Errorf("%s: step %d = %#02x, want %#02x", tc.c, len(tc.c.Init)+i, got, cmd)
			}
		}
		if got := s[len(tc.c.Init)].Data[0]; got != tc.c.MADCTL[tc.r] {
			t.Errorf("%s: MADCTL %#02x for %s", tc.c, got, tc.r)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("invalid rotation did not panic")
		}
	}()
	ST7796.madctl(4)
}

func TestRGBLUT(t *testing.T) {
	lut := ILI9341.ColorLUT
	if len(lut) != 128 {
		t.Fatalf("len = %d, want 128", len(lut))
	}
	for _, tc := range []struct {
		i    int
		want byte
	}{
		{0, 0},     // red
		{1, 2},     // red
		{16, 0x21}, // red
		{31, 0x3f}, // red
		{32, 0},    // green
		{95, 0x3f}, // green
		{96, 0},    // blue
		{127, 0x3f},
	} {
		if lut[tc.i] != tc.want {
			t.Errorf("lut[%d] = %#02x, want %#02x", tc.i, lut[tc.i], tc.want)
		}
	}
}
