package gfx

import "testing"

func TestDims(t *testing.T) {
	for _, tc := range []struct {
		physW, physH int
		r            Rotation
		w, h         int
	}{
		{320, 480, Portrait, 320, 480},
		{320, 480, Landscape, 480, 320},
		{320, 480, Portrait2, 320, 480},
		{320, 480, Landscape2, 480, 320},
		{480, 320, Portrait, 320, 480},
		{480, 320, Landscape, 480, 320},
		{240, 240, Landscape, 240, 240},
	} {
		w, h := Dims(tc.physW, tc.physH, tc.r)
		if w != tc.w || h != tc.h {
			t.Errorf("Dims(%d, %d, %s) = %d, %d, want %d, %d", tc.physW, tc.physH, tc.r, w, h, tc.w, tc.h)
		}
		if tc.r.Landscape() && w < h || !tc.r.Landscape() && w > h {
			t.Errorf("Dims(%d, %d, %s) = %d, %d has the wrong aspect", tc.physW, tc.physH, tc.r, w, h)
		}
	}
}

func TestParseRotation(t *testing.T) {
	for r := Portrait; r <= Landscape2; r++ {
		got, err := ParseRotation(r.String())
		if err != nil || got != r {
			t.Errorf("ParseRotation(%q) = %v, %v", r.String(), got, err)
		}
	}
	if _, err := ParseRotation("sideways"); err == nil {
		t.Error("ParseRotation(sideways) succeeded")
	}
	if Rotation(4).Valid() {
		t.Error("Rotation(4) is valid")
	}
}
