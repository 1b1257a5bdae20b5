package rgb565

import (
	"image/color"
	"testing"
)

func TestInterpolateEndpoints(t *testing.T) {
	colors := []Color{Black, White, Red, Green, Blue, Gray25, New(0x12, 0x34, 0x56), NewAlpha(1, 2, 3, 4)}
	for _, bg := range colors {
		for _, fg := range colors {
			if got := Interpolate(0, bg, fg); got != bg {
				t.Errorf("Interpolate(0, %v, %v) = %v, want bg", bg, fg, got)
			}
			if got := Interpolate(255, bg, fg); got != fg {
				t.Errorf("Interpolate(255, %v, %v) = %v, want fg", bg, fg, got)
			}
		}
	}
}

func TestInterpolate(t *testing.T) {
	tests := []struct {
		name   string
		mix    uint8
		bg, fg Color
		want   Color
	}{
		{"black to white half", 128, Black, White, New(128, 128, 128)},
		{"white to black half", 128, White, Black, New(127, 127, 127)},
		{"white to black one", 1, White, Black, New(254, 254, 254)},
		{"black to white one", 1, Black, White, New(1, 1, 1)},
		{"negative delta truncates", 100, New(200, 10, 0), New(0, 10, 255), New(122, 10, 100)},
		{"negative delta toward bg", 1, New(100, 100, 100), New(0, 50, 99), New(100, 100, 100)},
		{"negative delta odd mix", 77, New(250, 3, 9), New(7, 0, 8), New(177, 3, 9)},
		{"result is opaque", 10, NewAlpha(0, 0, 0, 0), NewAlpha(255, 0, 0, 0), New(10, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interpolate(tt.mix, tt.bg, tt.fg); got != tt.want {
				t.Errorf("Interpolate(%d, %v, %v) = %v, want %v", tt.mix, tt.bg, tt.fg, got, tt.want)
			}
		})
	}
}

func TestInterpolateMonotonic(t *testing.T) {
	prev := Interpolate(0, Black, White)
	for mix := 1; mix <= 255; mix++ {
		c := Interpolate(uint8(mix), Black, White)
		if c.R < prev.R {
			t.Fatalf("Interpolate(%d) = %v, went below %v", mix, c, prev)
		}
		prev = c
	}
}

func TestColorDefaults(t *testing.T) {
	if c := New(1, 2, 3); c.A != Opaque {
		t.Errorf("New alpha = %d, want %d", c.A, Opaque)
	}
	if None.A != Transparent {
		t.Errorf("None alpha = %d, want %d", None.A, Transparent)
	}
	if Gray(0x80) != Gray50 {
		t.Errorf("Gray(0x80) = %v, want %v", Gray(0x80), Gray50)
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  Color
	}{
		{"passthrough", New(1, 2, 3), New(1, 2, 3)},
		{"black", color.Black, Black},
		{"white", color.White, White},
		{"rgba", color.RGBA{0x10, 0x20, 0x30, 0xff}, New(0x10, 0x20, 0x30)},
		{"pixel", Encode(Red), New(0xf8, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Model.Convert(tt.input).(Color); got != tt.want {
				t.Errorf("Model.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
