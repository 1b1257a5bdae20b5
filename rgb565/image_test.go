package rgb565

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestNewImage(t *testing.T) {
	tests := []struct {
		name      string
		w, h      int
		wantPanic bool
	}{
		{"100x50", 100, 50, false},
		{"1x1", 1, 1, false},
		{"empty", 0, 0, false},
		{"negative width", -1, 4, true},
		{"negative height", 4, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r != nil, tt.wantPanic)
				}
			}()
			img := NewImage(tt.w, tt.h)
			if img.Width() != tt.w || img.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", img.Width(), img.Height(), tt.w, tt.h)
			}
			if len(img.Pix) != tt.w*tt.h {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.w*tt.h)
			}
		})
	}
}

func TestFromPixelsMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("FromPixels with short data should panic")
		}
	}()
	FromPixels(2, 2, make([]Pixel, 3))
}

func TestImageSetPixel(t *testing.T) {
	img := NewImage(4, 3)
	img.SetPixel(1, 2, Red)
	img.SetPixel(-1, 0, Red)
	img.SetPixel(4, 0, Red)
	img.SetPixel(0, 3, Red)

	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := Encode(Black)
			if x == 1 && y == 2 {
				want = Encode(Red)
			}
			if got := img.PixelAt(x, y); got != want {
				t.Errorf("PixelAt(%d, %d) = %#04x, want %#04x", x, y, got, want)
			}
		}
	}
	if got := img.Pix[2*4+1]; got != Encode(Red) {
		t.Errorf("row-major offset holds %#04x, want red", got)
	}
	if got := img.PixelAt(10, 10); got != 0 {
		t.Errorf("PixelAt outside = %#04x, want 0", got)
	}
}

func TestImageDraw(t *testing.T) {
	img := NewImage(8, 8)
	draw.Draw(img, image.Rect(2, 2, 4, 4), image.NewUniform(color.RGBA{0, 0xff, 0, 0xff}), image.Point{}, draw.Src)

	if got := Decode(img.PixelAt(3, 3)); got != New(0, 0xfc, 0) {
		t.Errorf("At(3, 3) = %v, want green", got)
	}
	if got := Decode(img.PixelAt(4, 4)); got != Black {
		t.Errorf("At(4, 4) = %v, want black", got)
	}
	r, g, b, _ := img.At(2, 2).RGBA()
	if r != 0 || g == 0 || b != 0 {
		t.Errorf("At(2, 2).RGBA() = %x %x %x, want green", r, g, b)
	}
}

func TestImageFill(t *testing.T) {
	img := NewImage(3, 2)
	img.Fill(Blue)
	for i, p := range img.Pix {
		if p != Encode(Blue) {
			t.Fatalf("Pix[%d] = %#04x, want blue", i, p)
		}
	}
}
