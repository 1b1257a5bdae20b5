package gfx

import "fmt"

// Rotation is the orientation of a panel, clockwise from its native portrait
// orientation.
type Rotation uint8

const (
	Portrait Rotation = iota
	Landscape
	Portrait2 // portrait, upside down
	Landscape2
)

// Landscape reports whether r is one of the landscape orientations.
func (r Rotation) Landscape() bool {
	return r == Landscape || r == Landscape2
}

// Valid reports whether r is one of the four orientations.
func (r Rotation) Valid() bool {
	return r <= Landscape2
}

func (r Rotation) String() string {
	switch r {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	case Portrait2:
		return "portrait2"
	case Landscape2:
		return "landscape2"
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// ParseRotation parses the names returned by Rotation.String.
func ParseRotation(s string) (Rotation, error) {
	for r := Portrait; r <= Landscape2; r++ {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("gfx: unknown rotation %q", s)
}

// Dims returns the logical size of a physW x physH panel rotated by r.
// Landscape sizes are never taller than wide and portrait sizes never wider
// than tall, whichever way the panel reports its physical size.
func Dims(physW, physH int, r Rotation) (w, h int) {
	short, long := min(physW, physH), max(physW, physH)
	if r.Landscape() {
		return long, short
	}
	return short, long
}
