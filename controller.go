package tft

import (
	"fmt"
	"time"

	"github.com/flavioheleno/tft/gfx"
)

// Commands shared by the supported controllers.
const (
	cmdSLPOUT = 0x11
	cmdINVON  = 0x21
	cmdDISPOF = 0x28
	cmdDISPON = 0x29
	cmdCASET  = 0x2a
	cmdRASET  = 0x2b
	cmdRAMWR  = 0x2c
	cmdRGBSET = 0x2d
	cmdMADCTL = 0x36
	cmdCOLMOD = 0x3a
)

// Step is one entry of a controller initialization script: a command with
// its parameters, followed by an optional delay.
type Step struct {
	Cmd   byte
	Data  []byte
	Delay time.Duration
}

// Controller describes a panel controller and the module it is mounted on.
type Controller struct {
	Name string
	// W and H are the panel size in its native portrait orientation.
	W, H int
	// ResetPulse is how long the reset line is held low.
	ResetPulse time.Duration
	// Init runs after reset. The orientation and the color table are sent
	// after it.
	Init []Step
	// MADCTL is the memory access control byte for each rotation.
	MADCTL [4]byte
	// ColorLUT, if set, is loaded with RGBSET to map 16-bit pixels to the
	// panel's 18-bit colors.
	ColorLUT []byte
}

func (c *Controller) String() string {
	return c.Name
}

// madctl returns the MADCTL byte for r.
func (c *Controller) madctl(r gfx.Rotation) byte {
	if !r.Valid() {
		panic(fmt.Sprintf("tft: invalid rotation %d", r))
	}
	return c.MADCTL[r]
}

// script returns the whole power-up sequence for rotation r.
func (c *Controller) script(r gfx.Rotation) []Step {
	steps := append([]Step(nil), c.Init...)
	steps = append(steps, Step{Cmd: cmdMADCTL, Data: []byte{c.madctl(r)}})
	if c.ColorLUT != nil {
		steps = append(steps, Step{Cmd: cmdRGBSET, Data: c.ColorLUT})
	}
	return append(steps, Step{Cmd: cmdDISPON})
}

// MADCTL bits:
//
//	80 MY  row address order
//	40 MX  column address order
//	20 MV  row/column exchange
//	08 BGR color order

// ST7796 is the Waveshare 3.5" 320x480 module.
var ST7796 = &Controller{
	Name:       "st7796",
	W:          320,
	H:          480,
	ResetPulse: 2 * time.Millisecond,
	Init: []Step{
		{Cmd: cmdINVON},
		{Cmd: 0xc2, Data: []byte{0x33}},             // PWR3
		{Cmd: 0xc5, Data: []byte{0x00, 0x1e, 0x80}}, // VCMPCTL
		{Cmd: 0xb1, Data: []byte{0xb0}},             // FRMCTR1
		{Cmd: 0xe0, Data: []byte{ // positive gamma
			0x00, 0x13, 0x18, 0x04, 0x0f, 0x06, 0x3a, 0x56,
			0x4d, 0x03, 0x0a, 0x06, 0x30, 0x3e, 0x0f,
		}},
		{Cmd: 0xe1, Data: []byte{ // negative gamma
			0x00, 0x13, 0x18, 0x01, 0x11, 0x06, 0x38, 0x34,
			0x4d, 0x06, 0x0d, 0x0b, 0x31, 0x37, 0x0f,
		}},
		{Cmd: cmdCOLMOD, Data: []byte{0x55}}, // 16 bits per pixel
		{Cmd: cmdSLPOUT, Delay: 120 * time.Millisecond},
		{Cmd: 0xb6, Data: []byte{0x00, 0x62}}, // DFC
	},
	MADCTL: [4]byte{0x48, 0xe8, 0x88, 0x28},
}

// ILI9341 is the Waveshare 2.4" 240x320 module.
var ILI9341 = &Controller{
	Name:       "ili9341",
	W:          240,
	H:          320,
	ResetPulse: 20 * time.Microsecond,
	Init: []Step{
		{Cmd: cmdSLPOUT, Delay: 150 * time.Millisecond},
		{Cmd: 0xcf, Data: []byte{0x00, 0xc1, 0x30}},             // PWRCTLB
		{Cmd: 0xed, Data: []byte{0x64, 0x03, 0x12, 0x81}},       // PWRSEQCTL
		{Cmd: 0xe8, Data: []byte{0x85, 0x00, 0x79}},             // DRVTMGA
		{Cmd: 0xcb, Data: []byte{0x39, 0x2c, 0x00, 0x34, 0x02}}, // PWRCTLA
		{Cmd: 0xf7, Data: []byte{0x20}},                         // PMPCTL
		{Cmd: 0xea, Data: []byte{0x00, 0x00}},                   // DRVTGMB
		{Cmd: 0xc0, Data: []byte{0x1d}},                         // PWRCTL1
		{Cmd: 0xc1, Data: []byte{0x12}},                         // PWRCTL2
		{Cmd: 0xc5, Data: []byte{0x33, 0x3f}},                   // VCOMCTL1
		{Cmd: 0xc7, Data: []byte{0x92}},                         // VCOMCTL2
		{Cmd: cmdCOLMOD, Data: []byte{0x55}},                    // 16 bits per pixel
		{Cmd: 0xb1, Data: []byte{0x00, 0x12}},                   // FRMCTL
		{Cmd: 0xb6, Data: []byte{0x0a, 0xa2}},                   // DISPCTL
		{Cmd: 0x44, Data: []byte{0x02}},                         // SETTS
		{Cmd: 0xf2, Data: []byte{0x00}},                         // EN3G
		{Cmd: 0x26, Data: []byte{0x01}},                         // GAMMASET
		{Cmd: 0xe0, Data: []byte{ // positive gamma
			0x0f, 0x22, 0x1c, 0x1b, 0x08, 0x0f, 0x48, 0xb8,
			0x34, 0x05, 0x0c, 0x09, 0x0f, 0x07, 0x00,
		}},
		{Cmd: 0xe1, Data: []byte{ // negative gamma
			0x00, 0x23, 0x24, 0x07, 0x10, 0x07, 0x38, 0x47,
			0x4b, 0x0a, 0x13, 0x06, 0x30, 0x38, 0x0f,
		}},
	},
	MADCTL:   [4]byte{0x08, 0xa8, 0xc8, 0x68},
	ColorLUT: rgbLUT(),
}

// rgbLUT maps 5-bit red and blue and 6-bit green onto the 6-bit panel
// levels. Red and blue reuse their top bit as the low bit so both ends of
// the range are reached.
func rgbLUT() []byte {
	lut := make([]byte, 0, 128)
	five := func() {
		for i := byte(0); i < 32; i++ {
			lut = append(lut, i<<1|i>>4)
		}
	}
	five()
	for i := byte(0); i < 64; i++ {
		lut = append(lut, i)
	}
	five()
	return lut
}

// Controllers lists the known controllers by name.
var Controllers = map[string]*Controller{
	ST7796.Name:  ST7796,
	ILI9341.Name: ILI9341,
}
