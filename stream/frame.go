package stream

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPixels is the length of the strip when the config does not set one.
const DefaultPixels = 500

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a black Frame of n pixels.
func NewFrame(n int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, n)
	return f
}

// Len returns the number of pixels.
func (f *Frame) Len() int {
	return len(f.pixels)
}

// Pixel returns the colour of pixel i.
func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

// Fill sets pixels [start, end) to c, clipped to the frame.
func (f *Frame) Fill(start, end int, c colorful.Color) {
	start, end = f.clip(start, end)
	for i := start; i < end; i++ {
		f.pixels[i] = c
	}
}

// Paint sets each pixel of [start, end) to colour(i).
func (f *Frame) Paint(start, end int, colour func(i int) colorful.Color) {
	start, end = f.clip(start, end)
	for i := start; i < end; i++ {
		f.pixels[i] = colour(i)
	}
}

func (f *Frame) clip(start, end int) (int, int) {
	if start < 0 {
		start = 0
	}
	if end > len(f.pixels) {
		end = len(f.pixels)
	}
	return start, end
}

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() *Frame {
	out := NewFrame(len(f.pixels))
	copy(out.pixels, f.pixels)
	return out
}

// InterpolateFrame merges two frames of the same length.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(len(f.pixels))
	for i := 0; i < len(f.pixels) && i < len(f2.pixels); i++ {
		out.pixels[i] = f.pixels[i].BlendHcl(f2.pixels[i], transitionPoint).Clamped()
	}

	return out
}

// Hex returns the hex colours of the given pixels.
func (f *Frame) Hex(indices ...int) []string {
	out := make([]string, 0, len(indices))
	for _, i := range indices {
		out = append(out, f.pixels[i].Clamped().Hex())
	}
	return out
}

// MarshalBinary converts a Frame into binary data: a little-endian uint16
// pixel count followed by one RGB triplet per pixel.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	if len(f.pixels) > math.MaxUint16 {
		return nil, fmt.Errorf("stream: frame of %d pixels exceeds wire format", len(f.pixels))
	}
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
