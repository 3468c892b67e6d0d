package stream

import "github.com/lucasb-eyer/go-colorful"

// An Animation implements a way to render a specific animation.
type Animation interface {
	CalculateFrame() *Frame
}

// A Solid is an Animation that paints every pixel with one colour.
type Solid struct {
	frame *Frame
}

// NewSolid creates a Solid of n pixels.
func NewSolid(n int, c colorful.Color) *Solid {
	s := new(Solid)
	s.frame = NewFrame(n)
	s.frame.Fill(0, n, c)
	return s
}

// CalculateFrame creates a new Frame instance.
func (s *Solid) CalculateFrame() *Frame {
	return s.frame.Clone()
}
