package core

import "image/color"

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Board is the read-only view a front end draws from. Cells returns one value
// per cell in row-major order; Palette maps those values to colors.
type Board interface {
	Name() string
	Size() Size
	Cells() []uint8
	Palette() []color.RGBA
}
