package shapes

import "image/color"

// Rect is an axis-aligned rectangle.
//
//withgen:copy
type Rect struct {
	X, Y int
	W, H int
	Fill color.RGBA
}
