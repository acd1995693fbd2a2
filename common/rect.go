package common

// Rect is a simple rectangle structure.
// It contains the X and Y coordinates of the top-left corner,
// as well as the width and height of the rectangle.
type Rect struct {
	X int32
	Y int32
	W int32
	H int32
}
