package parameter

// Canvas Geometry
const (
	// DefaultWidth is the pixel grid width in cells
	DefaultWidth = 80

	// DefaultHeight is the pixel grid height in cells
	// Must stay even: the encoder folds two pixel rows into one text row
	DefaultHeight = 22
)

// Frame Pacing
const (
	// DefaultFPS is the target frame rate of the render loop
	DefaultFPS = 30
)
