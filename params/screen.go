package params

type ScreenConfig struct {
	// Width and Height of the presentation screen, in the tracker's
	// coordinate units (pixels).
	Width  float64
	Height float64

	// StrictSlop and LaxSlop are fractions of the screen dimensions
	// by which the valid area is widened when classifying points.
	// Strict validity allows no slop; lax validity tolerates gaze
	// hovering just off-screen.
	StrictSlop float64
	LaxSlop    float64
}

var DefaultScreenConfig = ScreenConfig{
	Width:      800,
	Height:     600,
	StrictSlop: 0,
	LaxSlop:    0.1,
}
