package layout

import "github.com/goliatone/go-formwidgets/pkg/tokens"

// Shadow describes a drop shadow. A shadow with zero opacity is not drawn.
type Shadow struct {
	Color   tokens.Color
	Offset  Point
	Opacity float64
	Radius  float64
}

// DefaultShadow is the shadow containers enable by default: black, offset
// (1,2), 40% opacity and a 3pt blur.
func DefaultShadow() Shadow {
	return Shadow{
		Color:   tokens.Black,
		Offset:  Point{X: 1, Y: 2},
		Opacity: 0.4,
		Radius:  3,
	}
}

// Visible reports whether the shadow would be drawn.
func (s Shadow) Visible() bool {
	return s.Opacity > 0
}

// Hidden returns a copy of s with zero opacity.
func (s Shadow) Hidden() Shadow {
	s.Opacity = 0
	return s
}
