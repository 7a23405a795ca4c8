package motion

// Entrance timing shared by every element.
const (
	BaseDelay    = 3
	ElementDelay = 8
)

// State is the visible entrance state of one element or list item
type State struct {
	Progress   float64
	Opacity    float64
	TranslateY float64
}

// Delay returns the frame at which an element's entrance starts
func Delay(index int, extraDelay float64) float64 {
	return BaseDelay + float64(index*ElementDelay) + extraDelay
}

// Entrance evaluates the entrance law for the element at position index.
// extraDelay staggers children of list-shaped elements.
func Entrance(frame, fps int, index int, extraDelay float64, c Config) State {
	p := Spring(float64(frame)-Delay(index, extraDelay), fps, c.Spring)
	return State{
		Progress:   p,
		Opacity:    Interpolate(p, 0, 1, 0, 1),
		TranslateY: Interpolate(p, 0, 1, c.SlideOffset, 0),
	}
}

// Stagger returns the extra delay of child i given a per-item step
func Stagger(i int, step float64) float64 {
	return float64(i) * step
}
