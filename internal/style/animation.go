package style

import (
	"github.com/ivlev/blog2video/internal/motion"
	"github.com/ivlev/blog2video/internal/theme"
)

// Entrance timing per style. Every spring is critically or over-damped.
var animations = map[theme.Style]motion.Config{
	theme.StyleMinimal: {Spring: motion.SpringConfig{Damping: 26, Stiffness: 120, Mass: 1}, SlideOffset: 20},
	theme.StyleGlass:   {Spring: motion.SpringConfig{Damping: 24, Stiffness: 110, Mass: 1}, SlideOffset: 30},
	theme.StyleBold:    {Spring: motion.SpringConfig{Damping: 20, Stiffness: 100, Mass: 1}, SlideOffset: 50},
	theme.StyleNeon:    {Spring: motion.SpringConfig{Damping: 22, Stiffness: 120, Mass: 1}, SlideOffset: 40},
	theme.StyleSoft:    {Spring: motion.SpringConfig{Damping: 30, Stiffness: 90, Mass: 1}, SlideOffset: 25},
}

// ResolveAnimation returns the entrance configuration for s; unknown styles
// get the minimal timing.
func ResolveAnimation(s theme.Style) motion.Config {
	if c, ok := animations[s]; ok {
		return c
	}
	return animations[theme.StyleMinimal]
}
