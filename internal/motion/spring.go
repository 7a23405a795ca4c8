package motion

import "math"

// restThreshold is the remaining displacement below which a spring is settled
const restThreshold = 0.005

// SpringConfig describes a damped spring pulled from 0 towards 1
type SpringConfig struct {
	Damping   float64 `yaml:"damping" json:"damping"`
	Stiffness float64 `yaml:"stiffness" json:"stiffness"`
	Mass      float64 `yaml:"mass" json:"mass"`
}

// Config is the entrance animation configuration of a theme
type Config struct {
	Spring      SpringConfig `yaml:"spring" json:"spring"`
	SlideOffset float64      `yaml:"slideOffset" json:"slideOffset"` // px
}

// DampingRatio returns zeta; values >= 1 never overshoot
func (c SpringConfig) DampingRatio() float64 {
	m := c.mass()
	if c.Stiffness <= 0 {
		return 1
	}
	return c.Damping / (2 * math.Sqrt(c.Stiffness*m))
}

func (c SpringConfig) mass() float64 {
	if c.Mass <= 0 {
		return 1
	}
	return c.Mass
}

// Spring returns the spring progress at frame for the given fps.
// Frames at or before 0 return 0; once settled it returns exactly 1.
func Spring(frame float64, fps int, c SpringConfig) float64 {
	if fps <= 0 {
		fps = 30
	}
	t := frame / float64(fps)
	if t <= 0 || math.IsNaN(t) {
		return 0
	}
	if c.Stiffness <= 0 {
		return 1
	}

	w0 := math.Sqrt(c.Stiffness / c.mass())
	zeta := c.DampingRatio()

	var x float64
	switch {
	case math.Abs(zeta-1) < 1e-6:
		x = 1 - (1+w0*t)*math.Exp(-w0*t)
	case zeta > 1:
		s := math.Sqrt(zeta*zeta - 1)
		r1 := -w0 * (zeta - s)
		r2 := -w0 * (zeta + s)
		x = 1 + (r2*math.Exp(r1*t)-r1*math.Exp(r2*t))/(r1-r2)
	default:
		wd := w0 * math.Sqrt(1-zeta*zeta)
		x = 1 - math.Exp(-zeta*w0*t)*(math.Cos(wd*t)+zeta*w0/wd*math.Sin(wd*t))
	}

	if math.Abs(1-x) < restThreshold && zeta >= 1 {
		return 1
	}
	if x < 0 {
		return 0
	}
	return x
}

// SettleFrame returns the first frame offset at which Spring reports 1,
// searching up to limit frames. It returns limit if the spring has not settled.
func SettleFrame(fps int, c SpringConfig, limit int) int {
	for f := 0; f <= limit; f++ {
		if Spring(float64(f), fps, c) == 1 {
			return f
		}
	}
	return limit
}
