package easing

import (
	"fmt"
	"math"
)

// Func maps normalized progress t in [0,1] to eased progress.
// Back and elastic variants overshoot outside [0,1] strictly inside
// the interval, but all functions satisfy f(0)=0 and f(1)=1.
type Func func(t float64) float64

func Linear(t float64) float64 { return t }

func InQuad(t float64) float64 { return t * t }

func OutQuad(t float64) float64 { return t * (2 - t) }

func InOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

func InCubic(t float64) float64 { return t * t * t }

func OutCubic(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func InQuart(t float64) float64 { return t * t * t * t }

func OutQuart(t float64) float64 {
	u := t - 1
	return 1 - u*u*u*u
}

func InOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := t - 1
	return 1 - 8*u*u*u*u
}

// InExpo special-cases t=0 where 2^(10(t-1)) would not reach zero.
func InExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

// OutExpo special-cases t=1 where 1-2^(-10t) would not reach one.
func OutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func InOutExpo(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	if t < 0.5 {
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

// Overshoot constants shared by the back family.
const (
	backC1 = 1.70158
	backC3 = backC1 + 1
)

func InBack(t float64) float64 {
	return backC3*t*t*t - backC1*t*t
}

func OutBack(t float64) float64 {
	u := t - 1
	return 1 + backC3*u*u*u + backC1*u*u
}

func InOutBack(t float64) float64 {
	c2 := backC1 * 1.525
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((c2+1)*2*t - c2)) / 2
	}
	return (math.Pow(2*t-2, 2)*((c2+1)*(t*2-2)+c2) + 2) / 2
}

// Damped sine periods for the elastic family.
const (
	elasticC4 = (2 * math.Pi) / 3
	elasticC5 = (2 * math.Pi) / 4.5
)

func InElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticC4)
}

func OutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticC4) + 1
}

func InOutElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	if t < 0.5 {
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticC5)) / 2
	}
	return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticC5))/2 + 1
}

// OutBounce is piecewise parabolic with breakpoints at 1/2.75, 2/2.75
// and 2.5/2.75.
func OutBounce(t float64) float64 {
	const (
		n1 = 7.5625
		d1 = 2.75
	)
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

func InBounce(t float64) float64 {
	return 1 - OutBounce(1-t)
}

func InOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - OutBounce(1-2*t)) / 2
	}
	return (1 + OutBounce(2*t-1)) / 2
}

// Pulse is a sine hump peaking at t=0.5, used by score-change effects.
// It intentionally returns to 0 at t=1 instead of easing to 1.
func Pulse(t float64) float64 {
	return math.Sin(t * math.Pi)
}

var registry = map[string]Func{
	"linear":              Linear,
	"ease-in-quad":        InQuad,
	"ease-out-quad":       OutQuad,
	"ease-in-out-quad":    InOutQuad,
	"ease-in-cubic":       InCubic,
	"ease-out-cubic":      OutCubic,
	"ease-in-out-cubic":   InOutCubic,
	"ease-in-quart":       InQuart,
	"ease-out-quart":      OutQuart,
	"ease-in-out-quart":   InOutQuart,
	"ease-in-expo":        InExpo,
	"ease-out-expo":       OutExpo,
	"ease-in-out-expo":    InOutExpo,
	"ease-in-back":        InBack,
	"ease-out-back":       OutBack,
	"ease-in-out-back":    InOutBack,
	"ease-in-elastic":     InElastic,
	"ease-out-elastic":    OutElastic,
	"ease-in-out-elastic": InOutElastic,
	"ease-in-bounce":      InBounce,
	"ease-out-bounce":     OutBounce,
	"ease-in-out-bounce":  InOutBounce,
	"pulse":               Pulse,
}

// ForName returns the easing function registered under name, so match
// files can pick curves by string.
func ForName(name string) (Func, error) {
	if f, ok := registry[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown easing function: %s", name)
}

// Names lists all registered easing names, for CLI help output.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}
