package roadnet

import (
	"math"
)

const (
	pi180Rev = 180.0 / math.Pi
	twoPi    = 2 * math.Pi

	// Curvatures below this are evaluated as straight lines
	curvatureEpsilon = 1e-12
	// Max panel length for clothoid integration (meters)
	spiralPanelLength = 0.5
	minSpiralPanels   = 16
	maxSpiralPanels   = 4096
)

// radiansTodegrees r = deg  * 180 / pi
func radiansTodegrees(d float64) float64 {
	return d * pi180Rev
}

// normalizeHeading maps angle into (-pi, pi]
func normalizeHeading(hdg float64) float64 {
	h := math.Remainder(hdg, twoPi)
	if h <= -math.Pi {
		h += twoPi
	}
	return h
}

// headingDifference returns signed b - a in (-pi, pi]
func headingDifference(a, b float64) float64 {
	return normalizeHeading(b - a)
}

// rotate rotates local (u, v) by heading
func rotate(u, v, hdg float64) (float64, float64) {
	sin, cos := math.Sincos(hdg)
	return u*cos - v*sin, u*sin + v*cos
}

// leftNormal returns unit vector pointing to the left of heading.
// Equals (cos(hdg+pi/2), sin(hdg+pi/2)) without the extra addition.
func leftNormal(hdg float64) (float64, float64) {
	sin, cos := math.Sincos(hdg)
	return -sin, cos
}

// cubic evaluates a + b*x + c*x^2 + d*x^3
func cubic(a, b, c, d, x float64) float64 {
	return a + x*(b+x*(c+x*d))
}

// cubicDerivative evaluates b + 2c*x + 3d*x^2
func cubicDerivative(b, c, d, x float64) float64 {
	return b + x*(2*c+x*3*d)
}

// clothoidOffset integrates unit heading vector along a clothoid of given start heading,
// start curvature and curvature rate over [0, length] (composite Simpson rule)
func clothoidOffset(hdg, curvStart, curvRate, length float64) (float64, float64) {
	if length <= 0 {
		return 0, 0
	}
	panels := 2 * int(math.Ceil(length/(2*spiralPanelLength)))
	if panels < minSpiralPanels {
		panels = minSpiralPanels
	}
	if panels > maxSpiralPanels {
		panels = maxSpiralPanels
	}
	h := length / float64(panels)
	theta := func(u float64) float64 {
		return hdg + curvStart*u + 0.5*curvRate*u*u
	}
	sumX, sumY := 0.0, 0.0
	for i := 0; i <= panels; i++ {
		w := 2.0
		if i == 0 || i == panels {
			w = 1.0
		} else if i%2 == 1 {
			w = 4.0
		}
		sin, cos := math.Sincos(theta(float64(i) * h))
		sumX += w * cos
		sumY += w * sin
	}
	return sumX * h / 3.0, sumY * h / 3.0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sign(v int) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
