package roadnet

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Pose is a position on the reference line together with its heading (radians)
type Pose struct {
	X   float64
	Y   float64
	Hdg float64
}

// Point returns position of the pose
func (p Pose) Point() orb.Point {
	return orb.Point{p.X, p.Y}
}

// String returns pretty printed value for Pose
func (p Pose) String() string {
	return fmt.Sprintf("X: %f | Y: %f | Hdg: %f (%.2f deg)", p.X, p.Y, p.Hdg, radiansTodegrees(p.Hdg))
}

// RoadGeometry is a single segment of road reference line.
// Only parameters relevant to Type are used.
type RoadGeometry struct {
	Type   GeometryType
	S      float64
	X      float64
	Y      float64
	Hdg    float64
	Length float64

	// arc
	Curvature float64

	// spiral
	CurvStart float64
	CurvEnd   float64

	// poly3
	A, B, C, D float64

	// paramPoly3
	AU, BU, CU, DU float64
	AV, BV, CV, DV float64
	PRange         PRange
}

func NewLineGeometry(s, x, y, hdg, length float64) *RoadGeometry {
	return &RoadGeometry{Type: GEOMETRY_LINE, S: s, X: x, Y: y, Hdg: hdg, Length: length}
}

func NewArcGeometry(s, x, y, hdg, length, curvature float64) *RoadGeometry {
	return &RoadGeometry{Type: GEOMETRY_ARC, S: s, X: x, Y: y, Hdg: hdg, Length: length, Curvature: curvature}
}

func NewSpiralGeometry(s, x, y, hdg, length, curvStart, curvEnd float64) *RoadGeometry {
	return &RoadGeometry{Type: GEOMETRY_SPIRAL, S: s, X: x, Y: y, Hdg: hdg, Length: length, CurvStart: curvStart, CurvEnd: curvEnd}
}

func NewPoly3Geometry(s, x, y, hdg, length, a, b, c, d float64) *RoadGeometry {
	return &RoadGeometry{Type: GEOMETRY_POLY3, S: s, X: x, Y: y, Hdg: hdg, Length: length, A: a, B: b, C: c, D: d}
}

// NewParamPoly3Geometry creates paramPoly3 segment. u and v hold coefficients a, b, c, d.
func NewParamPoly3Geometry(s, x, y, hdg, length float64, u, v [4]float64, pRange PRange) *RoadGeometry {
	return &RoadGeometry{
		Type: GEOMETRY_PARAM_POLY3, S: s, X: x, Y: y, Hdg: hdg, Length: length,
		AU: u[0], BU: u[1], CU: u[2], DU: u[3],
		AV: v[0], BV: v[1], CV: v[2], DV: v[3],
		PRange: pRange,
	}
}

// End returns s coordinate where segment ends
func (g *RoadGeometry) End() float64 {
	return g.S + g.Length
}

// Validate checks segment type and numeric parameters
func (g *RoadGeometry) Validate() error {
	switch g.Type {
	case GEOMETRY_LINE, GEOMETRY_ARC, GEOMETRY_SPIRAL, GEOMETRY_POLY3, GEOMETRY_PARAM_POLY3:
	default:
		return errors.Wrapf(ErrInvalidGeometry, "unsupported geometry type '%s' at s=%f", g.Type, g.S)
	}
	if !(g.Length > 0) || math.IsInf(g.Length, 0) {
		return errors.Wrapf(ErrInvalidGeometry, "%s at s=%f has non-positive length %f", g.Type, g.S, g.Length)
	}
	for _, v := range []float64{g.S, g.X, g.Y, g.Hdg} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.Wrapf(ErrInvalidGeometry, "%s at s=%f has non-finite start pose", g.Type, g.S)
		}
	}
	return nil
}

// PoseAt evaluates segment at road coordinate s. Values outside of the segment are clamped to it.
func (g *RoadGeometry) PoseAt(s float64) Pose {
	ds := clamp(s-g.S, 0, g.Length)
	switch g.Type {
	case GEOMETRY_ARC:
		return g.arcPose(ds)
	case GEOMETRY_SPIRAL:
		return g.spiralPose(ds)
	case GEOMETRY_POLY3:
		return g.poly3Pose(ds)
	case GEOMETRY_PARAM_POLY3:
		return g.paramPoly3Pose(ds)
	default:
		return g.linePose(ds)
	}
}

func (g *RoadGeometry) linePose(ds float64) Pose {
	sin, cos := math.Sincos(g.Hdg)
	return Pose{
		X:   g.X + ds*cos,
		Y:   g.Y + ds*sin,
		Hdg: normalizeHeading(g.Hdg),
	}
}

func (g *RoadGeometry) arcPose(ds float64) Pose {
	k := g.Curvature
	if math.Abs(k) < curvatureEpsilon {
		return g.linePose(ds)
	}
	hdgEnd := g.Hdg + k*ds
	return Pose{
		X:   g.X + (math.Sin(hdgEnd)-math.Sin(g.Hdg))/k,
		Y:   g.Y - (math.Cos(hdgEnd)-math.Cos(g.Hdg))/k,
		Hdg: normalizeHeading(hdgEnd),
	}
}

func (g *RoadGeometry) spiralPose(ds float64) Pose {
	curvRate := (g.CurvEnd - g.CurvStart) / g.Length
	dx, dy := clothoidOffset(g.Hdg, g.CurvStart, curvRate, ds)
	return Pose{
		X:   g.X + dx,
		Y:   g.Y + dy,
		Hdg: normalizeHeading(g.Hdg + g.CurvStart*ds + 0.5*curvRate*ds*ds),
	}
}

func (g *RoadGeometry) poly3Pose(ds float64) Pose {
	v := cubic(g.A, g.B, g.C, g.D, ds)
	dx, dy := rotate(ds, v, g.Hdg)
	return Pose{
		X:   g.X + dx,
		Y:   g.Y + dy,
		Hdg: normalizeHeading(g.Hdg + math.Atan(cubicDerivative(g.B, g.C, g.D, ds))),
	}
}

func (g *RoadGeometry) paramPoly3Pose(ds float64) Pose {
	p := ds
	if g.PRange == P_RANGE_NORMALIZED {
		p = ds / g.Length
	}
	u := cubic(g.AU, g.BU, g.CU, g.DU, p)
	v := cubic(g.AV, g.BV, g.CV, g.DV, p)
	du := cubicDerivative(g.BU, g.CU, g.DU, p)
	dv := cubicDerivative(g.BV, g.CV, g.DV, p)
	dx, dy := rotate(u, v, g.Hdg)
	localHdg := 0.0
	if du != 0 || dv != 0 {
		localHdg = math.Atan2(dv, du)
	}
	return Pose{
		X:   g.X + dx,
		Y:   g.Y + dy,
		Hdg: normalizeHeading(g.Hdg + localHdg),
	}
}
