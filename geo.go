package roadnet

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	earthR = 20037508.34
)

func epsg3857To4326(x, y float64) (float64, float64) {
	lon := x * 180 / earthR
	lat := math.Atan(math.Exp(y*math.Pi/earthR))*360/math.Pi - 90
	return lon, lat
}

func epsg4326To3857(lon, lat float64) (float64, float64) {
	x := lon * earthR / 180
	y := math.Log(math.Tan((90+lat)*math.Pi/360)) / (math.Pi / 180)
	y = y * earthR / 180
	return x, y
}

// Projection maps WGS84 lon/lat to local planar meters (EPSG:3857 shifted to the origin) and back
type Projection struct {
	origin  orb.Point
	originX float64
	originY float64
}

// NewProjection creates projection centered at origin given as lon/lat
func NewProjection(origin orb.Point) Projection {
	x, y := epsg4326To3857(origin.Lon(), origin.Lat())
	return Projection{
		origin:  origin,
		originX: x,
		originY: y,
	}
}

// Origin returns lon/lat of the local (0, 0)
func (proj Projection) Origin() orb.Point {
	return proj.origin
}

// Forward converts lon/lat to local meters
func (proj Projection) Forward(pt orb.Point) orb.Point {
	x, y := epsg4326To3857(pt.Lon(), pt.Lat())
	return orb.Point{x - proj.originX, y - proj.originY}
}

// Inverse converts local meters to lon/lat
func (proj Projection) Inverse(pt orb.Point) orb.Point {
	lon, lat := epsg3857To4326(pt.X()+proj.originX, pt.Y()+proj.originY)
	return orb.Point{lon, lat}
}

// InverseLine converts every point of line to lon/lat
func (proj Projection) InverseLine(line orb.LineString) orb.LineString {
	newLine := make(orb.LineString, len(line))
	for i, pt := range line {
		newLine[i] = proj.Inverse(pt)
	}
	return newLine
}
