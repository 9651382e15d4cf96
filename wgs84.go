package coordconv

import (
	"errors"
	"fmt"
	"math"

	"github.com/golang/geo/s2"
)

// Ellipsoid is a reference ellipsoid given by its semi-major axis in meters
// and its flattening.
type Ellipsoid struct {
	SemiMajorAxis float64
	Flattening    float64
}

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = Ellipsoid{
	SemiMajorAxis: 6378137,
	Flattening:    1 / 298.257223563,
}

// Converter converts between geodetic, UTM and MGRS coordinates on one
// ellipsoid. A Converter is immutable once constructed and safe for
// concurrent use.
type Converter struct {
	ellipsoid Ellipsoid

	e2  float64 // first eccentricity squared
	ep2 float64 // second eccentricity squared

	// meridian arc and footpoint latitude series
	m1             float64
	p2, p3, p4, p5 float64

	zones [61]*transverseMercator
}

// DefaultConverter is a WGS84 ellipsoid based converter.
var DefaultConverter *Converter

func init() {
	var err error
	DefaultConverter, err = NewConverter(WGS84)
	if err != nil {
		panic(fmt.Sprintf("error constructing WGS84 converter: %s", err))
	}
}

// NewConverter constructs a converter for the given ellipsoid.
func NewConverter(e Ellipsoid) (*Converter, error) {
	if e.SemiMajorAxis <= 0.0 {
		return nil, errors.New("Semi-major axis must be greater than zero")
	}
	invF := 1 / e.Flattening
	if (invF < 250) || (invF > 350) {
		return nil, errors.New("Inverse flattening must be between 250 and 350")
	}

	c := &Converter{ellipsoid: e}
	f := e.Flattening
	c.e2 = f * (2 - f)
	c.ep2 = c.e2 / (1 - c.e2)

	e4 := c.e2 * c.e2
	e6 := e4 * c.e2
	c.m1 = 1 - c.e2/4 - 3*e4/64 - 5*e6/256

	sqrt1e2 := math.Sqrt(1 - c.e2)
	e1 := (1 - sqrt1e2) / (1 + sqrt1e2)
	e12 := e1 * e1
	e13 := e12 * e1
	e14 := e13 * e1
	c.p2 = 3*e1/2 - 27*e13/32
	c.p3 = 21*e12/16 - 55*e14/32
	c.p4 = 151 * e13 / 96
	c.p5 = 1097 * e14 / 512

	for zone := 1; zone <= 60; zone++ {
		c.zones[zone] = newTransverseMercator(e, centralMeridian(zone), utmFalseEasting, utmScaleFactor)
	}
	return c, nil
}

// Ellipsoid returns the ellipsoid the converter was built for.
func (c *Converter) Ellipsoid() Ellipsoid {
	return c.ellipsoid
}

// UTMToWGS84 converts a UTM coordinate with the DefaultConverter.
func UTMToWGS84(u UTMCoord) (GeodeticCoord, error) {
	return DefaultConverter.UTMToWGS84(u)
}

// MGRSToWGS84 converts an MGRS coordinate with the DefaultConverter.
func MGRSToWGS84(m MGRSCoord) (GeodeticCoord, error) {
	return DefaultConverter.MGRSToWGS84(m)
}

// FromGeodetic converts a latitude/longitude to UTM with the
// DefaultConverter.
func FromGeodetic(ll s2.LatLng) (UTMCoord, error) {
	return DefaultConverter.FromGeodetic(ll)
}

// ToMGRS converts a latitude/longitude to MGRS with the DefaultConverter.
func ToMGRS(ll s2.LatLng) (MGRSCoord, error) {
	return DefaultConverter.ToMGRS(ll)
}
