package coordconv

import (
	"fmt"
	"math"
	"strconv"

	"github.com/golang/geo/s2"
)

// Hemisphere represents the hemisphere, north or south
type Hemisphere byte

// Hemisphere constants
const (
	HemisphereInvalid Hemisphere = iota
	HemisphereNorth
	HemisphereSouth
)

func (h Hemisphere) String() string {
	switch h {
	case HemisphereNorth:
		return "N"
	case HemisphereSouth:
		return "S"
	}
	return "?"
}

// UTMCoord is a UTM coordinate. Zone carries both the zone number and the
// latitude band letter, e.g. "18T". The band letter decides the hemisphere;
// Hemisphere may be left as HemisphereInvalid, and if set it must agree with
// the letter.
type UTMCoord struct {
	Zone       string
	Hemisphere Hemisphere
	Easting    int
	Northing   int
}

func (u UTMCoord) String() string {
	return fmt.Sprintf("%s %d %d", u.Zone, u.Easting, u.Northing)
}

// WithHemisphere returns u with Hemisphere set from the zone's band letter.
func (u UTMCoord) WithHemisphere() (UTMCoord, error) {
	_, letter, err := ParseZone(u.Zone)
	if err != nil {
		return UTMCoord{}, err
	}
	u.Hemisphere = hemisphereForBand(letter)
	return u, nil
}

// hemisphereForBand returns the hemisphere of a valid band letter; bands
// C through M lie south of the equator.
func hemisphereForBand(letter byte) Hemisphere {
	if letter < 'N' {
		return HemisphereSouth
	}
	return HemisphereNorth
}

const utmMinLat = (-80.5 * math.Pi) / 180.0 // -80.5 degrees in radians
const utmMaxLat = (84.5 * math.Pi) / 180.0  //  84.5 degrees in radians
const utmMinEasting = 100000
const utmMaxEasting = 1000000 // exclusive
const utmMinNorthing = 0
const utmMaxNorthing = 10000000 // exclusive
const utmFalseEasting = 500000.0
const utmSouthFalseNorthing = 10000000.0
const utmScaleFactor = 0.9996

const epsilonRadians = 1.75e-7 // approx 1.0e-5 degrees (~1 meter) in radians

// validateUTM checks zone, hemisphere and bounds and returns the parsed zone.
func validateUTM(u UTMCoord) (number int, letter byte, err error) {
	number, letter, err = ParseZone(u.Zone)
	if err != nil {
		return 0, 0, err
	}
	if u.Hemisphere != HemisphereInvalid && u.Hemisphere <= HemisphereSouth &&
		u.Hemisphere != hemisphereForBand(letter) {
		return 0, 0, newError(KindInvalidZoneRange, u.Zone, "band letter contradicts hemisphere "+u.Hemisphere.String())
	} else if u.Hemisphere > HemisphereSouth {
		return 0, 0, newError(KindInvalidZoneRange, u.Zone, "hemisphere out of range")
	}
	if u.Easting < utmMinEasting || u.Easting >= utmMaxEasting {
		return 0, 0, newError(KindCoordinateOutOfBounds, strconv.Itoa(u.Easting), "easting out of range")
	}
	if u.Northing < utmMinNorthing || u.Northing >= utmMaxNorthing {
		return 0, 0, newError(KindCoordinateOutOfBounds, strconv.Itoa(u.Northing), "northing out of range")
	}
	return number, letter, nil
}

// ValidateUTM checks the zone and the easting/northing envelope of u.
func ValidateUTM(u UTMCoord) error {
	_, _, err := validateUTM(u)
	return err
}

// IsUTMValid reports whether ValidateUTM accepts u.
func IsUTMValid(u UTMCoord) bool {
	return ValidateUTM(u) == nil
}

// UTMToWGS84 converts a UTM coordinate to latitude and longitude using the
// inverse transverse Mercator series from Snyder, "Map Projections - A
// Working Manual" (1987), eqs. 8-18 through 8-25.
func (c *Converter) UTMToWGS84(u UTMCoord) (GeodeticCoord, error) {
	zone, letter, err := validateUTM(u)
	if err != nil {
		return GeodeticCoord{}, err
	}

	x := float64(u.Easting) - utmFalseEasting
	y := float64(u.Northing)
	if letter < 'N' {
		y -= utmSouthFalseNorthing
	}

	e2 := c.e2
	ep2 := c.ep2

	m := y / utmScaleFactor
	mu := m / (c.ellipsoid.SemiMajorAxis * c.m1)

	// footpoint latitude
	phi1 := mu +
		c.p2*math.Sin(2*mu) +
		c.p3*math.Sin(4*mu) +
		c.p4*math.Sin(6*mu) +
		c.p5*math.Sin(8*mu)

	sinPhi1 := math.Sin(phi1)
	cosPhi1 := math.Cos(phi1)
	tanPhi1 := math.Tan(phi1)
	w := 1 - e2*sinPhi1*sinPhi1
	n1 := c.ellipsoid.SemiMajorAxis / math.Sqrt(w)
	rho := (1 - e2) / w // R1/N1
	t1 := tanPhi1 * tanPhi1
	c1 := ep2 * cosPhi1 * cosPhi1

	d := x / (n1 * utmScaleFactor)
	d2 := d * d
	d3 := d2 * d
	d4 := d3 * d
	d5 := d4 * d
	d6 := d5 * d

	latitude := phi1 - (tanPhi1/rho)*(d2/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*d4/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*d6/720)

	longitude := centralMeridian(zone) + (d-
		(1+2*t1+c1)*d3/6+
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*d5/120)/cosPhi1

	if longitude > math.Pi {
		longitude -= 2 * math.Pi
	}
	if longitude <= -math.Pi {
		longitude += 2 * math.Pi
	}

	if (latitude < (utmMinLat - epsilonRadians)) ||
		(latitude >= (utmMaxLat + epsilonRadians)) {
		return GeodeticCoord{}, newError(KindCoordinateOutOfBounds, u.String(), "latitude outside UTM coverage")
	}

	return GeodeticCoord{
		Latitude:  latitude * 180 / math.Pi,
		Longitude: longitude * 180 / math.Pi,
	}, nil
}

// centralMeridian returns the longitude of a zone's central meridian in
// radians.
func centralMeridian(zone int) float64 {
	return float64((zone-1)*6-180+3) * math.Pi / 180
}

// FromGeodetic converts a latitude/longitude to UTM, choosing the zone the
// point falls in, including the widened zones over southern Norway and
// Svalbard. Easting and northing are truncated to whole meters.
func (c *Converter) FromGeodetic(geodeticCoordinates s2.LatLng) (UTMCoord, error) {
	latitude := geodeticCoordinates.Lat.Radians()
	longitude := geodeticCoordinates.Lng.Radians()
	if math.IsNaN(latitude) || math.IsNaN(longitude) ||
		(latitude < -math.Pi/2) || (latitude > math.Pi/2) {
		return UTMCoord{}, newError(KindCoordinateOutOfBounds, geodeticCoordinates.String(), "latitude out of range")
	}
	if (longitude < (-math.Pi - epsilonRadians)) ||
		(longitude > (2*math.Pi + epsilonRadians)) {
		return UTMCoord{}, newError(KindCoordinateOutOfBounds, geodeticCoordinates.String(), "longitude out of range")
	}
	if (latitude > -1.0e-9) && (latitude < 0) {
		latitude = 0.0
	}

	letter, err := bandForLatitude(latitude)
	if err != nil {
		return UTMCoord{}, err
	}
	zone := zoneForPoint(latitude, longitude)

	easting, northing, err := c.zones[zone].project(latitude, longitude)
	if err != nil {
		return UTMCoord{}, err
	}
	hemisphere := HemisphereNorth
	if latitude < 0 {
		northing += utmSouthFalseNorthing
		hemisphere = HemisphereSouth
	}

	const espilon2 = 4.99e-4
	u := UTMCoord{
		Zone:       normalizeZone(zone, letter),
		Hemisphere: hemisphere,
		Easting:    int(easting + espilon2),
		Northing:   int(northing + espilon2),
	}
	// a point on the equator approached from the south
	if letter < 'N' && u.Northing >= utmMaxNorthing {
		u.Northing = utmMaxNorthing - 1
	}
	if err := ValidateUTM(u); err != nil {
		return UTMCoord{}, err
	}
	return u, nil
}

// zoneForPoint returns the UTM zone number for a latitude/longitude in
// radians.
func zoneForPoint(latitude, longitude float64) int {
	if longitude < 0 {
		longitude += 2 * math.Pi
	}
	latDegrees := int(latitude * 180.0 / math.Pi)
	lngDegrees := int(longitude * 180.0 / math.Pi)

	var zone int
	if longitude < math.Pi {
		zone = int(31 + (((longitude + 1.0e-10) * 180.0 / math.Pi) / 6.0))
	} else {
		zone = int((((longitude + 1.0e-10) * 180.0 / math.Pi) / 6.0) - 29)
	}
	if zone > 60 {
		zone = 1
	}

	// southern Norway
	if (latDegrees > 55) && (latDegrees < 64) && (lngDegrees > -1) &&
		(lngDegrees < 3) {
		zone = 31
	}
	if (latDegrees > 55) && (latDegrees < 64) && (lngDegrees > 2) &&
		(lngDegrees < 12) {
		zone = 32
	}
	// Svalbard
	if (latDegrees > 71) && (lngDegrees > -1) && (lngDegrees < 9) {
		zone = 31
	}
	if (latDegrees > 71) && (lngDegrees > 8) && (lngDegrees < 21) {
		zone = 33
	}
	if (latDegrees > 71) && (lngDegrees > 20) && (lngDegrees < 33) {
		zone = 35
	}
	if (latDegrees > 71) && (lngDegrees > 32) && (lngDegrees < 42) {
		zone = 37
	}
	return zone
}
