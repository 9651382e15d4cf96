package coordconv

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// GeodeticCoord is a WGS84 latitude/longitude in degrees.
type GeodeticCoord struct {
	Latitude  float64
	Longitude float64
}

// GeodeticFromLatLng converts an s2.LatLng to a GeodeticCoord.
func GeodeticFromLatLng(ll s2.LatLng) GeodeticCoord {
	return GeodeticCoord{
		Latitude:  ll.Lat.Degrees(),
		Longitude: ll.Lng.Degrees(),
	}
}

// LatLng returns the coordinate as an s2.LatLng.
func (g GeodeticCoord) LatLng() s2.LatLng {
	return s2.LatLng{
		Lat: s1.Angle(g.Latitude) * s1.Degree,
		Lng: s1.Angle(g.Longitude) * s1.Degree,
	}
}

func (g GeodeticCoord) String() string {
	return fmt.Sprintf("%.6f, %.6f", g.Latitude, g.Longitude)
}
