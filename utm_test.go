package coordconv_test

import (
	"testing"

	"github.com/fieldnav/coordconv"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const angularTolerance = 2e-5 // degrees

func TestUTMToWGS84(t *testing.T) {
	tests := []struct {
		utm      coordconv.UTMCoord
		lat, lng float64
	}{
		{coordconv.UTMCoord{Zone: "50Q", Easting: 207634, Northing: 2466491}, 22.279327, 114.162809},
		{coordconv.UTMCoord{Zone: "19T", Easting: 306130, Northing: 4726010}, 42.662139, -71.365553},
		{coordconv.UTMCoord{Zone: "19T", Hemisphere: coordconv.HemisphereNorth, Easting: 306130, Northing: 4726010}, 42.662139, -71.365553},
		{coordconv.UTMCoord{Zone: "31N", Easting: 166021, Northing: 0}, 0, 0},
		{coordconv.UTMCoord{Zone: "31M", Easting: 166021, Northing: 9999999}, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.utm.String(), func(t *testing.T) {
			geo, err := coordconv.UTMToWGS84(tc.utm)
			require.NoError(t, err)
			assert.InDelta(t, tc.lat, geo.Latitude, angularTolerance)
			assert.InDelta(t, tc.lng, geo.Longitude, angularTolerance)
		})
	}
}

func TestUTMToWGS84Errors(t *testing.T) {
	tests := []struct {
		name string
		utm  coordconv.UTMCoord
		kind coordconv.ErrorKind
	}{
		{"bad zone", coordconv.UTMCoord{Zone: "Q50", Easting: 207634, Northing: 2466491}, coordconv.KindInvalidZoneFormat},
		{"polar", coordconv.UTMCoord{Zone: "50Z", Easting: 207634, Northing: 2466491}, coordconv.KindUnsupportedZone},
		{"svalbard", coordconv.UTMCoord{Zone: "34X", Easting: 507634, Northing: 8466491}, coordconv.KindNonexistentZone},
		{"hemisphere", coordconv.UTMCoord{Zone: "50Q", Hemisphere: coordconv.HemisphereSouth, Easting: 207634, Northing: 2466491}, coordconv.KindInvalidZoneRange},
		{"easting low", coordconv.UTMCoord{Zone: "50Q", Easting: 99999, Northing: 2466491}, coordconv.KindCoordinateOutOfBounds},
		{"easting high", coordconv.UTMCoord{Zone: "50Q", Easting: 1000000, Northing: 2466491}, coordconv.KindCoordinateOutOfBounds},
		{"northing low", coordconv.UTMCoord{Zone: "50Q", Easting: 207634, Northing: -1}, coordconv.KindCoordinateOutOfBounds},
		{"northing high", coordconv.UTMCoord{Zone: "50Q", Easting: 207634, Northing: 10000000}, coordconv.KindCoordinateOutOfBounds},
		{"beyond 84.5", coordconv.UTMCoord{Zone: "33X", Easting: 500000, Northing: 9900000}, coordconv.KindCoordinateOutOfBounds},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coordconv.UTMToWGS84(tc.utm)
			require.Error(t, err)
			assert.Equal(t, tc.kind, coordconv.KindOf(err), "got %s", err)
			if tc.name != "beyond 84.5" {
				assert.False(t, coordconv.IsUTMValid(tc.utm))
			}
		})
	}
}

func TestFromGeodetic(t *testing.T) {
	tests := []struct {
		lat, lng float64
		utm      coordconv.UTMCoord
	}{
		// northing 4726009.96 truncates
		{42.662139, -71.365553, coordconv.UTMCoord{Zone: "19T", Hemisphere: coordconv.HemisphereNorth, Easting: 306130, Northing: 4726009}},
		// southern Norway belongs to 32V
		{60.0, 5.0, coordconv.UTMCoord{Zone: "32V", Hemisphere: coordconv.HemisphereNorth}},
		// Svalbard
		{78.0, 15.0, coordconv.UTMCoord{Zone: "33X", Hemisphere: coordconv.HemisphereNorth}},
		{-33.8, 21.0, coordconv.UTMCoord{Zone: "34H", Hemisphere: coordconv.HemisphereSouth}},
		// band X runs on to 84.5
		{84.2, -71.0, coordconv.UTMCoord{Zone: "19X", Hemisphere: coordconv.HemisphereNorth}},
	}
	for _, tc := range tests {
		u, err := coordconv.FromGeodetic(s2.LatLngFromDegrees(tc.lat, tc.lng))
		require.NoError(t, err)
		assert.Equal(t, tc.utm.Zone, u.Zone)
		assert.Equal(t, tc.utm.Hemisphere, u.Hemisphere)
		if tc.utm.Easting != 0 {
			assert.Equal(t, tc.utm, u)
		}
	}
}

func TestFromGeodeticPolar(t *testing.T) {
	for _, lat := range []float64{-85, -80.5, 84.5, 89} {
		_, err := coordconv.FromGeodetic(s2.LatLngFromDegrees(lat, 10))
		assert.ErrorIs(t, err, coordconv.ErrUnsupportedZone, "lat %f", lat)
	}
}

func TestUTMRoundTrip(t *testing.T) {
	const latInc = 0.5
	const lngInc = 0.5
	const tolerance = 3e-5 * s1.Degree
	for lng := -180.0; lng < 180; lng += lngInc {
		for lat := -80.0; lat <= 84; lat += latInc {
			geo := s2.LatLngFromDegrees(lat, lng)
			uc, err := coordconv.FromGeodetic(geo)
			if err != nil {
				t.Fatalf("expected no error converting %s, got %s", geo, err)
			}
			geo2, err := coordconv.UTMToWGS84(uc)
			if err != nil {
				t.Fatalf("expected no error in round trip, got one at %s %s (%s)", geo, uc, err)
			}
			if d := geo.Distance(geo2.LatLng()); d > tolerance {
				t.Fatalf("expected %s, got %s from %s", geo, geo2, uc)
			}
			if geo2.Latitude < -90 || geo2.Latitude > 90 || geo2.Longitude <= -180 || geo2.Longitude > 180 {
				t.Fatalf("result %s out of range", geo2)
			}
		}
	}
}

func TestNewConverter(t *testing.T) {
	_, err := coordconv.NewConverter(coordconv.Ellipsoid{SemiMajorAxis: 0, Flattening: 1 / 298.257223563})
	assert.Error(t, err)
	_, err = coordconv.NewConverter(coordconv.Ellipsoid{SemiMajorAxis: 6378137, Flattening: 1 / 100.0})
	assert.Error(t, err)

	c, err := coordconv.NewConverter(coordconv.WGS84)
	require.NoError(t, err)
	assert.Equal(t, coordconv.WGS84, c.Ellipsoid())
}

func TestUTMCoordWithHemisphere(t *testing.T) {
	u, err := coordconv.UTMCoord{Zone: "34H", Easting: 257204, Northing: 6257124}.WithHemisphere()
	require.NoError(t, err)
	assert.Equal(t, coordconv.HemisphereSouth, u.Hemisphere)
	assert.Equal(t, 257204, u.Easting)

	u, err = coordconv.UTMCoord{Zone: "31n", Hemisphere: coordconv.HemisphereSouth}.WithHemisphere()
	require.NoError(t, err)
	assert.Equal(t, coordconv.HemisphereNorth, u.Hemisphere)

	_, err = coordconv.UTMCoord{Zone: "31Z"}.WithHemisphere()
	assert.ErrorIs(t, err, coordconv.ErrUnsupportedZone)
}
