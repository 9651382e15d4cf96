package coordconv

import (
	"math"
)

const nTerms = 6

// transverseMercator projects geodetic coordinates onto a single UTM zone
// using Krüger's series to sixth order in Helmert's n. Only the forward
// direction is needed; the inverse lives in utm.go.
type transverseMercator struct {
	eps             float64 // eccentricity
	k0R4            float64 // scale factor * R4
	aCoeff          [nTerms]float64
	centralMeridian float64 // radians
	falseEasting    float64
}

func newTransverseMercator(e Ellipsoid, centralMeridian, falseEasting, scaleFactor float64) *transverseMercator {
	t := &transverseMercator{
		centralMeridian: centralMeridian,
		falseEasting:    falseEasting,
	}
	if t.centralMeridian > math.Pi {
		t.centralMeridian -= 2 * math.Pi
	}
	f := e.Flattening
	t.eps = math.Sqrt(2*f - f*f)

	r4oa := krugerCoefficients(1/f, t.aCoeff[:])
	t.k0R4 = r4oa * scaleFactor * e.SemiMajorAxis
	return t
}

// krugerCoefficients fills aCoeff with the coefficients of the rectifying
// latitude as a trig series in the conformal latitude (a2..a12) and returns
// R4/a, the meridional isoperimetric radius over the semi-major axis.
func krugerCoefficients(invFlattening float64, aCoeff []float64) float64 {
	n1 := 1.0 / (2*invFlattening - 1.0)
	n2 := n1 * n1
	n3 := n2 * n1
	n4 := n3 * n1
	n5 := n4 * n1
	n6 := n5 * n1
	n7 := n6 * n1
	n8 := n7 * n1

	aCoeff[0] = (-18975107.0)*n8/50803200.0 +
		(72161.0)*n7/387072.0 +
		(7891.0)*n6/37800.0 +
		(-127.0)*n5/288.0 +
		(41.0)*n4/180.0 +
		(5.0)*n3/16.0 +
		(-2.0)*n2/3.0 +
		(1.0)*n1/2.0

	aCoeff[1] = (148003883.0)*n8/174182400.0 +
		(13769.0)*n7/28800.0 +
		(-1983433.0)*n6/1935360.0 +
		(281.0)*n5/630.0 +
		(557.0)*n4/1440.0 +
		(-3.0)*n3/5.0 +
		(13.0)*n2/48.0

	aCoeff[2] = (79682431.0)*n8/79833600.0 +
		(-67102379.0)*n7/29030400.0 +
		(167603.0)*n6/181440.0 +
		(15061.0)*n5/26880.0 +
		(-103.0)*n4/140.0 +
		(61.0)*n3/240.0

	aCoeff[3] = (-40176129013.0)*n8/7664025600.0 +
		(97445.0)*n7/49896.0 +
		(6601661.0)*n6/7257600.0 +
		(-179.0)*n5/168.0 +
		(49561.0)*n4/161280.0

	aCoeff[4] = (2605413599.0)*n8/622702080.0 +
		(14644087.0)*n7/9123840.0 +
		(-3418889.0)*n6/1995840.0 +
		(34729.0)*n5/80640.0

	aCoeff[5] = (175214326799.0)*n8/58118860800.0 +
		(-30705481.0)*n7/10378368.0 +
		(212378941.0)*n6/319334400.0

	n10 := n8 * n2
	r4 := 1 + n2/4 + n4/64 + n6/256 + 25*n8/16384.0 + 49*n10/65536.0
	return r4 / (1 + n1)
}

// project returns the easting and northing of a point, before any false
// northing is applied. lambda is measured from the central meridian.
func (t *transverseMercator) project(latitude, longitude float64) (easting, northing float64, err error) {
	lambda := longitude - t.centralMeridian
	if lambda > math.Pi {
		lambda -= 2 * math.Pi
	}
	if lambda < -math.Pi {
		lambda += 2 * math.Pi
	}
	if err := checkLatLon(latitude, lambda); err != nil {
		return 0, 0, err
	}

	cosLam := math.Cos(lambda)
	sinLam := math.Sin(lambda)
	cosPhi := math.Cos(latitude)
	sinPhi := math.Sin(latitude)

	// geodetic latitude to conformal latitude; only its sine and cosine
	// are needed
	P := math.Exp(t.eps * math.Atanh(t.eps*sinPhi))
	part1 := (1 + sinPhi) / P
	part2 := (1 - sinPhi) * P
	denom := part1 + part2
	cosChi := 2 * cosPhi / denom
	sinChi := (part1 - part2) / denom

	// spherical transverse Mercator
	U := math.Atanh(cosChi * sinLam)
	V := math.Atan2(sinChi, cosChi*cosLam)

	var c2ku, s2ku, c2kv, s2kv [nTerms]float64
	hyperbolicSeries(2.0*U, c2ku[:], s2ku[:])
	trigSeries(2.0*V, c2kv[:], s2kv[:])

	xStar := 0.0
	yStar := 0.0
	for k := nTerms - 1; k >= 0; k-- {
		xStar += t.aCoeff[k] * s2ku[k] * c2kv[k]
		yStar += t.aCoeff[k] * c2ku[k] * s2kv[k]
	}
	xStar += U
	yStar += V

	return t.k0R4*xStar + t.falseEasting, t.k0R4 * yStar, nil
}

// checkLatLon rejects points more than 70 degrees from the central
// meridian, where the series diverges.
func checkLatLon(latitude, deltaLon float64) error {
	testAngle := math.Abs(deltaLon)
	if delta := math.Abs(deltaLon - math.Pi); delta < testAngle {
		testAngle = delta
	}
	if delta := math.Abs(deltaLon + math.Pi); delta < testAngle {
		testAngle = delta
	}
	// close to a pole everything is near the central meridian
	if delta := math.Pi/2 - latitude; delta < testAngle {
		testAngle = delta
	}
	if delta := math.Pi/2 + latitude; delta < testAngle {
		testAngle = delta
	}
	const maxDeltaLong = (math.Pi * 70) / 180.0
	if testAngle > maxDeltaLong {
		return newError(KindCoordinateOutOfBounds, "", "longitude too far from central meridian")
	}
	return nil
}

// hyperbolicSeries sets c2kx[k] = cosh(2(k+1)x), s2kx[k] = sinh(2(k+1)x).
func hyperbolicSeries(twoX float64, c2kx, s2kx []float64) {
	c2kx[0] = math.Cosh(twoX)
	s2kx[0] = math.Sinh(twoX)
	c2kx[1] = 2.0*c2kx[0]*c2kx[0] - 1.0
	s2kx[1] = 2.0 * c2kx[0] * s2kx[0]
	c2kx[2] = c2kx[0]*c2kx[1] + s2kx[0]*s2kx[1]
	s2kx[2] = c2kx[1]*s2kx[0] + c2kx[0]*s2kx[1]
	c2kx[3] = 2.0*c2kx[1]*c2kx[1] - 1.0
	s2kx[3] = 2.0 * c2kx[1] * s2kx[1]
	c2kx[4] = c2kx[0]*c2kx[3] + s2kx[0]*s2kx[3]
	s2kx[4] = c2kx[3]*s2kx[0] + c2kx[0]*s2kx[3]
	c2kx[5] = 2.0*c2kx[2]*c2kx[2] - 1.0
	s2kx[5] = 2.0 * c2kx[2] * s2kx[2]
}

// trigSeries sets c2ky[k] = cos(2(k+1)y), s2ky[k] = sin(2(k+1)y).
func trigSeries(twoY float64, c2ky, s2ky []float64) {
	c2ky[0] = math.Cos(twoY)
	s2ky[0] = math.Sin(twoY)
	c2ky[1] = 2.0*c2ky[0]*c2ky[0] - 1.0
	s2ky[1] = 2.0 * c2ky[0] * s2ky[0]
	c2ky[2] = c2ky[1]*c2ky[0] - s2ky[1]*s2ky[0]
	s2ky[2] = c2ky[1]*s2ky[0] + c2ky[0]*s2ky[1]
	c2ky[3] = 2.0*c2ky[1]*c2ky[1] - 1.0
	s2ky[3] = 2.0 * c2ky[1] * s2ky[1]
	c2ky[4] = c2ky[3]*c2ky[0] - s2ky[3]*s2ky[0]
	s2ky[4] = c2ky[3]*s2ky[0] + c2ky[0]*s2ky[3]
	c2ky[5] = 2.0*c2ky[2]*c2ky[2] - 1.0
	s2ky[5] = 2.0 * c2ky[2] * s2ky[2]
}
