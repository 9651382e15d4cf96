package coordconv

import (
	"strconv"

	"github.com/golang/geo/s2"
)

// MGRSCoord is an MGRS coordinate at one meter resolution: a UTM zone such
// as "19T", a 100 km grid square such as "GL", and the easting and northing
// within that square.
type MGRSCoord struct {
	Zone       string
	GridSquare string
	Easting    int
	Northing   int
}

func (m MGRSCoord) String() string {
	return FormatMGRS(m)
}

const mgrsGridSize = 100000      // side of a grid square in meters
const mgrsRowCycle = 2000000     // northing covered by the 20 row letters
const mgrsEvenZoneOffset = 1500000 // row letter A northing in even zones
const mgrsMaxUTMEasting = 900000 // exclusive, a zone has at most 8 columns

// validateMGRS checks m and returns its zone number and the upper-case band,
// column and row letters.
func validateMGRS(m MGRSCoord) (zone int, band, col, row byte, err error) {
	zone, band, err = ParseZone(m.Zone)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if err = ValidateGridDesignation(zone, m.GridSquare); err != nil {
		return 0, 0, 0, 0, err
	}
	col, row = toupper(m.GridSquare[0]), toupper(m.GridSquare[1])
	// 31V is only 3 degrees wide, the rest of it belongs to 32V
	if band == 'V' && zone == 31 && col > 'D' {
		return 0, 0, 0, 0, newError(KindInvalidGridDesignation, m.GridSquare, "zone 31V only has columns A-D")
	}
	if m.Easting < 0 || m.Easting >= mgrsGridSize {
		return 0, 0, 0, 0, newError(KindCoordinateOutOfBounds, strconv.Itoa(m.Easting), "easting must be 0-99999")
	}
	if m.Northing < 0 || m.Northing >= mgrsGridSize {
		return 0, 0, 0, 0, newError(KindCoordinateOutOfBounds, strconv.Itoa(m.Northing), "northing must be 0-99999")
	}
	return zone, band, col, row, nil
}

// ValidateMGRS checks the zone, the grid square and the easting/northing
// range of m.
func ValidateMGRS(m MGRSCoord) error {
	_, _, _, _, err := validateMGRS(m)
	return err
}

// IsMGRSValid reports whether ValidateMGRS accepts m.
func IsMGRSValid(m MGRSCoord) bool {
	return ValidateMGRS(m) == nil
}

// MGRSToUTM converts an MGRS coordinate to UTM. The 100 km square only fixes
// the northing modulo 2000 km; the band letter picks the cycle.
func MGRSToUTM(m MGRSCoord) (UTMCoord, error) {
	zone, band, col, row, err := validateMGRS(m)
	if err != nil {
		return UTMCoord{}, err
	}

	hemisphere := hemisphereForBand(band)

	falseNorthing := 0
	if zone%2 == 0 {
		falseNorthing = mgrsEvenZoneOffset
	}

	low, _ := columnRange(zone)
	gridEasting := int(col-low+1) * mgrsGridSize
	if low == 'J' && col > 'O' {
		gridEasting -= mgrsGridSize
	}

	rowIndex := int(row - 'A')
	if row > 'O' {
		rowIndex--
	}
	if row > 'I' {
		rowIndex--
	}
	rowNorthing := rowIndex*mgrsGridSize + falseNorthing
	if rowNorthing >= mgrsRowCycle {
		rowNorthing -= mgrsRowCycle
	}

	lb, _ := Band(band)
	gridNorthing := rowNorthing - lb.MinNorthing%mgrsRowCycle
	if gridNorthing < 0 {
		gridNorthing += mgrsRowCycle
	}
	gridNorthing += lb.MinNorthing

	u := UTMCoord{
		Zone:       normalizeZone(zone, band),
		Hemisphere: hemisphere,
		Easting:    gridEasting + m.Easting,
		Northing:   gridNorthing + m.Northing,
	}
	if u.Northing >= utmMaxNorthing {
		return UTMCoord{}, newError(KindCoordinateOutOfBounds, FormatMGRS(m), "grid square is not inside band "+string(band))
	}
	return u, nil
}

// UTMToMGRS converts a UTM coordinate to MGRS by naming the 100 km square
// that contains it.
func UTMToMGRS(u UTMCoord) (MGRSCoord, error) {
	zone, band, err := validateUTM(u)
	if err != nil {
		return MGRSCoord{}, err
	}
	if u.Easting >= mgrsMaxUTMEasting {
		return MGRSCoord{}, newError(KindCoordinateOutOfBounds, strconv.Itoa(u.Easting), "easting beyond the last grid column")
	}

	low, _ := columnRange(zone)
	col := low + byte(u.Easting/mgrsGridSize-1)
	if low == 'J' && col > 'N' {
		col++
	}

	// the inverse of the even zone offset used by MGRSToUTM
	gridNorthing := u.Northing % mgrsRowCycle
	if zone%2 == 0 {
		gridNorthing += mgrsRowCycle - mgrsEvenZoneOffset
	}
	if gridNorthing >= mgrsRowCycle {
		gridNorthing -= mgrsRowCycle
	}
	row := 'A' + byte(gridNorthing/mgrsGridSize)
	if row > 'H' {
		row++
	}
	if row > 'N' {
		row++
	}

	return MGRSCoord{
		Zone:       normalizeZone(zone, band),
		GridSquare: string([]byte{col, row}),
		Easting:    u.Easting % mgrsGridSize,
		Northing:   u.Northing % mgrsGridSize,
	}, nil
}

// MGRSToWGS84 converts an MGRS coordinate to latitude and longitude.
func (c *Converter) MGRSToWGS84(m MGRSCoord) (GeodeticCoord, error) {
	u, err := MGRSToUTM(m)
	if err != nil {
		return GeodeticCoord{}, err
	}
	return c.UTMToWGS84(u)
}

// ToMGRS converts a latitude/longitude to an MGRS coordinate at one meter
// resolution.
func (c *Converter) ToMGRS(geodeticCoordinates s2.LatLng) (MGRSCoord, error) {
	u, err := c.FromGeodetic(geodeticCoordinates)
	if err != nil {
		return MGRSCoord{}, err
	}
	return UTMToMGRS(u)
}
