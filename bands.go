package coordconv

import "math"

// LatitudeBand is one of the 20 UTM latitude bands C through X. South and
// North are in degrees; MinNorthing is the lowest UTM northing, in meters,
// found inside the band.
type LatitudeBand struct {
	Letter      byte
	MinNorthing int
	South       float64
	North       float64
}

// Contains reports whether latitude (degrees) is inside the band.
func (b LatitudeBand) Contains(latitude float64) bool {
	return latitude >= b.South && latitude < b.North
}

// Northern reports whether the band is north of the equator.
func (b LatitudeBand) Northern() bool {
	return b.Letter >= 'N'
}

var latitudeBands = [20]LatitudeBand{
	{'C', 1100000, -80.0, -72.0},
	{'D', 2000000, -72.0, -64.0},
	{'E', 2800000, -64.0, -56.0},
	{'F', 3700000, -56.0, -48.0},
	{'G', 4600000, -48.0, -40.0},
	{'H', 5500000, -40.0, -32.0},
	{'J', 6400000, -32.0, -24.0},
	{'K', 7300000, -24.0, -16.0},
	{'L', 8200000, -16.0, -8.0},
	{'M', 9100000, -8.0, 0.0},
	{'N', 0, 0.0, 8.0},
	{'P', 800000, 8.0, 16.0},
	{'Q', 1700000, 16.0, 24.0},
	{'R', 2600000, 24.0, 32.0},
	{'S', 3500000, 32.0, 40.0},
	{'T', 4400000, 40.0, 48.0},
	{'U', 5300000, 48.0, 56.0},
	{'V', 6200000, 56.0, 64.0},
	{'W', 7000000, 64.0, 72.0},
	{'X', 7900000, 72.0, 84.0},
}

// bandIndex maps 'A'..'Z' to an index into latitudeBands, -1 for letters
// that are not UTM bands.
var bandIndex [26]int8

func init() {
	for i := range bandIndex {
		bandIndex[i] = -1
	}
	for i, b := range latitudeBands {
		bandIndex[b.Letter-'A'] = int8(i)
	}
}

// Band returns the latitude band for letter, which may be lower case.
func Band(letter byte) (LatitudeBand, bool) {
	letter = toupper(letter)
	if letter < 'A' || letter > 'Z' {
		return LatitudeBand{}, false
	}
	i := bandIndex[letter-'A']
	if i < 0 {
		return LatitudeBand{}, false
	}
	return latitudeBands[i], true
}

// Bands returns a copy of the band table ordered south to north.
func Bands() []LatitudeBand {
	out := make([]LatitudeBand, len(latitudeBands))
	copy(out, latitudeBands[:])
	return out
}

// bandForLatitude returns the band letter for a latitude in radians. Band X
// is stretched to 84.5 degrees so that points on the 84th parallel still get
// a letter.
func bandForLatitude(latitude float64) (byte, error) {
	const lat72 = 72.0 * (math.Pi / 180.0)
	const lat845 = 84.5 * (math.Pi / 180.0)
	const lat80 = 80.0 * (math.Pi / 180.0)
	const lat8 = 8.0 * (math.Pi / 180.0)

	if latitude >= lat72 && latitude < lat845 {
		return 'X', nil
	} else if latitude >= -lat80 && latitude < lat72 {
		band := int(((latitude + lat80) / lat8) + 1.0e-12)
		if band < 0 {
			band = 0
		}
		return latitudeBands[band].Letter, nil
	}
	return 0, newError(KindUnsupportedZone, "", "latitude outside UTM bands")
}
