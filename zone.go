package coordconv

import (
	"strconv"
	"strings"
)

// ParseZone splits a zone designator such as "18T" or "05q" into its number
// and upper-case band letter and validates both.
func ParseZone(zone string) (number int, letter byte, err error) {
	s := strings.TrimSpace(zone)
	i := 0
	for i < len(s) && isdigit(s[i]) {
		i++
	}
	if i == 0 || i > 2 || len(s) != i+1 || !isalpha(s[i]) {
		return 0, 0, newError(KindInvalidZoneFormat, zone, "expected 1-2 digits followed by a band letter")
	}
	number, _ = strconv.Atoi(s[:i])
	letter = toupper(s[i])

	if number < 1 || number > 60 {
		return 0, 0, newError(KindInvalidZoneRange, zone, "zone number must be between 1 and 60")
	}
	switch letter {
	case 'A', 'B', 'Y', 'Z':
		return 0, 0, newError(KindUnsupportedZone, zone, "polar zones are not supported")
	}
	if letter < 'C' || letter > 'X' || letter == 'I' || letter == 'O' {
		return 0, 0, newError(KindInvalidZoneRange, zone, "band letter must be C-X, excluding I and O")
	}
	// Svalbard: 31X, 33X, 35X and 37X are widened to cover these zones.
	if letter == 'X' && (number == 32 || number == 34 || number == 36) {
		return 0, 0, newError(KindNonexistentZone, zone, "")
	}
	return number, letter, nil
}

// ValidateUTMZone returns nil if zone names an existing, supported UTM zone.
func ValidateUTMZone(zone string) error {
	_, _, err := ParseZone(zone)
	return err
}

// normalizeZone returns the canonical zone string, e.g. "5Q" for "05q".
func normalizeZone(number int, letter byte) string {
	return strconv.Itoa(number) + string(letter)
}

// columnRange returns the first and last legal 100 km column letters for a
// zone number. The six-zone set number repeats every three zones.
func columnRange(zoneNumber int) (low, high byte) {
	switch zoneNumber % 3 {
	case 1:
		return 'A', 'H'
	case 2:
		return 'J', 'R'
	default:
		return 'S', 'Z'
	}
}

// ValidateGridDesignation checks a 100 km grid square against the column
// letters allowed in zoneNumber and the row letters A-V.
func ValidateGridDesignation(zoneNumber int, gridSquare string) error {
	if len(gridSquare) != 2 || !isalpha(gridSquare[0]) || !isalpha(gridSquare[1]) {
		return newError(KindInvalidGridDesignation, gridSquare, "expected two letters")
	}
	if zoneNumber < 1 || zoneNumber > 60 {
		return newError(KindInvalidZoneRange, strconv.Itoa(zoneNumber), "zone number must be between 1 and 60")
	}
	col, row := toupper(gridSquare[0]), toupper(gridSquare[1])
	if col == 'I' || col == 'O' || row == 'I' || row == 'O' {
		return newError(KindInvalidGridDesignation, gridSquare, "letters I and O are never used")
	}
	low, high := columnRange(zoneNumber)
	if col < low || col > high {
		return newError(KindInvalidGridDesignation, gridSquare,
			"column letter must be "+string(low)+"-"+string(high)+" in zone "+strconv.Itoa(zoneNumber))
	}
	if row > 'V' {
		return newError(KindInvalidGridDesignation, gridSquare, "row letter must be A-V")
	}
	return nil
}

func isdigit(r byte) bool {
	return r >= '0' && r <= '9'
}

func isalpha(r byte) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z'
}

func toupper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// upperASCII upper-cases ASCII letters only; other bytes are left alone.
func upperASCII(s string) string {
	b := []byte(s)
	for i := range b {
		b[i] = toupper(b[i])
	}
	return string(b)
}
