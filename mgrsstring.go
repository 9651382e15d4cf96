package coordconv

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const mgrsMaxPrecision = 5 // Maximum precision of easting & northing
const mgrsMinPrecision = 3 // Minimum precision accepted by ParseMGRS

// ParseMGRS reads an MGRS reference such as "19T GL 09131 57968". Case and
// surrounding whitespace are ignored, the grid square may follow the zone
// directly, and easting and northing may be given as one run of 6, 8 or 10
// digits or as two runs of 3, 4 or 5 digits each. Shorter references are
// scaled to meters, so "18T WL 805 064" reads as easting 80500, northing
// 6400. Only the text is checked; use ValidateMGRS for the zone and square.
func ParseMGRS(text string) (MGRSCoord, error) {
	malformed := func(reason string) (MGRSCoord, error) {
		return MGRSCoord{}, newError(KindMalformedMGRSText, text, reason)
	}
	for i := 0; i < len(text); i++ {
		if text[i] >= utf8.RuneSelf {
			return malformed("non-ASCII character")
		}
	}
	s := upperASCII(strings.TrimSpace(text))

	i := 0
	for i < len(s) && isdigit(s[i]) {
		i++
	}
	if i == 0 || i > 2 {
		return malformed("zone must start with 1 or 2 digits")
	}
	zone, _ := strconv.Atoi(s[:i])
	if i == len(s) || !isalpha(s[i]) {
		return malformed("missing band letter after zone number")
	}
	band := s[i]
	i++

	s = strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	if len(s) < 2 || !isalpha(s[0]) || !isalpha(s[1]) {
		return malformed("missing two letter grid square")
	}
	square := s[:2]
	digits := strings.Fields(s[2:])

	var eastString, northString string
	switch len(digits) {
	case 1:
		n := len(digits[0])
		if n%2 != 0 || n < 2*mgrsMinPrecision || n > 2*mgrsMaxPrecision {
			return malformed("easting and northing must be 6, 8 or 10 digits together")
		}
		eastString, northString = digits[0][:n/2], digits[0][n/2:]
	case 2:
		eastString, northString = digits[0], digits[1]
		if len(eastString) != len(northString) {
			return malformed("easting and northing have different lengths")
		}
		if len(eastString) < mgrsMinPrecision || len(eastString) > mgrsMaxPrecision {
			return malformed("easting and northing must be 3 to 5 digits")
		}
	default:
		return malformed("expected easting and northing")
	}

	east, err := parseDigits(eastString)
	if err != nil {
		return malformed("easting: " + err.Error())
	}
	north, err := parseDigits(northString)
	if err != nil {
		return malformed("northing: " + err.Error())
	}
	multiplier := int(computeScale(len(eastString)))

	return MGRSCoord{
		Zone:       normalizeZone(zone, band),
		GridSquare: square,
		Easting:    east * multiplier,
		Northing:   north * multiplier,
	}, nil
}

// ReadMGRS is an alias for ParseMGRS.
func ReadMGRS(text string) (MGRSCoord, error) {
	return ParseMGRS(text)
}

func parseDigits(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if !isdigit(s[i]) {
			return 0, fmt.Errorf("invalid character %q", s[i])
		}
	}
	return strconv.Atoi(s)
}

// computeScale returns the size in meters of one unit of an easting or
// northing written with prec digits.
func computeScale(prec int) float64 {
	scale := 1.0e5
	switch prec {
	case 0:
		scale = 1.0e5
	case 1:
		scale = 1.0e4
	case 2:
		scale = 1.0e3
	case 3:
		scale = 1.0e2
	case 4:
		scale = 1.0e1
	case 5:
		scale = 1.0e0
	}
	return scale
}

// FormatMGRS returns the canonical form of m, e.g. "19T GL 09131 57968".
// The zone loses any leading zero and letters are upper-cased.
func FormatMGRS(m MGRSCoord) string {
	return m.StringWithPrecision(mgrsMaxPrecision)
}

// StringWithPrecision formats m with precision (0-5) digits each for
// easting and northing; easting and northing are truncated, not rounded.
// Precisions outside that range are clamped.
func (m MGRSCoord) StringWithPrecision(precision int) string {
	if precision < 0 {
		precision = 0
	} else if precision > mgrsMaxPrecision {
		precision = mgrsMaxPrecision
	}
	divisor := int(computeScale(precision))

	zone := m.Zone
	if number, letter, err := ParseZone(m.Zone); err == nil {
		zone = normalizeZone(number, letter)
	}

	buf := bytes.Buffer{}
	buf.WriteString(zone)
	buf.WriteByte(' ')
	buf.WriteString(upperASCII(m.GridSquare))
	if precision > 0 {
		fmt.Fprintf(&buf, " %0*d %0*d", precision, m.Easting/divisor, precision, m.Northing/divisor)
	}
	return buf.String()
}
