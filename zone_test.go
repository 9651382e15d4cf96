package coordconv_test

import (
	"errors"
	"testing"

	"github.com/fieldnav/coordconv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUTMZone(t *testing.T) {
	tests := []struct {
		zone string
		kind coordconv.ErrorKind
	}{
		{"18T", coordconv.KindUnknown},
		{"5Q", coordconv.KindUnknown},
		{"05Q", coordconv.KindUnknown},
		{"5q", coordconv.KindUnknown},
		{"60X", coordconv.KindUnknown},
		{"1C", coordconv.KindUnknown},
		{"31X", coordconv.KindUnknown},
		{" 33X ", coordconv.KindUnknown},

		{"", coordconv.KindInvalidZoneFormat},
		{"T", coordconv.KindInvalidZoneFormat},
		{"18", coordconv.KindInvalidZoneFormat},
		{"18TT", coordconv.KindInvalidZoneFormat},
		{"123T", coordconv.KindInvalidZoneFormat},
		{"1-T", coordconv.KindInvalidZoneFormat},
		{"18 T", coordconv.KindInvalidZoneFormat},

		{"0T", coordconv.KindInvalidZoneRange},
		{"61T", coordconv.KindInvalidZoneRange},
		{"18I", coordconv.KindInvalidZoneRange},
		{"18O", coordconv.KindInvalidZoneRange},

		{"32X", coordconv.KindNonexistentZone},
		{"34X", coordconv.KindNonexistentZone},
		{"36x", coordconv.KindNonexistentZone},

		{"31Z", coordconv.KindUnsupportedZone},
		{"31Y", coordconv.KindUnsupportedZone},
		{"1A", coordconv.KindUnsupportedZone},
		{"60B", coordconv.KindUnsupportedZone},
	}
	for _, tc := range tests {
		t.Run(tc.zone, func(t *testing.T) {
			err := coordconv.ValidateUTMZone(tc.zone)
			if tc.kind == coordconv.KindUnknown {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.kind, coordconv.KindOf(err), "got %s", err)
		})
	}
}

func TestValidateUTMZoneTotal(t *testing.T) {
	// every zone number with every letter yields success or exactly one kind
	for zone := 0; zone <= 99; zone++ {
		for letter := byte('A'); letter <= 'Z'; letter++ {
			z := string([]byte{byte('0' + zone/10), byte('0' + zone%10), letter})
			err := coordconv.ValidateUTMZone(z)
			if err == nil {
				continue
			}
			kind := coordconv.KindOf(err)
			assert.NotEqual(t, coordconv.KindUnknown, kind, z)
			assert.NotEqual(t, coordconv.KindInvalidZoneFormat, kind, z)
		}
	}
}

func TestUnsupportedZoneSentinel(t *testing.T) {
	err := coordconv.ValidateUTMZone("31Z")
	assert.True(t, errors.Is(err, coordconv.ErrUnsupportedZone))
	assert.False(t, errors.Is(err, coordconv.ErrInvalidZoneRange))
}

func TestParseZone(t *testing.T) {
	number, letter, err := coordconv.ParseZone("05q")
	require.NoError(t, err)
	assert.Equal(t, 5, number)
	assert.Equal(t, byte('Q'), letter)
}

func TestValidateGridDesignation(t *testing.T) {
	tests := []struct {
		zone  int
		gzd   string
		valid bool
	}{
		{19, "GL", true},
		{19, "AA", true},
		{19, "HV", true},
		{19, "JA", false},
		{20, "JA", true},
		{20, "RV", true},
		{20, "PK", true},
		{20, "OK", false},
		{20, "HA", false},
		{21, "SA", true},
		{21, "ZV", true},
		{21, "RA", false},
		{19, "GW", false},
		{19, "GI", false},
		{19, "GO", false},
		{19, "gl", true},
		{19, "G", false},
		{19, "G1", false},
		{19, "GLL", false},
	}
	for _, tc := range tests {
		err := coordconv.ValidateGridDesignation(tc.zone, tc.gzd)
		if tc.valid {
			assert.NoError(t, err, "%d %s", tc.zone, tc.gzd)
		} else {
			assert.Equal(t, coordconv.KindInvalidGridDesignation, coordconv.KindOf(err), "%d %s", tc.zone, tc.gzd)
		}
	}
}

func TestBands(t *testing.T) {
	bands := coordconv.Bands()
	require.Len(t, bands, 20)
	for i, b := range bands {
		assert.NotEqual(t, byte('I'), b.Letter)
		assert.NotEqual(t, byte('O'), b.Letter)
		if i > 0 {
			assert.Equal(t, bands[i-1].North, b.South)
			assert.Greater(t, b.Letter, bands[i-1].Letter)
		}
		got, ok := coordconv.Band(b.Letter)
		require.True(t, ok)
		assert.Equal(t, b, got)
	}
	_, ok := coordconv.Band('I')
	assert.False(t, ok)
	_, ok = coordconv.Band('Z')
	assert.False(t, ok)

	h, ok := coordconv.Band('h')
	require.True(t, ok)
	assert.Equal(t, 5500000, h.MinNorthing)
	assert.False(t, h.Northern())
	assert.True(t, h.Contains(-33.8))
}
