package main

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunUTM(t *testing.T) {
	var out bytes.Buffer
	require.Equal(t, 0, run([]string{"19T", "306130", "4726010"}, &out))

	var lat, lng float64
	_, err := fmt.Sscanf(out.String(), "from UTM, latitude = %f, longitude = %f", &lat, &lng)
	require.NoError(t, err)
	assert.InDelta(t, 42.662139, lat, 2e-5)
	assert.InDelta(t, -71.365553, lng, 2e-5)
}

func TestRunMGRS(t *testing.T) {
	for _, args := range [][]string{
		{"19TCH0613026010"},
		{"19T", "CH", "06130", "26010"},
		{"19t ch 0613 2601"},
	} {
		var out bytes.Buffer
		require.Equal(t, 0, run(args, &out), out.String())
		assert.True(t, strings.HasPrefix(out.String(), "from MGRS 19T CH"), out.String())
		assert.Contains(t, out.String(), "latitude = 42.66")
	}
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, run([]string{"31Z", "306130", "4726010"}, &out))
	assert.Contains(t, out.String(), "unsupported zone")

	out.Reset()
	assert.Equal(t, 1, run([]string{"50Q KK 7634 66491"}, &out))
	assert.Contains(t, out.String(), "malformed MGRS text")

	out.Reset()
	assert.Equal(t, 1, run(nil, &out))
	assert.Contains(t, out.String(), "Usage:")
}
