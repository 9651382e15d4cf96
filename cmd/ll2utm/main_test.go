package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Example_run() {
	run([]string{"42.662139", "-71.365553"}, os.Stdout)
	// Output:
	// UTM zone = 19T, hemisphere = N, easting = 306130, northing = 4726009
	// MGRS = 19T CH 0 2 | 19T CH 06 26 | 19T CH 061 260 | 19T CH 0613 2600 | 19T CH 06130 26009
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 1, run([]string{"42.66"}, &out))
	assert.Contains(t, out.String(), "Usage:")

	out.Reset()
	assert.Equal(t, 1, run([]string{"north", "-71"}, &out))
	assert.Contains(t, out.String(), "Usage:")

	out.Reset()
	assert.Equal(t, 1, run([]string{"86", "10"}, &out))
	assert.Contains(t, out.String(), "unsupported zone")
}
