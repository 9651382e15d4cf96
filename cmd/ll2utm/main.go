// Command ll2utm converts a latitude and longitude to UTM and MGRS.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fieldnav/coordconv"
	"github.com/golang/geo/s2"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, w io.Writer) int {
	if len(args) != 2 {
		usage(w)
		return 1
	}
	lat, errLat := strconv.ParseFloat(args[0], 64)
	lng, errLng := strconv.ParseFloat(args[1], 64)
	if errLat != nil || errLng != nil {
		usage(w)
		return 1
	}

	ll := s2.LatLngFromDegrees(lat, lng)
	utm, err := coordconv.FromGeodetic(ll)
	if err != nil {
		fmt.Fprintf(w, "Conversion to UTM failed:\n%s\n", err)
		return 1
	}
	fmt.Fprintf(w, "UTM zone = %s, hemisphere = %s, easting = %d, northing = %d\n",
		utm.Zone, utm.Hemisphere, utm.Easting, utm.Northing)

	mgrs, err := coordconv.UTMToMGRS(utm)
	if err != nil {
		fmt.Fprintf(w, "Conversion to MGRS failed:\n%s\n", err)
		return 1
	}
	refs := make([]string, 0, 5)
	for precision := 1; precision <= 5; precision++ {
		refs = append(refs, mgrs.StringWithPrecision(precision))
	}
	fmt.Fprintf(w, "MGRS = %s\n", strings.Join(refs, " | "))
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Latitude / Longitude to UTM conversion")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "\tll2utm  latitude  longitude")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Example:")
	fmt.Fprintln(w, "\tll2utm 42.662139 -71.365553")
}
