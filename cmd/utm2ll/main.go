// Command utm2ll converts a UTM or MGRS position to latitude and longitude.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fieldnav/coordconv"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, w io.Writer) int {
	if len(args) == 0 {
		usage(w)
		return 1
	}

	if len(args) == 3 {
		easting, errE := strconv.Atoi(args[1])
		northing, errN := strconv.Atoi(args[2])
		if errE == nil && errN == nil {
			utm := coordconv.UTMCoord{Zone: args[0], Easting: easting, Northing: northing}
			geo, err := coordconv.UTMToWGS84(utm)
			if err != nil {
				fmt.Fprintf(w, "Conversion from UTM failed:\n%s\n", err)
				return 1
			}
			fmt.Fprintf(w, "from UTM, latitude = %.6f, longitude = %.6f\n", geo.Latitude, geo.Longitude)
			return 0
		}
	}

	// anything else is an MGRS reference, possibly split over several args
	mgrs, err := coordconv.ParseMGRS(strings.Join(args, " "))
	if err == nil {
		var geo coordconv.GeodeticCoord
		geo, err = coordconv.MGRSToWGS84(mgrs)
		if err == nil {
			fmt.Fprintf(w, "from MGRS %s, latitude = %.6f, longitude = %.6f\n", mgrs, geo.Latitude, geo.Longitude)
			return 0
		}
	}
	fmt.Fprintf(w, "Conversion from MGRS failed:\n%s\n", err)
	return 1
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "UTM to Latitude / Longitude conversion")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "\tutm2ll  zone  easting  northing")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "where,")
	fmt.Fprintln(w, "\tzone is UTM zone 1 thru 60 with latitudinal band.")
	fmt.Fprintln(w, "\teasting is x coordinate in meters")
	fmt.Fprintln(w, "\tnorthing is y coordinate in meters")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "or:")
	fmt.Fprintln(w, "\tutm2ll  x")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "where,")
	fmt.Fprintln(w, "\tx is an MGRS location.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "\tutm2ll 19T 306130 4726010")
	fmt.Fprintln(w, "\tutm2ll 19TCH0613026010")
}
