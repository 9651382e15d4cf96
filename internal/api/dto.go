package api

import "github.com/fieldnav/coordconv"

// UTMRequest is the body of POST /api/utm.
type UTMRequest struct {
	Zone     string `json:"zone" binding:"required"`
	Easting  int    `json:"easting" binding:"required"`
	Northing int    `json:"northing"`
}

// GeodeticQuery is the query string of GET /api/geodetic.
type GeodeticQuery struct {
	Lat *float64 `form:"lat" binding:"required"`
	Lng *float64 `form:"lng" binding:"required"`
}

// BatchRequest is the body of POST /api/mgrs/batch.
type BatchRequest struct {
	Refs []string `json:"refs" binding:"required"`
}

// UTM is the JSON form of a UTM coordinate.
type UTM struct {
	Zone       string `json:"zone"`
	Hemisphere string `json:"hemisphere"`
	Easting    int    `json:"easting"`
	Northing   int    `json:"northing"`
}

// Position is returned by every conversion endpoint.
type Position struct {
	MGRS string  `json:"mgrs,omitempty"`
	UTM  *UTM    `json:"utm,omitempty"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// BatchItem is one entry of a batch response, in request order.
type BatchItem struct {
	Ref      string    `json:"ref"`
	Position *Position `json:"position,omitempty"`
	Error    string    `json:"error,omitempty"`
	Kind     string    `json:"kind,omitempty"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func toUTM(u coordconv.UTMCoord) *UTM {
	return &UTM{
		Zone:       u.Zone,
		Hemisphere: u.Hemisphere.String(),
		Easting:    u.Easting,
		Northing:   u.Northing,
	}
}
