package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/fieldnav/coordconv"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const batchWorkers = 8

// Handler serves the conversion endpoints. Converter is shared by all
// requests; it is immutable.
type Handler struct {
	Converter  *coordconv.Converter
	Precision  int
	BatchLimit int
}

// Ping is the health check.
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MGRS converts the MGRS reference in the path.
func (h *Handler) MGRS(c *gin.Context) {
	pos, err := h.fromMGRS(c.Param("ref"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pos)
}

// UTM converts a UTM coordinate.
func (h *Handler) UTM(c *gin.Context) {
	var req UTMRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	u, err := coordconv.UTMCoord{Zone: req.Zone, Easting: req.Easting, Northing: req.Northing}.WithHemisphere()
	if err != nil {
		writeError(c, err)
		return
	}

	geo, err := h.Converter.UTMToWGS84(u)
	if err != nil {
		writeError(c, err)
		return
	}
	pos := Position{UTM: toUTM(u), Lat: geo.Latitude, Lng: geo.Longitude}
	// eastings past the eighth column have no grid square
	if m, err := coordconv.UTMToMGRS(u); err == nil {
		pos.MGRS = m.String()
	}
	c.JSON(http.StatusOK, pos)
}

// Geodetic converts a latitude/longitude to UTM and MGRS.
func (h *Handler) Geodetic(c *gin.Context) {
	var q GeodeticQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	geo := coordconv.GeodeticCoord{Latitude: *q.Lat, Longitude: *q.Lng}
	u, err := h.Converter.FromGeodetic(geo.LatLng())
	if err != nil {
		writeError(c, err)
		return
	}
	m, err := coordconv.UTMToMGRS(u)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, Position{
		MGRS: m.StringWithPrecision(h.Precision),
		UTM:  toUTM(u),
		Lat:  geo.Latitude,
		Lng:  geo.Longitude,
	})
}

// Batch converts many MGRS references at once. A bad reference fails only
// its own item.
func (h *Handler) Batch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	if len(req.Refs) > h.BatchLimit {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "too many references"})
		return
	}

	items, err := h.convertAll(c.Request.Context(), req.Refs)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) convertAll(ctx context.Context, refs []string) ([]BatchItem, error) {
	items := make([]BatchItem, len(refs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchWorkers)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i].Ref = ref
			pos, err := h.fromMGRS(ref)
			if err != nil {
				items[i].Error = err.Error()
				items[i].Kind = coordconv.KindOf(err).String()
				return nil
			}
			items[i].Position = &pos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

func (h *Handler) fromMGRS(ref string) (Position, error) {
	m, err := coordconv.ParseMGRS(ref)
	if err != nil {
		return Position{}, err
	}
	u, err := coordconv.MGRSToUTM(m)
	if err != nil {
		return Position{}, err
	}
	geo, err := h.Converter.UTMToWGS84(u)
	if err != nil {
		return Position{}, err
	}
	return Position{
		MGRS: m.String(),
		UTM:  toUTM(u),
		Lat:  geo.Latitude,
		Lng:  geo.Longitude,
	}, nil
}

func writeError(c *gin.Context, err error) {
	var cerr *coordconv.Error
	if !errors.As(err, &cerr) {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	status := http.StatusBadRequest
	switch cerr.Kind {
	case coordconv.KindUnsupportedZone, coordconv.KindNonexistentZone:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, ErrorResponse{Error: cerr.Error(), Kind: cerr.Kind.String()})
}
