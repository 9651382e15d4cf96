// Package api exposes the coordinate conversions over HTTP.
package api

import (
	"github.com/fieldnav/coordconv"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the handlers onto a gin engine with request logging and
// panic recovery.
func NewRouter(conv *coordconv.Converter, precision, batchLimit int) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	h := &Handler{Converter: conv, Precision: precision, BatchLimit: batchLimit}

	r.GET("/ping", Ping)
	api := r.Group("/api")
	{
		api.GET("/mgrs/:ref", h.MGRS)
		api.POST("/mgrs/batch", h.Batch)
		api.POST("/utm", h.UTM)
		api.GET("/geodetic", h.Geodetic)
	}
	return r
}
