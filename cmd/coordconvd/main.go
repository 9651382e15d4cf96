// Command coordconvd serves WGS84, UTM and MGRS conversions over HTTP.
package main

import (
	"log"
	"net/http"
	"time"

	"github.com/fieldnav/coordconv"
	"github.com/fieldnav/coordconv/internal/api"
	"github.com/fieldnav/coordconv/internal/config"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.GinMode)

	router := api.NewRouter(coordconv.DefaultConverter, cfg.MGRSPrecision, cfg.BatchLimit)

	log.Printf("Server listening addr=:%s", cfg.Port)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
