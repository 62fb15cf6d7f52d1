// The naia-standings-api server exposes the scraped standings dataset as a
// read-only REST API. It loads the results CSV once at startup; re-run the
// scraper and restart to pick up new data.
package main

import (
	"flag"
	"os"

	"github.com/adydas-lantern/naia-standings/internal/api"
	"github.com/adydas-lantern/naia-standings/internal/cli"
	"github.com/adydas-lantern/naia-standings/internal/logger"
	"github.com/adydas-lantern/naia-standings/internal/store"
)

var (
	port    = flag.Int("port", 8080, "Port to listen on")
	csvPath = flag.String("csv", cli.DefaultCSV, "Path to the main results CSV")
	debug   = flag.Bool("debug", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	if *debug {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}

	r, err := store.Load(*csvPath)
	if err != nil {
		logger.Error("loading data", logger.Fields{"path": *csvPath}, err)
		os.Exit(1)
	}

	data := api.NewDataset(r)
	logger.Info("dataset loaded", logger.Fields{
		"schools":   len(data.Schools),
		"standings": len(data.Standings),
	})
	logger.SetGauge("schools.loaded", float64(len(data.Schools)))

	srv := api.New(api.Config{Port: *port}, data)
	if err := srv.Start(); err != nil {
		logger.Error("server exited", nil, err)
		os.Exit(1)
	}
}
