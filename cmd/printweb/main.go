// printweb serves the printer forms wrapping the two dispatchers.
package main

import (
	"log"

	"github.com/labelship/zpldispatch/internal/config"
	"github.com/labelship/zpldispatch/internal/dispatch"
	"github.com/labelship/zpldispatch/internal/spool"
	"github.com/labelship/zpldispatch/internal/web"
	"github.com/labelship/zpldispatch/internal/zpl"
)

func main() {
	cfg := config.ParseFlags()

	sample, err := zpl.LoadSample(cfg.SamplePath)
	if err != nil {
		log.Fatalf("Loading sample label: %v", err)
	}

	network := dispatch.NewNetwork(dispatch.WithDialTimeout(cfg.DialTimeout))
	server := web.NewServer(network, spool.NewCUPS(), sample)

	router := server.Router(cfg.TemplatesDir)
	log.Printf("Printer forms listening on %s", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		log.Fatalf("HTTP server: %v", err)
	}
}
