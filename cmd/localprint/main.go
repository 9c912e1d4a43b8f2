// localprint submits a ZPL label to a locally registered print service.
package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/labelship/zpldispatch/internal/spool"
	"github.com/labelship/zpldispatch/internal/zpl"
)

func main() {
	printer := flag.String("printer", "Zebra-ZPL", "Name of the registered print service")
	file := flag.String("file", "", "ZPL file to send (default: built-in shipping label)")
	flag.Parse()

	label, err := zpl.LoadSample(*file)
	if err != nil {
		log.Fatalf("Loading label: %v", err)
	}

	registry := spool.NewCUPS()
	dispatcher := spool.NewDispatcher(registry)

	log.Printf("Submitting %d bytes to %q", len(label), *printer)
	if err := dispatcher.Dispatch(*printer, []byte(label)); err != nil {
		if errors.Is(err, spool.ErrNotFound) || errors.Is(err, spool.ErrAmbiguous) {
			if names, nerr := spool.Names(registry); nerr == nil {
				log.Printf("Registered print services: %s", strings.Join(names, ", "))
			}
		}
		log.Fatalf("Print failed: %v", err)
	}
	log.Printf("Job submitted to %q.", *printer)
}
