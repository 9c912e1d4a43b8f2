// netprint sends a ZPL label to a network printer's raw port, or to a
// serial-attached printer when -serial is given.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/labelship/zpldispatch/internal/dispatch"
	"github.com/labelship/zpldispatch/internal/zpl"
)

func main() {
	host := flag.String("host", "127.0.0.1", "Printer host name or IP")
	port := flag.Int("port", 9100, "Raw printing port")
	serialPort := flag.String("serial", "", "Send over this serial port instead of TCP (e.g. /dev/ttyUSB0)")
	baudRate := flag.Int("baud", 9600, "Baud rate for serial delivery")
	file := flag.String("file", "", "ZPL file to send (default: built-in shipping label)")
	timeout := flag.Duration("timeout", 5*time.Second, "TCP dial timeout (0 uses the OS default)")
	charset := flag.String("charset", string(zpl.CharsetUTF8), "Code page for the label text (utf-8, cp850, latin-1)")
	flag.Parse()

	label, err := zpl.LoadSample(*file)
	if err != nil {
		log.Fatalf("Loading label: %v", err)
	}

	command, err := zpl.Encode(label, zpl.Charset(*charset))
	if err != nil {
		log.Fatalf("Encoding label: %v", err)
	}

	if *serialPort != "" {
		log.Printf("Sending %d bytes to %s", len(command), *serialPort)
		if err := dispatch.NewSerial(*baudRate).Dispatch(*serialPort, command); err != nil {
			log.Fatalf("Print failed: %v", err)
		}
		log.Println("Label sent.")
		return
	}

	endpoint := dispatch.Endpoint{Host: *host, Port: *port}
	network := dispatch.NewNetwork(dispatch.WithDialTimeout(*timeout))

	log.Printf("Sending %d bytes to %s", len(command), endpoint.Address())
	if err := network.Dispatch(endpoint, command); err != nil {
		log.Fatalf("Print failed: %v", err)
	}
	log.Println("Label sent.")
}
