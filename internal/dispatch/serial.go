package dispatch

import (
	"fmt"

	"go.bug.st/serial"
)

const defaultBaudRate = 9600

// Serial sends buffers to a printer attached on a local serial or USB-serial
// port, with the same fire-and-forget contract as Network.
type Serial struct {
	mode serial.Mode
	open func(name string, mode *serial.Mode) (serial.Port, error)
}

// NewSerial returns a serial dispatcher. A non-positive baud rate falls back
// to 9600, the usual default for serial label printers.
func NewSerial(baudRate int) *Serial {
	if baudRate <= 0 {
		baudRate = defaultBaudRate
	}
	return &Serial{
		mode: serial.Mode{BaudRate: baudRate},
		open: serial.Open,
	}
}

// Dispatch opens the named port, writes the whole command and closes the
// port. Drain runs before close so bytes still queued in the OS buffer reach
// the device.
func (s *Serial) Dispatch(portName string, command []byte) error {
	port, err := s.open(portName, &s.mode)
	if err != nil {
		return fmt.Errorf("deliver to %s: %w", portName, err)
	}
	defer port.Close()

	if _, err := port.Write(command); err != nil {
		return fmt.Errorf("deliver to %s: %w", portName, err)
	}
	if err := port.Drain(); err != nil {
		return fmt.Errorf("deliver to %s: %w", portName, err)
	}
	return nil
}
