package spool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	stdin []byte
	name  string
	args  []string
}

func TestCUPSServices(t *testing.T) {
	var calls []recordedCall
	c := &CUPS{run: func(stdin []byte, name string, args ...string) ([]byte, error) {
		calls = append(calls, recordedCall{stdin: stdin, name: name, args: args})
		return []byte("Zebra-ZPL\nOffice-Laser\n"), nil
	}}

	services, err := c.Services(FlavorAutoSense)
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, "lpstat", calls[0].name)
	assert.Equal(t, []string{"-e"}, calls[0].args)
	assert.Nil(t, calls[0].stdin)

	require.Len(t, services, 2)
	assert.Equal(t, "Zebra-ZPL", services[0].Name())
	assert.Equal(t, "Office-Laser", services[1].Name())
}

func TestCUPSServicesError(t *testing.T) {
	c := &CUPS{run: func(stdin []byte, name string, args ...string) ([]byte, error) {
		return nil, errors.New("lpstat: command not found")
	}}

	_, err := c.Services(FlavorAutoSense)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerating print queues")
}

func TestCUPSJobPipesRawDocument(t *testing.T) {
	var calls []recordedCall
	c := &CUPS{run: func(stdin []byte, name string, args ...string) ([]byte, error) {
		calls = append(calls, recordedCall{stdin: stdin, name: name, args: args})
		if name == "lpstat" {
			return []byte("Zebra-ZPL\n"), nil
		}
		return nil, nil
	}}

	svc, err := Find(c, FlavorAutoSense, "Zebra-ZPL")
	require.NoError(t, err)

	job, err := svc.NewJob()
	require.NoError(t, err)

	command := []byte("^XA^FDHello^FS^XZ")
	require.NoError(t, job.Print(Document{Flavor: FlavorAutoSense, Data: command}))

	require.Len(t, calls, 2)
	lp := calls[1]
	assert.Equal(t, "lp", lp.name)
	assert.Equal(t, []string{"-d", "Zebra-ZPL", "-o", "raw", "-s"}, lp.args)
	assert.Equal(t, command, lp.stdin)
}

func TestCUPSJobSubmissionError(t *testing.T) {
	c := &CUPS{run: func(stdin []byte, name string, args ...string) ([]byte, error) {
		if name == "lp" {
			return nil, errors.New("lp: The printer or class does not exist.")
		}
		return []byte("Zebra-ZPL\n"), nil
	}}

	err := NewDispatcher(c).Dispatch("Zebra-ZPL", []byte("^XA^XZ"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lp submission to Zebra-ZPL")
}
