// Package spool submits print command buffers through locally registered OS
// print services. Resolution is a fresh lookup on every call; nothing about
// the service set is cached between dispatches.
package spool

import (
	"errors"
	"fmt"
)

// Flavor tags the format of data handed to a print service.
type Flavor string

// FlavorAutoSense marks a raw byte document whose format the service detects
// itself.
const FlavorAutoSense Flavor = "application/octet-stream"

// Document wraps a command buffer together with its flavor. Data is carried
// through to the service untouched.
type Document struct {
	Flavor Flavor
	Data   []byte
}

// Job is a single print job obtained from a service.
type Job interface {
	Print(doc Document) error
}

// Service is one locally registered print queue.
type Service interface {
	Name() string
	NewJob() (Job, error)
}

// Registry lists the print services currently registered with the OS that
// accept the given flavor.
type Registry interface {
	Services(flavor Flavor) ([]Service, error)
}

// Resolution failures are the caller's to fix, not system faults.
var (
	ErrNotFound  = errors.New("print service not found")
	ErrAmbiguous = errors.New("ambiguous print service name")
)

// Find returns the single registered service whose name exactly equals name.
// Zero matches is ErrNotFound, more than one is ErrAmbiguous; both wrap the
// offending name.
func Find(reg Registry, flavor Flavor, name string) (Service, error) {
	services, err := reg.Services(flavor)
	if err != nil {
		return nil, fmt.Errorf("listing print services: %w", err)
	}

	var matches []Service
	for _, svc := range services {
		if svc.Name() == name {
			matches = append(matches, svc)
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %q matches %d services", ErrAmbiguous, name, len(matches))
	}
}

// Names returns the names of every service accepting auto-sensed raw bytes,
// for display to operators choosing a queue.
func Names(reg Registry) ([]string, error) {
	services, err := reg.Services(FlavorAutoSense)
	if err != nil {
		return nil, fmt.Errorf("listing print services: %w", err)
	}

	names := make([]string, 0, len(services))
	for _, svc := range services {
		names = append(names, svc.Name())
	}
	return names, nil
}

// Dispatcher submits command buffers through the local print spooler.
type Dispatcher struct {
	reg Registry
}

// NewDispatcher returns a dispatcher resolving services against reg.
func NewDispatcher(reg Registry) *Dispatcher {
	return &Dispatcher{reg: reg}
}

// Dispatch resolves serviceName to exactly one registered service, wraps the
// command as an auto-sensed document and submits a single job. Nothing is
// written when resolution fails. The spooler enqueues the job; no completion
// status is awaited.
func (d *Dispatcher) Dispatch(serviceName string, command []byte) error {
	svc, err := Find(d.reg, FlavorAutoSense, serviceName)
	if err != nil {
		return err
	}

	job, err := svc.NewJob()
	if err != nil {
		return fmt.Errorf("creating print job on %q: %w", serviceName, err)
	}

	if err := job.Print(Document{Flavor: FlavorAutoSense, Data: command}); err != nil {
		return fmt.Errorf("submitting job to %q: %w", serviceName, err)
	}
	return nil
}
