package spool

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// runner executes one spooler command with optional stdin. Tests swap it out.
type runner func(stdin []byte, name string, args ...string) ([]byte, error)

func runCommand(stdin []byte, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(errOut.String()); msg != "" {
			return nil, fmt.Errorf("%s: %s: %w", name, msg, err)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out.Bytes(), nil
}

// CUPS exposes the queues known to the local CUPS spooler as a Registry.
// Queue names come from `lpstat -e`; jobs go through `lp -o raw` so the
// spooler forwards the command stream without reinterpreting it, which is
// what auto-sensed raw bytes mean to CUPS.
type CUPS struct {
	run runner
}

// NewCUPS returns a registry backed by the local CUPS command line tools.
func NewCUPS() *CUPS {
	return &CUPS{run: runCommand}
}

// Services enumerates the local queues. Every CUPS queue accepts a raw job,
// so the flavor does not narrow the result.
func (c *CUPS) Services(flavor Flavor) ([]Service, error) {
	out, err := c.run(nil, "lpstat", "-e")
	if err != nil {
		return nil, fmt.Errorf("enumerating print queues: %w", err)
	}

	var services []Service
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		services = append(services, &cupsService{name: name, run: c.run})
	}
	return services, nil
}

type cupsService struct {
	name string
	run  runner
}

func (s *cupsService) Name() string { return s.name }

func (s *cupsService) NewJob() (Job, error) {
	return &cupsJob{queue: s.name, run: s.run}, nil
}

type cupsJob struct {
	queue string
	run   runner
}

// Print pipes the document to lp on stdin. -s suppresses the request-id
// banner; no job status is awaited.
func (j *cupsJob) Print(doc Document) error {
	if _, err := j.run(doc.Data, "lp", "-d", j.queue, "-o", "raw", "-s"); err != nil {
		return fmt.Errorf("lp submission to %s: %w", j.queue, err)
	}
	return nil
}
