// Package config holds the printweb configuration. The sample label is
// explicit configuration handed down to the server rather than a process
// global, so every dispatch stays independently testable.
package config

import (
	"flag"
	"time"
)

// Config is the printweb runtime configuration.
type Config struct {
	Addr         string
	SamplePath   string
	TemplatesDir string
	DialTimeout  time.Duration
}

// ParseFlags parses the command line and returns a Config.
func ParseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.Addr, "addr", ":8080", "HTTP listen address")
	flag.StringVar(&cfg.SamplePath, "sample", "", "ZPL file prefilling the print forms (default: built-in shipping label)")
	flag.StringVar(&cfg.TemplatesDir, "templates", "templates", "Directory containing the form templates")
	flag.DurationVar(&cfg.DialTimeout, "timeout", 0, "TCP dial timeout for remote printing (0 uses the OS default)")
	flag.Parse()

	return cfg
}
