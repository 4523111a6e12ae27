// Package signal provides sources for the host's ambient color-scheme
// preference: the freedesktop settings portal on linux, a polling probe of
// the appearance defaults on macOS, and a plain watched file for headless
// setups. A source answers "does the environment prefer dark right now" and
// streams changes of that answer.
package signal

import (
	"context"
	"fmt"
	"runtime"
	"time"

	log "github.com/go-pkgz/lgr"
)

// Interface is the common contract of signal sources.
type Interface interface {
	PrefersDark(ctx context.Context) (bool, error)
	Watch(ctx context.Context) (<-chan bool, error)
}

// Config holds signal source configuration.
type Config struct {
	Source   string        // auto, portal, probe, file or off
	File     string        // path for the file source
	Interval time.Duration // poll interval for the probe source
}

// New creates a signal source for the configured mode. A nil result with nil
// error means the host has no usable source; callers degrade gracefully.
func New(cfg Config) (Interface, error) {
	switch cfg.Source {
	case "off":
		return nil, nil
	case "portal":
		return NewPortal()
	case "probe":
		return NewProbe(cfg.Interval), nil
	case "file":
		if cfg.File == "" {
			return nil, fmt.Errorf("file source requires a path")
		}
		return NewFile(cfg.File), nil
	case "", "auto":
		return autoSource(cfg)
	}
	return nil, fmt.Errorf("unknown signal source %q", cfg.Source)
}

// autoSource picks a source for the current platform, nil when none applies.
func autoSource(cfg Config) (Interface, error) {
	switch runtime.GOOS {
	case "linux":
		p, err := NewPortal()
		if err != nil {
			log.Printf("[WARN] settings portal not available, system preference disabled: %v", err)
			return nil, nil
		}
		return p, nil
	case "darwin":
		return NewProbe(cfg.Interval), nil
	default:
		log.Printf("[INFO] no system preference source for %s", runtime.GOOS)
		return nil, nil
	}
}
