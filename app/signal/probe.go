package signal

import (
	"context"
	"os/exec"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
)

// defaultProbeInterval is used when no poll interval is configured.
const defaultProbeInterval = 30 * time.Second

// Probe detects the macOS appearance by reading the global defaults.
// The key is absent entirely in light mode, so a failed read means light.
// Changes are detected by polling, macOS has no push notification for this
// outside an app runloop.
type Probe struct {
	interval time.Duration
	runCmd   func(ctx context.Context) (string, error) // replaced in tests
}

// NewProbe creates a probe polling at the given interval.
func NewProbe(interval time.Duration) *Probe {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &Probe{interval: interval, runCmd: readInterfaceStyle}
}

// readInterfaceStyle shells out to defaults(1).
func readInterfaceStyle(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
	if err != nil {
		return "", err //nolint:wrapcheck // callers treat any failure as "key absent"
	}
	return string(out), nil
}

// PrefersDark reports whether the global appearance is dark.
func (p *Probe) PrefersDark(ctx context.Context) (bool, error) {
	out, err := p.runCmd(ctx)
	if err != nil {
		// missing key means the system is in light mode
		return false, nil
	}
	return strings.Contains(strings.ToLower(out), "dark"), nil
}

// Watch polls the appearance and emits on every change of the answer.
// The returned channel is closed when ctx is done.
func (p *Probe) Watch(ctx context.Context) (<-chan bool, error) {
	out := make(chan bool, 1)

	last, err := p.PrefersDark(ctx)
	if err != nil {
		last = false
	}

	go func() {
		defer close(out)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cur, perr := p.PrefersDark(ctx)
				if perr != nil || cur == last {
					continue
				}
				last = cur
				log.Printf("[DEBUG] appearance probe changed, dark=%v", cur)
				select {
				case out <- cur:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
