// Package theme implements the theme controller: it resolves, applies,
// toggles and persists the active light/dark theme and follows the host's
// ambient color-scheme preference while no explicit choice is stored.
package theme

import (
	"context"
	"errors"
	"sync"

	log "github.com/go-pkgz/lgr"

	"github.com/dusk-app/dusk/app/enum"
	"github.com/dusk-app/dusk/app/store"
)

//go:generate moq -out mocks/prefstore.go -pkg mocks -skip-ensure -fmt goimports . PrefStore
//go:generate moq -out mocks/signalsource.go -pkg mocks -skip-ensure -fmt goimports . SignalSource

// PrefKey is the fixed key the persisted theme choice is stored under.
const PrefKey = "theme"

// PrefStore defines the persistence contract for the theme choice.
// Defined here (consumer side) to allow different store implementations.
type PrefStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// SignalSource reports the host environment's ambient color-scheme preference.
// Watch delivers a value on every change of the preference; the channel is
// closed when the source shuts down.
type SignalSource interface {
	PrefersDark(ctx context.Context) (bool, error)
	Watch(ctx context.Context) (<-chan bool, error)
}

// Controller owns the active theme. It is safe for concurrent use; observer
// notifications are serialized, so no two callbacks interleave.
type Controller struct {
	prefs  PrefStore
	signal SignalSource // nil disables system preference support

	applyMu sync.Mutex // serializes apply: write-before-notify, one dispatch at a time

	mu        sync.RWMutex
	applied   enum.Theme
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(enum.Theme)
}

// New creates a Controller with the given collaborators.
// signal may be nil when the host has no observable color-scheme preference.
func New(prefs PrefStore, signal SignalSource) *Controller {
	return &Controller{prefs: prefs, signal: signal}
}

// Resolve returns the theme that should be active right now, without side
// effects: a valid persisted choice wins, otherwise the system preference,
// otherwise light. Store or signal failures count as absence, never an error.
func (c *Controller) Resolve(ctx context.Context) enum.Theme {
	val, err := c.prefs.Get(ctx, PrefKey)
	if err == nil {
		if t, perr := enum.ParseTheme(val); perr == nil {
			return t
		}
		log.Printf("[DEBUG] ignoring invalid stored theme %q", val)
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("[WARN] failed to read theme preference: %v", err)
	}

	if c.signal != nil {
		if dark, serr := c.signal.PrefersDark(ctx); serr == nil && dark {
			return enum.ThemeDark
		}
	}
	return enum.ThemeLight
}

// Apply makes t the active theme: records it as applied, persists it under
// PrefKey and notifies observers with the new value, in that order. The
// persistence write is fire-and-forget; a failing store only logs a warning.
func (c *Controller) Apply(ctx context.Context, t enum.Theme) {
	c.applyMu.Lock()
	defer c.applyMu.Unlock()

	c.mu.Lock()
	c.applied = t
	observers := make([]observer, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	if err := c.prefs.Set(ctx, PrefKey, t.String()); err != nil {
		log.Printf("[WARN] failed to persist theme %s: %v", t, err)
	}

	for _, ob := range observers {
		ob.fn(t)
	}
}

// Toggle flips the resolved theme to the other value, applies it and returns
// the new theme.
func (c *Controller) Toggle(ctx context.Context) enum.Theme {
	next := c.Resolve(ctx).Toggle()
	c.Apply(ctx, next)
	return next
}

// Current returns the last applied theme. Before Run (or the first Apply) it
// reports the light default.
func (c *Controller) Current() enum.Theme {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.applied
}

// OnChange registers fn to be called synchronously after every Apply with the
// new theme. Observers run in registration order. The returned function
// removes the registration.
func (c *Controller) OnChange(fn func(enum.Theme)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.observers = append(c.observers, observer{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, ob := range c.observers {
			if ob.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				return
			}
		}
	}
}

// Run initializes the controller and blocks until ctx is canceled. It applies
// the resolved theme immediately, then follows the system preference signal:
// a change is applied only when no preference is persisted at that moment, so
// any stored choice wins permanently.
func (c *Controller) Run(ctx context.Context) {
	c.Apply(ctx, c.Resolve(ctx))

	if c.signal == nil {
		<-ctx.Done()
		return
	}

	ch, err := c.signal.Watch(ctx)
	if err != nil {
		// no observable signal, keep the applied theme for the lifetime
		log.Printf("[WARN] system preference signal not available: %v", err)
		<-ctx.Done()
		return
	}
	log.Printf("[INFO] following system color-scheme preference")

	for {
		select {
		case <-ctx.Done():
			return
		case dark, ok := <-ch:
			if !ok {
				log.Printf("[DEBUG] system preference signal closed")
				<-ctx.Done()
				return
			}
			if c.preferenceStored(ctx) {
				log.Printf("[DEBUG] system preference changed, ignored due to stored choice")
				continue
			}
			next := enum.ThemeLight
			if dark {
				next = enum.ThemeDark
			}
			log.Printf("[INFO] system preference changed, applying %s", next)
			c.Apply(ctx, next)
		}
	}
}

// preferenceStored reports whether a valid theme choice is currently persisted.
func (c *Controller) preferenceStored(ctx context.Context) bool {
	val, err := c.prefs.Get(ctx, PrefKey)
	if err != nil {
		return false
	}
	_, perr := enum.ParseTheme(val)
	return perr == nil
}
