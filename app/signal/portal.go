package signal

import (
	"context"
	"fmt"

	log "github.com/go-pkgz/lgr"
	"github.com/godbus/dbus/v5"
)

// freedesktop settings portal coordinates
const (
	portalDest    = "org.freedesktop.portal.Desktop"
	portalPath    = dbus.ObjectPath("/org/freedesktop/portal/desktop")
	settingsIface = "org.freedesktop.portal.Settings"
	appearanceNS  = "org.freedesktop.appearance"
	schemeKey     = "color-scheme"

	// color-scheme values per the portal spec
	schemePreferDark = uint32(1)
)

// Portal reads the color-scheme preference from the freedesktop settings
// portal over the session bus and follows its SettingChanged signal.
type Portal struct {
	conn *dbus.Conn
}

// NewPortal connects to the session bus.
func NewPortal() (*Portal, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to session bus: %w", err)
	}
	return &Portal{conn: conn}, nil
}

// PrefersDark queries the current color-scheme setting.
func (p *Portal) PrefersDark(ctx context.Context) (bool, error) {
	obj := p.conn.Object(portalDest, portalPath)

	var v dbus.Variant
	err := obj.CallWithContext(ctx, settingsIface+".ReadOne", 0, appearanceNS, schemeKey).Store(&v)
	if err != nil {
		// older portals only have Read, which double-wraps the variant
		if rerr := obj.CallWithContext(ctx, settingsIface+".Read", 0, appearanceNS, schemeKey).Store(&v); rerr != nil {
			return false, fmt.Errorf("failed to read color-scheme setting: %w", err)
		}
		if inner, ok := v.Value().(dbus.Variant); ok {
			v = inner
		}
	}

	scheme, ok := v.Value().(uint32)
	if !ok {
		return false, fmt.Errorf("unexpected color-scheme value %v", v.Value())
	}
	return scheme == schemePreferDark, nil
}

// Watch subscribes to SettingChanged and streams the dark preference on every
// color-scheme change. The returned channel is closed when ctx is done.
func (p *Portal) Watch(ctx context.Context) (<-chan bool, error) {
	if err := p.conn.AddMatchSignal(
		dbus.WithMatchObjectPath(portalPath),
		dbus.WithMatchInterface(settingsIface),
		dbus.WithMatchMember("SettingChanged"),
	); err != nil {
		return nil, fmt.Errorf("failed to subscribe to settings changes: %w", err)
	}

	sigCh := make(chan *dbus.Signal, 16)
	p.conn.Signal(sigCh)

	out := make(chan bool, 1)
	go func() {
		defer close(out)
		defer p.conn.RemoveSignal(sigCh)
		for {
			select {
			case <-ctx.Done():
				return
			case sig, ok := <-sigCh:
				if !ok {
					return
				}
				dark, ok := schemeFromSignal(sig)
				if !ok {
					continue
				}
				select {
				case out <- dark:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

// Close disconnects from the session bus.
func (p *Portal) Close() error {
	if err := p.conn.Close(); err != nil {
		return fmt.Errorf("failed to close bus connection: %w", err)
	}
	return nil
}

// schemeFromSignal extracts the dark preference from a SettingChanged signal,
// false ok for anything that is not a color-scheme change.
func schemeFromSignal(sig *dbus.Signal) (dark, ok bool) {
	if sig.Name != settingsIface+".SettingChanged" || len(sig.Body) < 3 {
		return false, false
	}
	ns, _ := sig.Body[0].(string)
	key, _ := sig.Body[1].(string)
	if ns != appearanceNS || key != schemeKey {
		return false, false
	}
	variant, isVariant := sig.Body[2].(dbus.Variant)
	if !isVariant {
		return false, false
	}
	scheme, isUint := variant.Value().(uint32)
	if !isUint {
		return false, false
	}
	log.Printf("[DEBUG] portal color-scheme changed to %d", scheme)
	return scheme == schemePreferDark, true
}
