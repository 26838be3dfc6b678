package adb

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/halvard/mirrormenu/internal/logging"
)

// State is a device's connection state as reported by the bridge.
type State string

const (
	StateReady        State = "device"
	StateOffline      State = "offline"
	StateUnauthorized State = "unauthorized"
	// StateUnknown covers any transient token the bridge may emit
	// (connecting, recovery, sideload, ...).
	StateUnknown State = "unknown"
)

// Device is one row of the bridge's device listing. Records are rebuilt on
// every List call and never persisted.
type Device struct {
	Serial string
	State  State
	// Model is the optional human-readable label from the long listing.
	Model string
}

// Label returns the best display string for the device.
func (d Device) Label() string {
	if d.Model != "" {
		return fmt.Sprintf("%s (%s)", d.Model, d.Serial)
	}
	return d.Serial
}

// List queries the bridge for connected devices.
func (b *Bridge) List() ([]Device, error) {
	out, err := b.run.Run("devices", "-l")
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	devices := parseDeviceList(out)
	logging.Debug("Device list", zap.Int("count", len(devices)), zap.String("raw", out))
	return devices, nil
}

// parseDeviceList turns the long-format listing into records. Header, blank
// and daemon-status lines are skipped; unknown state tokens are surfaced as
// StateUnknown rather than dropped.
func parseDeviceList(out string) []Device {
	var devices []Device
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		d := Device{Serial: fields[0]}
		switch fields[1] {
		case "device":
			d.State = StateReady
		case "offline":
			d.State = StateOffline
		case "unauthorized":
			d.State = StateUnauthorized
		default:
			d.State = StateUnknown
		}

		for _, f := range fields[2:] {
			if v, ok := strings.CutPrefix(f, "model:"); ok {
				d.Model = strings.ReplaceAll(v, "_", " ")
			}
		}
		devices = append(devices, d)
	}
	return devices
}

// Find returns the record for serial from a fresh listing.
func (b *Bridge) Find(serial string) (Device, bool, error) {
	devices, err := b.List()
	if err != nil {
		return Device{}, false, err
	}
	for _, d := range devices {
		if d.Serial == serial {
			return d, true, nil
		}
	}
	return Device{}, false, nil
}

// DisplayName reports how serial should be described to the user. It retries
// the listing up to 3 times looking for the device in ready state, then
// falls back to the last state seen, or "disconnected" when absent entirely.
func (b *Bridge) DisplayName(serial string) string {
	var last Device
	seen := false
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			time.Sleep(300 * time.Millisecond)
		}
		d, ok, err := b.Find(serial)
		if err != nil {
			continue
		}
		if ok {
			last, seen = d, true
			if d.State == StateReady {
				return d.Label()
			}
		}
	}
	if seen {
		return fmt.Sprintf("%s [%s]", last.Label(), last.State)
	}
	return fmt.Sprintf("%s [disconnected]", serial)
}

// WaitReady polls for serial to appear in ready state, trying `attempts`
// times with `delay` between polls. It reports the final outcome rather than
// an error: an absent device is an expected state.
func (b *Bridge) WaitReady(serial string, attempts int, delay time.Duration) bool {
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(delay)
		}
		d, ok, err := b.Find(serial)
		if err != nil {
			logging.Warn("Device poll failed", zap.String("serial", serial), zap.Error(err))
			continue
		}
		if ok && d.State == StateReady {
			return true
		}
	}
	return false
}
