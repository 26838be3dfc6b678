package adb

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// fakeRunner replays canned outputs, one per call, repeating the last.
type fakeRunner struct {
	outputs []string
	err     error
	calls   int
}

func (f *fakeRunner) Run(args ...string) (string, error) {
	i := f.calls
	if i >= len(f.outputs) {
		i = len(f.outputs) - 1
	}
	f.calls++
	return f.outputs[i], f.err
}

const listing = `List of devices attached
* daemon started successfully
emulator-5554	device product:sdk_gphone64 model:sdk_gphone64_x86_64 device:emu64x
ABC123	unauthorized
192.168.1.20:5555	offline
XY99	recovery
`

func TestParseDeviceList(t *testing.T) {
	devices := parseDeviceList(listing)

	if len(devices) != 4 {
		t.Fatalf("parsed %d devices, want 4", len(devices))
	}

	tests := []struct {
		serial string
		state  State
		model  string
	}{
		{"emulator-5554", StateReady, "sdk gphone64 x86 64"},
		{"ABC123", StateUnauthorized, ""},
		{"192.168.1.20:5555", StateOffline, ""},
		{"XY99", StateUnknown, ""},
	}
	for i, tt := range tests {
		d := devices[i]
		if d.Serial != tt.serial || d.State != tt.state || d.Model != tt.model {
			t.Errorf("device[%d] = %+v, want %+v", i, d, tt)
		}
	}
}

func TestParseDeviceListEmpty(t *testing.T) {
	if got := parseDeviceList("List of devices attached\n\n"); len(got) != 0 {
		t.Errorf("parseDeviceList(header only) = %v, want none", got)
	}
}

func TestListError(t *testing.T) {
	b := NewBridgeWithRunner(&fakeRunner{outputs: []string{""}, err: errors.New("no adb")})
	if _, err := b.List(); err == nil {
		t.Error("List() should propagate runner failure")
	}
}

func TestDisplayNameReady(t *testing.T) {
	b := NewBridgeWithRunner(&fakeRunner{outputs: []string{listing}})
	got := b.DisplayName("emulator-5554")
	if !strings.Contains(got, "sdk gphone64") || !strings.Contains(got, "emulator-5554") {
		t.Errorf("DisplayName() = %q", got)
	}
}

func TestDisplayNameFallsBackToLastState(t *testing.T) {
	b := NewBridgeWithRunner(&fakeRunner{outputs: []string{listing}})
	got := b.DisplayName("ABC123")
	if !strings.Contains(got, "unauthorized") {
		t.Errorf("DisplayName() = %q, want state fallback", got)
	}
}

func TestDisplayNameDisconnected(t *testing.T) {
	b := NewBridgeWithRunner(&fakeRunner{outputs: []string{listing}})
	got := b.DisplayName("nope")
	if !strings.Contains(got, "disconnected") {
		t.Errorf("DisplayName() = %q, want disconnected", got)
	}
}

func TestWaitReadyEventuallySucceeds(t *testing.T) {
	offline := "List of devices attached\nABC123\toffline\n"
	online := "List of devices attached\nABC123\tdevice\n"
	r := &fakeRunner{outputs: []string{offline, offline, online}}
	b := NewBridgeWithRunner(r)

	if !b.WaitReady("ABC123", 5, time.Millisecond) {
		t.Error("WaitReady() = false, want true after device comes up")
	}
	if r.calls < 3 {
		t.Errorf("expected at least 3 polls, got %d", r.calls)
	}
}

func TestWaitReadyGivesUpAfterAttempts(t *testing.T) {
	r := &fakeRunner{outputs: []string{"List of devices attached\n"}}
	b := NewBridgeWithRunner(r)

	if b.WaitReady("ghost", 3, time.Millisecond) {
		t.Error("WaitReady() = true for absent device")
	}
	if r.calls != 3 {
		t.Errorf("expected exactly 3 polls, got %d", r.calls)
	}
}

func TestBridgeStatusCommands(t *testing.T) {
	r := &fakeRunner{outputs: []string{"connected to 192.168.1.20:5555"}}
	b := NewBridgeWithRunner(r)

	out, err := b.Connect("192.168.1.20:5555")
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if out != "connected to 192.168.1.20:5555" {
		t.Errorf("Connect() output = %q", out)
	}
}

func TestBridgeStatusFailureKeepsOutput(t *testing.T) {
	r := &fakeRunner{outputs: []string{"cannot connect"}, err: errors.New("exit status 1")}
	b := NewBridgeWithRunner(r)

	out, err := b.Connect("10.0.0.1")
	if err == nil {
		t.Error("Connect() should return the process error")
	}
	if out != "cannot connect" {
		t.Errorf("Connect() output = %q, want bridge text preserved", out)
	}
}
