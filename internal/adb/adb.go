package adb

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/halvard/mirrormenu/internal/logging"
)

// DefaultBinary is the bridge executable resolved on PATH.
const DefaultBinary = "adb"

// Runner executes one bridge invocation and returns its combined output.
// It exists so tests can substitute canned output for the real executable.
type Runner interface {
	Run(args ...string) (string, error)
}

type execRunner struct {
	bin string
}

func (r execRunner) Run(args ...string) (string, error) {
	out, err := exec.Command(r.bin, args...).CombinedOutput()
	return string(out), err
}

// Bridge exposes the bridge subcommands the launcher needs: device listing
// plus a handful of fire-and-forget connection helpers.
type Bridge struct {
	run Runner
}

// NewBridge returns a Bridge backed by the real executable.
func NewBridge() *Bridge {
	return &Bridge{run: execRunner{bin: DefaultBinary}}
}

// NewBridgeWithRunner returns a Bridge backed by a custom runner.
func NewBridgeWithRunner(r Runner) *Bridge {
	return &Bridge{run: r}
}

// CheckInstalled verifies the bridge executable is resolvable. A missing
// executable is a fatal startup condition for the caller.
func CheckInstalled() error {
	if _, err := exec.LookPath(DefaultBinary); err != nil {
		return fmt.Errorf("%s not found on PATH: %w", DefaultBinary, err)
	}
	return nil
}

// Connect attaches to a device over TCP at addr (host or host:port) and
// returns the bridge's textual status.
func (b *Bridge) Connect(addr string) (string, error) {
	return b.status("connect", addr)
}

// Pair performs wireless pairing against host:port using the given code.
func (b *Bridge) Pair(addr, code string) (string, error) {
	return b.status("pair", addr, code)
}

// TCPIP restarts the bridge daemon on the device in TCP mode on port.
func (b *Bridge) TCPIP(port int) (string, error) {
	return b.status("tcpip", strconv.Itoa(port))
}

// KillServer stops the local bridge server.
func (b *Bridge) KillServer() (string, error) {
	return b.status("kill-server")
}

// status runs a fire-and-forget subcommand. Process failure is folded into
// the returned text so callers can surface it without special-casing; the
// error is still returned for logging.
func (b *Bridge) status(args ...string) (string, error) {
	out, err := b.run.Run(args...)
	out = strings.TrimSpace(out)
	if err != nil {
		logging.Warn("Bridge command failed",
			zap.Strings("args", args),
			zap.String("output", out),
			zap.Error(err),
		)
		if out == "" {
			out = err.Error()
		}
		return out, err
	}
	logging.Info("Bridge command", zap.Strings("args", args), zap.String("output", out))
	if out == "" {
		out = "ok"
	}
	return out, nil
}
