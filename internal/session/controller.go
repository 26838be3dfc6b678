package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/halvard/mirrormenu/internal/adb"
	"github.com/halvard/mirrormenu/internal/config"
	"github.com/halvard/mirrormenu/internal/logging"
	"github.com/halvard/mirrormenu/internal/preset"
	"github.com/halvard/mirrormenu/internal/scrcpy"
	"github.com/halvard/mirrormenu/internal/ui"
)

// ErrExit reports that the user asked to quit the program from inside a
// session flow rather than return to the main menu.
var ErrExit = errors.New("exit requested")

// deviceRetryAttempts is how many times we poll an unready device before
// giving up on it.
const deviceRetryAttempts = 5

// UserInterface is the slice of the terminal UI the controller needs.
type UserInterface interface {
	Menu(cfg ui.MenuConfig) (ui.MenuResult, error)
	Input(title, label, initial string) (string, bool, error)
	Confirm(question string) (bool, error)
	Message(text string)
}

// Devices is the slice of the adb bridge the controller needs.
type Devices interface {
	List() ([]adb.Device, error)
	DisplayName(serial string) string
	WaitReady(serial string, attempts int, delay time.Duration) bool
	Connect(address string) (string, error)
	Pair(address, code string) (string, error)
	TCPIP(port int) (string, error)
	KillServer() (string, error)
}

// Mirror launches the mirroring process and reports its exit code.
type Mirror interface {
	Run(args []string, streaming bool) (int, error)
}

// Remuxer converts a finished recording into its final container.
type Remuxer interface {
	Remux(src string) (string, error)
}

// Options tune controller behavior.
type Options struct {
	// Streaming routes child process output into the log file instead of
	// handing the terminal over to it.
	Streaming bool
	// RetryDelay is the pause between device readiness polls. Zero means
	// one second.
	RetryDelay time.Duration
}

// Controller owns one user's interactive session over a loaded config store.
type Controller struct {
	store   *config.Store
	ui      UserInterface
	devices Devices
	mirror  Mirror
	remux   Remuxer
	opts    Options
}

// New wires a controller from its collaborators.
func New(store *config.Store, userIface UserInterface, devices Devices, mirror Mirror, remux Remuxer, opts Options) *Controller {
	if opts.RetryDelay == 0 {
		opts.RetryDelay = time.Second
	}
	return &Controller{
		store:   store,
		ui:      userIface,
		devices: devices,
		mirror:  mirror,
		remux:   remux,
		opts:    opts,
	}
}

// disposition is the outcome of one completed launch.
type disposition int

const (
	dispReturn disposition = iota
	dispRelaunch
	dispExit
)

// RunSession performs one full mirroring session. target names the preset to
// launch, empty meaning the user picks one interactively. record asks for a
// recording file before launching. direct marks a non-interactive entry (a
// preset named on the command line), where failures are fatal instead of
// falling back to a menu.
//
// The returned error is ErrExit when the user chose to quit the program from
// the post-run screen.
func (c *Controller) RunSession(target string, record, direct bool) error {
	for {
		serial, ok, err := c.resolveDevice()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if !c.devices.WaitReady(serial, deviceRetryAttempts, c.opts.RetryDelay) {
			if direct {
				return fmt.Errorf("device %s did not become ready", serial)
			}
			logging.Warn("Selected device unavailable, reselecting", zap.String("serial", serial))
			c.ui.Message(fmt.Sprintf("Device %s is not available", c.devices.DisplayName(serial)))
			c.store.Doc.SelectedDevice = ""
			if err := c.store.Save(); err != nil {
				return err
			}
			continue
		}

		var p preset.Preset
		if target != "" {
			found, known := c.store.Doc.FindPreset(target)
			if !known || found.IsCategory() {
				if direct {
					return fmt.Errorf("preset %q not found", target)
				}
				c.ui.Message(fmt.Sprintf("Preset %q no longer exists", target))
				target = ""
			} else {
				p = found
			}
		}
		if target == "" {
			sel, chosen, err := c.choosePreset()
			if err != nil {
				return err
			}
			if !chosen {
				return nil
			}
			p = sel
		}

		disp, err := c.launchOnce(p, serial, record)
		if err != nil {
			return err
		}
		switch disp {
		case dispRelaunch:
			target = p.Name
		case dispExit:
			return ErrExit
		default:
			return nil
		}
	}
}

// resolveDevice returns the serial to mirror, asking the user when no device
// is remembered. ok is false when the user cancelled the chooser.
func (c *Controller) resolveDevice() (string, bool, error) {
	if serial := c.store.Doc.SelectedDevice; serial != "" {
		return serial, true, nil
	}
	serial, ok, err := c.chooseDevice()
	if err != nil || !ok {
		return "", ok, err
	}
	c.store.Doc.SelectedDevice = serial
	if err := c.store.Save(); err != nil {
		return "", false, err
	}
	return serial, true, nil
}

// launchOnce runs one mirroring process for an already validated device and
// preset, then shows the post-run screen.
func (c *Controller) launchOnce(p preset.Preset, serial string, record bool) (disposition, error) {
	recordPath := ""
	if record {
		path, ok, err := c.promptRecordPath(p)
		if err != nil {
			return dispReturn, err
		}
		if !ok {
			return dispReturn, nil
		}
		recordPath = path
	}

	args := scrcpy.BuildArgs(p, serial, recordPath)

	c.store.Doc.LastUsedPreset = p.Name
	if err := c.store.Save(); err != nil {
		return dispReturn, err
	}

	logging.LogLaunch(p.Name, serial, args)
	code, err := c.mirror.Run(args, c.opts.Streaming)
	if err != nil {
		logging.Error("Mirroring process failed to run", zap.Error(err))
		c.ui.Message(fmt.Sprintf("Failed to start mirroring: %v", err))
		return c.postRunMenu(p, code, err)
	}
	logging.LogExit(code, scrcpy.DescribeExit(code))

	if recordPath != "" {
		c.finishRecording(recordPath)
	}

	return c.postRunMenu(p, code, nil)
}

// promptRecordPath asks for the recording file name, defaulting to a
// timestamped name under the configured recording folder. ok is false when
// the user cancelled, which aborts the launch.
func (c *Controller) promptRecordPath(p preset.Preset) (string, bool, error) {
	def := fmt.Sprintf("%s_%s.mkv", fileSafe(p.Name), time.Now().Format("20060102-150405"))
	name, ok, err := c.ui.Input("Record session", "File name", def)
	if err != nil || !ok {
		return "", ok, err
	}
	if strings.TrimSpace(name) == "" {
		name = def
	}
	return filepath.Join(c.store.Doc.RecordingPath, name), true, nil
}

// fileSafe flattens a preset name into something usable as a file name stem.
func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, name)
}

// finishRecording converts a completed recording to MP4 when the config
// asks for it. The MKV written by the mirroring process is kept as is
// otherwise, and always kept when conversion fails.
func (c *Controller) finishRecording(path string) {
	if _, err := os.Stat(path); err != nil {
		logging.Warn("Recording file missing after session", zap.String("path", path))
		return
	}
	if c.store.Doc.RecordingFormat != config.FormatMP4 {
		c.ui.Message("Recording saved: " + path)
		return
	}
	out, err := c.remux.Remux(path)
	if err != nil {
		logging.Error("Recording conversion failed", zap.String("path", path), zap.Error(err))
		c.ui.Message(fmt.Sprintf("Conversion failed, original kept: %v", err))
		return
	}
	c.ui.Message("Recording saved: " + out)
}

// postRunMenu shows the session summary and waits for the user's next move.
func (c *Controller) postRunMenu(p preset.Preset, code int, runErr error) (disposition, error) {
	status := fmt.Sprintf("%s: %s", p.Name, scrcpy.DescribeExit(code))
	if runErr != nil {
		status = fmt.Sprintf("%s: %v", p.Name, runErr)
	}
	res, err := c.ui.Menu(ui.MenuConfig{
		Title:     "Session ended",
		Status:    status,
		Options:   []ui.Option{{Label: "Return to main menu"}},
		Footer:    []string{"enter back · r relaunch · esc/x quit"},
		ExtraKeys: "r",
		ExitKey:   'x',
	})
	if err != nil {
		return dispReturn, err
	}
	switch res.Key {
	case "r":
		return dispRelaunch, nil
	case "escape", "exit":
		return dispExit, nil
	default:
		return dispReturn, nil
	}
}

// DirectLaunch resolves a preset named on the command line and runs it.
// Exact name matches win; otherwise the best search hit is offered for
// confirmation. Declining is not an error.
func (c *Controller) DirectLaunch(name string, record bool) error {
	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("preset name %q looks like a command-line switch", name)
	}
	target, ok := c.store.Doc.FindPreset(name)
	if ok && target.IsCategory() {
		ok = false
	}
	if !ok {
		hits := preset.Search(name, c.store.Doc.Presets)
		if len(hits) == 0 {
			return fmt.Errorf("no preset matches %q", name)
		}
		best := hits[0]
		accepted, err := c.ui.Confirm(fmt.Sprintf("No preset named %q. Launch %q instead?", name, best.Name))
		if err != nil {
			return err
		}
		if !accepted {
			return nil
		}
		target = best
	}
	err := c.RunSession(target.Name, record, true)
	if errors.Is(err, ErrExit) {
		return nil
	}
	return err
}
