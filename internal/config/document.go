package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/halvard/mirrormenu/internal/preset"
)

const (
	appName    = "mirrormenu"
	configFile = "config.json"
)

// RecordingFormat selects what happens to a finished recording.
type RecordingFormat string

const (
	// FormatMKV keeps recordings in the container they were captured in.
	FormatMKV RecordingFormat = "mkv"
	// FormatMP4 remuxes finished recordings to MP4.
	FormatMP4 RecordingFormat = "mp4"
)

// Document is the persisted configuration. Preset order is meaningful: it is
// display and move-up/move-down order.
type Document struct {
	RecordingPath     string          `json:"recordingPath"`
	RecordingFormat   RecordingFormat `json:"recordingFormat"`
	LoggingEnabled    bool            `json:"loggingEnabled,omitempty"`
	LastUsedPreset    string          `json:"lastUsedPreset,omitempty"`
	QuickLaunchPreset string          `json:"quickLaunchPreset,omitempty"`
	SelectedDevice    string          `json:"selectedDevice,omitempty"`
	Presets           []preset.Preset `json:"presets"`
}

// NewDocument returns the default document written on first run: one seed
// preset and recordings kept as captured.
func NewDocument() *Document {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Document{
		RecordingPath:   filepath.Join(home, "Videos"),
		RecordingFormat: FormatMKV,
		Presets: []preset.Preset{
			{
				Name:         "Default",
				Description:  "Balanced quality mirroring",
				VideoCodec:   "h264",
				VideoBitrate: "8M",
			},
		},
	}
}

// normalize applies defaulting rules once at load time so nothing downstream
// has to handle missing fields.
func (d *Document) normalize() {
	if d.Presets == nil {
		d.Presets = []preset.Preset{}
	}
	if d.RecordingFormat != FormatMKV && d.RecordingFormat != FormatMP4 {
		d.RecordingFormat = FormatMKV
	}
	if d.RecordingPath == "" {
		d.RecordingPath = NewDocument().RecordingPath
	}
}

// clone returns a deep copy used for the saved-state diff.
func (d *Document) clone() *Document {
	c := *d
	c.Presets = make([]preset.Preset, len(d.Presets))
	copy(c.Presets, d.Presets)
	return &c
}

// FindPreset returns the preset with the given name, if present.
func (d *Document) FindPreset(name string) (preset.Preset, bool) {
	for _, p := range d.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return preset.Preset{}, false
}

// DefaultPath returns the OS-appropriate location of the configuration file:
//   - Linux: $XDG_CONFIG_HOME/mirrormenu or $HOME/.config/mirrormenu
//   - macOS: $HOME/.config/mirrormenu
//   - Windows: %LOCALAPPDATA%\mirrormenu
func DefaultPath() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	default:
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return filepath.Join(baseDir, configFile), nil
}
