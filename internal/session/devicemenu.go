package session

import (
	"strings"

	"github.com/halvard/mirrormenu/internal/adb"
	"github.com/halvard/mirrormenu/internal/config"
	"github.com/halvard/mirrormenu/internal/ui"
)

// chooseDevice lists attached devices and lets the user pick one. The tools
// section underneath covers wireless setup and server recovery, so a user
// with an empty device list can fix that without leaving the screen. ok is
// false when the user cancelled.
func (c *Controller) chooseDevice() (string, bool, error) {
	selected := 0
	for {
		devices, err := c.devices.List()
		if err != nil {
			c.ui.Message("Device scan failed: " + err.Error())
			devices = nil
		}

		opts := make([]ui.Option, 0, len(devices)+7)
		for _, d := range devices {
			highlight := ui.HighlightNone
			if d.State == adb.StateReady {
				highlight = ui.HighlightFavorite
			}
			opts = append(opts, ui.Option{Label: d.Label(), Highlight: highlight})
		}
		opts = append(opts,
			ui.Option{Label: "Tools", Category: true},
			ui.Option{Label: "Rescan"},
			ui.Option{Label: "Connect by IP"},
			ui.Option{Label: "Pair wireless device"},
			ui.Option{Label: "Switch USB device to TCP/IP"},
			ui.Option{Label: "Restart bridge server"},
		)

		res, merr := c.ui.Menu(ui.MenuConfig{
			Title:          "Select a device",
			Options:        opts,
			Selected:       selected,
			SkipCategories: true,
			Footer:         []string{"enter select · esc back"},
		})
		if merr != nil {
			return "", false, merr
		}
		if res.Index >= 0 {
			selected = res.Index
		}
		if res.Key != "enter" {
			return "", false, nil
		}

		if res.Index < len(devices) {
			return devices[res.Index].Serial, true, nil
		}
		switch res.Index - len(devices) {
		case 1: // rescan
		case 2:
			c.connectByIP()
		case 3:
			c.pairWireless()
		case 4:
			c.switchToTCPIP()
		case 5:
			c.restartServer()
		}
	}
}

// deviceTools is the main menu's Devices entry: pick a device and remember
// it as the mirroring target.
func (c *Controller) deviceTools() error {
	serial, ok, err := c.chooseDevice()
	if err != nil || !ok {
		return err
	}
	c.store.Doc.SelectedDevice = serial
	return c.store.Save()
}

func (c *Controller) connectByIP() {
	address, ok, err := c.ui.Input("Connect by IP", "host:port", "")
	if err != nil || !ok || strings.TrimSpace(address) == "" {
		return
	}
	status, _ := c.devices.Connect(strings.TrimSpace(address))
	c.ui.Message(status)
}

func (c *Controller) pairWireless() {
	address, ok, err := c.ui.Input("Pair wireless device", "host:port", "")
	if err != nil || !ok || strings.TrimSpace(address) == "" {
		return
	}
	code, ok, err := c.ui.Input("Pair wireless device", "Pairing code", "")
	if err != nil || !ok {
		return
	}
	status, _ := c.devices.Pair(strings.TrimSpace(address), strings.TrimSpace(code))
	c.ui.Message(status)
}

func (c *Controller) switchToTCPIP() {
	status, _ := c.devices.TCPIP(5555)
	c.ui.Message(status)
}

func (c *Controller) restartServer() {
	status, _ := c.devices.KillServer()
	c.ui.Message(status)
}

// settingsMenu edits the handful of non-preset settings.
func (c *Controller) settingsMenu() error {
	selected := 0
	for {
		doc := c.store.Doc
		logState := "off"
		if doc.LoggingEnabled {
			logState = "on"
		}
		opts := []ui.Option{
			{Label: "Recording folder: " + doc.RecordingPath},
			{Label: "Recording format: " + string(doc.RecordingFormat)},
			{Label: "Logging: " + logState + " (takes effect on next start)"},
			{Label: "Forget selected device"},
		}
		res, err := c.ui.Menu(ui.MenuConfig{
			Title:    "Settings",
			Options:  opts,
			Selected: selected,
			Footer:   []string{"enter change · esc back"},
		})
		if err != nil {
			return err
		}
		if res.Key != "enter" {
			return nil
		}
		selected = res.Index

		switch res.Index {
		case 0:
			path, ok, err := c.ui.Input("Settings", "Recording folder", doc.RecordingPath)
			if err != nil {
				return err
			}
			if ok && strings.TrimSpace(path) != "" {
				doc.RecordingPath = strings.TrimSpace(path)
			}
		case 1:
			if doc.RecordingFormat == config.FormatMP4 {
				doc.RecordingFormat = config.FormatMKV
			} else {
				doc.RecordingFormat = config.FormatMP4
			}
		case 2:
			doc.LoggingEnabled = !doc.LoggingEnabled
		case 3:
			doc.SelectedDevice = ""
		}
		if err := c.store.Save(); err != nil {
			return err
		}
	}
}
