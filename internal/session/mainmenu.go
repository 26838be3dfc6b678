package session

import (
	"errors"
	"fmt"

	"github.com/halvard/mirrormenu/internal/preset"
	"github.com/halvard/mirrormenu/internal/ui"
)

// rowKind tells the main menu loop what a selected row stands for.
type rowKind int

const (
	rowPreset rowKind = iota
	rowQuickLaunch
	rowCategory
	rowHeading
	rowSearch
	rowDevices
	rowSettings
)

// row maps a rendered menu line back to its meaning. presetIdx indexes
// Doc.Presets and is only meaningful for preset rows.
type row struct {
	kind      rowKind
	presetIdx int
}

var mainFooter = []string{
	"enter launch · r record · n new · e edit · d delete · c copy",
	"f favorite · q quick-launch · u/j move · esc/x quit",
}

// MainMenu runs the top-level menu until the user quits.
func (c *Controller) MainMenu() error {
	selected := 0
	for {
		rows, opts, status := c.buildMainMenu()
		if selected >= len(opts) {
			selected = len(opts) - 1
		}
		// Categories stay navigable here, unlike in the launch chooser:
		// this screen is where they are renamed, moved, and deleted.
		res, err := c.ui.Menu(ui.MenuConfig{
			Title:     "mirrormenu",
			Status:    status,
			Options:   opts,
			Selected:  selected,
			Footer:    mainFooter,
			ExtraKeys: "rnedcfquj",
			ExitKey:   'x',
		})
		if err != nil {
			return err
		}
		if res.Index >= 0 {
			selected = res.Index
		}

		switch res.Key {
		case "escape", "exit":
			return nil
		case "enter":
			if res.Index < 0 {
				continue
			}
			quit, err := c.activateRow(rows[res.Index])
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		case "n":
			c.editPreset(preset.Preset{}, -1)
		default:
			if res.Index < 0 {
				continue
			}
			r := rows[res.Index]
			if r.kind != rowPreset && r.kind != rowQuickLaunch && r.kind != rowCategory {
				continue
			}
			quit, moved, err := c.presetAction(res.Key, r)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
			selected += moved
		}
	}
}

// buildMainMenu assembles the rows shown on the top-level screen.
func (c *Controller) buildMainMenu() ([]row, []ui.Option, string) {
	doc := c.store.Doc
	rows := make([]row, 0, len(doc.Presets)+6)
	opts := make([]ui.Option, 0, len(doc.Presets)+6)

	if idx := c.quickLaunchIndex(); idx >= 0 {
		rows = append(rows, row{kind: rowQuickLaunch, presetIdx: idx})
		opts = append(opts, ui.Option{
			Label:     "Quick launch: " + doc.Presets[idx].Name,
			Highlight: ui.HighlightQuickLaunch,
		})
	}
	for i, p := range doc.Presets {
		kind := rowPreset
		if p.IsCategory() {
			kind = rowCategory
		}
		rows = append(rows, row{kind: kind, presetIdx: i})
		opts = append(opts, presetOption(p, doc.QuickLaunchPreset))
	}
	rows = append(rows, row{kind: rowHeading})
	opts = append(opts, ui.Option{Label: "Actions", Category: true})
	for _, entry := range []struct {
		kind  rowKind
		label string
	}{
		{rowSearch, "Search presets"},
		{rowDevices, "Devices"},
		{rowSettings, "Settings"},
	} {
		rows = append(rows, row{kind: entry.kind})
		opts = append(opts, ui.Option{Label: entry.label})
	}

	status := "Device: not selected"
	if doc.SelectedDevice != "" {
		status = "Device: " + c.devices.DisplayName(doc.SelectedDevice)
	}
	return rows, opts, status
}

// quickLaunchIndex resolves the quick-launch reference to a launchable
// preset index, or -1 when the reference is unset or stale.
func (c *Controller) quickLaunchIndex() int {
	name := c.store.Doc.QuickLaunchPreset
	if name == "" {
		return -1
	}
	for i, p := range c.store.Doc.Presets {
		if !p.IsCategory() && p.Name == name {
			return i
		}
	}
	return -1
}

// activateRow handles Enter on a main menu row. quit is true when the
// program should terminate.
func (c *Controller) activateRow(r row) (bool, error) {
	switch r.kind {
	case rowPreset, rowQuickLaunch:
		return c.launchFromMenu(c.store.Doc.Presets[r.presetIdx].Name, false)
	case rowCategory:
		c.ui.Message("Categories cannot be launched")
	case rowSearch:
		p, ok, err := c.searchPreset()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		return c.launchFromMenu(p.Name, false)
	case rowDevices:
		return false, c.deviceTools()
	case rowSettings:
		return false, c.settingsMenu()
	}
	return false, nil
}

// launchFromMenu runs a session for a named preset and folds the quit
// signal into a boolean for the menu loop.
func (c *Controller) launchFromMenu(name string, record bool) (bool, error) {
	err := c.RunSession(name, record, false)
	if errors.Is(err, ErrExit) {
		return true, nil
	}
	return false, err
}

// presetAction handles the single-key actions on a preset row. moved is the
// selection delta after a reorder so the cursor follows the moved row.
func (c *Controller) presetAction(key string, r row) (quit bool, moved int, err error) {
	doc := c.store.Doc
	p := doc.Presets[r.presetIdx]

	switch key {
	case "r":
		if p.IsCategory() {
			c.ui.Message("Categories cannot be launched")
			return false, 0, nil
		}
		quit, err = c.launchFromMenu(p.Name, true)
		return quit, 0, err
	case "e":
		c.editPreset(p, r.presetIdx)
	case "d":
		kind := "preset"
		if p.IsCategory() {
			kind = "category"
		}
		accepted, cerr := c.ui.Confirm(fmt.Sprintf("Delete %s %q?", kind, p.DisplayName()))
		if cerr != nil {
			return false, 0, cerr
		}
		if !accepted {
			return false, 0, nil
		}
		if derr := c.store.Doc.DeletePreset(p.Name); derr != nil {
			c.ui.Message(derr.Error())
			return false, 0, nil
		}
		return false, 0, c.store.Save()
	case "c":
		if p.IsCategory() {
			c.ui.Message("Categories cannot be duplicated")
			return false, 0, nil
		}
		if _, derr := c.store.Doc.DuplicatePreset(p.Name); derr != nil {
			c.ui.Message(derr.Error())
			return false, 0, nil
		}
		return false, 0, c.store.Save()
	case "f":
		if terr := c.store.Doc.ToggleFavorite(p.Name); terr != nil {
			c.ui.Message(terr.Error())
			return false, 0, nil
		}
		return false, 0, c.store.Save()
	case "q":
		if terr := c.store.Doc.ToggleQuickLaunch(p.Name); terr != nil {
			c.ui.Message(terr.Error())
			return false, 0, nil
		}
		return false, 0, c.store.Save()
	case "u", "j":
		delta := -1
		if key == "j" {
			delta = 1
		}
		if c.store.Doc.MovePreset(r.presetIdx, delta) {
			return false, delta, c.store.Save()
		}
	}
	return false, 0, nil
}
