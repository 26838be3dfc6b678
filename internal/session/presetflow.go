package session

import (
	"fmt"

	"github.com/halvard/mirrormenu/internal/preset"
	"github.com/halvard/mirrormenu/internal/ui"
)

// presetOption renders one preset as a menu row. Categories become section
// headings, the quick-launch preset and favorites get their markers.
func presetOption(p preset.Preset, quickLaunch string) ui.Option {
	if p.IsCategory() {
		return ui.Option{Label: p.DisplayName(), Category: true}
	}
	label := p.Name
	if p.Description != "" {
		label = p.Name + "  " + p.Description
	}
	highlight := ui.HighlightNone
	switch {
	case p.Name == quickLaunch:
		highlight = ui.HighlightQuickLaunch
	case p.Favorite:
		highlight = ui.HighlightFavorite
	}
	return ui.Option{Label: label, Highlight: highlight}
}

// choosePreset lets the user pick a launchable preset, with a search entry
// at the top. ok is false when the user cancelled.
func (c *Controller) choosePreset() (preset.Preset, bool, error) {
	selected := 0
	for {
		doc := c.store.Doc
		opts := make([]ui.Option, 0, len(doc.Presets)+1)
		opts = append(opts, ui.Option{Label: "Search presets"})
		for _, p := range doc.Presets {
			opts = append(opts, presetOption(p, doc.QuickLaunchPreset))
		}
		res, err := c.ui.Menu(ui.MenuConfig{
			Title:          "Select a preset",
			Options:        opts,
			Selected:       selected,
			SkipCategories: true,
			Footer:         []string{"enter select · esc back"},
		})
		if err != nil {
			return preset.Preset{}, false, err
		}
		if res.Index >= 0 {
			selected = res.Index
		}
		switch res.Key {
		case "escape", "exit":
			return preset.Preset{}, false, nil
		case "enter":
			if res.Index == 0 {
				p, ok, err := c.searchPreset()
				if err != nil {
					return preset.Preset{}, false, err
				}
				if ok {
					return p, true, nil
				}
				continue
			}
			p := doc.Presets[res.Index-1]
			if p.IsCategory() {
				continue
			}
			return p, true, nil
		}
	}
}

// searchPreset prompts for a query and shows the ranked hits. Cancelling the
// query returns to the caller; cancelling the result list returns to the
// query prompt.
func (c *Controller) searchPreset() (preset.Preset, bool, error) {
	query := ""
	for {
		q, ok, err := c.ui.Input("Search presets", "Query", query)
		if err != nil || !ok {
			return preset.Preset{}, false, err
		}
		query = q
		hits := preset.Search(query, c.store.Doc.Presets)
		if len(hits) == 0 {
			c.ui.Message(fmt.Sprintf("No preset matches %q", query))
			continue
		}
		opts := make([]ui.Option, len(hits))
		for i, h := range hits {
			opts[i] = presetOption(h, c.store.Doc.QuickLaunchPreset)
		}
		res, err := c.ui.Menu(ui.MenuConfig{
			Title:   fmt.Sprintf("Results for %q", query),
			Options: opts,
			Footer:  []string{"enter select · esc refine"},
		})
		if err != nil {
			return preset.Preset{}, false, err
		}
		if res.Key != "enter" {
			continue
		}
		return hits[res.Index], true, nil
	}
}
