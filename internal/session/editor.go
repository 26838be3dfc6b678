package session

import (
	"github.com/halvard/mirrormenu/internal/preset"
	"github.com/halvard/mirrormenu/internal/ui"
)

// fieldRef binds one editable preset field to its menu label.
type fieldRef struct {
	label string
	get   func(*preset.Preset) string
	set   func(*preset.Preset, string)
}

var presetFields = []fieldRef{
	{"Name", func(p *preset.Preset) string { return p.Name }, func(p *preset.Preset, v string) { p.Name = v }},
	{"Description", func(p *preset.Preset) string { return p.Description }, func(p *preset.Preset, v string) { p.Description = v }},
	{"Tags", func(p *preset.Preset) string { return p.Tags }, func(p *preset.Preset, v string) { p.Tags = v }},
	{"Resolution", func(p *preset.Preset) string { return p.Resolution }, func(p *preset.Preset, v string) { p.Resolution = v }},
	{"Video codec", func(p *preset.Preset) string { return p.VideoCodec }, func(p *preset.Preset, v string) { p.VideoCodec = v }},
	{"Video bitrate", func(p *preset.Preset) string { return p.VideoBitrate }, func(p *preset.Preset, v string) { p.VideoBitrate = v }},
	{"Video buffer (ms)", func(p *preset.Preset) string { return p.VideoBuffer }, func(p *preset.Preset, v string) { p.VideoBuffer = v }},
	{"Audio codec", func(p *preset.Preset) string { return p.AudioCodec }, func(p *preset.Preset, v string) { p.AudioCodec = v }},
	{"Audio bitrate", func(p *preset.Preset) string { return p.AudioBitrate }, func(p *preset.Preset, v string) { p.AudioBitrate = v }},
	{"Audio buffer (ms)", func(p *preset.Preset) string { return p.AudioBuffer }, func(p *preset.Preset, v string) { p.AudioBuffer = v }},
	{"Other options", func(p *preset.Preset) string { return p.OtherOptions }, func(p *preset.Preset, v string) { p.OtherOptions = v }},
}

// editPreset runs the field-by-field editor over a draft copy. presetIdx is
// negative for a new preset. Escape discards the draft; Save validates and
// persists it. Wrapping the new name in the category marker turns the entry
// into a category, which is how categories are created.
func (c *Controller) editPreset(orig preset.Preset, presetIdx int) {
	draft := orig
	isNew := presetIdx < 0
	title := "Edit preset"
	if isNew {
		title = "New preset"
	}
	selected := 0
	for {
		opts := make([]ui.Option, 0, len(presetFields)+1)
		for _, f := range presetFields {
			label := f.label
			if v := f.get(&draft); v != "" {
				label += ": " + v
			}
			opts = append(opts, ui.Option{Label: label})
		}
		opts = append(opts, ui.Option{Label: "Save", Highlight: ui.HighlightFavorite})

		res, err := c.ui.Menu(ui.MenuConfig{
			Title:    title,
			Options:  opts,
			Selected: selected,
			Footer:   []string{"enter edit field · esc discard"},
		})
		if err != nil || res.Key != "enter" {
			return
		}
		selected = res.Index

		if res.Index < len(presetFields) {
			f := presetFields[res.Index]
			value, ok, err := c.ui.Input(title, f.label, f.get(&draft))
			if err != nil {
				return
			}
			if ok {
				f.set(&draft, value)
			}
			continue
		}

		var werr error
		if isNew {
			werr = c.store.Doc.AddPreset(draft)
		} else {
			werr = c.store.Doc.UpdatePreset(orig.Name, draft)
		}
		if werr != nil {
			c.ui.Message(werr.Error())
			continue
		}
		if err := c.store.Save(); err != nil {
			c.ui.Message(err.Error())
		}
		return
	}
}
