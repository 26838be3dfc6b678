// Package preset defines the named option bundles the launcher manages and
// the search used to find them.
//
// A preset is a bundle of mirroring options keyed by a unique name. An entry
// whose name is wrapped in the category marker on both ends (for example
// "#Games#") is a category: a non-launchable grouping row that appears in
// lists but is skipped by navigation, search, and quick-launch assignment.
package preset

import "strings"

// CategoryMarker wraps a preset name on both ends to turn it into a category.
const CategoryMarker = "#"

// Preset is a named bundle of options for the mirroring process. Order in the
// containing list is meaningful: it is display order.
type Preset struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Tags         string `json:"tags,omitempty"`
	Favorite     bool   `json:"favorite,omitempty"`
	Resolution   string `json:"resolution,omitempty"`
	VideoCodec   string `json:"videoCodec,omitempty"`
	VideoBitrate string `json:"videoBitrate,omitempty"`
	VideoBuffer  string `json:"videoBuffer,omitempty"`
	AudioCodec   string `json:"audioCodec,omitempty"`
	AudioBitrate string `json:"audioBitrate,omitempty"`
	AudioBuffer  string `json:"audioBuffer,omitempty"`
	OtherOptions string `json:"otherOptions,omitempty"`
}

// IsCategory reports whether the entry is a grouping marker rather than a
// launchable preset.
func (p Preset) IsCategory() bool {
	return IsCategoryName(p.Name)
}

// IsCategoryName reports whether name follows the category convention:
// marker on both ends with at least one character between.
func IsCategoryName(name string) bool {
	return len(name) > 2*len(CategoryMarker) &&
		strings.HasPrefix(name, CategoryMarker) &&
		strings.HasSuffix(name, CategoryMarker)
}

// DisplayName returns the name shown in menus: categories lose their marker
// characters, presets are returned unchanged.
func (p Preset) DisplayName() string {
	if !p.IsCategory() {
		return p.Name
	}
	return strings.TrimSuffix(strings.TrimPrefix(p.Name, CategoryMarker), CategoryMarker)
}
