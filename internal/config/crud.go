package config

import (
	"errors"
	"fmt"

	"github.com/halvard/mirrormenu/internal/preset"
)

var (
	// ErrDuplicateName is returned when a write would give two launchable
	// presets the same name. Duplicates already present in a loaded file are
	// tolerated; new ones are not.
	ErrDuplicateName = errors.New("a preset with that name already exists")

	// ErrNotFound is returned when a named preset does not exist.
	ErrNotFound = errors.New("preset not found")

	// ErrCategoryQuickLaunch is returned when a category is offered for
	// quick launch.
	ErrCategoryQuickLaunch = errors.New("categories cannot be quick-launched")
)

// nameTaken reports whether name collides with an existing non-category
// preset other than exclude. Comparison is case-sensitive and exact.
func (d *Document) nameTaken(name, exclude string) bool {
	if preset.IsCategoryName(name) {
		return false
	}
	for _, p := range d.Presets {
		if p.IsCategory() || p.Name == exclude {
			continue
		}
		if p.Name == name {
			return true
		}
	}
	return false
}

// AddPreset appends p to the list. The store is left untouched on error.
func (d *Document) AddPreset(p preset.Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	if d.nameTaken(p.Name, "") {
		return ErrDuplicateName
	}
	d.Presets = append(d.Presets, p)
	return nil
}

// UpdatePreset replaces the preset currently named originalName with p,
// applying the same duplicate check but excluding the entry's own original
// name. Scalar references follow a rename.
func (d *Document) UpdatePreset(originalName string, p preset.Preset) error {
	if p.Name == "" {
		return fmt.Errorf("preset name must not be empty")
	}
	idx := d.indexOf(originalName)
	if idx < 0 {
		return ErrNotFound
	}
	if d.nameTaken(p.Name, originalName) {
		return ErrDuplicateName
	}
	d.Presets[idx] = p

	if p.Name != originalName {
		if d.LastUsedPreset == originalName {
			d.LastUsedPreset = p.Name
		}
		if d.QuickLaunchPreset == originalName {
			d.QuickLaunchPreset = p.Name
		}
	}
	return nil
}

// DeletePreset removes the named entry and clears any scalar reference that
// pointed at it.
func (d *Document) DeletePreset(name string) error {
	idx := d.indexOf(name)
	if idx < 0 {
		return ErrNotFound
	}
	d.Presets = append(d.Presets[:idx], d.Presets[idx+1:]...)

	if d.LastUsedPreset == name {
		d.LastUsedPreset = ""
	}
	if d.QuickLaunchPreset == name {
		d.QuickLaunchPreset = ""
	}
	return nil
}

// DuplicatePreset deep-copies the named entry, marks the copy's name, and
// inserts it immediately after the source. The name gains " (copy)" suffixes
// until it is unique.
func (d *Document) DuplicatePreset(name string) (preset.Preset, error) {
	idx := d.indexOf(name)
	if idx < 0 {
		return preset.Preset{}, ErrNotFound
	}

	dup := d.Presets[idx]
	dup.Name += " (copy)"
	for d.nameTaken(dup.Name, "") {
		dup.Name += " (copy)"
	}

	d.Presets = append(d.Presets, preset.Preset{})
	copy(d.Presets[idx+2:], d.Presets[idx+1:])
	d.Presets[idx+1] = dup
	return dup, nil
}

// MovePreset swaps the entry at index with its neighbor and reports whether
// anything moved. delta must be -1 or +1; moves past either end are no-ops.
func (d *Document) MovePreset(index, delta int) bool {
	target := index + delta
	if index < 0 || index >= len(d.Presets) || target < 0 || target >= len(d.Presets) {
		return false
	}
	d.Presets[index], d.Presets[target] = d.Presets[target], d.Presets[index]
	return true
}

// ToggleFavorite flips the favorite flag on the named preset.
func (d *Document) ToggleFavorite(name string) error {
	idx := d.indexOf(name)
	if idx < 0 {
		return ErrNotFound
	}
	if d.Presets[idx].IsCategory() {
		return fmt.Errorf("categories cannot be favorited")
	}
	d.Presets[idx].Favorite = !d.Presets[idx].Favorite
	return nil
}

// ToggleQuickLaunch sets the named preset as the quick-launch target, or
// clears it when it already is. Categories are rejected, not ignored.
func (d *Document) ToggleQuickLaunch(name string) error {
	idx := d.indexOf(name)
	if idx < 0 {
		return ErrNotFound
	}
	if d.Presets[idx].IsCategory() {
		return ErrCategoryQuickLaunch
	}
	if d.QuickLaunchPreset == name {
		d.QuickLaunchPreset = ""
	} else {
		d.QuickLaunchPreset = name
	}
	return nil
}

func (d *Document) indexOf(name string) int {
	for i, p := range d.Presets {
		if p.Name == name {
			return i
		}
	}
	return -1
}
