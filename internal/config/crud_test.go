package config

import (
	"testing"

	"github.com/halvard/mirrormenu/internal/preset"
)

func docWith(names ...string) *Document {
	d := &Document{}
	for _, n := range names {
		d.Presets = append(d.Presets, preset.Preset{Name: n})
	}
	return d
}

func presetNames(d *Document) []string {
	out := make([]string, len(d.Presets))
	for i, p := range d.Presets {
		out[i] = p.Name
	}
	return out
}

func TestAddPresetRejectsDuplicateWithoutMutating(t *testing.T) {
	d := docWith("a", "b")

	if err := d.AddPreset(preset.Preset{Name: "a"}); err != ErrDuplicateName {
		t.Fatalf("AddPreset(duplicate) error = %v, want ErrDuplicateName", err)
	}
	if len(d.Presets) != 2 {
		t.Errorf("store mutated on rejected add: %v", presetNames(d))
	}
}

func TestAddPresetCaseSensitive(t *testing.T) {
	d := docWith("Gaming")
	if err := d.AddPreset(preset.Preset{Name: "gaming"}); err != nil {
		t.Errorf("differently-cased name should be accepted, got %v", err)
	}
}

func TestAddCategoryDuplicateTolerated(t *testing.T) {
	d := docWith("#group#")
	if err := d.AddPreset(preset.Preset{Name: "#group#"}); err != nil {
		t.Errorf("duplicate category names are allowed, got %v", err)
	}
}

func TestUpdatePresetKeepsOwnName(t *testing.T) {
	d := docWith("a", "b")

	// Re-saving under its own name is not a duplicate.
	if err := d.UpdatePreset("a", preset.Preset{Name: "a", Tags: "new"}); err != nil {
		t.Fatalf("UpdatePreset(same name) error = %v", err)
	}
	if d.Presets[0].Tags != "new" {
		t.Error("update did not apply")
	}

	// Renaming onto another preset's name is.
	if err := d.UpdatePreset("a", preset.Preset{Name: "b"}); err != ErrDuplicateName {
		t.Errorf("UpdatePreset(rename to taken) error = %v, want ErrDuplicateName", err)
	}
}

func TestUpdatePresetRenameFollowsReferences(t *testing.T) {
	d := docWith("old")
	d.LastUsedPreset = "old"
	d.QuickLaunchPreset = "old"

	if err := d.UpdatePreset("old", preset.Preset{Name: "new"}); err != nil {
		t.Fatal(err)
	}
	if d.LastUsedPreset != "new" || d.QuickLaunchPreset != "new" {
		t.Errorf("references not updated: last=%q quick=%q", d.LastUsedPreset, d.QuickLaunchPreset)
	}
}

func TestDeletePresetClearsReferences(t *testing.T) {
	d := docWith("a", "b")
	d.LastUsedPreset = "a"
	d.QuickLaunchPreset = "a"

	if err := d.DeletePreset("a"); err != nil {
		t.Fatal(err)
	}
	if d.LastUsedPreset != "" || d.QuickLaunchPreset != "" {
		t.Errorf("stale references survived delete: last=%q quick=%q", d.LastUsedPreset, d.QuickLaunchPreset)
	}
	if _, ok := d.FindPreset("a"); ok {
		t.Error("preset still present after delete")
	}
}

func TestDuplicatePresetInsertsAfterSource(t *testing.T) {
	d := docWith("a", "b")

	dup, err := d.DuplicatePreset("a")
	if err != nil {
		t.Fatal(err)
	}
	if dup.Name != "a (copy)" {
		t.Errorf("duplicate name = %q, want %q", dup.Name, "a (copy)")
	}

	want := []string{"a", "a (copy)", "b"}
	got := presetNames(d)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order after duplicate = %v, want %v", got, want)
		}
	}

	// Duplicating again keeps extending the suffix until unique.
	dup2, err := d.DuplicatePreset("a")
	if err != nil {
		t.Fatal(err)
	}
	if dup2.Name != "a (copy) (copy)" {
		t.Errorf("second duplicate name = %q", dup2.Name)
	}
}

func TestDuplicateCopiesAllFields(t *testing.T) {
	d := &Document{Presets: []preset.Preset{{
		Name: "src", Description: "desc", Tags: "t", Favorite: true,
		Resolution: "1920", VideoCodec: "h264", OtherOptions: "--turn-screen-off",
	}}}

	dup, err := d.DuplicatePreset("src")
	if err != nil {
		t.Fatal(err)
	}
	src := d.Presets[0]
	if dup.Description != src.Description || dup.Tags != src.Tags ||
		dup.Favorite != src.Favorite || dup.Resolution != src.Resolution ||
		dup.VideoCodec != src.VideoCodec || dup.OtherOptions != src.OtherOptions {
		t.Errorf("duplicate lost fields: %+v", dup)
	}
}

func TestMovePresetBoundaries(t *testing.T) {
	d := docWith("a", "b", "c")

	d.MovePreset(0, -1) // no-op at top
	d.MovePreset(2, 1)  // no-op at bottom
	got := presetNames(d)
	for i, w := range []string{"a", "b", "c"} {
		if got[i] != w {
			t.Fatalf("boundary move changed order: %v", got)
		}
	}

	d.MovePreset(0, 1)
	got = presetNames(d)
	for i, w := range []string{"b", "a", "c"} {
		if got[i] != w {
			t.Fatalf("order after move = %v", got)
		}
	}
}

func TestToggleQuickLaunch(t *testing.T) {
	d := docWith("a", "#cat#")

	if err := d.ToggleQuickLaunch("a"); err != nil {
		t.Fatal(err)
	}
	if d.QuickLaunchPreset != "a" {
		t.Errorf("QuickLaunchPreset = %q, want %q", d.QuickLaunchPreset, "a")
	}

	// Toggling again clears it.
	if err := d.ToggleQuickLaunch("a"); err != nil {
		t.Fatal(err)
	}
	if d.QuickLaunchPreset != "" {
		t.Errorf("QuickLaunchPreset = %q, want empty", d.QuickLaunchPreset)
	}

	// Categories are rejected explicitly.
	if err := d.ToggleQuickLaunch("#cat#"); err != ErrCategoryQuickLaunch {
		t.Errorf("ToggleQuickLaunch(category) error = %v, want ErrCategoryQuickLaunch", err)
	}
}

func TestToggleFavorite(t *testing.T) {
	d := docWith("a")

	if err := d.ToggleFavorite("a"); err != nil {
		t.Fatal(err)
	}
	if !d.Presets[0].Favorite {
		t.Error("favorite not set")
	}
	if err := d.ToggleFavorite("missing"); err != ErrNotFound {
		t.Errorf("ToggleFavorite(missing) error = %v, want ErrNotFound", err)
	}
}
