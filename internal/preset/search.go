package preset

import (
	"sort"
	"strings"
)

// Match weights. Name beats description beats tags; the joined option fields
// only count when none of the primary fields matched.
const (
	weightName     = 100
	weightDesc     = 50
	weightTags     = 40
	weightOptions  = 10
	weightFavorite = 5
)

// Search returns the presets matching query, best match first. Matching is a
// case-insensitive substring test. Categories never appear in results. An
// empty or whitespace query returns every non-category preset in input order.
// Ties keep their relative input order.
func Search(query string, presets []Preset) []Preset {
	query = strings.TrimSpace(strings.ToLower(query))

	if query == "" {
		var out []Preset
		for _, p := range presets {
			if !p.IsCategory() {
				out = append(out, p)
			}
		}
		return out
	}

	type scored struct {
		p      Preset
		weight int
	}

	var hits []scored
	for _, p := range presets {
		if p.IsCategory() {
			continue
		}
		w := score(query, p)
		if w > 0 {
			hits = append(hits, scored{p: p, weight: w})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].weight > hits[j].weight
	})

	out := make([]Preset, len(hits))
	for i, h := range hits {
		out[i] = h.p
	}
	return out
}

func score(query string, p Preset) int {
	w := 0
	if strings.Contains(strings.ToLower(p.Name), query) {
		w += weightName
	}
	if strings.Contains(strings.ToLower(p.Description), query) {
		w += weightDesc
	}
	if strings.Contains(strings.ToLower(p.Tags), query) {
		w += weightTags
	}
	if w == 0 {
		// Fall back to the option fields only when nothing primary matched.
		joined := strings.ToLower(strings.Join([]string{
			p.OtherOptions, p.VideoCodec, p.AudioCodec,
			p.Resolution, p.VideoBitrate, p.AudioBitrate,
		}, " "))
		if strings.Contains(joined, query) {
			w += weightOptions
		}
	}
	if w > 0 && p.Favorite {
		w += weightFavorite
	}
	return w
}
