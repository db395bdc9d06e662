// Package fallout charts how many perks a character has earned at each level.
//
// # Overview
//
// A character levels from 0 up to a fixed maximum. At some levels one or more
// perk sources grant perks: the player picks a perk card at every level from 2
// onward, and perk card packs arrive at a handful of early even levels and at
// every fifth level afterwards. This module counts those grants, keeps running
// totals per source, and draws the totals as a line chart.
//
// # Quick Start
//
//	counter := perk.NewCounter(perk.DefaultSources()...)
//	levels, err := counter.PerksByLevel(perk.MaxLevel)
//	if err != nil {
//	    return err
//	}
//
//	r, err := chart.NewRenderer(chart.FormatPNG)
//	if err != nil {
//	    return err
//	}
//	err = r.Render(w, chart.NewData(levels, counter.Keys()))
//
// # Architecture
//
// The module is organized into:
//   - perk: perk sources and the per-level counter (pure computation)
//   - chart: turns the counter output into PNG, SVG or a text table
//   - cmd/perkchart: command that renders the default sources to a file
//
// # Logging
//
// Nothing is logged by default. See [SetLogger].
package fallout

// Version information
const (
	// Version is the current version of the module
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
