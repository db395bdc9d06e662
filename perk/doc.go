// Package perk counts the perks granted to a character as it levels.
//
// # Sources
//
// A [Source] is a rule that says whether it grants perks at a level and how
// many. Two rules exist:
//   - [Milestone]: grants at every level from a threshold onward
//   - [Periodic]: grants at even levels inside a window, then at every
//     multiple of a step from the end of the window onward
//
// [DefaultSources] returns the two sources of the game this module charts.
//
// # Counting
//
// A [Counter] walks levels 0 through n-1 and returns one [Summary] per level
// holding the cumulative number of perks from each source and in total.
// Summaries are keyed the way charts label their series, see [Counter.Keys].
//
//	counter := perk.NewCounter(perk.DefaultSources()...)
//	levels, err := counter.PerksByLevel(perk.MaxLevel)
package perk
