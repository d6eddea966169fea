package warning

import "sort"

// SortBySeverityDescending sorts warnings from Critical to Info in place,
// the ordering the detector host applies before reporting (spec §4.G:
// "the detector host sorts by severity (descending) before reporting").
// Equal-severity warnings keep their relative order (stable), so
// deterministic detector iteration order survives the sort.
func SortBySeverityDescending(warnings []Warning) {
	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Severity > warnings[j].Severity
	})
}

// Dedup removes warnings that share the same title at the same location,
// keeping the first occurrence (spec §4.I: dedup keys on "(title,
// location)"). Concurrent detectors sharing an immutable snapshot (spec §5)
// can otherwise legitimately produce the same finding twice.
func Dedup(warnings []Warning) []Warning {
	type key struct {
		title string
		loc   string
	}
	seen := make(map[key]bool, len(warnings))
	out := make([]Warning, 0, len(warnings))
	for _, w := range warnings {
		k := key{title: w.Title, loc: w.Location.String()}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, w)
	}
	return out
}
