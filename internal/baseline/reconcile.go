package baseline

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"dashcheck/internal/model"
)

// Restricted returns the entries whose status is restricted, sorted by
// dependency.
func Restricted(entries []model.SummaryEntry) []model.SummaryEntry {
	var out []model.SummaryEntry
	for _, e := range entries {
		if e.IsRestricted() {
			out = append(out, e)
		}
	}
	SortEntries(out)
	return out
}

// SortEntries orders entries by dependency using the root Unicode collation,
// so "alpha" < "Beta" < "zeta" regardless of case.
func SortEntries(entries []model.SummaryEntry) {
	c := collate.New(language.Und)
	sort.SliceStable(entries, func(i, j int) bool {
		return c.CompareString(entries[i].Dependency, entries[j].Dependency) < 0
	})
}

func sortStrings(ids []string) {
	c := collate.New(language.Und)
	sort.SliceStable(ids, func(i, j int) bool {
		return c.CompareString(ids[i], ids[j]) < 0
	})
}

// Reconcile splits restricted entries into excluded and unhandled and lists
// the exclusions that matched nothing. A nil exclusions map treats every
// entry as unhandled.
func Reconcile(restricted []model.SummaryEntry, exclusions model.Exclusions) model.Reconciliation {
	unmatched := make(map[string]struct{}, len(exclusions))
	for id := range exclusions {
		unmatched[id] = struct{}{}
	}

	var res model.Reconciliation
	for _, e := range restricted {
		if _, ok := exclusions[e.Dependency]; ok {
			delete(unmatched, e.Dependency)
			res.Excluded = append(res.Excluded, e)
			continue
		}
		res.Unhandled = append(res.Unhandled, e)
	}

	for id := range unmatched {
		res.Unmatched = append(res.Unmatched, id)
	}
	sortStrings(res.Unmatched)
	return res
}
