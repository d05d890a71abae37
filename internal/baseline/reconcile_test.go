package baseline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dashcheck/internal/model"
)

func entries(deps ...string) []model.SummaryEntry {
	out := make([]model.SummaryEntry, len(deps))
	for i, d := range deps {
		out[i] = model.SummaryEntry{Dependency: d, License: "GPL-3.0", Status: "restricted", Source: "none"}
	}
	return out
}

func deps(es []model.SummaryEntry) []string {
	var out []string
	for _, e := range es {
		out = append(out, e.Dependency)
	}
	return out
}

func TestRestricted_FiltersAndSorts(t *testing.T) {
	in := []model.SummaryEntry{
		{Dependency: "zeta", Status: "restricted"},
		{Dependency: "ok", Status: "approved"},
		{Dependency: "alpha", Status: "RESTRICTED"},
		{Dependency: "Beta", Status: "Restricted"},
	}

	assert.Equal(t, []string{"alpha", "Beta", "zeta"}, deps(Restricted(in)))
}

func TestRestricted_None(t *testing.T) {
	assert.Empty(t, Restricted([]model.SummaryEntry{{Dependency: "a", Status: "approved"}}))
}

func TestSortEntries(t *testing.T) {
	es := entries("zeta", "alpha")
	SortEntries(es)
	assert.Equal(t, []string{"alpha", "zeta"}, deps(es))
}

func TestReconcile_PartialCoverage(t *testing.T) {
	res := Reconcile(entries("A", "B", "C"), model.Exclusions{"A": nil, "D": nil})

	assert.Equal(t, []string{"A"}, deps(res.Excluded))
	assert.Equal(t, []string{"B", "C"}, deps(res.Unhandled))
	assert.Equal(t, []string{"D"}, res.Unmatched)
	assert.False(t, res.Passed())
}

func TestReconcile_FullCoverage(t *testing.T) {
	res := Reconcile(entries("A", "B"), model.Exclusions{"A": nil, "B": "reviewed"})

	assert.Empty(t, res.Unhandled)
	assert.Empty(t, res.Unmatched)
	assert.True(t, res.Passed())
}

func TestReconcile_NoExclusions(t *testing.T) {
	res := Reconcile(entries("A", "B"), nil)

	assert.Equal(t, []string{"A", "B"}, deps(res.Unhandled))
	assert.False(t, res.Passed())
}

func TestReconcile_NoRestricted(t *testing.T) {
	res := Reconcile(nil, model.Exclusions{"stale-b": nil, "stale-a": nil})

	assert.True(t, res.Passed())
	assert.Equal(t, []string{"stale-a", "stale-b"}, res.Unmatched)
}
