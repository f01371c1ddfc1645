package resource

import (
	"testing"

	"github.com/mwhitby/chalk/internal/api"
)

func readyResult(seq uint64, rows []string, page, totalPages int) FetchResult[string] {
	return FetchResult[string]{
		Seq:  seq,
		Rows: rows,
		Meta: api.Meta{Page: page, TotalPages: totalPages, Total: totalPages * len(rows), Limit: len(rows)},
	}
}

func TestReloadAppliesLatestResult(t *testing.T) {
	c := NewListController[string](10)

	spec := c.Reload()
	if spec.Seq != 1 {
		t.Fatalf("spec.Seq = %d, want 1", spec.Seq)
	}
	if !c.Loading() {
		t.Fatal("Loading() = false after Reload, want true")
	}

	if !c.Apply(readyResult(spec.Seq, []string{"a", "b"}, 1, 3)) {
		t.Fatal("Apply returned false for current seq")
	}
	if c.Phase() != PhaseReady {
		t.Fatalf("Phase() = %v, want PhaseReady", c.Phase())
	}
	if got := len(c.Rows()); got != 2 {
		t.Fatalf("len(Rows()) = %d, want 2", got)
	}
	if c.Meta().TotalPages != 3 {
		t.Fatalf("Meta().TotalPages = %d, want 3", c.Meta().TotalPages)
	}
}

func TestStaleResultDiscarded(t *testing.T) {
	c := NewListController[string](10)

	first := c.Reload()
	second := c.Reload()

	// The newer fetch resolves first.
	if !c.Apply(readyResult(second.Seq, []string{"new"}, 1, 1)) {
		t.Fatal("Apply returned false for latest seq")
	}
	// The superseded fetch resolves late and must not overwrite.
	if c.Apply(readyResult(first.Seq, []string{"old"}, 1, 1)) {
		t.Fatal("Apply accepted a stale result")
	}
	if got := c.Rows()[0]; got != "new" {
		t.Fatalf("Rows()[0] = %q, want %q", got, "new")
	}
}

func TestFailureKeepsPreviousRows(t *testing.T) {
	c := NewListController[string](10)

	spec := c.Reload()
	c.Apply(readyResult(spec.Seq, []string{"a"}, 1, 2))

	spec = c.Reload()
	if !c.Apply(FetchResult[string]{Seq: spec.Seq, Err: &api.APIError{Status: 500, Path: "/students", Message: "boom"}}) {
		t.Fatal("Apply returned false for failed fetch")
	}
	if c.Phase() != PhaseError {
		t.Fatalf("Phase() = %v, want PhaseError", c.Phase())
	}
	if c.Err() == nil {
		t.Fatal("Err() = nil after failed fetch")
	}
	if got := len(c.Rows()); got != 1 {
		t.Fatalf("len(Rows()) = %d after failure, want previous rows kept", got)
	}

	// A later success clears the error.
	spec = c.Reload()
	c.Apply(readyResult(spec.Seq, []string{"a", "b"}, 1, 2))
	if c.Err() != nil {
		t.Fatalf("Err() = %v after success, want nil", c.Err())
	}
}

func TestSearchDebounceCoalesces(t *testing.T) {
	c := NewListController[string](10)

	d1, ok := c.SetSearch("j")
	if !ok {
		t.Fatal("SetSearch(j) rejected")
	}
	d2, ok := c.SetSearch("jo")
	if !ok {
		t.Fatal("SetSearch(jo) rejected")
	}
	if d2.Token == d1.Token {
		t.Fatal("second edit reused the first token")
	}

	// The earlier timer fires after being superseded: no fetch.
	if _, ok := c.ResolveSearch(d1.Token); ok {
		t.Fatal("ResolveSearch honored a stale token")
	}
	spec, ok := c.ResolveSearch(d2.Token)
	if !ok {
		t.Fatal("ResolveSearch rejected the latest token")
	}
	if spec.Query.Search != "jo" {
		t.Fatalf("committed search = %q, want %q", spec.Query.Search, "jo")
	}
	if spec.Query.Page != 1 {
		t.Fatalf("committed page = %d, want 1", spec.Query.Page)
	}
}

func TestSearchUnchangedIsQuiet(t *testing.T) {
	c := NewListController[string](10)

	d, _ := c.SetSearch("ann")
	spec, _ := c.ResolveSearch(d.Token)
	c.Apply(readyResult(spec.Seq, nil, 1, 1))

	// Typing the committed value again schedules nothing to commit.
	if _, ok := c.SetSearch("ann"); ok {
		t.Fatal("SetSearch accepted an unchanged value")
	}

	// Editing away and back settles without a fetch.
	c.SetSearch("anne")
	d, _ = c.SetSearch("ann")
	if _, ok := c.ResolveSearch(d.Token); ok {
		t.Fatal("ResolveSearch fetched for a value equal to the committed one")
	}
}

func TestSetFilterImmediateAndPageReset(t *testing.T) {
	c := NewListController[string](10)
	spec := c.Reload()
	c.Apply(readyResult(spec.Seq, []string{"x"}, 1, 5))
	spec, _ = c.SetPage(3)
	c.Apply(readyResult(spec.Seq, []string{"x"}, 3, 5))

	spec, ok := c.SetFilter("classId", "c1")
	if !ok {
		t.Fatal("SetFilter rejected a new value")
	}
	if spec.Query.Page != 1 {
		t.Fatalf("page after filter change = %d, want 1", spec.Query.Page)
	}
	if spec.Query.Filters["classId"] != "c1" {
		t.Fatalf("filter in spec = %q, want %q", spec.Query.Filters["classId"], "c1")
	}

	if _, ok := c.SetFilter("classId", "c1"); ok {
		t.Fatal("SetFilter accepted an unchanged value")
	}

	spec, ok = c.SetFilter("classId", "")
	if !ok {
		t.Fatal("SetFilter rejected clearing")
	}
	if _, present := spec.Query.Filters["classId"]; present {
		t.Fatal("cleared filter still present in query")
	}
}

func TestSetPageClamps(t *testing.T) {
	c := NewListController[string](10)

	// Before any load only page 1 exists.
	if _, ok := c.SetPage(2); ok {
		t.Fatal("SetPage(2) accepted before first load")
	}
	if _, ok := c.SetPage(0); ok {
		t.Fatal("SetPage(0) accepted")
	}

	spec := c.Reload()
	c.Apply(readyResult(spec.Seq, []string{"x"}, 1, 3))

	if _, ok := c.SetPage(4); ok {
		t.Fatal("SetPage past TotalPages accepted")
	}
	if _, ok := c.NextPage(); !ok {
		t.Fatal("NextPage rejected with pages remaining")
	}
	if got := c.Query().Page; got != 2 {
		t.Fatalf("page after NextPage = %d, want 2", got)
	}
	if _, ok := c.SetPage(2); ok {
		t.Fatal("SetPage to current page accepted")
	}

	spec, _ = c.SetPage(3)
	c.Apply(readyResult(spec.Seq, []string{"x"}, 3, 3))
	if _, ok := c.NextPage(); ok {
		t.Fatal("NextPage accepted on the last page")
	}
	if _, ok := c.PrevPage(); !ok {
		t.Fatal("PrevPage rejected above page 1")
	}
}

func TestSetLimitResetsPage(t *testing.T) {
	c := NewListController[string](10)
	spec := c.Reload()
	c.Apply(readyResult(spec.Seq, []string{"x"}, 1, 4))
	spec, _ = c.SetPage(2)
	c.Apply(readyResult(spec.Seq, []string{"x"}, 2, 4))

	spec, ok := c.SetLimit(50)
	if !ok {
		t.Fatal("SetLimit rejected a new value")
	}
	if spec.Query.Limit != 50 || spec.Query.Page != 1 {
		t.Fatalf("spec query = limit %d page %d, want limit 50 page 1", spec.Query.Limit, spec.Query.Page)
	}
	if _, ok := c.SetLimit(50); ok {
		t.Fatal("SetLimit accepted an unchanged value")
	}
}

func TestQueryReturnsCopy(t *testing.T) {
	c := NewListController[string](10)
	c.SetFilter("status", "pending")

	q := c.Query()
	q.Filters["status"] = "paid"
	if got := c.Filter("status"); got != "pending" {
		t.Fatalf("Filter(status) = %q after mutating copy, want %q", got, "pending")
	}
}
