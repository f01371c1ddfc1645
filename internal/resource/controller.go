package resource

import (
	"context"
	"time"

	"github.com/mwhitby/chalk/internal/api"
)

const (
	defaultLimit    = 20
	defaultDebounce = 300 * time.Millisecond
)

// Phase is the list screen lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseReady
	PhaseError
)

// Query is the parameter tuple a fetch is issued for.
type Query struct {
	Search  string
	Filters map[string]string
	Page    int
	Limit   int
}

func (q Query) clone() Query {
	dup := q
	dup.Filters = make(map[string]string, len(q.Filters))
	for k, v := range q.Filters {
		dup.Filters[k] = v
	}
	return dup
}

// Options returns the query as gateway list options.
func (q Query) Options() api.ListOptions {
	return api.ListOptions{
		Page:    q.Page,
		Limit:   q.Limit,
		Search:  q.Search,
		Filters: q.Filters,
	}
}

// Fetcher loads one page for a query.
type Fetcher[E any] func(ctx context.Context, q Query) ([]E, api.Meta, error)

// FetchSpec identifies an issued fetch. Seq ties the eventual result
// back to the request so late responses can be discarded.
type FetchSpec struct {
	Seq   uint64
	Query Query
}

// FetchResult is a resolved fetch, success or failure.
type FetchResult[E any] struct {
	Seq  uint64
	Rows []E
	Meta api.Meta
	Err  error
}

// DebounceSpec schedules a deferred search commit. The token is only
// honored while it is still the latest pending edit.
type DebounceSpec struct {
	Token uint64
	Delay time.Duration
}

// ListController owns the (filters, page, limit) -> (rows, meta) mapping
// for one screen. rows and meta are always replaced together from the
// same response, and only the most recently issued fetch may apply.
type ListController[E any] struct {
	query    Query
	debounce time.Duration

	seq         uint64
	searchToken uint64
	pending     string
	hasPending  bool

	phase Phase
	rows  []E
	meta  api.Meta
	err   error
}

// NewListController builds a controller with page 1 and the given page
// size. A non-positive limit uses the default.
func NewListController[E any](limit int) *ListController[E] {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &ListController[E]{
		query:    Query{Page: 1, Limit: limit, Filters: map[string]string{}},
		debounce: defaultDebounce,
	}
}

// SetDebounce overrides the search debounce interval.
func (c *ListController[E]) SetDebounce(d time.Duration) {
	if d > 0 {
		c.debounce = d
	}
}

// Reload issues a fetch for the current parameter tuple. It supersedes
// any fetch still in flight.
func (c *ListController[E]) Reload() FetchSpec {
	c.seq++
	c.phase = PhaseLoading
	return FetchSpec{Seq: c.seq, Query: c.query.clone()}
}

// Apply installs a fetch result. Results for superseded fetches are
// discarded and the method reports false. On failure the previous rows
// are retained so the user keeps context while retrying.
func (c *ListController[E]) Apply(res FetchResult[E]) bool {
	if res.Seq != c.seq {
		return false
	}
	if res.Err != nil {
		c.phase = PhaseError
		c.err = res.Err
		return true
	}
	c.rows = res.Rows
	c.meta = res.Meta
	if res.Meta.Page > 0 {
		c.query.Page = res.Meta.Page
	}
	c.phase = PhaseReady
	c.err = nil
	return true
}

// SetSearch records a pending free-text value and returns the debounce
// handle for it. Reports false when the value matches what is already
// pending or committed, so repeated identical edits stay quiet.
func (c *ListController[E]) SetSearch(value string) (DebounceSpec, bool) {
	if c.hasPending {
		if value == c.pending {
			return DebounceSpec{}, false
		}
	} else if value == c.query.Search {
		return DebounceSpec{}, false
	}
	c.pending = value
	c.hasPending = true
	c.searchToken++
	return DebounceSpec{Token: c.searchToken, Delay: c.debounce}, true
}

// ResolveSearch commits the pending search once its debounce interval
// elapses. Stale tokens (a newer edit exists) and edits that settled
// back to the committed value produce no fetch.
func (c *ListController[E]) ResolveSearch(token uint64) (FetchSpec, bool) {
	if token != c.searchToken || !c.hasPending {
		return FetchSpec{}, false
	}
	value := c.pending
	c.hasPending = false
	if value == c.query.Search {
		return FetchSpec{}, false
	}
	c.query.Search = value
	c.query.Page = 1
	return c.Reload(), true
}

// SetFilter applies a discrete filter immediately, resetting to page 1.
// An empty value clears the filter. Reports false when unchanged.
func (c *ListController[E]) SetFilter(name, value string) (FetchSpec, bool) {
	if c.query.Filters[name] == value {
		return FetchSpec{}, false
	}
	if value == "" {
		delete(c.query.Filters, name)
	} else {
		c.query.Filters[name] = value
	}
	c.query.Page = 1
	return c.Reload(), true
}

// Filter returns a discrete filter's current value.
func (c *ListController[E]) Filter(name string) string {
	return c.query.Filters[name]
}

// SetPage navigates to an absolute page. Targets outside [1, totalPages]
// or equal to the current page are rejected without a request.
func (c *ListController[E]) SetPage(page int) (FetchSpec, bool) {
	if page < 1 || page == c.query.Page {
		return FetchSpec{}, false
	}
	if c.meta.TotalPages > 0 && page > c.meta.TotalPages {
		return FetchSpec{}, false
	}
	if c.meta.TotalPages == 0 && page != 1 {
		// Nothing loaded yet; only page 1 is known to exist.
		return FetchSpec{}, false
	}
	c.query.Page = page
	return c.Reload(), true
}

// NextPage advances one page when possible.
func (c *ListController[E]) NextPage() (FetchSpec, bool) {
	return c.SetPage(c.query.Page + 1)
}

// PrevPage steps back one page when possible.
func (c *ListController[E]) PrevPage() (FetchSpec, bool) {
	return c.SetPage(c.query.Page - 1)
}

// SetLimit changes the page size and resets to page 1.
func (c *ListController[E]) SetLimit(limit int) (FetchSpec, bool) {
	if limit <= 0 || limit == c.query.Limit {
		return FetchSpec{}, false
	}
	c.query.Limit = limit
	c.query.Page = 1
	return c.Reload(), true
}

// Rows returns the current page of entities.
func (c *ListController[E]) Rows() []E { return c.rows }

// Meta returns the pagination block matching Rows.
func (c *ListController[E]) Meta() api.Meta { return c.meta }

// Phase returns the lifecycle phase.
func (c *ListController[E]) Phase() Phase { return c.phase }

// Loading reports whether a fetch is in flight.
func (c *ListController[E]) Loading() bool { return c.phase == PhaseLoading }

// Err returns the most recent fetch failure, nil once a fetch succeeds.
func (c *ListController[E]) Err() error { return c.err }

// Query returns a copy of the current parameter tuple.
func (c *ListController[E]) Query() Query { return c.query.clone() }
