package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/session"
	"github.com/mwhitby/chalk/internal/state"
)

const defaultPollInterval = 30 * time.Second

// counter is the slice of the gateway the poller needs, implemented by
// *api.Client and by test fakes.
type counter interface {
	ListStudents(ctx context.Context, opts api.ListOptions) ([]api.Student, api.Meta, error)
	ListTeachers(ctx context.Context, opts api.ListOptions) ([]api.Teacher, api.Meta, error)
	ListClasses(ctx context.Context, opts api.ListOptions) ([]api.Class, api.Meta, error)
	ListSubjects(ctx context.Context, opts api.ListOptions) ([]api.Subject, api.Meta, error)
	ListFees(ctx context.Context, opts api.ListOptions) ([]api.Fee, api.Meta, error)
}

// StartPoller launches a background goroutine that refreshes the
// dashboard store at a fixed cadence while a session is active. It
// returns immediately.
func StartPoller(ctx context.Context, store *state.Store, client counter, sess *session.Session, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			if sess.Authenticated() {
				refresh(ctx, store, client)
			}
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

// refresh probes each list endpoint with limit 1 and reads the totals
// from the pagination metadata rather than transferring whole
// collections.
func refresh(ctx context.Context, store *state.Store, client counter) {
	probe := api.ListOptions{Page: 1, Limit: 1}

	var counts state.Counts
	steps := []struct {
		name string
		run  func() (api.Meta, error)
	}{
		{"students", func() (api.Meta, error) {
			_, meta, err := client.ListStudents(ctx, probe)
			counts.Students = meta.Total
			return meta, err
		}},
		{"teachers", func() (api.Meta, error) {
			_, meta, err := client.ListTeachers(ctx, probe)
			counts.Teachers = meta.Total
			return meta, err
		}},
		{"classes", func() (api.Meta, error) {
			_, meta, err := client.ListClasses(ctx, probe)
			counts.Classes = meta.Total
			return meta, err
		}},
		{"subjects", func() (api.Meta, error) {
			_, meta, err := client.ListSubjects(ctx, probe)
			counts.Subjects = meta.Total
			return meta, err
		}},
		{"fees pending", func() (api.Meta, error) {
			_, meta, err := client.ListFees(ctx, api.ListOptions{Page: 1, Limit: 1, Filters: map[string]string{"status": "pending"}})
			counts.FeesPending = meta.Total
			return meta, err
		}},
		{"fees overdue", func() (api.Meta, error) {
			_, meta, err := client.ListFees(ctx, api.ListOptions{Page: 1, Limit: 1, Filters: map[string]string{"status": "overdue"}})
			counts.FeesOverdue = meta.Total
			return meta, err
		}},
	}

	for _, step := range steps {
		if _, err := step.run(); err != nil {
			store.Update(state.Counts{}, err)
			slog.Warn("dashboard poll failed", "probe", step.name, "error", err)
			return
		}
	}
	store.Update(counts, nil)
}
