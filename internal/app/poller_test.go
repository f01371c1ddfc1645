package app

import (
	"context"
	"errors"
	"testing"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/state"
)

// fakeCounter serves totals via pagination metadata the way the real
// list endpoints do.
type fakeCounter struct {
	students, teachers, classes, subjects int
	feesByStatus                          map[string]int
	failOn                                string
	probes                                []api.ListOptions
}

func (f *fakeCounter) metaFor(name string, total int) (api.Meta, error) {
	if f.failOn == name {
		return api.Meta{}, errors.New("dial tcp: refused")
	}
	return api.Meta{Page: 1, TotalPages: total, Total: total, Limit: 1}, nil
}

func (f *fakeCounter) ListStudents(_ context.Context, opts api.ListOptions) ([]api.Student, api.Meta, error) {
	f.probes = append(f.probes, opts)
	meta, err := f.metaFor("students", f.students)
	return nil, meta, err
}

func (f *fakeCounter) ListTeachers(_ context.Context, opts api.ListOptions) ([]api.Teacher, api.Meta, error) {
	f.probes = append(f.probes, opts)
	meta, err := f.metaFor("teachers", f.teachers)
	return nil, meta, err
}

func (f *fakeCounter) ListClasses(_ context.Context, opts api.ListOptions) ([]api.Class, api.Meta, error) {
	f.probes = append(f.probes, opts)
	meta, err := f.metaFor("classes", f.classes)
	return nil, meta, err
}

func (f *fakeCounter) ListSubjects(_ context.Context, opts api.ListOptions) ([]api.Subject, api.Meta, error) {
	f.probes = append(f.probes, opts)
	meta, err := f.metaFor("subjects", f.subjects)
	return nil, meta, err
}

func (f *fakeCounter) ListFees(_ context.Context, opts api.ListOptions) ([]api.Fee, api.Meta, error) {
	f.probes = append(f.probes, opts)
	return nil, api.Meta{Total: f.feesByStatus[opts.Filters["status"]]}, nil
}

func TestRefreshReadsTotalsFromMeta(t *testing.T) {
	fake := &fakeCounter{
		students: 412, teachers: 23, classes: 12, subjects: 31,
		feesByStatus: map[string]int{"pending": 57, "overdue": 9},
	}
	var store state.Store

	refresh(context.Background(), &store, fake)

	snap := store.Snapshot()
	if !snap.HasData {
		t.Fatal("HasData = false after a clean refresh")
	}
	want := state.Counts{Students: 412, Teachers: 23, Classes: 12, Subjects: 31, FeesPending: 57, FeesOverdue: 9}
	if snap.Counts != want {
		t.Fatalf("Counts = %+v, want %+v", snap.Counts, want)
	}

	// The probes must never transfer full collections.
	for _, probe := range fake.probes {
		if probe.Limit != 1 || probe.Page != 1 {
			t.Fatalf("probe = %+v, want page 1 limit 1", probe)
		}
	}
}

func TestRefreshFailureKeepsPreviousCounts(t *testing.T) {
	fake := &fakeCounter{students: 412, feesByStatus: map[string]int{}}
	var store state.Store
	refresh(context.Background(), &store, fake)

	fake.failOn = "classes"
	refresh(context.Background(), &store, fake)

	snap := store.Snapshot()
	if snap.Counts.Students != 412 {
		t.Fatalf("Counts.Students = %d after failed refresh, want previous kept", snap.Counts.Students)
	}
	if snap.LastError == nil {
		t.Fatal("LastError = nil after failed refresh")
	}
}
