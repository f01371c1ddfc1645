package state

import (
	"errors"
	"testing"
)

func TestUpdateReplacesCounts(t *testing.T) {
	var store Store

	store.Update(Counts{Students: 120, Teachers: 8}, nil)
	snap := store.Snapshot()

	if !snap.HasData {
		t.Fatal("HasData = false after a successful update")
	}
	if snap.Counts.Students != 120 || snap.Counts.Teachers != 8 {
		t.Fatalf("Counts = %+v, want updated totals", snap.Counts)
	}
	if snap.LastUpdated.IsZero() {
		t.Fatal("LastUpdated not set")
	}
}

func TestFailedUpdateKeepsData(t *testing.T) {
	var store Store
	store.Update(Counts{Students: 120}, nil)

	store.Update(Counts{}, errors.New("dial tcp: refused"))
	snap := store.Snapshot()

	if snap.Counts.Students != 120 {
		t.Fatalf("Counts.Students = %d after failure, want previous data kept", snap.Counts.Students)
	}
	if snap.LastError == nil {
		t.Fatal("LastError = nil after a failed update")
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true after a single failure")
	}

	store.Update(Counts{}, errors.New("dial tcp: refused"))
	if !store.Snapshot().IsOffline() {
		t.Fatal("IsOffline() = false after consecutive failures")
	}

	// Recovery clears the error and the failure streak.
	store.Update(Counts{Students: 121}, nil)
	snap = store.Snapshot()
	if snap.LastError != nil || snap.ConsecutiveFailures != 0 {
		t.Fatalf("snapshot = %+v after recovery, want clean state", snap)
	}
}

func TestReset(t *testing.T) {
	var store Store
	store.Update(Counts{Students: 120}, nil)
	store.Reset()

	snap := store.Snapshot()
	if snap.HasData || snap.Counts.Students != 0 {
		t.Fatalf("snapshot = %+v after Reset, want zero value", snap)
	}
}
