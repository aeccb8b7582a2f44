package schedule

import (
	"errors"
	"testing"
)

func TestAddIsIdempotent(t *testing.T) {
	store := NewAssignmentStore()
	slot := mustSlot(t, "09:00")

	if err := store.Add("1", "1", slot, "Kitchen"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := store.Add("1", "1", slot, "Kitchen"); err != nil {
		t.Fatalf("repeated add: %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("store size after repeated add = %d, want 1", store.Len())
	}
}

func TestAddRejectsDifferentLocation(t *testing.T) {
	store := NewAssignmentStore()
	slot := mustSlot(t, "09:00")

	if err := store.Add("1", "1", slot, "Kitchen"); err != nil {
		t.Fatalf("first add: %v", err)
	}

	err := store.Add("1", "1", slot, "Reception")
	var occupied *SlotOccupiedError
	if !errors.As(err, &occupied) {
		t.Fatalf("expected SlotOccupiedError, got %v", err)
	}
	if occupied.Location != "Kitchen" {
		t.Fatalf("conflict should name the occupying location, got %q", occupied.Location)
	}

	// 第一条记录保留，冲突的不落地
	if store.Len() != 1 {
		t.Fatalf("store size = %d, want 1", store.Len())
	}
	if loc, _ := store.LocationAt("1", "1", slot); loc != "Kitchen" {
		t.Fatalf("existing assignment was overwritten: %q", loc)
	}
}

func TestRemoveExactTripleOnly(t *testing.T) {
	store := NewAssignmentStore()
	slot := mustSlot(t, "09:00")

	if err := store.Add("1", "1", slot, "Kitchen"); err != nil {
		t.Fatalf("add: %v", err)
	}

	// 地点不匹配时不删除
	store.Remove("1", "1", slot, "Reception")
	if store.Len() != 1 {
		t.Fatalf("remove with wrong location deleted the assignment")
	}

	store.Remove("1", "1", slot, "Kitchen")
	if store.Len() != 0 {
		t.Fatalf("store size after remove = %d, want 0", store.Len())
	}

	// 不存在时删除是无操作
	store.Remove("1", "1", slot, "Kitchen")
	if store.Len() != 0 {
		t.Fatalf("remove of absent assignment changed the store")
	}
}

func TestOccupantsOf(t *testing.T) {
	store := NewAssignmentStore()
	slot := mustSlot(t, "10:00")

	for _, id := range []string{"3", "1", "2"} {
		if err := store.Add(id, "1", slot, "Break Room"); err != nil {
			t.Fatalf("add %s: %v", id, err)
		}
	}
	if err := store.Add("4", "1", slot, "Kitchen"); err != nil {
		t.Fatalf("add 4: %v", err)
	}
	if err := store.Add("5", "2", slot, "Break Room"); err != nil {
		t.Fatalf("add 5: %v", err)
	}

	occupants := store.OccupantsOf("1", slot, "Break Room")
	if len(occupants) != 3 {
		t.Fatalf("occupants = %v, want 3 entries", occupants)
	}
	for i, want := range []string{"1", "2", "3"} {
		if occupants[i] != want {
			t.Fatalf("occupants[%d] = %s, want %s", i, occupants[i], want)
		}
	}
}

func TestAssignmentsForDayIsSorted(t *testing.T) {
	store := NewAssignmentStore()
	for _, label := range []string{"12:00", "08:30", "10:00"} {
		if err := store.Add("1", "1", mustSlot(t, label), "Kitchen"); err != nil {
			t.Fatalf("add %s: %v", label, err)
		}
	}
	if err := store.Add("1", "2", mustSlot(t, "09:00"), "Kitchen"); err != nil {
		t.Fatalf("add day 2: %v", err)
	}

	assignments := store.AssignmentsFor("1", "1")
	if len(assignments) != 3 {
		t.Fatalf("expected 3 assignments for day 1, got %d", len(assignments))
	}
	for i, want := range []string{"08:30", "10:00", "12:00"} {
		if assignments[i].Slot.Label != want {
			t.Fatalf("assignments[%d] = %s, want %s", i, assignments[i].Slot.Label, want)
		}
	}
}
