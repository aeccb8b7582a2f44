package schedule

import (
	"errors"
	"testing"
)

func TestToIndex(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"08:00", 480},
		{"12:30", 750},
		{"23:30", 1410},
		{"00:00", 0},
	}
	for _, c := range cases {
		got, err := ToIndex(c.input)
		if err != nil {
			t.Fatalf("ToIndex(%q): %v", c.input, err)
		}
		if got != c.want {
			t.Fatalf("ToIndex(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestToIndexMalformed(t *testing.T) {
	for _, input := range []string{"", "abc", "25:00", "12:61", "12", "12:3a"} {
		_, err := ToIndex(input)
		if err == nil {
			t.Fatalf("ToIndex(%q): expected error", input)
		}
		var malformed *MalformedTimeError
		if !errors.As(err, &malformed) {
			t.Fatalf("ToIndex(%q): expected MalformedTimeError, got %T", input, err)
		}
	}
}

func TestSlotsInDomain(t *testing.T) {
	slots := SlotsInDomain()
	if len(slots) != 32 {
		t.Fatalf("expected 32 slots, got %d", len(slots))
	}
	if slots[0].Label != "08:00" {
		t.Fatalf("first slot = %s, want 08:00", slots[0].Label)
	}
	if slots[len(slots)-1].Label != "23:30" {
		t.Fatalf("last slot = %s, want 23:30", slots[len(slots)-1].Label)
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].Index-slots[i-1].Index != 30 {
			t.Fatalf("slot step between %s and %s is not 30 minutes", slots[i-1].Label, slots[i].Label)
		}
	}
}

func TestSlotForLabelOutOfDomain(t *testing.T) {
	for _, label := range []string{"07:30", "00:00", "23:45", "12:15"} {
		if _, err := SlotForLabel(label); err == nil {
			t.Fatalf("SlotForLabel(%q): expected rejection", label)
		}
	}
	if _, err := SlotForLabel("08:00"); err != nil {
		t.Fatalf("SlotForLabel(08:00): %v", err)
	}
}

func mustSlot(t *testing.T, label string) Slot {
	t.Helper()
	slot, err := SlotForLabel(label)
	if err != nil {
		t.Fatalf("SlotForLabel(%q): %v", label, err)
	}
	return slot
}

func TestRangeBetweenDirectionIndependent(t *testing.T) {
	a := mustSlot(t, "10:00")
	b := mustSlot(t, "12:30")

	forward := RangeBetween(a, b)
	backward := RangeBetween(b, a)

	if len(forward) != 6 {
		t.Fatalf("expected 6 slots in range, got %d", len(forward))
	}
	if len(forward) != len(backward) {
		t.Fatalf("range length differs by direction: %d vs %d", len(forward), len(backward))
	}
	for i := range forward {
		if forward[i] != backward[i] {
			t.Fatalf("range differs by direction at %d: %v vs %v", i, forward[i], backward[i])
		}
	}
	if forward[0].Label != "10:00" || forward[5].Label != "12:30" {
		t.Fatalf("range endpoints wrong: %s..%s", forward[0].Label, forward[5].Label)
	}
}

func TestRangeBetweenSingleSlot(t *testing.T) {
	a := mustSlot(t, "09:00")
	span := RangeBetween(a, a)
	if len(span) != 1 || span[0] != a {
		t.Fatalf("expected single-slot range, got %v", span)
	}
}
