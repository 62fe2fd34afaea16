package trip

import (
	"reflect"
	"testing"
)

func TestDaysAlwaysIncludeDayOne(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	if got := s.Days(); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("empty itinerary days: got %v, want [1]", got)
	}

	if _, rej, _ := s.AddItineraryItem(ItineraryInput{Day: 2, Time: "09:00", Activity: "Temple"}); rej != nil {
		t.Fatalf("add: %+v", rej)
	}
	if got := s.Days(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("days: got %v, want [1 2]", got)
	}
}

// The list is re-sorted by time across all days on every insert, so a day-2
// morning sorts ahead of a day-1 afternoon in the flat list. Intentionally
// preserved behavior; this test pins it.
func TestInsertSortsWholeListByTime(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	if _, rej, _ := s.AddItineraryItem(ItineraryInput{Day: 1, Time: "14:00", Activity: "Museum"}); rej != nil {
		t.Fatalf("add: %+v", rej)
	}
	if _, rej, _ := s.AddItineraryItem(ItineraryInput{Day: 2, Time: "09:00", Activity: "Market"}); rej != nil {
		t.Fatalf("add: %+v", rej)
	}

	items := s.Itinerary()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Time != "09:00" || items[0].Day != 2 {
		t.Errorf("expected the day-2 09:00 item first, got %+v", items[0])
	}
	if items[1].Time != "14:00" || items[1].Day != 1 {
		t.Errorf("expected the day-1 14:00 item last, got %+v", items[1])
	}
}

func TestItemsForDayFiltersInGlobalOrder(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	for _, in := range []ItineraryInput{
		{Day: 1, Time: "18:00", Activity: "Dinner"},
		{Day: 1, Time: "08:30", Activity: "Breakfast"},
		{Day: 2, Time: "10:00", Activity: "Castle"},
	} {
		if _, rej, _ := s.AddItineraryItem(in); rej != nil {
			t.Fatalf("add %+v: %+v", in, rej)
		}
	}

	day1 := s.ItemsForDay(1)
	if len(day1) != 2 {
		t.Fatalf("expected 2 day-1 items, got %d", len(day1))
	}
	if day1[0].Activity != "Breakfast" || day1[1].Activity != "Dinner" {
		t.Errorf("day-1 order wrong: %q then %q", day1[0].Activity, day1[1].Activity)
	}
}

func TestNextDay(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	// Day 1 is always offered even with no items, so the first new day is 2.
	if got := s.NextDay(); got != 2 {
		t.Errorf("next day on empty itinerary: got %d, want 2", got)
	}

	if _, rej, _ := s.AddItineraryItem(ItineraryInput{Day: 3, Time: "09:00", Activity: "Hike"}); rej != nil {
		t.Fatalf("add: %+v", rej)
	}
	if got := s.NextDay(); got != 4 {
		t.Errorf("next day: got %d, want 4", got)
	}
}

func TestAddItineraryItemValidation(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	cases := []struct {
		name  string
		in    ItineraryInput
		field string
	}{
		{"no time", ItineraryInput{Day: 1, Activity: "x"}, "time"},
		{"blank activity", ItineraryInput{Day: 1, Time: "09:00", Activity: "  "}, "activity"},
		{"zero day", ItineraryInput{Day: 0, Time: "09:00", Activity: "x"}, "day"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, rej, err := s.AddItineraryItem(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rej == nil || rej.Field != tc.field {
				t.Errorf("expected rejection on %q, got %+v", tc.field, rej)
			}
		})
	}
	if len(s.Itinerary()) != 0 {
		t.Errorf("rejected submissions must not mutate, have %d items", len(s.Itinerary()))
	}
}

func TestRemoveItineraryItem(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	item, rej, _ := s.AddItineraryItem(ItineraryInput{Day: 1, Time: "09:00", Activity: "Walk"})
	if rej != nil {
		t.Fatalf("add: %+v", rej)
	}
	if err := s.RemoveItineraryItem(item.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(s.Itinerary()) != 0 {
		t.Errorf("expected empty itinerary, got %d items", len(s.Itinerary()))
	}
	if err := s.RemoveItineraryItem(item.ID); err != nil {
		t.Errorf("removing an absent id must be a no-op, got %v", err)
	}
}
