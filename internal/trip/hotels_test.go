package trip

import (
	"reflect"
	"testing"

	"github.com/DanielWang2002/KanseiTabi/internal/store/jsonstore"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	return Open(jsonstore.New(t.TempDir()))
}

func TestAddHotelDefaults(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	h, rej, err := s.AddHotel(HotelInput{Name: "Hotel Gracery", Address: "1-chome Kabukicho"})
	if rej != nil {
		t.Fatalf("unexpected rejection: %+v", rej)
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.ID == "" {
		t.Error("expected a generated id")
	}
	if h.CheckIn != "15:00" || h.CheckOut != "11:00" {
		t.Errorf("expected default check times, got %q / %q", h.CheckIn, h.CheckOut)
	}
	want := "https://www.google.com/maps/search/?api=1&query=1-chome+Kabukicho+Hotel+Gracery"
	if h.MapsURL != want {
		t.Errorf("maps url: got %q, want %q", h.MapsURL, want)
	}
}

func TestAddHotelKeepsProvidedFields(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	h, rej, _ := s.AddHotel(HotelInput{
		Name:     "Ryokan",
		Address:  "Gion, Kyoto",
		MapsURL:  "https://example.com/map",
		CheckIn:  "16:30",
		CheckOut: "10:00",
		Notes:    "booking #42",
	})
	if rej != nil {
		t.Fatalf("unexpected rejection: %+v", rej)
	}
	if h.MapsURL != "https://example.com/map" {
		t.Errorf("provided maps url was replaced: %q", h.MapsURL)
	}
	if h.CheckIn != "16:30" || h.CheckOut != "10:00" || h.Notes != "booking #42" {
		t.Errorf("provided fields not kept: %+v", h)
	}
}

func TestAddThenRemoveHotelLeavesDirectoryUnchanged(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	if _, rej, _ := s.AddHotel(HotelInput{Name: "Base", Address: "Somewhere"}); rej != nil {
		t.Fatalf("setup: %+v", rej)
	}
	before := append([]string(nil), hotelIDs(s)...)

	h, rej, _ := s.AddHotel(HotelInput{Name: "Transient", Address: "Elsewhere"})
	if rej != nil {
		t.Fatalf("add: %+v", rej)
	}
	if err := s.RemoveHotel(h.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if !reflect.DeepEqual(hotelIDs(s), before) {
		t.Errorf("directory changed: got %v, want %v", hotelIDs(s), before)
	}
}

func TestAddHotelValidation(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	cases := []struct {
		name  string
		in    HotelInput
		field string
	}{
		{"missing name", HotelInput{Address: "x"}, "name"},
		{"blank name", HotelInput{Name: "   ", Address: "x"}, "name"},
		{"missing address", HotelInput{Name: "x"}, "address"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, rej, err := s.AddHotel(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rej == nil {
				t.Fatal("expected rejection")
			}
			if rej.Field != tc.field {
				t.Errorf("rejected field: got %q, want %q", rej.Field, tc.field)
			}
		})
	}
	if len(s.Hotels()) != 0 {
		t.Errorf("rejected submissions must not mutate, have %d hotels", len(s.Hotels()))
	}
}

func TestRemoveHotelUnknownIsNoop(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	if _, rej, _ := s.AddHotel(HotelInput{Name: "Keep", Address: "Here"}); rej != nil {
		t.Fatalf("setup: %+v", rej)
	}
	if err := s.RemoveHotel("no-such-id"); err != nil {
		t.Fatalf("remove unknown: %v", err)
	}
	if len(s.Hotels()) != 1 {
		t.Errorf("expected 1 hotel, got %d", len(s.Hotels()))
	}
}

func TestHotelsPersistAcrossReopen(t *testing.T) {
	t.Parallel()
	store := jsonstore.New(t.TempDir())
	s := Open(store)

	h, rej, err := s.AddHotel(HotelInput{Name: "Saved", Address: "On Disk"})
	if rej != nil || err != nil {
		t.Fatalf("add: rej=%v err=%v", rej, err)
	}

	reopened := Open(store)
	if got := reopened.Hotels(); len(got) != 1 || got[0].ID != h.ID {
		t.Errorf("expected reloaded hotel %q, got %+v", h.ID, got)
	}
}

func hotelIDs(s *State) []string {
	ids := make([]string, 0, len(s.Hotels()))
	for _, h := range s.Hotels() {
		ids = append(ids, h.ID)
	}
	return ids
}
