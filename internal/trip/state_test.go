package trip

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DanielWang2002/KanseiTabi/internal/model"
	"github.com/DanielWang2002/KanseiTabi/internal/store/jsonstore"
)

func TestOpenFirstRunUsesDefaults(t *testing.T) {
	t.Parallel()
	s := newTestState(t)

	want := model.DefaultTrip()
	got := s.Trip()
	if got.Name != want.Name || len(got.Members) != len(want.Members) {
		t.Errorf("first run trip: got %+v, want %+v", got, want)
	}
	if len(s.Hotels()) != 0 || len(s.Itinerary()) != 0 || len(s.Expenses()) != 0 {
		t.Error("first run collections must be empty")
	}
}

func TestOpenCorruptCollectionFallsBackToDefault(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// Corrupt two of the four collections on disk.
	for _, name := range []string{"trip.json", "hotels.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{{{"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	s := Open(jsonstore.New(dir))
	if s.Trip().Name != model.DefaultTrip().Name {
		t.Errorf("corrupt trip data must fall back to the default, got %+v", s.Trip())
	}
	if len(s.Hotels()) != 0 {
		t.Errorf("corrupt hotels must fall back to empty, got %+v", s.Hotels())
	}
}

func TestSetTripPersists(t *testing.T) {
	t.Parallel()
	store := jsonstore.New(t.TempDir())
	s := Open(store)

	next := model.TripData{Name: "Kyushu Loop", Members: []string{"Me", "Yuki"}}
	if err := s.SetTrip(next); err != nil {
		t.Fatalf("set trip: %v", err)
	}

	reopened := Open(store)
	if reopened.Trip().Name != "Kyushu Loop" || len(reopened.Trip().Members) != 2 {
		t.Errorf("trip not persisted: %+v", reopened.Trip())
	}
}
