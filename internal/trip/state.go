package trip

import (
	"github.com/DanielWang2002/KanseiTabi/internal/model"
	"github.com/DanielWang2002/KanseiTabi/internal/store/jsonstore"
)

// Storage keys, one collection per key.
const (
	keyTrip      = "trip"
	keyHotels    = "hotels"
	keyItinerary = "itinerary"
	keyExpenses  = "expenses"
)

// State owns the four persisted collections for the process lifetime. Views
// hold a *State and mutate through its methods; every mutation re-saves the
// changed collection immediately. There is exactly one State per run and no
// background writers.
type State struct {
	store *jsonstore.Store

	trip      model.TripData
	hotels    []model.Hotel
	itinerary []model.ItineraryItem
	expenses  []model.Expense
}

// Open loads all collections from the store, substituting documented
// defaults for anything absent or unparsable.
func Open(store *jsonstore.Store) *State {
	s := &State{store: store}
	if !store.Load(keyTrip, &s.trip) {
		s.trip = model.DefaultTrip()
	}
	if !store.Load(keyHotels, &s.hotels) {
		s.hotels = nil
	}
	if !store.Load(keyItinerary, &s.itinerary) {
		s.itinerary = nil
	}
	if !store.Load(keyExpenses, &s.expenses) {
		s.expenses = nil
	}
	return s
}

// Trip returns the trip header (name + members).
func (s *State) Trip() model.TripData { return s.trip }

// SetTrip replaces the trip header. Nothing in the UI edits the trip yet,
// but the mutation contract exists for the settings screen to come.
func (s *State) SetTrip(t model.TripData) error {
	s.trip = t
	return s.store.Save(keyTrip, s.trip)
}

// Hotels returns the directory in insertion order.
func (s *State) Hotels() []model.Hotel { return s.hotels }

// Itinerary returns the full cross-day list in its current order.
func (s *State) Itinerary() []model.ItineraryItem { return s.itinerary }

// Expenses returns the ledger, most recent first.
func (s *State) Expenses() []model.Expense { return s.expenses }
