package model

// TripData is the singleton trip header: the trip name and the ordered
// travel group. Members keep insertion order; duplicates are tolerated in
// storage but balance math treats member names as unique (see trip.Balances).
type TripData struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// DefaultTrip is the trip created on first run, before any editing.
func DefaultTrip() TripData {
	return TripData{
		Name:    "Japan Trip 2025",
		Members: []string{"Me", "Alex", "Sam"},
	}
}
