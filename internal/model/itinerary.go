package model

// ItineraryItem is one planned activity on a given trip day. Time is an
// "HH:MM" string and the collection ordering compares it lexicographically.
type ItineraryItem struct {
	ID       string `json:"id"`
	Day      int    `json:"day"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
	Location string `json:"location"`
	Notes    string `json:"notes,omitempty"`
}
