package model

// Hotel is one booked accommodation. CheckIn/CheckOut are display strings
// ("15:00"), not parsed times. MapsURL is always set: either caller-provided
// or synthesized from the address and name at creation.
type Hotel struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	MapsURL  string `json:"mapsUrl"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Notes    string `json:"notes"`
}
