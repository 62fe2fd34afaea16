package trip

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/DanielWang2002/KanseiTabi/internal/model"
)

const (
	mapsSearchBase  = "https://www.google.com/maps/search/?api=1&query="
	defaultCheckIn  = "15:00"
	defaultCheckOut = "11:00"
)

// HotelInput is a hotel form submission before validation and defaults.
type HotelInput struct {
	Name     string
	Address  string
	MapsURL  string
	CheckIn  string
	CheckOut string
	Notes    string
}

// AddHotel validates the input, fills defaults (maps link, check-in/out
// times), assigns a fresh id and appends to the directory. The error is a
// storage failure, not a validation one.
func (s *State) AddHotel(in HotelInput) (model.Hotel, *Rejection, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Hotel{}, reject("name", "hotel name is required"), nil
	}
	addr := strings.TrimSpace(in.Address)
	if addr == "" {
		return model.Hotel{}, reject("address", "address is required"), nil
	}

	h := model.Hotel{
		ID:       uuid.NewString(),
		Name:     name,
		Address:  addr,
		MapsURL:  strings.TrimSpace(in.MapsURL),
		CheckIn:  strings.TrimSpace(in.CheckIn),
		CheckOut: strings.TrimSpace(in.CheckOut),
		Notes:    strings.TrimSpace(in.Notes),
	}
	if h.MapsURL == "" {
		h.MapsURL = MapsSearchURL(addr + " " + name)
	}
	if h.CheckIn == "" {
		h.CheckIn = defaultCheckIn
	}
	if h.CheckOut == "" {
		h.CheckOut = defaultCheckOut
	}

	s.hotels = append(s.hotels, h)
	return h, nil, s.store.Save(keyHotels, s.hotels)
}

// RemoveHotel deletes the entry with the given id. Removing an unknown id is
// a no-op and does not rewrite the file.
func (s *State) RemoveHotel(id string) error {
	next := lo.Reject(s.hotels, func(h model.Hotel, _ int) bool { return h.ID == id })
	if len(next) == len(s.hotels) {
		return nil
	}
	s.hotels = next
	return s.store.Save(keyHotels, s.hotels)
}

// MapsSearchURL builds a percent-encoded map search link for a free-form
// query.
func MapsSearchURL(query string) string {
	return mapsSearchBase + url.QueryEscape(query)
}
