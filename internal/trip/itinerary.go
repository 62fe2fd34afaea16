package trip

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/DanielWang2002/KanseiTabi/internal/model"
)

// ItineraryInput is an itinerary form submission for a target day.
type ItineraryInput struct {
	Day      int
	Time     string
	Activity string
	Location string
	Notes    string
}

// AddItineraryItem validates the input, assigns a fresh id, inserts into the
// shared list and re-sorts the entire list by time string.
//
// Note the sort spans every day, not just the item's own day: two items at
// "09:00" on different days stay adjacent in the flat list. ItemsForDay
// filters this global order, which is what keeps each day's timeline sorted.
// Kept as-is for compatibility with existing stored data.
func (s *State) AddItineraryItem(in ItineraryInput) (model.ItineraryItem, *Rejection, error) {
	if in.Day < 1 {
		return model.ItineraryItem{}, reject("day", "day must be 1 or later"), nil
	}
	t := strings.TrimSpace(in.Time)
	if t == "" {
		return model.ItineraryItem{}, reject("time", "time is required"), nil
	}
	activity := strings.TrimSpace(in.Activity)
	if activity == "" {
		return model.ItineraryItem{}, reject("activity", "activity is required"), nil
	}

	item := model.ItineraryItem{
		ID:       uuid.NewString(),
		Day:      in.Day,
		Time:     t,
		Activity: activity,
		Location: strings.TrimSpace(in.Location),
		Notes:    strings.TrimSpace(in.Notes),
	}
	s.itinerary = append(s.itinerary, item)
	sort.SliceStable(s.itinerary, func(i, j int) bool {
		return s.itinerary[i].Time < s.itinerary[j].Time
	})
	return item, nil, s.store.Save(keyItinerary, s.itinerary)
}

// RemoveItineraryItem deletes the item with the given id; no-op when absent.
func (s *State) RemoveItineraryItem(id string) error {
	next := lo.Reject(s.itinerary, func(it model.ItineraryItem, _ int) bool { return it.ID == id })
	if len(next) == len(s.itinerary) {
		return nil
	}
	s.itinerary = next
	return s.store.Save(keyItinerary, s.itinerary)
}

// Days returns the distinct days present in the itinerary, always including
// day 1, ascending.
func (s *State) Days() []int {
	days := lo.Uniq(lo.Map(s.itinerary, func(it model.ItineraryItem, _ int) int { return it.Day }))
	if !lo.Contains(days, 1) {
		days = append(days, 1)
	}
	sort.Ints(days)
	return days
}

// ItemsForDay filters the shared list down to one day, preserving the
// global time order.
func (s *State) ItemsForDay(day int) []model.ItineraryItem {
	return lo.Filter(s.itinerary, func(it model.ItineraryItem, _ int) bool { return it.Day == day })
}

// NextDay is the day the "add day" control jumps to: one past the last
// known day.
func (s *State) NextDay() int {
	days := s.Days()
	if len(days) == 0 {
		return 1
	}
	return days[len(days)-1] + 1
}
