package search

import (
	"errors"
	"hotelmanager/shared/calendar"
	"slices"
	"strings"
)

// Aggregates are counted after every filter except status, so the status tabs
// always show all categories.
type Aggregates struct {
	Total     int            `json:"total"`
	Active    int            `json:"active"`
	Upcoming  int            `json:"upcoming"`
	Completed int            `json:"completed"`
	Cancelled int            `json:"cancelled"`
	RoomTypes map[string]int `json:"roomTypes,omitempty"`
}

func (a *Aggregates) count(status Status) {
	switch status {
	case StatusActive:
		a.Active++
	case StatusUpcoming:
		a.Upcoming++
	case StatusCompleted:
		a.Completed++
	case StatusCancelled:
		a.Cancelled++
	}
}

type Result[T any] struct {
	// Items is the whole filtered and sorted sequence.
	Items      []T        `json:"-"`
	Page       Page[T]    `json:"page"`
	Aggregates Aggregates `json:"aggregates"`
	Range      DateRange  `json:"range"`
	Empty      bool       `json:"empty"`
}

// Apply filters, sorts and paginates items. It never mutates items. The only error
// is ErrPageOutOfRange, returned together with the rest of the result so callers
// can keep their current page.
func Apply[T any](items []T, criteria Criteria, today calendar.Date) (Result[T], error) {
	dateRange, arrivals := criteria.EffectiveRange(today)
	term := strings.ToLower(strings.TrimSpace(criteria.Search))

	matchesStay := matchesDates
	if arrivals {
		matchesStay = matchesArrival
	}

	base := make([]T, 0, len(items))
	for _, item := range items {
		if matchesText(item, term) &&
			matchesStay(item, dateRange) &&
			matchesType(item, criteria.RoomTypes) &&
			matchesPrice(item, criteria.PriceRange) {
			base = append(base, item)
		}
	}

	res := Result[T]{
		Aggregates: aggregate(base, today),
		Range:      dateRange,
	}

	filtered := base
	if criteria.Status != "" && criteria.Status != StatusAll {
		filtered = make([]T, 0, len(base))

		for _, item := range base {
			if statused, ok := any(item).(Statused); !ok || statused.StatusOn(today) == criteria.Status {
				filtered = append(filtered, item)
			}
		}
	}

	Sort(filtered, criteria.Sort, criteria.Direction)

	res.Items = filtered
	res.Empty = len(filtered) == 0

	page, err := Paginate(filtered, criteria.Page, criteria.PageSize)
	if err != nil && !errors.Is(err, ErrPageOutOfRange) {
		return res, err
	}

	res.Page = page

	return res, err
}

func matchesText(item any, term string) bool {
	if term == "" {
		return true
	}

	searchable, ok := item.(Searchable)
	if !ok {
		return true
	}

	for _, field := range searchable.SearchText() {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

// matchesDates requires checkIn >= Start and checkOut <= End. Stays with an
// unreadable date never pass a bounded range.
func matchesDates(item any, r DateRange) bool {
	if !r.Bounded() {
		return true
	}

	dated, ok := item.(Dated)
	if !ok {
		return true
	}

	checkIn, checkOut := dated.Stay()
	if r.Start.Valid() && (!checkIn.Valid() || checkIn.Before(r.Start)) {
		return false
	}

	if r.End.Valid() && (!checkOut.Valid() || checkOut.After(r.End)) {
		return false
	}

	return true
}

// matchesArrival is used by quick filters: the stay must begin inside the range.
func matchesArrival(item any, r DateRange) bool {
	dated, ok := item.(Dated)
	if !ok {
		return true
	}

	checkIn, _ := dated.Stay()

	return checkIn.Valid() && !checkIn.Before(r.Start) && !checkIn.After(r.End)
}

func matchesType(item any, types []string) bool {
	if len(types) == 0 {
		return true
	}

	typed, ok := item.(Typed)
	if !ok {
		return true
	}

	return slices.Contains(types, typed.Type())
}

func matchesPrice(item any, r PriceRange) bool {
	if !r.Min.Valid && !r.Max.Valid {
		return true
	}

	priced, ok := item.(Priced)
	if !ok {
		return true
	}

	return r.Contains(priced.Price())
}

func aggregate[T any](items []T, today calendar.Date) Aggregates {
	agg := Aggregates{Total: len(items)}

	for _, item := range items {
		if statused, ok := any(item).(Statused); ok {
			agg.count(statused.StatusOn(today))
		}

		if typed, ok := any(item).(Typed); ok {
			if agg.RoomTypes == nil {
				agg.RoomTypes = make(map[string]int)
			}

			agg.RoomTypes[typed.Type()]++
		}
	}

	return agg
}
