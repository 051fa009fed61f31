// Package views holds the filter state of each listing screen. A Controller owns
// one screen's criteria and entity snapshot and answers every input event with
// the new state and result.
package views

import (
	"errors"
	"fmt"
	"hotelmanager/internal/domains/search"
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/debounce"
	"hotelmanager/shared/failure"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// State is the part of a screen that survives between events.
type State struct {
	Criteria search.Criteria `json:"criteria"`
}

func (s State) Page() int {
	return max(s.Criteria.Page, 1)
}

type Controller[T any] struct {
	mu        sync.Mutex
	items     []T
	state     State
	defaults  search.Criteria
	today     func() calendar.Date
	debouncer *debounce.Debouncer
}

type Option[T any] func(*Controller[T])

// WithClock replaces calendar.Today, mainly for tests.
func WithClock[T any](today func() calendar.Date) Option[T] {
	return func(c *Controller[T]) {
		c.today = today
	}
}

// New starts a screen on page 1 of items filtered by defaults. wait is the quiet
// period of TypeSearch.
func New[T any](items []T, defaults search.Criteria, wait time.Duration, opts ...Option[T]) *Controller[T] {
	defaults.Page = 1

	c := &Controller[T]{
		items:     items,
		state:     State{Criteria: defaults},
		defaults:  defaults,
		today:     calendar.Today,
		debouncer: debounce.New(wait),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *Controller[T]) Result() search.Result[T] {
	_, res := c.current()

	return res
}

func (c *Controller[T]) SetSearch(term string) (State, search.Result[T], error) {
	return c.update(func(cr *search.Criteria) {
		cr.Search = term
	})
}

func (c *Controller[T]) SetStatus(status search.Status) (State, search.Result[T], error) {
	return c.update(func(cr *search.Criteria) {
		cr.Status = status
	})
}

// SetQuickFilter drops any explicit date range; "all" leaves stays unbounded.
func (c *Controller[T]) SetQuickFilter(kind search.QuickFilter) (State, search.Result[T], error) {
	return c.update(func(cr *search.Criteria) {
		cr.QuickFilter = kind
		cr.DateRange = search.DateRange{}
	})
}

// SetDateRange bounds whole stays and clears the quick filter.
func (c *Controller[T]) SetDateRange(start, end calendar.Date) (State, search.Result[T], error) {
	if start.After(end) {
		state, res := c.current()

		return state, res, failure.BadRequestFromString("start date must not be after end date")
	}

	return c.update(func(cr *search.Criteria) {
		cr.QuickFilter = ""
		cr.DateRange = search.DateRange{Start: start, End: end}
	})
}

func (c *Controller[T]) SetRoomTypes(types ...string) (State, search.Result[T], error) {
	return c.update(func(cr *search.Criteria) {
		cr.RoomTypes = append([]string(nil), types...)
	})
}

func (c *Controller[T]) SetPriceRange(minPrice, maxPrice decimal.NullDecimal) (State, search.Result[T], error) {
	return c.update(func(cr *search.Criteria) {
		cr.PriceRange = search.PriceRange{Min: minPrice, Max: maxPrice}
	})
}

func (c *Controller[T]) SetSort(key search.SortKey, dir search.Direction) (State, search.Result[T], error) {
	return c.update(func(cr *search.Criteria) {
		cr.Sort = key
		cr.Direction = dir
	})
}

// GoToPage moves to page n. A page outside the result leaves the state as it was
// and returns search.ErrPageOutOfRange.
func (c *Controller[T]) GoToPage(n int) (State, search.Result[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Criteria
	next.Page = n

	res, err := search.Apply(c.items, next, c.today())
	if n < 1 || errors.Is(err, search.ErrPageOutOfRange) {
		current, _ := search.Apply(c.items, c.state.Criteria, c.today())

		return c.state, current, fmt.Errorf("%w: %d", search.ErrPageOutOfRange, n)
	}

	c.state.Criteria = next

	return c.state, res, nil
}

// Reset restores the criteria the controller was created with.
func (c *Controller[T]) Reset() (State, search.Result[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = State{Criteria: c.defaults}
	res, _ := search.Apply(c.items, c.state.Criteria, c.today())

	return c.state, res
}

// Replace swaps the snapshot wholesale, as after a booking is cancelled or a
// room edited. The criteria are kept; the page falls back to 1 when the new
// snapshot no longer reaches it.
func (c *Controller[T]) Replace(items []T) (State, search.Result[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = items

	res, err := search.Apply(c.items, c.state.Criteria, c.today())
	if errors.Is(err, search.ErrPageOutOfRange) {
		c.state.Criteria.Page = 1
	}

	return c.state, res
}

// TypeSearch debounces keystrokes: only the last term typed within the quiet
// period is applied, and onResult is called with its outcome.
func (c *Controller[T]) TypeSearch(term string, onResult func(State, search.Result[T])) {
	c.debouncer.Call(func() {
		state, res, _ := c.SetSearch(term)
		if onResult != nil {
			onResult(state, res)
		}
	})
}

// FlushSearch applies a pending TypeSearch immediately.
func (c *Controller[T]) FlushSearch() bool {
	return c.debouncer.Flush()
}

// CancelSearch drops a pending TypeSearch.
func (c *Controller[T]) CancelSearch() bool {
	return c.debouncer.Cancel()
}

func (c *Controller[T]) current() (State, search.Result[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, _ := search.Apply(c.items, c.state.Criteria, c.today())

	return c.state, res
}

// update applies a filter change and returns to page 1. Invalid criteria are
// rejected and the state kept.
func (c *Controller[T]) update(change func(*search.Criteria)) (State, search.Result[T], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Criteria
	change(&next)
	next.Page = 1

	if err := next.Validate(); err != nil {
		res, _ := search.Apply(c.items, c.state.Criteria, c.today())

		return c.state, res, err
	}

	c.state.Criteria = next
	res, _ := search.Apply(c.items, next, c.today())

	return c.state, res, nil
}
