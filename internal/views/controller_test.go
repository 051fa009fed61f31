package views_test

import (
	"fmt"
	bookingModel "hotelmanager/internal/domains/booking/model"
	roomModel "hotelmanager/internal/domains/room/model"
	"hotelmanager/internal/domains/search"
	"hotelmanager/internal/views"
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/failure"
	"hotelmanager/shared/money"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var today = calendar.NewDate(2024, time.January, 10)

func clock() calendar.Date { return today }

func rooms(n int) []roomModel.Room {
	types := []string{"Single", "Double", "Deluxe Suite"}
	out := make([]roomModel.Room, 0, n)

	for i := 1; i <= n; i++ {
		out = append(out, roomModel.Room{
			ID:              int64(i),
			RoomType:        types[(i-1)%len(types)],
			RoomPrice:       money.FromString(fmt.Sprintf("%d", 50*i)),
			RoomDescription: "room",
		})
	}

	return out
}

func roomController(n int) *views.Controller[roomModel.Room] {
	return views.New(rooms(n), search.Criteria{PageSize: 2}, time.Hour, views.WithClock[roomModel.Room](clock))
}

func ids(items []roomModel.Room) []int64 {
	out := make([]int64, 0, len(items))
	for _, r := range items {
		out = append(out, r.ID)
	}

	return out
}

func TestController_FilterChangesResetPage(t *testing.T) {
	c := roomController(6)

	state, _, err := c.GoToPage(3)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Page())

	state, res, err := c.SetSearch("deluxe")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Page())
	assert.Equal(t, []int64{3, 6}, ids(res.Page.Items))

	_, _, err = c.GoToPage(1)
	require.NoError(t, err)

	state, res, err = c.SetRoomTypes("Single", "Double")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Page())
	assert.Empty(t, res.Page.Items, "search term still applies")

	_, res, err = c.SetSearch("")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, ids(res.Page.Items))
	assert.Equal(t, 4, res.Page.TotalItems)
}

func TestController_GoToPage(t *testing.T) {
	c := roomController(5)

	tests := []struct {
		name     string
		page     int
		wantPage int
		wantIDs  []int64
		wantErr  bool
	}{
		{name: "second page", page: 2, wantPage: 2, wantIDs: []int64{3, 4}},
		{name: "last partial page", page: 3, wantPage: 3, wantIDs: []int64{5}},
		{name: "past the end keeps the page", page: 4, wantPage: 3, wantIDs: []int64{5}, wantErr: true},
		{name: "zero keeps the page", page: 0, wantPage: 3, wantIDs: []int64{5}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, res, err := c.GoToPage(tt.page)

			if tt.wantErr {
				assert.ErrorIs(t, err, search.ErrPageOutOfRange)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.wantPage, state.Page())
			assert.Equal(t, tt.wantIDs, ids(res.Page.Items))
		})
	}
}

func TestController_SetPriceRangeAndSort(t *testing.T) {
	c := roomController(6)

	_, res, err := c.SetPriceRange(decimal.NewNullDecimal(decimal.NewFromInt(100)), decimal.NullDecimal{})
	require.NoError(t, err)
	assert.Equal(t, 5, res.Page.TotalItems)

	_, res, err = c.SetSort(search.SortPrice, search.Desc)
	require.NoError(t, err)
	assert.Equal(t, []int64{6, 5}, ids(res.Page.Items))

	state, _, err := c.SetSort("stars", search.Asc)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.Equal(t, search.SortPrice, state.Criteria.Sort, "invalid sort keeps the previous one")
}

func TestController_ResetAndReplace(t *testing.T) {
	c := roomController(6)

	_, _, err := c.SetSearch("double")
	require.NoError(t, err)

	state, res := c.Reset()
	assert.Empty(t, state.Criteria.Search)
	assert.Equal(t, 6, res.Page.TotalItems)

	_, _, err = c.GoToPage(3)
	require.NoError(t, err)

	state, res = c.Replace(rooms(3))
	assert.Equal(t, 1, state.Page(), "page 3 no longer exists")
	assert.Equal(t, 3, res.Page.TotalItems)
}

func TestController_BookingFilters(t *testing.T) {
	stay := func(id int64, from, to int, status string) bookingModel.Booking {
		return bookingModel.Booking{
			ID:           id,
			CheckInDate:  today.AddDays(from),
			CheckOutDate: today.AddDays(to),
			NumOfAdults:  1,
			Status:       status,
		}
	}

	items := []bookingModel.Booking{
		stay(1, 0, 2, ""),
		stay(2, 1, 3, ""),
		stay(3, 5, 7, ""),
		stay(4, -6, -4, ""),
		stay(5, 2, 4, "cancelled"),
	}

	c := views.New(items, search.Criteria{PageSize: 10}, time.Hour, views.WithClock[bookingModel.Booking](clock))

	_, res, err := c.SetStatus(search.StatusUpcoming)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Page.TotalItems)
	assert.Equal(t, 5, res.Aggregates.Total)

	_, res, err = c.SetQuickFilter(search.QuickWeek)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page.TotalItems, "arrivals from Sunday to Saturday")
	assert.Equal(t, calendar.NewDate(2024, time.January, 7), res.Range.Start)
	assert.Equal(t, calendar.NewDate(2024, time.January, 13), res.Range.End)

	state, res, err := c.SetDateRange(today.AddDays(-10), today.AddDays(3))
	require.NoError(t, err)
	assert.Empty(t, state.Criteria.QuickFilter)
	assert.Equal(t, 1, res.Page.TotalItems)

	_, _, err = c.SetQuickFilter(search.QuickToday)
	require.NoError(t, err)

	state, res, err = c.SetQuickFilter(search.QuickAll)
	require.NoError(t, err)
	assert.False(t, state.Criteria.DateRange.Bounded(), "all drops the earlier explicit range")
	assert.False(t, res.Range.Bounded())
	assert.Equal(t, 2, res.Page.TotalItems)

	_, _, err = c.SetDateRange(today, today.AddDays(-1))
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestController_TypeSearch(t *testing.T) {
	c := views.New(rooms(6), search.Criteria{}, 20*time.Millisecond, views.WithClock[roomModel.Room](clock))

	var (
		mu    sync.Mutex
		calls []string
	)

	record := func(state views.State, _ search.Result[roomModel.Room]) {
		mu.Lock()
		defer mu.Unlock()

		calls = append(calls, state.Criteria.Search)
	}

	for _, term := range []string{"d", "de", "del"} {
		c.TypeSearch(term, record)
	}

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(calls) == 1
	}, time.Second, 5*time.Millisecond)

	time.Sleep(40 * time.Millisecond)

	mu.Lock()
	assert.Equal(t, []string{"del"}, calls)
	mu.Unlock()

	c.TypeSearch("single", record)
	assert.True(t, c.FlushSearch())
	assert.Equal(t, "single", c.State().Criteria.Search)
	assert.False(t, c.CancelSearch())
}
