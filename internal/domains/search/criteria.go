package search

import (
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/validator"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusAll       Status = "all"
	StatusActive    Status = "active"
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type QuickFilter string

const (
	QuickToday QuickFilter = "today"
	QuickWeek  QuickFilter = "week"
	QuickAll   QuickFilter = "all"
)

type SortKey string

const (
	SortDefault SortKey = ""
	SortCheckIn SortKey = "checkIn"
	SortCreated SortKey = "created"
	SortPrice   SortKey = "price"
	SortType    SortKey = "type"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// DateRange bounds stays. An invalid Start or End leaves that side open.
type DateRange struct {
	Start calendar.Date `json:"start"`
	End   calendar.Date `json:"end"`
}

func (r DateRange) Bounded() bool {
	return r.Start.Valid() || r.End.Valid()
}

// PriceRange bounds nightly rates. A missing Min reads as zero and a missing Max as unbounded.
type PriceRange struct {
	Min decimal.NullDecimal `json:"min"`
	Max decimal.NullDecimal `json:"max"`
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	low := decimal.Zero
	if r.Min.Valid {
		low = r.Min.Decimal
	}

	if price.LessThan(low) {
		return false
	}

	return !r.Max.Valid || price.LessThanOrEqual(r.Max.Decimal)
}

// Criteria is the full filter state of one listing screen.
type Criteria struct {
	Search      string      `json:"search"`
	Status      Status      `json:"status"      validate:"omitempty,oneof=all active upcoming completed cancelled"`
	QuickFilter QuickFilter `json:"quickFilter" validate:"omitempty,oneof=today week all"`
	DateRange   DateRange   `json:"dateRange"`
	RoomTypes   []string    `json:"roomTypes"`
	PriceRange  PriceRange  `json:"priceRange"`
	Sort        SortKey     `json:"sort"        validate:"omitempty,oneof=checkIn created price type"`
	Direction   Direction   `json:"direction"   validate:"omitempty,oneof=asc desc"`
	Page        int         `json:"page"        validate:"gte=0"`
	PageSize    int         `json:"pageSize"    validate:"gte=0"`
}

// Validate reports the first malformed field as a bad request failure.
func (c Criteria) Validate() error {
	return validator.ValidateStruct(&c)
}

// EffectiveRange resolves the quick filter against today. Any quick filter
// replaces the explicit range: "all" clears the bounds, the others bound
// arrivals rather than whole stays, which the second return value reports.
func (c Criteria) EffectiveRange(today calendar.Date) (DateRange, bool) {
	switch c.QuickFilter {
	case QuickToday, QuickWeek:
		return ResolveQuickFilter(c.QuickFilter, today), true
	case QuickAll:
		return DateRange{}, false
	default:
		return c.DateRange, false
	}
}

// ResolveQuickFilter turns a shortcut into concrete bounds. Weeks run Sunday to Saturday.
func ResolveQuickFilter(kind QuickFilter, today calendar.Date) DateRange {
	switch kind {
	case QuickToday:
		return DateRange{Start: today, End: today}
	case QuickWeek:
		start := today.AddDays(-int(today.Weekday() - time.Sunday))

		return DateRange{Start: start, End: start.AddDays(6)}
	default:
		return DateRange{}
	}
}
