package search

import (
	"hotelmanager/shared/calendar"

	"github.com/shopspring/decimal"
)

// Entities opt into each filter by implementing the matching interface.
// A filter that is set but not supported by the entity lets every item through.
type (
	Identified interface {
		Identity() int64
	}

	Searchable interface {
		SearchText() []string
	}

	Dated interface {
		Stay() (checkIn, checkOut calendar.Date)
	}

	Typed interface {
		Type() string
	}

	Priced interface {
		Price() decimal.Decimal
	}

	Statused interface {
		StatusOn(today calendar.Date) Status
	}
)

// DeriveStatus applies the booking lifecycle rule: an explicit cancellation wins,
// then a stay covering today is active, a future stay upcoming, anything else completed.
func DeriveStatus(cancelled bool, checkIn, checkOut, today calendar.Date) Status {
	switch {
	case cancelled:
		return StatusCancelled
	case !checkIn.After(today) && !checkOut.Before(today) && checkIn.Valid() && checkOut.Valid():
		return StatusActive
	case checkIn.After(today):
		return StatusUpcoming
	default:
		return StatusCompleted
	}
}
