package search

import (
	"fmt"
	"hotelmanager/shared"
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/dto"
	"hotelmanager/shared/failure"
	"strings"

	"github.com/shopspring/decimal"
)

// CriteriaFromQuery builds validated criteria from listing query parameters.
// Unreadable prices leave their bound open; unreadable dates are rejected.
func CriteriaFromQuery(q dto.QueryParams) (Criteria, error) {
	criteria := Criteria{
		Search:      q.Search,
		Status:      Status(q.Status),
		QuickFilter: QuickFilter(q.Quick),
		RoomTypes:   q.Types,
		Sort:        SortKey(q.SortBy),
		Direction:   Direction(q.SortDir),
		Page:        q.Page,
		PageSize:    q.Limit,
	}

	start, err := optionalDate(q.Start, "startDate")
	if err != nil {
		return criteria, err
	}

	end, err := optionalDate(q.End, "endDate")
	if err != nil {
		return criteria, err
	}

	if start.After(end) {
		return criteria, failure.BadRequestFromString("startDate must not be after endDate")
	}

	criteria.DateRange = DateRange{Start: start, End: end}
	criteria.PriceRange = PriceRange{Min: PriceBound(q.MinPrice), Max: PriceBound(q.MaxPrice)}

	if err = criteria.Validate(); err != nil {
		return criteria, err
	}

	return criteria, nil
}

// UserCriteriaFromQuery builds validated criteria for the users screen.
func UserCriteriaFromQuery(q dto.QueryParams) (UserCriteria, error) {
	criteria := UserCriteria{
		Search:   q.Search,
		Role:     strings.ToUpper(q.Role),
		Page:     q.Page,
		PageSize: q.Limit,
	}

	if err := criteria.Validate(); err != nil {
		return criteria, err
	}

	return criteria, nil
}

func optionalDate(value, name string) (calendar.Date, error) {
	if strings.TrimSpace(value) == "" {
		return calendar.Date{}, nil
	}

	date := calendar.Parse(value)
	if !date.Valid() {
		return date, failure.BadRequestFromString(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", name))
	}

	return date, nil
}

// PriceBound reads one side of a price range. Blank, unreadable and negative
// values leave that side open.
func PriceBound(value string) decimal.NullDecimal {
	amount, ok := shared.ParseDecimal(value)
	if !ok || amount.IsNegative() {
		return decimal.NullDecimal{}
	}

	return decimal.NewNullDecimal(amount)
}
