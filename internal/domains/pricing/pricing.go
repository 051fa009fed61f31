// Package pricing computes stay prices with exact decimals. Rounding to cents
// happens only in the presentation DTOs.
package pricing

import (
	"errors"
	"hotelmanager/shared/calendar"

	"github.com/shopspring/decimal"
)

var ErrInvalidDateRange = errors.New("check-out date must be after check-in date")

var (
	ServiceFeeRate = decimal.RequireFromString("0.05")
	TaxRate        = decimal.RequireFromString("0.10")
)

type Breakdown struct {
	NightlyRate decimal.Decimal `json:"nightlyRate"`
	Nights      int             `json:"nights"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	ServiceFee  decimal.Decimal `json:"serviceFee"`
	Taxes       decimal.Decimal `json:"taxes"`
	Total       decimal.Decimal `json:"total"`
}

// Nights counts whole nights between the dates, rounding a partial day up.
func Nights(checkIn, checkOut calendar.Date) (int, error) {
	if !checkIn.Valid() || !checkOut.Valid() {
		return 0, ErrInvalidDateRange
	}

	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return 0, ErrInvalidDateRange
	}

	return nights, nil
}

func base(rate decimal.Decimal, checkIn, checkOut calendar.Date) (Breakdown, error) {
	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return Breakdown{}, err
	}

	subtotal := rate.Mul(decimal.NewFromInt(int64(nights)))

	return Breakdown{
		NightlyRate: rate,
		Nights:      nights,
		Subtotal:    subtotal,
		ServiceFee:  subtotal.Mul(ServiceFeeRate),
		Taxes:       decimal.Zero,
	}, nil
}

// QuickEstimate is the room detail estimate: subtotal plus the service fee, no taxes.
func QuickEstimate(rate decimal.Decimal, checkIn, checkOut calendar.Date) (Breakdown, error) {
	res, err := base(rate, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	res.Total = res.Subtotal.Add(res.ServiceFee)

	return res, nil
}

// FullBreakdown is the booking page price: subtotal, service fee and taxes.
// It intentionally differs from QuickEstimate by the 10% tax line.
func FullBreakdown(rate decimal.Decimal, checkIn, checkOut calendar.Date) (Breakdown, error) {
	res, err := base(rate, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	res.Taxes = res.Subtotal.Mul(TaxRate)
	res.Total = res.Subtotal.Add(res.ServiceFee).Add(res.Taxes)

	return res, nil
}

// Stay is a booked room rate over a date range.
type Stay interface {
	Rate() decimal.Decimal
	Stay() (checkIn, checkOut calendar.Date)
}

// Revenue sums rate times nights. Stays with an unusable date range add nothing.
func Revenue[T Stay](stays []T) decimal.Decimal {
	total := decimal.Zero

	for _, stay := range stays {
		checkIn, checkOut := stay.Stay()

		nights, err := Nights(checkIn, checkOut)
		if err != nil {
			continue
		}

		total = total.Add(stay.Rate().Mul(decimal.NewFromInt(int64(nights))))
	}

	return total
}
