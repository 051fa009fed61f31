package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelmanager/config"
	"hotelmanager/infras/gateway"
	"hotelmanager/infras/otel"
	"hotelmanager/internal/domains/booking/model"
	"hotelmanager/internal/domains/booking/model/dto"
	"hotelmanager/internal/domains/pricing"
	roomModel "hotelmanager/internal/domains/room/model"
	"hotelmanager/internal/domains/search"
	"hotelmanager/internal/domains/session"
	"hotelmanager/shared"
	"hotelmanager/shared/cache"
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/constant"
	"hotelmanager/shared/failure"
	"hotelmanager/shared/validator"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	cacheBooking     = "booking"
	cacheBookingAll  = "booking:all"
	cacheBookingUser = "booking:user"
)

type Booking interface {
	All(ctx context.Context, criteria search.Criteria) (dto.GetBookingsResponse, error)
	Mine(ctx context.Context, criteria search.Criteria) (dto.GetBookingsResponse, error)
	ByCode(ctx context.Context, code string) (dto.BookingResponse, error)
	Quote(ctx context.Context, req dto.QuoteRequest) (pricing.BreakdownResponse, error)
	Book(ctx context.Context, req dto.BookRequest) (dto.BookResponse, error)
	Cancel(ctx context.Context, id int64) error
	Confirmation(ctx context.Context, code string) ([]byte, error)
}

type serviceImpl struct {
	bookings gateway.BookingAPI
	users    gateway.UserAPI
	rooms    gateway.RoomAPI
	session  session.Session
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	bookings gateway.BookingAPI,
	users gateway.UserAPI,
	rooms gateway.RoomAPI,
	session session.Session,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		bookings: bookings,
		users:    users,
		rooms:    rooms,
		session:  session,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

// All is the admin bookings screen over every booking.
func (s *serviceImpl) All(ctx context.Context, criteria search.Criteria) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".All")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.snapshot(ctx, cacheBookingAll, s.bookings.Bookings)
	if err != nil {
		return res, err
	}

	return s.present(bookings, criteria), nil
}

// Mine is the signed in user's bookings screen.
func (s *serviceImpl) Mine(ctx context.Context, criteria search.Criteria) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Mine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.mine(ctx)
	if err != nil {
		return res, err
	}

	return s.present(bookings, criteria), nil
}

func (s *serviceImpl) mine(ctx context.Context) ([]model.Booking, error) {
	user, err := s.session.User(ctx)
	if err != nil {
		return nil, err
	}

	cacheKey := shared.BuildCacheKey(cacheBookingUser, strconv.FormatInt(user.ID, 10))

	return s.snapshot(ctx, cacheKey, func(ctx context.Context) ([]model.Booking, error) {
		return s.users.UserBookings(ctx, user.ID)
	})
}

func (s *serviceImpl) snapshot(ctx context.Context, cacheKey string, fetch func(context.Context) ([]model.Booking, error)) (bookings []model.Booking, err error) {
	if err = s.cache.Get(ctx, cacheKey, &bookings); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return bookings, nil
	}

	bookings, err = fetch(ctx)
	if err != nil {
		log.Error().Err(err).Str("cacheKey", cacheKey).Msg("failed to get bookings")

		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, bookings, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return bookings, nil
}

// present runs the search. A page past the end serves the first page.
func (s *serviceImpl) present(bookings []model.Booking, criteria search.Criteria) (res dto.GetBookingsResponse) {
	today := calendar.Today()

	result, err := search.Apply(bookings, criteria, today)
	if errors.Is(err, search.ErrPageOutOfRange) {
		log.Debug().Int("page", criteria.Page).Msg("booking page out of range, serving first page")
	}

	res.FromResult(result, today, s.cfg.App.PhoneRegions)

	return res
}

func (s *serviceImpl) ByCode(ctx context.Context, code string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ByCode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.bookings.BookingByCode(ctx, code)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to find booking")

		return res, fmt.Errorf("failed to find booking: %w", err)
	}

	if !s.session.IsAdmin(ctx) {
		user, err := s.session.User(ctx)
		if err != nil {
			return res, err
		}

		if booking.User.ID != 0 && booking.User.ID != user.ID {
			return res, failure.NotFound(fmt.Sprintf("booking %s not found", code))
		}
	}

	res.FromModel(booking, calendar.Today(), s.cfg.App.PhoneRegions)

	return res, nil
}

func (s *serviceImpl) price(ctx context.Context, roomID int64, checkIn, checkOut string) (roomModel.Room, pricing.Breakdown, error) {
	room, err := s.rooms.Room(ctx, roomID)
	if err != nil {
		log.Error().Err(err).Int64("room_id", roomID).Msg("failed to get room")

		return room, pricing.Breakdown{}, fmt.Errorf("failed to get room: %w", err)
	}

	breakdown, err := pricing.FullBreakdown(room.Price(), calendar.Parse(checkIn), calendar.Parse(checkOut))
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDateRange) {
			return room, breakdown, failure.InvalidDateRange
		}

		return room, breakdown, fmt.Errorf("failed to price stay: %w", err)
	}

	return room, breakdown, nil
}

// Quote is the booking page price, taxes included.
func (s *serviceImpl) Quote(ctx context.Context, req dto.QuoteRequest) (res pricing.BreakdownResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Quote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	_, breakdown, err := s.price(ctx, req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	res.FromBreakdown(breakdown)

	return res, nil
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookRequest) (res dto.BookResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	user, err := s.session.User(ctx)
	if err != nil {
		return res, err
	}

	room, breakdown, err := s.price(ctx, req.RoomID, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return res, err
	}

	code, err := s.bookings.BookRoom(ctx, req.RoomID, user.ID, gateway.BookRoomRequest{
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		NumOfAdults:   req.NumOfAdults,
		NumOfChildren: req.NumOfChildren,
	})
	if err != nil {
		log.Error().Err(err).Int64("room_id", req.RoomID).Int64("user_id", user.ID).Msg("failed to book room")

		return res, fmt.Errorf("failed to book room: %w", err)
	}

	s.invalidate(ctx)

	res.BookingConfirmationCode = code
	res.Room.FromModel(room)
	res.CheckInDate = req.CheckInDate
	res.CheckOutDate = req.CheckOutDate
	res.Price.FromBreakdown(breakdown)

	return res, nil
}

// Cancel removes a booking. Guests may cancel their own upcoming stays; admins
// may also cancel stays in progress.
func (s *serviceImpl) Cancel(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin := s.session.IsAdmin(ctx)

	var bookings []model.Booking
	if admin {
		bookings, err = s.bookings.Bookings(ctx)
	} else {
		bookings, err = s.mine(ctx)
	}

	if err != nil {
		return err
	}

	booking, found := findBooking(bookings, id)
	if !found {
		return failure.NotFound(fmt.Sprintf("booking %d not found", id))
	}

	switch status := booking.StatusOn(calendar.Today()); {
	case status == search.StatusUpcoming:
	case status == search.StatusActive && admin:
	default:
		return failure.Conflict(fmt.Sprintf("a %s booking cannot be cancelled", status))
	}

	if err = s.bookings.CancelBooking(ctx, id); err != nil {
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func findBooking(bookings []model.Booking, id int64) (model.Booking, bool) {
	for _, booking := range bookings {
		if booking.ID == id {
			return booking, true
		}
	}

	return model.Booking{}, false
}

func (s *serviceImpl) Confirmation(ctx context.Context, code string) (res []byte, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.ByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	res, err = renderConfirmation(s.cfg.App.Name, booking)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("failed to render confirmation")

		return nil, err
	}

	return res, nil
}

// invalidate drops every booking snapshot after a mutation.
func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheBooking)
	}()
}
