package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelmanager/config"
	"hotelmanager/infras/gateway"
	"hotelmanager/infras/otel"
	bookingModel "hotelmanager/internal/domains/booking/model"
	bookingDto "hotelmanager/internal/domains/booking/model/dto"
	"hotelmanager/internal/domains/dashboard/model/dto"
	"hotelmanager/internal/domains/pricing"
	roomModel "hotelmanager/internal/domains/room/model"
	"hotelmanager/internal/domains/search"
	"hotelmanager/internal/domains/session"
	userModel "hotelmanager/internal/domains/user/model"
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/constant"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const userRecentBookings = 3

type Dashboard interface {
	Admin(ctx context.Context) (dto.AdminDashboardResponse, error)
	User(ctx context.Context) (dto.UserDashboardResponse, error)
}

type serviceImpl struct {
	rooms    gateway.RoomAPI
	bookings gateway.BookingAPI
	users    gateway.UserAPI
	session  session.Session
	cfg      *config.Config
	otel     otel.Otel
}

func New(
	rooms gateway.RoomAPI,
	bookings gateway.BookingAPI,
	users gateway.UserAPI,
	session session.Session,
	cfg *config.Config,
	otel otel.Otel,
) Dashboard {
	return &serviceImpl{
		rooms:    rooms,
		bookings: bookings,
		users:    users,
		session:  session,
		cfg:      cfg,
		otel:     otel,
	}
}

// Admin fetches rooms, bookings and users in parallel. Each failed fetch degrades
// its figures to zero instead of failing the dashboard.
func (s *serviceImpl) Admin(ctx context.Context) (res dto.AdminDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Admin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		rooms    []roomModel.Room
		bookings []bookingModel.Booking
		users    []userModel.User
		failed   = make([]bool, 3)
	)

	var g errgroup.Group

	g.Go(func() error {
		var fetchErr error
		if rooms, fetchErr = s.rooms.Rooms(ctx); fetchErr != nil {
			log.Warn().Err(fetchErr).Msg("dashboard rooms unavailable")

			failed[0] = true
		}

		return nil
	})

	g.Go(func() error {
		var fetchErr error
		if bookings, fetchErr = s.bookings.Bookings(ctx); fetchErr != nil {
			log.Warn().Err(fetchErr).Msg("dashboard bookings unavailable")

			failed[1] = true
		}

		return nil
	})

	g.Go(func() error {
		var fetchErr error
		if users, fetchErr = s.users.Users(ctx); fetchErr != nil {
			log.Warn().Err(fetchErr).Msg("dashboard users unavailable")

			failed[2] = true
		}

		return nil
	})

	_ = g.Wait()

	for i, name := range []string{"rooms", "bookings", "users"} {
		if failed[i] {
			res.Unavailable = append(res.Unavailable, name)
		}
	}

	today := calendar.Today()

	recent, _ := search.Apply(bookings, search.Criteria{
		Sort:      search.SortCreated,
		Direction: search.Desc,
		PageSize:  s.cfg.Search.RecentBookings,
	}, today)

	res.TotalRooms = len(rooms)
	res.TotalBookings = len(bookings)
	res.TotalUsers = len(users)
	res.Revenue = pricing.Revenue(bookings).StringFixed(2)
	res.Bookings = recent.Aggregates
	res.RecentBookings = bookingDto.FromModels(recent.Page.Items, today, s.cfg.App.PhoneRegions)

	return res, nil
}

// User shows the signed in guest's profile, booking counts and latest stays.
func (s *serviceImpl) User(ctx context.Context) (res dto.UserDashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".User")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.session.User(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get session user: %w", err)
	}

	var (
		profile  = current
		bookings []bookingModel.Booking
	)

	var g errgroup.Group

	g.Go(func() error {
		fetched, fetchErr := s.users.Profile(ctx)
		if fetchErr != nil {
			log.Warn().Err(fetchErr).Int64("user_id", current.ID).Msg("dashboard profile unavailable, using session copy")

			return nil
		}

		profile = fetched

		return nil
	})

	g.Go(func() error {
		var fetchErr error
		if bookings, fetchErr = s.users.UserBookings(ctx, current.ID); fetchErr != nil {
			log.Warn().Err(fetchErr).Int64("user_id", current.ID).Msg("dashboard bookings unavailable")
		}

		return nil
	})

	_ = g.Wait()

	today := calendar.Today()

	recent, _ := search.Apply(bookings, search.Criteria{
		Sort:      search.SortCheckIn,
		Direction: search.Desc,
		PageSize:  userRecentBookings,
	}, today)

	res.Profile.FromModel(profile, s.cfg.App.PhoneRegions)
	res.Bookings = recent.Aggregates
	res.RecentBookings = bookingDto.FromModels(recent.Page.Items, today, s.cfg.App.PhoneRegions)
	res.Empty = len(bookings) == 0

	return res, nil
}
