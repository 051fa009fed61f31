package service_test

import (
	"context"
	"hotelmanager/config"
	gatewayMocks "hotelmanager/infras/gateway/mocks"
	"hotelmanager/infras/otel/mocks"
	bookingModel "hotelmanager/internal/domains/booking/model"
	"hotelmanager/internal/domains/dashboard/service"
	roomModel "hotelmanager/internal/domains/room/model"
	sessionMocks "hotelmanager/internal/domains/session/mocks"
	userModel "hotelmanager/internal/domains/user/model"
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/failure"
	"hotelmanager/shared/money"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	rooms    *gatewayMocks.MockRoomAPI
	bookings *gatewayMocks.MockBookingAPI
	users    *gatewayMocks.MockUserAPI
	session  *sessionMocks.MockSession
}

func newService(t *testing.T) (service.Dashboard, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		rooms:    gatewayMocks.NewMockRoomAPI(ctrl),
		bookings: gatewayMocks.NewMockBookingAPI(ctrl),
		users:    gatewayMocks.NewMockUserAPI(ctrl),
		session:  sessionMocks.NewMockSession(ctrl),
	}

	cfg := &config.Config{}
	cfg.Search.RecentBookings = 5

	calendar.SetLocation(time.UTC)

	return service.New(d.rooms, d.bookings, d.users, d.session, cfg, mocks.NewOtel()), d
}

func bookings() []bookingModel.Booking {
	today := calendar.Today()
	room := roomModel.Room{ID: 1, RoomType: "Single", RoomPrice: money.FromString("100")}

	stay := func(id int64, from, to int, status string) bookingModel.Booking {
		return bookingModel.Booking{
			ID:           id,
			CheckInDate:  today.AddDays(from),
			CheckOutDate: today.AddDays(to),
			NumOfAdults:  1,
			Status:       status,
			Room:         room,
		}
	}

	return []bookingModel.Booking{
		stay(1, -5, -3, ""),
		stay(2, -1, 1, ""),
		stay(3, 2, 5, ""),
		stay(4, 4, 6, "cancelled"),
		stay(5, 7, 8, ""),
		stay(6, 9, 10, ""),
		{ID: 7, Room: room},
	}
}

func TestDashboardService_Admin(t *testing.T) {
	t.Run("joins every listing", func(t *testing.T) {
		svc, d := newService(t)

		d.rooms.EXPECT().Rooms(gomock.Any()).Return(make([]roomModel.Room, 4), nil)
		d.bookings.EXPECT().Bookings(gomock.Any()).Return(bookings(), nil)
		d.users.EXPECT().Users(gomock.Any()).Return(make([]userModel.User, 3), nil)

		res, err := svc.Admin(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 4, res.TotalRooms)
		assert.Equal(t, 7, res.TotalBookings)
		assert.Equal(t, 3, res.TotalUsers)
		assert.Equal(t, "1100.00", res.Revenue)
		assert.Equal(t, 7, res.Bookings.Total)
		assert.Equal(t, 1, res.Bookings.Cancelled)
		assert.Empty(t, res.Unavailable)

		require.Len(t, res.RecentBookings, 5)
		assert.Equal(t, int64(7), res.RecentBookings[0].ID)
		assert.Equal(t, int64(3), res.RecentBookings[4].ID)
	})

	t.Run("failed fetches degrade to zero", func(t *testing.T) {
		svc, d := newService(t)

		d.rooms.EXPECT().Rooms(gomock.Any()).Return(nil, failure.BadGateway("backend unavailable"))
		d.bookings.EXPECT().Bookings(gomock.Any()).Return(nil, failure.BadGateway("backend unavailable"))
		d.users.EXPECT().Users(gomock.Any()).Return(make([]userModel.User, 2), nil)

		res, err := svc.Admin(context.Background())

		require.NoError(t, err)
		assert.Zero(t, res.TotalRooms)
		assert.Zero(t, res.TotalBookings)
		assert.Equal(t, 2, res.TotalUsers)
		assert.Equal(t, "0.00", res.Revenue)
		assert.Empty(t, res.RecentBookings)
		assert.Equal(t, []string{"rooms", "bookings"}, res.Unavailable)
	})
}

func TestDashboardService_User(t *testing.T) {
	t.Run("profile counts and latest stays", func(t *testing.T) {
		svc, d := newService(t)

		d.session.EXPECT().User(gomock.Any()).Return(userModel.User{ID: 7, Name: "Ann"}, nil)
		d.users.EXPECT().Profile(gomock.Any()).Return(userModel.User{ID: 7, Name: "Ann Lee"}, nil)
		d.users.EXPECT().UserBookings(gomock.Any(), int64(7)).Return(bookings()[:6], nil)

		res, err := svc.User(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Ann Lee", res.Profile.Name)
		assert.Equal(t, 6, res.Bookings.Total)
		assert.Equal(t, 1, res.Bookings.Active)
		assert.Equal(t, 3, res.Bookings.Upcoming)
		assert.Equal(t, 1, res.Bookings.Completed)
		require.Len(t, res.RecentBookings, 3)
		assert.Equal(t, int64(6), res.RecentBookings[0].ID)
		assert.False(t, res.Empty)
	})

	t.Run("profile failure keeps the session copy", func(t *testing.T) {
		svc, d := newService(t)

		d.session.EXPECT().User(gomock.Any()).Return(userModel.User{ID: 7, Name: "Ann"}, nil)
		d.users.EXPECT().Profile(gomock.Any()).Return(userModel.User{}, failure.BadGateway("backend unavailable"))
		d.users.EXPECT().UserBookings(gomock.Any(), int64(7)).Return(nil, failure.BadGateway("backend unavailable"))

		res, err := svc.User(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "Ann", res.Profile.Name)
		assert.True(t, res.Empty)
		assert.Empty(t, res.RecentBookings)
	})

	t.Run("logged out", func(t *testing.T) {
		svc, d := newService(t)

		d.session.EXPECT().User(gomock.Any()).Return(userModel.User{}, failure.LoginRequired)

		_, err := svc.User(context.Background())

		assert.ErrorIs(t, err, failure.LoginRequired)
	})
}
