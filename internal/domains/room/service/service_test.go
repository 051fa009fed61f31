package service_test

import (
	"context"
	"errors"
	"hotelmanager/config"
	"hotelmanager/infras/gateway"
	gatewayMocks "hotelmanager/infras/gateway/mocks"
	"hotelmanager/infras/otel/mocks"
	"hotelmanager/internal/domains/room/model"
	"hotelmanager/internal/domains/room/model/dto"
	"hotelmanager/internal/domains/room/service"
	"hotelmanager/internal/domains/search"
	cacheMocks "hotelmanager/shared/cache/mocks"
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/failure"
	"hotelmanager/shared/money"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errCacheMiss = errors.New("cache miss")

func room(id int64, roomType, price, description string) model.Room {
	return model.Room{
		ID:              id,
		RoomType:        roomType,
		RoomPrice:       money.FromString(price),
		RoomDescription: description,
	}
}

func fixtures() []model.Room {
	return []model.Room{
		room(1, "Single", "80", "Cosy single by the garden"),
		room(2, "Deluxe Suite", "250", "Sea view with balcony"),
		room(3, "Double", "120", "Two queen beds"),
		room(4, "Deluxe Double", "180", "Corner room"),
		room(5, "Single", "75.50", "Quiet courtyard"),
	}
}

func newService(t *testing.T) (service.Room, *gatewayMocks.MockRoomAPI, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := gatewayMocks.NewMockRoomAPI(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	calendar.SetLocation(time.UTC)

	return service.New(api, cfg, redisCache, mocks.NewOtel()), api, redisCache
}

func TestRoomService_Browse(t *testing.T) {
	tests := []struct {
		name      string
		criteria  search.Criteria
		wantIDs   []int64
		wantPages int
		wantEmpty bool
	}{
		{
			name:      "search is case insensitive",
			criteria:  search.Criteria{Search: "deluxe", PageSize: 6},
			wantIDs:   []int64{2, 4},
			wantPages: 1,
		},
		{
			name: "price range and sort",
			criteria: search.Criteria{
				PriceRange: search.PriceRange{Min: decimal.NewNullDecimal(decimal.NewFromInt(76)), Max: decimal.NewNullDecimal(decimal.NewFromInt(180))},
				Sort:       search.SortPrice,
				Direction:  search.Desc,
				PageSize:   6,
			},
			wantIDs:   []int64{4, 3, 1},
			wantPages: 1,
		},
		{
			name:      "second page",
			criteria:  search.Criteria{Page: 2, PageSize: 2},
			wantIDs:   []int64{3, 4},
			wantPages: 3,
		},
		{
			name:      "page out of range serves the first page",
			criteria:  search.Criteria{Page: 9, PageSize: 2},
			wantIDs:   []int64{1, 2},
			wantPages: 3,
		},
		{
			name:      "no results",
			criteria:  search.Criteria{RoomTypes: []string{"Penthouse"}, PageSize: 6},
			wantIDs:   []int64{},
			wantPages: 1,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api, redisCache := newService(t)

			redisCache.EXPECT().Get(gomock.Any(), "room:snapshot", gomock.Any()).Return(errCacheMiss)
			api.EXPECT().Rooms(gomock.Any()).Return(fixtures(), nil)
			redisCache.EXPECT().Save(gomock.Any(), "room:snapshot", gomock.Any(), 3600).Return(nil).AnyTimes()

			res, err := svc.Browse(context.Background(), tt.criteria)
			time.Sleep(10 * time.Millisecond)

			require.NoError(t, err)

			ids := make([]int64, 0, len(res.Rooms))
			for _, r := range res.Rooms {
				ids = append(ids, r.ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.wantPages, res.Pagination.TotalPages)
			assert.Equal(t, tt.wantEmpty, res.Empty)
		})
	}
}

func TestRoomService_SnapshotCacheHit(t *testing.T) {
	svc, _, redisCache := newService(t)

	redisCache.EXPECT().Get(gomock.Any(), "room:snapshot", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			*(value.(*[]model.Room)) = fixtures()[:2]

			return nil
		})

	rooms, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Len(t, rooms, 2)
}

func TestRoomService_SnapshotBackendError(t *testing.T) {
	svc, api, redisCache := newService(t)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
	api.EXPECT().Rooms(gomock.Any()).Return(nil, failure.BadGateway("backend unavailable"))

	_, err := svc.Snapshot(context.Background())

	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, failure.GetCode(err))
}

func TestRoomService_Estimate(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.EstimateRequest
		wantTotal string
		wantCode  int
	}{
		{name: "three nights", req: dto.EstimateRequest{CheckInDate: "2024-01-01", CheckOutDate: "2024-01-04"}, wantTotal: "315.00"},
		{name: "same day", req: dto.EstimateRequest{CheckInDate: "2024-01-01", CheckOutDate: "2024-01-01"}, wantCode: http.StatusBadRequest},
		{name: "reversed", req: dto.EstimateRequest{CheckInDate: "2024-01-05", CheckOutDate: "2024-01-01"}, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api, redisCache := newService(t)

			redisCache.EXPECT().Get(gomock.Any(), "room:get:7", gomock.Any()).Return(errCacheMiss)
			api.EXPECT().Room(gomock.Any(), int64(7)).Return(room(7, "Double", "100", "Standard double"), nil)
			redisCache.EXPECT().Save(gomock.Any(), "room:get:7", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			res, err := svc.Estimate(context.Background(), 7, tt.req)
			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 3, res.Nights)
			assert.Equal(t, "300.00", res.Subtotal)
			assert.Equal(t, "15.00", res.ServiceFee)
			assert.Empty(t, res.Taxes)
			assert.Equal(t, tt.wantTotal, res.Total)
		})
	}
}

func TestRoomService_EstimateMalformedDate(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Estimate(context.Background(), 7, dto.EstimateRequest{CheckInDate: "01/01/2024", CheckOutDate: "2024-01-04"})

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestRoomService_Available(t *testing.T) {
	t.Run("no dates lists every free room", func(t *testing.T) {
		svc, api, _ := newService(t)

		api.EXPECT().AvailableRooms(gomock.Any()).Return(fixtures()[:3], nil)

		rooms, err := svc.Available(context.Background(), dto.AvailabilityRequest{})

		require.NoError(t, err)
		assert.Len(t, rooms, 3)
	})

	t.Run("dates and type make one call", func(t *testing.T) {
		svc, api, _ := newService(t)

		api.EXPECT().AvailableRoomsByDateAndType(gomock.Any(), "2024-03-10", "2024-03-12", "Single").
			Return([]model.Room{fixtures()[0]}, nil)

		rooms, err := svc.Available(context.Background(), dto.AvailabilityRequest{
			CheckInDate: "2024-03-10", CheckOutDate: "2024-03-12", RoomType: "Single",
		})

		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "80.00", rooms[0].RoomPrice)
	})

	t.Run("dates only fan out over types and tolerate failures", func(t *testing.T) {
		svc, api, redisCache := newService(t)
		all := fixtures()

		redisCache.EXPECT().Get(gomock.Any(), "room:types", gomock.Any()).Return(errCacheMiss)
		api.EXPECT().RoomTypes(gomock.Any()).Return([]string{"Single", "Double", "Deluxe Suite"}, nil)
		redisCache.EXPECT().Save(gomock.Any(), "room:types", gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		api.EXPECT().AvailableRoomsByDateAndType(gomock.Any(), "2024-03-10", "2024-03-12", "Single").
			Return([]model.Room{all[4], all[0]}, nil)
		api.EXPECT().AvailableRoomsByDateAndType(gomock.Any(), "2024-03-10", "2024-03-12", "Double").
			Return(nil, failure.BadGateway("timeout"))
		api.EXPECT().AvailableRoomsByDateAndType(gomock.Any(), "2024-03-10", "2024-03-12", "Deluxe Suite").
			Return([]model.Room{all[1]}, nil)

		rooms, err := svc.Available(context.Background(), dto.AvailabilityRequest{CheckInDate: "2024-03-10", CheckOutDate: "2024-03-12"})
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)

		ids := make([]int64, 0, len(rooms))
		for _, r := range rooms {
			ids = append(ids, r.ID)
		}

		assert.Equal(t, []int64{1, 2, 5}, ids)
	})

	t.Run("one date only", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Available(context.Background(), dto.AvailabilityRequest{CheckInDate: "2024-03-10"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("reversed dates", func(t *testing.T) {
		svc, _, _ := newService(t)

		_, err := svc.Available(context.Background(), dto.AvailabilityRequest{CheckInDate: "2024-03-12", CheckOutDate: "2024-03-10"})

		assert.ErrorIs(t, err, failure.InvalidDateRange)
	})
}

func TestRoomService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func(api *gatewayMocks.MockRoomAPI, redisCache *cacheMocks.MockRedisCache)
		wantCode  int
	}{
		{
			name: "missing photo",
			req: dto.CreateRoomRequest{
				RoomType:        "Suite",
				RoomPrice:       decimal.NewFromInt(200),
				RoomDescription: "Top floor",
			},
			setupMock: func(_ *gatewayMocks.MockRoomAPI, _ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "zero price",
			req: dto.CreateRoomRequest{
				RoomType:        "Suite",
				RoomDescription: "Top floor",
			},
			setupMock: func(_ *gatewayMocks.MockRoomAPI, _ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "missing type",
			req: dto.CreateRoomRequest{
				RoomPrice:       decimal.NewFromInt(200),
				RoomDescription: "Top floor",
			},
			setupMock: func(_ *gatewayMocks.MockRoomAPI, _ *cacheMocks.MockRedisCache) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api, redisCache := newService(t)
			tt.setupMock(api, redisCache)

			err := svc.Create(context.Background(), tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestRoomService_Update(t *testing.T) {
	t.Run("price only", func(t *testing.T) {
		svc, api, redisCache := newService(t)
		price := decimal.RequireFromString("145.5")

		api.EXPECT().UpdateRoom(gomock.Any(), int64(3), gateway.RoomForm{RoomPrice: "145.5"}).Return(nil)
		redisCache.EXPECT().Clear(gomock.Any(), "room*").Return(nil).AnyTimes()

		err := svc.Update(context.Background(), 3, dto.UpdateRoomRequest{RoomPrice: &price})
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})

	t.Run("nothing to update", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Update(context.Background(), 3, dto.UpdateRoomRequest{})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("negative price", func(t *testing.T) {
		svc, _, _ := newService(t)
		price := decimal.NewFromInt(-5)

		err := svc.Update(context.Background(), 3, dto.UpdateRoomRequest{RoomPrice: &price})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("invalidates the snapshot", func(t *testing.T) {
		svc, api, redisCache := newService(t)

		api.EXPECT().DeleteRoom(gomock.Any(), int64(4)).Return(nil)
		redisCache.EXPECT().Clear(gomock.Any(), "room*").Return(nil).Times(1)

		require.NoError(t, svc.Delete(context.Background(), 4))
		time.Sleep(10 * time.Millisecond)
	})

	t.Run("backend refuses", func(t *testing.T) {
		svc, api, _ := newService(t)

		api.EXPECT().DeleteRoom(gomock.Any(), int64(4)).Return(failure.FromStatus(http.StatusNotFound, "Room Not Found"))

		err := svc.Delete(context.Background(), 4)

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
