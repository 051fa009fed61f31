package room_test

import (
	"bytes"
	"context"
	"encoding/json"
	"hotelmanager/config"
	"hotelmanager/infras/otel/mocks"
	"hotelmanager/internal/domains/pricing"
	roomMocks "hotelmanager/internal/domains/room/mocks"
	"hotelmanager/internal/domains/room/model/dto"
	"hotelmanager/internal/domains/search"
	"hotelmanager/internal/handlers/room"
	"hotelmanager/shared/failure"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := roomMocks.NewMockRoom(ctrl)

	cfg := &config.Config{}
	cfg.Search.RoomPageSize = 6

	handler := room.New(svc, cfg, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	router.Route("/admin", handler.AdminRouter)

	return router, svc
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestHandler_GetRooms(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(svc *roomMocks.MockRoom)
		wantStatus int
		wantError  string
	}{
		{
			name:  "criteria from query",
			query: "?search=sea&type=Suite&minPrice=100&sort=price&dir=desc",
			setupMock: func(svc *roomMocks.MockRoom) {
				svc.EXPECT().Browse(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, criteria search.Criteria) (dto.GetRoomsResponse, error) {
						assert.Equal(t, "sea", criteria.Search)
						assert.Equal(t, []string{"Suite"}, criteria.RoomTypes)
						assert.True(t, criteria.PriceRange.Min.Decimal.Equal(decimal.NewFromInt(100)))
						assert.Equal(t, search.SortPrice, criteria.Sort)
						assert.Equal(t, search.Desc, criteria.Direction)
						assert.Equal(t, 6, criteria.PageSize)

						return dto.GetRoomsResponse{}, nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unreadable date",
			query:      "?startDate=yesterday",
			setupMock:  func(_ *roomMocks.MockRoom) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "startDate must be a date in YYYY-MM-DD format",
		},
		{
			name:  "backend down",
			query: "",
			setupMock: func(svc *roomMocks.MockRoom) {
				svc.EXPECT().Browse(gomock.Any(), gomock.Any()).Return(dto.GetRoomsResponse{}, failure.BadGateway("backend unavailable"))
			},
			wantStatus: http.StatusBadGateway,
			wantError:  "backend unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorBody(t, rec))
			}
		})
	}
}

func TestHandler_GetRoomByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Get(gomock.Any(), int64(7)).Return(dto.RoomResponse{}, failure.NotFound("room not found"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/7", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "room not found", errorBody(t, rec))
	})

	t.Run("found", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Get(gomock.Any(), int64(7)).Return(dto.RoomResponse{ID: 7, RoomType: "Suite"}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/7", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Suite"`)
	})
}

func TestHandler_GetEstimate(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Estimate(gomock.Any(), int64(3), dto.EstimateRequest{CheckInDate: "2024-05-01", CheckOutDate: "2024-05-04"}).
		Return(pricing.BreakdownResponse{Nights: 3, Total: "300.00"}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms/3/estimate?checkIn=2024-05-01&checkOut=2024-05-04", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":"300.00"`)
}

func TestHandler_CreateRoom(t *testing.T) {
	form := func(t *testing.T, price string) (*bytes.Buffer, string) {
		t.Helper()

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("roomType", " Suite "))
		require.NoError(t, writer.WriteField("roomPrice", price))
		require.NoError(t, writer.WriteField("roomDescription", "Sea view"))

		part, err := writer.CreateFormFile("photo", "suite.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("\x89PNG\r\n\x1a\n"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		return body, writer.FormDataContentType()
	}

	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.CreateRoomRequest) error {
			assert.Equal(t, "Suite", req.RoomType)
			assert.True(t, req.RoomPrice.Equal(decimal.RequireFromString("180.50")))
			require.NotNil(t, req.Photo)
			assert.Equal(t, "suite.png", req.Photo.Filename)

			return nil
		})

		body, contentType := form(t, "180.50")
		req := httptest.NewRequest(http.MethodPost, "/admin/rooms", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("price is not a number", func(t *testing.T) {
		router, _ := newRouter(t)

		body, contentType := form(t, "cheap")
		req := httptest.NewRequest(http.MethodPost, "/admin/rooms", body)
		req.Header.Set("Content-Type", contentType)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "roomPrice must be a number", errorBody(t, rec))
	})
}

func TestHandler_DeleteRoom(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Delete(gomock.Any(), int64(4)).Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/rooms/4", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Room deleted successfully"}`, rec.Body.String())
}
