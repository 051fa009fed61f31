package booking_test

import (
	"encoding/json"
	"hotelmanager/config"
	"hotelmanager/infras/otel/mocks"
	bookingMocks "hotelmanager/internal/domains/booking/mocks"
	"hotelmanager/internal/domains/booking/model/dto"
	"hotelmanager/internal/domains/pricing"
	"hotelmanager/internal/domains/search"
	"hotelmanager/internal/handlers/booking"
	"hotelmanager/shared/failure"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *bookingMocks.MockBooking) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBooking(ctrl)

	cfg := &config.Config{}
	cfg.Search.BookingPageSize = 10

	handler := booking.New(svc, cfg, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	router.Route("/admin", handler.AdminRouter)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreateBooking(t *testing.T) {
	checkIn := time.Now().AddDate(0, 0, 3).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 5).Format("2006-01-02")

	t.Run("booked", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Book(gomock.Any(), dto.BookRequest{
			RoomID: 2, CheckInDate: checkIn, CheckOutDate: checkOut, NumOfAdults: 2,
		}).Return(dto.BookResponse{BookingConfirmationCode: "AB12CD34EF"}, nil)

		rec := serve(router, http.MethodPost, "/bookings/",
			`{"roomId":2,"checkInDate":"`+checkIn+`","checkOutDate":"`+checkOut+`","numOfAdults":2}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "AB12CD34EF")
	})

	t.Run("missing room", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodPost, "/bookings/",
			`{"checkInDate":"`+checkIn+`","checkOutDate":"`+checkOut+`","numOfAdults":2}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("room taken", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Book(gomock.Any(), gomock.Any()).Return(dto.BookResponse{}, failure.Conflict("room is not available for the selected dates"))

		rec := serve(router, http.MethodPost, "/bookings/",
			`{"roomId":2,"checkInDate":"`+checkIn+`","checkOutDate":"`+checkOut+`","numOfAdults":1}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestHandler_GetQuote(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMock  func(svc *bookingMocks.MockBooking)
		wantStatus int
	}{
		{
			name:  "priced",
			query: "roomId=5&checkIn=2024-06-01&checkOut=2024-06-03",
			setupMock: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().Quote(gomock.Any(), dto.QuoteRequest{RoomID: 5, CheckInDate: "2024-06-01", CheckOutDate: "2024-06-03"}).
					Return(pricing.BreakdownResponse{Nights: 2, Total: "231.00"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "room id not a number",
			query:      "roomId=five&checkIn=2024-06-01&checkOut=2024-06-03",
			setupMock:  func(_ *bookingMocks.MockBooking) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "inverted dates",
			query: "roomId=5&checkIn=2024-06-03&checkOut=2024-06-01",
			setupMock: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(pricing.BreakdownResponse{}, failure.InvalidDateRange)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setupMock(svc)

			rec := serve(router, http.MethodGet, "/bookings/quote?"+tt.query, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Listings(t *testing.T) {
	t.Run("mine uses booking page size", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Mine(gomock.Any(), gomock.Cond(func(c search.Criteria) bool {
			return c.Status == search.StatusUpcoming && c.PageSize == 10 && c.Page == 2
		})).Return(dto.GetBookingsResponse{}, nil)

		rec := serve(router, http.MethodGet, "/bookings/mine?status=upcoming&page=2", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin listing with quick filter", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().All(gomock.Any(), gomock.Cond(func(c search.Criteria) bool {
			return c.QuickFilter == search.QuickWeek
		})).Return(dto.GetBookingsResponse{}, nil)

		rec := serve(router, http.MethodGet, "/admin/bookings?quick=week", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := serve(router, http.MethodGet, "/admin/bookings?status=lost", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetBookingByCode(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().ByCode(gomock.Any(), "AB12CD34EF").Return(dto.BookingResponse{ID: 9}, nil)

	rec := serve(router, http.MethodGet, "/bookings/code/AB12CD34EF", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.BookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(9), body.Data.ID)
}

func TestHandler_GetConfirmation(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Confirmation(gomock.Any(), "AB12CD34EF").Return([]byte("%PDF-1.3"), nil)

	rec := serve(router, http.MethodGet, "/bookings/code/AB12CD34EF/confirmation.pdf", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "booking-AB12CD34EF.pdf")
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Cancel(gomock.Any(), int64(12)).Return(nil)

		rec := serve(router, http.MethodDelete, "/bookings/12", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("already started", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Cancel(gomock.Any(), int64(12)).Return(failure.Conflict("only upcoming bookings can be cancelled"))

		rec := serve(router, http.MethodDelete, "/bookings/12", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error":"only upcoming bookings can be cancelled"}`, rec.Body.String())
	})
}
