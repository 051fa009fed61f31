package dashboard_test

import (
	"errors"
	"hotelmanager/infras/otel/mocks"
	dashboardMocks "hotelmanager/internal/domains/dashboard/mocks"
	"hotelmanager/internal/domains/dashboard/model/dto"
	"hotelmanager/internal/handlers/dashboard"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (http.Handler, *dashboardMocks.MockDashboard) {
	t.Helper()

	svc := dashboardMocks.NewMockDashboard(gomock.NewController(t))
	handler := dashboard.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)
	router.Route("/admin", handler.AdminRouter)

	return router, svc
}

func TestHandler_GetAdminDashboard(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Admin(gomock.Any()).Return(dto.AdminDashboardResponse{TotalRooms: 4, Revenue: "1100.00", Unavailable: []string{"users"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"1100.00"`)
}

func TestHandler_GetUserDashboard(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().User(gomock.Any()).Return(dto.UserDashboardResponse{Empty: true}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unexpected error is masked", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().User(gomock.Any()).Return(dto.UserDashboardResponse{}, errors.New("redis: connection refused"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	})
}
