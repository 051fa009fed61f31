package shared_test

import (
	"context"
	"errors"
	"hotelmanager/shared"
	"hotelmanager/shared/cache/mocks"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{name: "empty set still has one page", total: 0, limit: 6, want: 1},
		{name: "exact fit", total: 12, limit: 6, want: 2},
		{name: "partial last page", total: 13, limit: 6, want: 3},
		{name: "zero limit", total: 13, limit: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "rooms:all", shared.BuildCacheKey("rooms", "all"))
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "rooms", shared.BuildCacheKey("rooms"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	first := shared.BuildCacheKeyWithQuery("rooms:available", url.Values{"roomType": {"Suite"}, "checkInDate": {"2024-01-01"}})
	second := shared.BuildCacheKeyWithQuery("rooms:available", url.Values{"checkInDate": {"2024-01-01"}, "roomType": {"Suite"}})
	other := shared.BuildCacheKeyWithQuery("rooms:available", url.Values{"roomType": {"Single"}})

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.Contains(t, first, "rooms:available:")
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "rooms:*").Return(nil)
	shared.InvalidateCaches(context.Background(), redisCache, "rooms:")

	redisCache.EXPECT().Clear(gomock.Any(), "bookings:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), redisCache, "bookings:")
}

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{name: "numeric", value: "42", want: 42},
		{name: "zero", value: "0", wantErr: true},
		{name: "negative", value: "-3", wantErr: true},
		{name: "text", value: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			routeCtx := chi.NewRouteContext()
			routeCtx.URLParams.Add("id", tt.value)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

			got, err := shared.ParseIDParam(req, "id")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDecimal(t *testing.T) {
	amount, ok := shared.ParseDecimal(" 149.99 ")
	assert.True(t, ok)
	assert.True(t, amount.Equal(decimal.RequireFromString("149.99")))

	_, ok = shared.ParseDecimal("")
	assert.False(t, ok)

	_, ok = shared.ParseDecimal("cheap")
	assert.False(t, ok)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Single", "Double Suite"}, shared.SplitList("Single, ,Double Suite,"))
	assert.Nil(t, shared.SplitList(""))
}
