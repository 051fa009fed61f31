package middleware_test

import (
	"context"
	"hotelmanager/infras/otel/mocks"
	"hotelmanager/internal/domains/session"
	sessionMocks "hotelmanager/internal/domains/session/mocks"
	"hotelmanager/permissions"
	"hotelmanager/shared/constant"
	"hotelmanager/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPermissions = `{
	"endpoints": [
		{"path": "/v1/rooms/{id}", "method": "GET", "skip": true},
		{"path": "/v1/bookings/mine", "method": "GET", "permissions": ["USER", "ADMIN"]},
		{"path": "/v1/admin/users", "method": "GET", "permissions": ["ADMIN"]}
	]
}`

func newAccessRouter(t *testing.T, sess session.Session) http.Handler {
	t.Helper()

	data, err := permissions.Parse([]byte(testPermissions))
	require.NoError(t, err)

	access := middleware.NewAccessMiddleware(sess, mocks.NewOtel(), data)

	router := chi.NewRouter()
	router.Use(access.Session, access.RBAC)
	router.Route("/v1", func(r chi.Router) {
		r.Get("/rooms/{id}", okHandler().ServeHTTP)
		r.Get("/bookings/mine", okHandler().ServeHTTP)
		r.Get("/admin/users", okHandler().ServeHTTP)
	})

	return router
}

func TestAccess_RBAC(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		sessionID  string
		role       string
		wantStatus int
	}{
		{name: "public route without session", path: "/v1/rooms/3", wantStatus: http.StatusNoContent},
		{name: "guest route without session", path: "/v1/bookings/mine", wantStatus: http.StatusUnauthorized},
		{name: "guest route as user", path: "/v1/bookings/mine", sessionID: "s1", role: "USER", wantStatus: http.StatusNoContent},
		{name: "admin route as user", path: "/v1/admin/users", sessionID: "s1", role: "USER", wantStatus: http.StatusForbidden},
		{name: "admin route as admin", path: "/v1/admin/users", sessionID: "s2", role: "ADMIN", wantStatus: http.StatusNoContent},
		{name: "expired session", path: "/v1/admin/users", sessionID: "s3", role: "", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := sessionMocks.NewMockSession(gomock.NewController(t))
			if tt.sessionID != "" {
				sess.EXPECT().Role(gomock.Any()).DoAndReturn(func(ctx context.Context) string {
					assert.Equal(t, tt.sessionID, session.IDFromContext(ctx))

					return tt.role
				})
			}

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.sessionID != "" {
				req.Header.Set("X-Session-ID", tt.sessionID)
			}

			rec := httptest.NewRecorder()
			newAccessRouter(t, sess).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAccess_SessionRole(t *testing.T) {
	sess := sessionMocks.NewMockSession(gomock.NewController(t))
	sess.EXPECT().Role(gomock.Any()).Return("ADMIN")

	access := middleware.NewAccessMiddleware(sess, mocks.NewOtel(), &permissions.PermissionData{Skip: true})

	var role, id string
	handler := access.Session(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		role, _ = r.Context().Value(constant.ContextKeyUserRole).(string)
		id = session.IDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	req.Header.Set("X-Session-ID", "abc")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "ADMIN", role)
	assert.Equal(t, "abc", id)
}

func TestAccess_MissingPermissions(t *testing.T) {
	access := middleware.NewAccessMiddleware(nil, mocks.NewOtel(), nil)

	rec := httptest.NewRecorder()
	access.RBAC(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
