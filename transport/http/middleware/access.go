package middleware

import (
	"context"
	"hotelmanager/infras/otel"
	"hotelmanager/internal/domains/session"
	"hotelmanager/permissions"
	"hotelmanager/shared/constant"
	"hotelmanager/shared/failure"
	"hotelmanager/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Access resolves the caller's session and enforces the role table.
type Access interface {
	Session(next http.Handler) http.Handler
	RBAC(next http.Handler) http.Handler
}

type accessImpl struct {
	session    session.Session
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAccessMiddleware(sess session.Session, otel otel.Otel, permission *permissions.PermissionData) Access {
	return &accessImpl{
		session:    sess,
		otel:       otel,
		permission: permission,
	}
}

// Session binds the X-Session-ID header to the request context together with the
// session's role. Requests without the header stay anonymous.
func (m *accessImpl) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		id := request.Header.Get(constant.RequestHeaderSessionID)
		if id == "" {
			next.ServeHTTP(writer, request)

			return
		}

		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "session.middleware")

		ctx = session.WithID(ctx, id)
		if role := m.session.Role(ctx); role != "" {
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, role)
			scope.SetAttribute("user_role", role)
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the caller's role against permissions.json. Routes not listed there,
// or marked skip, are open.
func (m *accessImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		if m.permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		path := routePattern(request)
		permission := m.permission.FindPermissions(path, request.Method)

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !permission.Allows(userRole) {
			var err error = failure.ForbiddenError
			if userRole == "" {
				err = failure.LoginRequired
			}

			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"http.route":    path,
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
		return pattern
	}

	return request.URL.Path
}
