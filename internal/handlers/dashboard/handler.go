package dashboard

import (
	"hotelmanager/infras/otel"
	"hotelmanager/internal/domains/dashboard/service"
	"hotelmanager/shared/constant"
	"hotelmanager/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUserDashboard)
	})
}

func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/dashboard", handler.GetAdminDashboard)
}

// GetUserDashboard summarises the signed in user's bookings.
// @Summary My dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[dto.UserDashboardResponse] "Dashboard"
// @Failure 401 {object} response.Error
// @Router /v1/dashboard [get]
// @Security SessionID
func (handler *Handler) GetUserDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserDashboard")
	defer scope.End()

	dashboard, err := handler.service.User(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build user dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dashboard)
}

// GetAdminDashboard joins rooms, bookings and users into the admin overview.
// @Summary Admin dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.AdminDashboardResponse] "Dashboard"
// @Failure 403 {object} response.Error
// @Router /v1/admin/dashboard [get]
// @Security SessionID
func (handler *Handler) GetAdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdminDashboard")
	defer scope.End()

	dashboard, err := handler.service.Admin(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build admin dashboard")

		response.WithError(w, err)

		return
	}

	if len(dashboard.Unavailable) > 0 {
		scope.SetAttribute("dashboard.unavailable", dashboard.Unavailable)
	}

	response.WithJSON(w, http.StatusOK, dashboard)
}
