package user

import (
	"encoding/json"
	"hotelmanager/config"
	"hotelmanager/infras/otel"
	"hotelmanager/internal/domains/search"
	"hotelmanager/internal/domains/user/model/dto"
	"hotelmanager/internal/domains/user/service"
	"hotelmanager/shared"
	"hotelmanager/shared/constant"
	gDto "hotelmanager/shared/dto"
	"hotelmanager/shared/failure"
	"hotelmanager/transport/http/response"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.User, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/profile", handler.GetProfile)
	})
}

// AdminRouter mounts user management under the admin group.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/users", handler.GetUsers)
	router.Put("/users/{id}/role", handler.UpdateRole)
}

// GetProfile returns the signed in user.
// @Summary My profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse] "Profile"
// @Failure 401 {object} response.Error
// @Router /v1/users/profile [get]
// @Security SessionID
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	profile, err := handler.service.Profile(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, profile)
}

// GetUsers lists every account.
// @Summary All users
// @Tags Admin
// @Produce json
// @Param search query string false "Name or email"
// @Param role query string false "USER or ADMIN"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Data[dto.GetUsersResponse] "Users page"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/users [get]
// @Security SessionID
func (handler *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, handler.cfg.Search.UserPageSize)

	criteria, err := search.UserCriteriaFromQuery(queryParams)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	users, err := handler.service.GetAll(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, users)
}

// UpdateRole sets or toggles a user's role.
// @Summary Change a user's role
// @Description An empty body toggles between USER and ADMIN.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateRoleRequest false "New role"
// @Success 200 {object} response.Data[dto.UserResponse] "Updated user"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/users/{id}/role [put]
// @Security SessionID
func (handler *Handler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRole")
	defer scope.End()

	id, err := shared.ParseIDParam(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UpdateRoleRequest{}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	if len(strings.TrimSpace(string(body))) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			response.WithError(w, failure.BadRequestFromString("invalid request body"))

			return
		}
	}

	req.Role = strings.ToUpper(strings.TrimSpace(req.Role))

	user, err := handler.service.UpdateRole(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("user_id", id).Msg("failed to update role")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User role updated to " + user.Role)

	response.WithJSON(w, http.StatusOK, user)
}
