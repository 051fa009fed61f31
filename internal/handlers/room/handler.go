package room

import (
	"hotelmanager/config"
	"hotelmanager/infras/otel"
	"hotelmanager/internal/domains/room/model"
	"hotelmanager/internal/domains/room/model/dto"
	"hotelmanager/internal/domains/room/service"
	"hotelmanager/internal/domains/search"
	"hotelmanager/shared"
	"hotelmanager/shared/constant"
	gDto "hotelmanager/shared/dto"
	"hotelmanager/shared/failure"
	"hotelmanager/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Room, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/types", handler.GetRoomTypes)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/{id}", handler.GetRoomByID)
		routerGroup.Get("/{id}/estimate", handler.GetEstimate)
	})
}

// AdminRouter mounts room management under the admin group.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/rooms", handler.GetRooms)
	router.Post("/rooms", handler.CreateRoom)
	router.Put("/rooms/{id}", handler.UpdateRoom)
	router.Delete("/rooms/{id}", handler.DeleteRoom)
}

// GetRooms browses the room snapshot.
// @Summary Browse rooms
// @Description Search, filter, sort and paginate rooms. Aggregates count rooms per type.
// @Tags Room
// @Produce json
// @Param pagination query gDto.QueryParams false "Listing parameters"
// @Success 200 {object} response.Data[dto.GetRoomsResponse] "Rooms page"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms [get]
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, handler.cfg.Search.RoomPageSize)

	criteria, err := search.CriteriaFromQuery(queryParams)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rooms, err := handler.service.Browse(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to browse rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomTypes lists the distinct room types.
// @Summary Room types
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[[]string] "Room types"
// @Failure 502 {object} response.Error
// @Router /v1/rooms/types [get]
func (handler *Handler) GetRoomTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomTypes")
	defer scope.End()

	types, err := handler.service.Types(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room types")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, types)
}

// GetAvailableRooms searches availability.
// @Summary Available rooms
// @Description Without dates lists every currently available room. With dates and no type every type is searched.
// @Tags Room
// @Produce json
// @Param checkIn query string false "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string false "Check-out date (YYYY-MM-DD)"
// @Param type query string false "Room type"
// @Success 200 {object} response.Data[[]dto.RoomResponse] "Available rooms"
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/rooms/available [get]
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	query := r.URL.Query()
	req := dto.AvailabilityRequest{
		CheckInDate:  strings.TrimSpace(query.Get(constant.RequestParamCheckIn)),
		CheckOutDate: strings.TrimSpace(query.Get(constant.RequestParamCheckOut)),
		RoomType:     strings.TrimSpace(query.Get(constant.RequestParamType)),
	}

	rooms, err := handler.service.Available(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetRoomByID retrieves a room by its ID.
// @Summary Get a room by ID
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id} [get]
func (handler *Handler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	id, err := shared.ParseIDParam(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	room, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", id).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// GetEstimate prices a stay the way the room page does, without taxes.
// @Summary Quick price estimate
// @Tags Room
// @Produce json
// @Param id path int true "Room ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[pricing.BreakdownResponse] "Estimate"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/rooms/{id}/estimate [get]
func (handler *Handler) GetEstimate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEstimate")
	defer scope.End()

	id, err := shared.ParseIDParam(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	query := r.URL.Query()
	req := dto.EstimateRequest{
		CheckInDate:  query.Get(constant.RequestParamCheckIn),
		CheckOutDate: query.Get(constant.RequestParamCheckOut),
	}

	estimate, err := handler.service.Estimate(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Int64("room_id", id).Msg("failed to estimate stay")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, estimate)
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param roomType formData string true "Room type"
// @Param roomPrice formData number true "Nightly rate"
// @Param roomDescription formData string true "Description"
// @Param photo formData file true "Room photo"
// @Success 201 {object} response.Message "Room created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/rooms [post]
// @Security SessionID
func (handler *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.CreateRoomRequest{
		RoomType:        strings.TrimSpace(r.FormValue(model.FieldRoomType)),
		RoomDescription: strings.TrimSpace(r.FormValue(model.FieldRoomDescription)),
	}

	if price, ok := shared.ParseDecimal(r.FormValue(model.FieldRoomPrice)); ok {
		req.RoomPrice = price
	} else if r.FormValue(model.FieldRoomPrice) != "" {
		response.WithError(w, failure.BadRequestFromString("roomPrice must be a number"))

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithMessage(w, http.StatusCreated, "Room created successfully")
}

// UpdateRoom updates an existing room by its ID.
// @Summary Update a room by ID
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Room ID"
// @Param roomType formData string false "Room type"
// @Param roomPrice formData number false "Nightly rate"
// @Param roomDescription formData string false "Description"
// @Param photo formData file false "Room photo"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/rooms/{id} [put]
// @Security SessionID
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	id, err := shared.ParseIDParam(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, failure.BadRequest(err))

		return
	}

	req := dto.UpdateRoomRequest{
		RoomType:        strings.TrimSpace(r.FormValue(model.FieldRoomType)),
		RoomDescription: strings.TrimSpace(r.FormValue(model.FieldRoomDescription)),
	}

	if raw := r.FormValue(model.FieldRoomPrice); raw != "" {
		price, ok := shared.ParseDecimal(raw)
		if !ok {
			response.WithError(w, failure.BadRequestFromString("roomPrice must be a number"))

			return
		}

		req.RoomPrice = &price
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err == nil {
		req.Photo = fileHeader
		req.PhotoFile = file

		defer file.Close()
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", id).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// DeleteRoom deletes a room by its ID.
// @Summary Delete a room by ID
// @Tags Admin
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} response.Message "Room deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/rooms/{id} [delete]
// @Security SessionID
func (handler *Handler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	id, err := shared.ParseIDParam(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", id).Msg("failed to delete room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(w, http.StatusOK, "Room deleted successfully")
}
