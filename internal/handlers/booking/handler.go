package booking

import (
	"context"
	"hotelmanager/config"
	"hotelmanager/infras/otel"
	"hotelmanager/internal/domains/booking/model/dto"
	"hotelmanager/internal/domains/booking/service"
	"hotelmanager/internal/domains/search"
	"hotelmanager/shared"
	"hotelmanager/shared/constant"
	gDto "hotelmanager/shared/dto"
	"hotelmanager/shared/failure"
	"hotelmanager/shared/validator"
	"hotelmanager/transport/http/response"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Booking, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/quote", handler.GetQuote)
		routerGroup.Get("/mine", handler.GetMyBookings)
		routerGroup.Delete("/{id}", handler.CancelBooking)
		routerGroup.Get("/code/{code}", handler.GetBookingByCode)
		routerGroup.Get("/code/{code}/confirmation.pdf", handler.GetConfirmation)
	})
}

// AdminRouter mounts the all-bookings listing under the admin group.
func (handler *Handler) AdminRouter(router chi.Router) {
	router.Get("/bookings", handler.GetBookings)
}

// CreateBooking books a room for the signed in user.
// @Summary Book a room
// @Description Validates the stay, prices it with taxes and books it for the session user.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.BookRequest true "Booking request"
// @Success 201 {object} response.Data[dto.BookResponse] "Booking confirmation"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/bookings [post]
// @Security SessionID
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.BookRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booked, err := handler.service.Book(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("room_id", req.RoomID).Msg("failed to book room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created " + booked.BookingConfirmationCode)

	response.WithJSON(writer, http.StatusCreated, booked)
}

// GetQuote prices a stay with the full breakdown shown before booking.
// @Summary Price a stay
// @Tags Booking
// @Produce json
// @Param roomId query int true "Room ID"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[pricing.BreakdownResponse] "Price breakdown"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/quote [get]
func (handler *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetQuote")
	defer scope.End()

	query := r.URL.Query()

	roomID, err := strconv.ParseInt(strings.TrimSpace(query.Get(constant.RequestParamRoomID)), 10, 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("roomId must be a number"))

		return
	}

	req := dto.QuoteRequest{
		RoomID:       roomID,
		CheckInDate:  query.Get(constant.RequestParamCheckIn),
		CheckOutDate: query.Get(constant.RequestParamCheckOut),
	}

	quote, err := handler.service.Quote(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Int64("room_id", roomID).Msg("failed to quote stay")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, quote)
}

// GetBookings lists every booking.
// @Summary All bookings
// @Description Search, status, quick and date filters with status aggregates.
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Listing parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Bookings page"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security SessionID
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, ".GetBookings", handler.service.All)
}

// GetMyBookings lists the signed in user's bookings.
// @Summary My bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Listing parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "Bookings page"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/bookings/mine [get]
// @Security SessionID
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	handler.list(w, r, ".GetMyBookings", handler.service.Mine)
}

func (handler *Handler) list(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	fetch func(ctx context.Context, criteria search.Criteria) (dto.GetBookingsResponse, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+name)
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, handler.cfg.Search.BookingPageSize)

	criteria, err := search.CriteriaFromQuery(queryParams)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	bookings, err := fetch(ctx, criteria)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByCode finds a booking by its confirmation code.
// @Summary Find booking by confirmation code
// @Tags Booking
// @Produce json
// @Param code path string true "Confirmation code"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/code/{code} [get]
// @Security SessionID
func (handler *Handler) GetBookingByCode(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByCode")
	defer scope.End()

	code := strings.TrimSpace(chi.URLParam(r, constant.RequestParamCode))

	booking, err := handler.service.ByCode(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Debug().Err(err).Str("code", code).Msg("failed to find booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// GetConfirmation renders the booking confirmation as a PDF.
// @Summary Booking confirmation PDF
// @Tags Booking
// @Produce application/pdf
// @Param code path string true "Confirmation code"
// @Success 200 {file} file "Confirmation"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/code/{code}/confirmation.pdf [get]
// @Security SessionID
func (handler *Handler) GetConfirmation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConfirmation")
	defer scope.End()

	code := strings.TrimSpace(chi.URLParam(r, constant.RequestParamCode))

	document, err := handler.service.Confirmation(ctx, code)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("code", code).Msg("failed to render confirmation")

		response.WithError(w, err)

		return
	}

	response.WithPDF(w, "booking-"+code+".pdf", document)
}

// CancelBooking cancels a booking by its ID.
// @Summary Cancel a booking
// @Description Guests may cancel their own upcoming bookings; admins upcoming or active ones.
// @Tags Booking
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security SessionID
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, err := shared.ParseIDParam(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, failure.BadRequest(err))

		return
	}

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("booking_id", id).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled")

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}
