package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"hotelmanager/config"
	"hotelmanager/infras/gateway"
	"hotelmanager/infras/otel"
	"hotelmanager/internal/domains/pricing"
	"hotelmanager/internal/domains/room/model"
	"hotelmanager/internal/domains/room/model/dto"
	"hotelmanager/internal/domains/search"
	"hotelmanager/shared"
	"hotelmanager/shared/cache"
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/constant"
	"hotelmanager/shared/failure"
	"hotelmanager/shared/validator"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheRoom         = "room"
	cacheRoomSnapshot = "room:snapshot"
	cacheRoomTypes    = "room:types"
	cacheRoomDetail   = "room:get"
)

type Room interface {
	Browse(ctx context.Context, criteria search.Criteria) (dto.GetRoomsResponse, error)
	Snapshot(ctx context.Context) ([]model.Room, error)
	Types(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id int64) (dto.RoomResponse, error)
	Estimate(ctx context.Context, id int64, req dto.EstimateRequest) (pricing.BreakdownResponse, error)
	Available(ctx context.Context, req dto.AvailabilityRequest) ([]dto.RoomResponse, error)
	Create(ctx context.Context, req dto.CreateRoomRequest) error
	Update(ctx context.Context, id int64, req dto.UpdateRoomRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	api   gateway.RoomAPI
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(api gateway.RoomAPI, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		api:   api,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Browse runs the room search over the cached snapshot. A page past the end
// serves the first page.
func (s *serviceImpl) Browse(ctx context.Context, criteria search.Criteria) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Browse")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.Snapshot(ctx)
	if err != nil {
		return res, err
	}

	result, err := search.Apply(rooms, criteria, calendar.Today())
	if err != nil {
		if !errors.Is(err, search.ErrPageOutOfRange) {
			return res, fmt.Errorf("failed to search rooms: %w", err)
		}

		log.Debug().Int("page", criteria.Page).Msg("room page out of range, serving first page")
	}

	res.FromResult(result)

	return res, nil
}

// Snapshot is the full room list, read through the cache.
func (s *serviceImpl) Snapshot(ctx context.Context) (rooms []model.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Snapshot")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheRoomSnapshot, &rooms); err == nil {
		log.Debug().Str("cacheKey", cacheRoomSnapshot).Msg("cache hit for rooms")

		return rooms, nil
	}

	rooms, err = s.api.Rooms(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRoomSnapshot, rooms, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return rooms, nil
}

func (s *serviceImpl) Types(ctx context.Context) (types []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Types")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheRoomTypes, &types); err == nil {
		return types, nil
	}

	types, err = s.api.RoomTypes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room types")

		return nil, fmt.Errorf("failed to get room types: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheRoomTypes, types, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room types to cache")
		}
	}()

	return types, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.room(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) room(ctx context.Context, id int64) (room model.Room, err error) {
	cacheKey := shared.BuildCacheKey(cacheRoomDetail, fmt.Sprint(id))

	if err = s.cache.Get(ctx, cacheKey, &room); err == nil {
		return room, nil
	}

	room, err = s.api.Room(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, room, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return room, nil
}

// Estimate is the room detail price, without taxes.
func (s *serviceImpl) Estimate(ctx context.Context, id int64, req dto.EstimateRequest) (res pricing.BreakdownResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Estimate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	room, err := s.room(ctx, id)
	if err != nil {
		return res, err
	}

	breakdown, err := pricing.QuickEstimate(room.Price(), calendar.Parse(req.CheckInDate), calendar.Parse(req.CheckOutDate))
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDateRange) {
			return res, failure.InvalidDateRange
		}

		return res, fmt.Errorf("failed to estimate price: %w", err)
	}

	res.FromBreakdown(breakdown)

	return res, nil
}

// Available asks the backend which rooms are free. Dates without a room type fan
// out over every type; a type that fails contributes no rooms.
func (s *serviceImpl) Available(ctx context.Context, req dto.AvailabilityRequest) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Available")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return nil, err
	}

	if (req.CheckInDate == "") != (req.CheckOutDate == "") {
		return nil, failure.BadRequestFromString("checkInDate and checkOutDate must be given together")
	}

	if !req.HasDates() {
		rooms, err := s.api.AvailableRooms(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to get available rooms")

			return nil, fmt.Errorf("failed to get available rooms: %w", err)
		}

		return dto.FromModels(rooms), nil
	}

	if _, err = pricing.Nights(calendar.Parse(req.CheckInDate), calendar.Parse(req.CheckOutDate)); err != nil {
		return nil, failure.InvalidDateRange
	}

	if req.RoomType != "" {
		rooms, err := s.api.AvailableRoomsByDateAndType(ctx, req.CheckInDate, req.CheckOutDate, req.RoomType)
		if err != nil {
			log.Error().Err(err).Str("room_type", req.RoomType).Msg("failed to search available rooms")

			return nil, fmt.Errorf("failed to search available rooms: %w", err)
		}

		return dto.FromModels(rooms), nil
	}

	types, err := s.Types(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		found = make(map[int64]model.Room)
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, roomType := range types {
		g.Go(func() error {
			rooms, err := s.api.AvailableRoomsByDateAndType(gctx, req.CheckInDate, req.CheckOutDate, roomType)
			if err != nil {
				log.Warn().Err(err).Str("room_type", roomType).Msg("availability lookup failed, skipping type")

				return nil
			}

			mu.Lock()
			defer mu.Unlock()

			for _, room := range rooms {
				found[room.ID] = room
			}

			return nil
		})
	}

	_ = g.Wait()

	rooms := make([]model.Room, 0, len(found))
	for _, room := range found {
		rooms = append(rooms, room)
	}

	slices.SortFunc(rooms, func(a, b model.Room) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return dto.FromModels(rooms), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	form, err := req.ToForm()
	if err != nil {
		return err
	}

	if err = s.api.CreateRoom(ctx, form); err != nil {
		log.Error().Err(err).Msg("failed to create room")

		return fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return err
	}

	if req.Empty() {
		return failure.BadRequestFromString("nothing to update")
	}

	form, err := req.ToForm()
	if err != nil {
		return err
	}

	if err = s.api.UpdateRoom(ctx, id, form); err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.api.DeleteRoom(ctx, id); err != nil {
		log.Error().Err(err).Int64("room_id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// invalidate drops every room entry so the next read refetches the snapshot.
func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheRoom)
	}()
}
