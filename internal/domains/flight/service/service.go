package service

import (
	"context"
	"fmt"

	"tripdesk/config"
	"tripdesk/infras/kafka"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/flight/model"
	"tripdesk/internal/domains/flight/model/dto"
	"tripdesk/internal/domains/flight/repository"
	"tripdesk/shared"
	"tripdesk/shared/cache"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetFlight    = "flight:get"
	cacheGetAllFlight = "flight:gets"
)

const (
	eventFlightCreated = "flight.created"
	eventFlightUpdated = "flight.updated"
	eventFlightDeleted = "flight.deleted"
)

// flightEvent is the payload published to the flight events topic so that
// downstream systems (booking, notifications) learn about schedule changes.
type flightEvent struct {
	Event  string             `json:"event"`
	Flight dto.FlightResponse `json:"flight"`
}

type Flight interface {
	Create(ctx context.Context, req dto.CreateFlightRequest) (dto.FlightResponse, error)
	Search(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetFlightsResponse, error)
	Get(ctx context.Context, id string) (dto.FlightResponse, error)
	Update(ctx context.Context, req dto.UpdateFlightRequest, id string) (dto.FlightResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo   repository.Flight
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	events kafka.Client
}

func New(repo repository.Flight, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, events kafka.Client) Flight {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		events: events,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateFlightRequest) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, flightNumberFilter(req.FlightNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check flight number uniqueness")

		return res, fmt.Errorf("failed to check flight number uniqueness: %w", err)
	}

	if exist {
		log.Error().Str("flight_number", req.FlightNumber).Msg("duplicate flight number")

		return res, failure.Conflict("flight number already exists") // nolint:wrapcheck
	}

	flight := req.ToModel(user)

	if err = s.repo.Insert(ctx, flight); err != nil {
		return res, err
	}

	res.FromModel(flight)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllFlight)

		s.publishEvent(c, eventFlightCreated, res)
	}()

	return res, nil
}

// Search runs the filter predicate and ordering against the store. The flight
// search endpoint is unpaginated, so callers pass zero Page and Limit and the
// full ordered match set comes back.
func (s *serviceImpl) Search(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetFlightsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllFlight, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for flights")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to search flights")

		return res, fmt.Errorf("failed to search flights: %w", err)
	}

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save flights to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetFlight, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for flight")

		return res, nil
	}

	flight, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	if flight.ID == constant.Empty {
		return res, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	res.FromModel(flight)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save flight to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateFlightRequest, id string) (res dto.FlightResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check flight existence")

		return res, err
	}

	if current.ID == constant.Empty {
		log.Error().Str("id", id).Msg("flight not found")

		return res, failure.NotFound("flight not found") // nolint:wrapcheck
	}

	if req.FlightNumber != constant.Empty && req.FlightNumber != current.FlightNumber {
		exist, err := s.repo.Exist(ctx, flightNumberFilter(req.FlightNumber))
		if err != nil {
			log.Error().Err(err).Msg("failed to check flight number uniqueness")

			return res, fmt.Errorf("failed to check flight number uniqueness: %w", err)
		}

		if exist {
			return res, failure.Conflict("flight number already exists") // nolint:wrapcheck
		}
	}

	merged := mergeFlight(current, req)
	if merged.AvailableSeats > merged.TotalSeats {
		return res, failure.BadRequestFromString("available seats cannot exceed total seats") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if req.AvailableSeats != nil {
		updatedFields[model.FieldAvailableSeats] = *req.AvailableSeats
	}

	if req.Stops != nil {
		updatedFields[model.FieldStops] = *req.Stops
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update flight")

		return res, fmt.Errorf("failed to update flight: %w", err)
	}

	res.FromModel(merged)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFlight, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete flight cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFlight)

		s.publishEvent(c, eventFlightUpdated, res)
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	flight, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check flight existence")

		return fmt.Errorf("failed to check flight existence: %w", err)
	}

	if flight.ID == constant.Empty {
		log.Error().Str("id", id).Msg("flight not found")

		return failure.NotFound("flight not found") // nolint:wrapcheck
	}

	// No dependent-record check: deletion is unconditional.
	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete flight")

		return fmt.Errorf("failed to delete flight: %w", err)
	}

	var deleted dto.FlightResponse
	deleted.FromModel(flight)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetFlight, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete flight from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllFlight)

		s.publishEvent(c, eventFlightDeleted, deleted)
	}()

	return nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, flight dto.FlightResponse) {
	topic := s.cfg.Kafka.FlightTopic
	if topic == constant.Empty {
		return
	}

	message := kafka.Message{
		Key: flight.ID,
		Value: flightEvent{
			Event:  event,
			Flight: flight,
		},
	}

	if err := s.events.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("event", event).Msg("failed to publish flight event")
	}
}

// mergeFlight applies the partial payload on top of the stored flight. Zero
// values keep the stored field, except AvailableSeats and Stops which apply
// whenever their pointer is set.
func mergeFlight(current model.Flight, req dto.UpdateFlightRequest) model.Flight {
	merged := current

	if req.Airline != constant.Empty {
		merged.Airline = req.Airline
	}

	if req.FlightNumber != constant.Empty {
		merged.FlightNumber = req.FlightNumber
	}

	if req.Origin != constant.Empty {
		merged.Origin = req.Origin
	}

	if req.Destination != constant.Empty {
		merged.Destination = req.Destination
	}

	if !req.DepartureTime.IsZero() {
		merged.DepartureTime = req.DepartureTime
	}

	if !req.ArrivalTime.IsZero() {
		merged.ArrivalTime = req.ArrivalTime
	}

	if req.Price != 0 {
		merged.Price = req.Price
	}

	if req.TotalSeats != 0 {
		merged.TotalSeats = req.TotalSeats
	}

	if req.AvailableSeats != nil {
		merged.AvailableSeats = *req.AvailableSeats
	}

	if req.Stops != nil {
		merged.Stops = *req.Stops
	}

	if req.Status != constant.Empty {
		merged.Status = req.Status
	}

	return merged
}

func flightNumberFilter(flightNumber string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldFlightNumber,
				Value:    flightNumber,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
