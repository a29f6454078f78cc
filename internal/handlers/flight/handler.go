package flight

import (
	"net/http"
	"tripdesk/infras/otel"
	"tripdesk/internal/domains/flight/model/dto"
	"tripdesk/internal/domains/flight/service"
	"tripdesk/shared/constant"
	"tripdesk/shared/validator"
	"tripdesk/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Flight
	otel    otel.Otel
}

func New(service service.Flight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/flights", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateFlight)
		routerGroup.Get("/", handler.SearchFlights)
		routerGroup.Get("/{id}", handler.GetFlightByID)
		routerGroup.Put("/{id}", handler.UpdateFlight)
		routerGroup.Delete("/{id}", handler.DeleteFlight)
	})
}

// CreateFlight handles the creation of a new flight.
// @Summary Create a new flight
// @Description Create a new flight. Available seats start equal to total seats.
// @Tags Flight
// @Accept json
// @Produce json
// @Param flight body dto.CreateFlightRequest true "Flight details"
// @Success 201 {object} response.Data[dto.FlightResponse] "Created flight"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights [post]
// @Security BearerAuth
func (handler *Handler) CreateFlight(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateFlight")
	defer scope.End()

	req := dto.CreateFlightRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	flight, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create flight")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Flight created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, flight)
}

// SearchFlights retrieves flights matching the optional search filters.
// @Summary Search flights
// @Description Search flights by origin, destination, airline, departure date and price bounds. Text filters match case-insensitive substrings. The result set is unpaginated.
// @Tags Flight
// @Accept json
// @Produce json
// @Param origin query string false "Filter by origin (substring)"
// @Param destination query string false "Filter by destination (substring)"
// @Param airline query string false "Filter by airline (substring)"
// @Param departure_date query string false "Calendar date (YYYY-MM-DD), matched against the whole day"
// @Param min_price query number false "Inclusive lower price bound"
// @Param max_price query number false "Inclusive upper price bound"
// @Param sort_by query string false "Sort column, defaults to departure_time"
// @Param sort_dir query string false "ASC or DESC, defaults to ASC"
// @Success 200 {object} response.Data[dto.GetFlightsResponse] "Matching flights"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights [get]
func (handler *Handler) SearchFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchFlights")
	defer scope.End()

	search := dto.SearchFlightsRequest{}
	search.FromRequest(r)

	queryParams := dto.ToQueryParams(r)

	flights, err := handler.service.Search(ctx, queryParams, search.ToFilterGroup())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search flights")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flights retrieved successfully")

	response.WithJSON(w, http.StatusOK, flights)
}

// GetFlightByID retrieves a flight by its ID.
// @Summary Get a flight by ID
// @Description Retrieve a flight by its unique identifier.
// @Tags Flight
// @Accept json
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} response.Data[dto.FlightResponse] "Flight details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id} [get]
func (handler *Handler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlightByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	flight, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flight by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Flight retrieved successfully")

	response.WithJSON(w, http.StatusOK, flight)
}

// UpdateFlight updates an existing flight by its ID.
// @Summary Update a flight by ID
// @Description Apply a partial update. Supplied fields overwrite stored values; available_seats and stops apply even when zero.
// @Tags Flight
// @Accept json
// @Produce json
// @Param id path string true "Flight ID"
// @Param flight body dto.UpdateFlightRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.FlightResponse] "Updated flight"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateFlight")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateFlightRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	flight, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update flight")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Flight updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, flight)
}

// DeleteFlight deletes a flight by its ID.
// @Summary Delete a flight by ID
// @Description Delete a flight using its unique identifier. Deletion is unconditional.
// @Tags Flight
// @Accept json
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} response.Message "Flight deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/flights/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteFlight")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete flight")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Flight deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Flight deleted successfully")
}
