package dto

import (
	"net/http"
	"time"

	"tripdesk/internal/domains/flight/model"
	"tripdesk/shared"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

const (
	RequestParamDepartureDate = "departure_date"
	RequestParamMinPrice      = "min_price"
	RequestParamMaxPrice      = "max_price"

	argNameMinPrice       = "min_price"
	argNameMaxPrice       = "max_price"
	argNameDepartureStart = "departure_start"
	argNameDepartureEnd   = "departure_end"
)

// sortableColumns is the allow-list for the sort_by query parameter. Unknown
// values fall back to the departure time default rather than erroring.
var sortableColumns = map[string]struct{}{
	model.FieldAirline:        {},
	model.FieldFlightNumber:   {},
	model.FieldOrigin:         {},
	model.FieldDestination:    {},
	model.FieldDepartureTime:  {},
	model.FieldArrivalTime:    {},
	model.FieldPrice:          {},
	model.FieldTotalSeats:     {},
	model.FieldAvailableSeats: {},
	model.FieldStops:          {},
	model.FieldStatus:         {},
	constant.FieldCreatedAt:   {},
}

type CreateFlightRequest struct {
	Airline       string    `json:"airline"        validate:"required,max=100"`
	FlightNumber  string    `json:"flight_number"  validate:"required,max=20"`
	Origin        string    `json:"origin"         validate:"required,max=100"`
	Destination   string    `json:"destination"    validate:"required,max=100"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time"   validate:"required"`
	Price         float64   `json:"price"          validate:"required,gt=0"`
	TotalSeats    int       `json:"total_seats"    validate:"required,min=1"`
	Stops         int       `json:"stops"          validate:"omitempty,min=0"`
	Status        string    `json:"status"         validate:"omitempty,oneof=scheduled delayed cancelled"`
}

// ToModel builds the flight to persist. Available seats always start equal to
// total seats.
func (c *CreateFlightRequest) ToModel(user string) model.Flight {
	status := c.Status
	if status == "" {
		status = model.StatusScheduled
	}

	return model.Flight{
		ID:             uuid.NewString(),
		Airline:        c.Airline,
		FlightNumber:   c.FlightNumber,
		Origin:         c.Origin,
		Destination:    c.Destination,
		DepartureTime:  c.DepartureTime,
		ArrivalTime:    c.ArrivalTime,
		Price:          c.Price,
		TotalSeats:     c.TotalSeats,
		AvailableSeats: c.TotalSeats,
		Stops:          c.Stops,
		Status:         status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateFlightRequest carries a partial payload. AvailableSeats and Stops are
// pointers: zero is a legal value for both and must persist when supplied, so
// presence is tested through the pointer instead of truthiness. Every other
// field keeps its stored value when left at the zero value.
type UpdateFlightRequest struct {
	Airline        string    `db:"airline"         json:"airline"         validate:"omitempty,max=100"`
	FlightNumber   string    `db:"flight_number"   json:"flight_number"   validate:"omitempty,max=20"`
	Origin         string    `db:"origin"          json:"origin"          validate:"omitempty,max=100"`
	Destination    string    `db:"destination"     json:"destination"     validate:"omitempty,max=100"`
	DepartureTime  time.Time `db:"departure_time"  json:"departure_time"  validate:"omitempty"`
	ArrivalTime    time.Time `db:"arrival_time"    json:"arrival_time"    validate:"omitempty"`
	Price          float64   `db:"price"           json:"price"           validate:"omitempty,gt=0"`
	TotalSeats     int       `db:"total_seats"     json:"total_seats"     validate:"omitempty,min=1"`
	AvailableSeats *int      `db:"available_seats" json:"available_seats" validate:"omitempty,min=0"`
	Stops          *int      `db:"stops"           json:"stops"           validate:"omitempty,min=0"`
	Status         string    `db:"status"          json:"status"          validate:"omitempty,oneof=scheduled delayed cancelled"`
}

// SearchFlightsRequest holds the optional flight search filters. Every field
// left empty imposes no constraint.
type SearchFlightsRequest struct {
	Origin        string
	Destination   string
	Airline       string
	DepartureDate string
	MinPrice      *float64
	MaxPrice      *float64
}

// FromRequest reads the search filters off the query string. Values arrive
// percent-decoded from the URL parser. Malformed price bounds degrade to no
// constraint.
func (s *SearchFlightsRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	s.Origin = query.Get(model.FieldOrigin)
	s.Destination = query.Get(model.FieldDestination)
	s.Airline = query.Get(model.FieldAirline)
	s.DepartureDate = query.Get(RequestParamDepartureDate)
	s.MinPrice = shared.ConvertStringToFloat(query.Get(RequestParamMinPrice))
	s.MaxPrice = shared.ConvertStringToFloat(query.Get(RequestParamMaxPrice))
}

// ToFilterGroup translates the populated filters into a store predicate. Text
// filters match as case-insensitive substrings, a departure date becomes an
// inclusive day range on departure_time, and the price bounds are inclusive.
func (s *SearchFlightsRequest) ToFilterGroup() gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	textFilters := []struct {
		field string
		value string
	}{
		{model.FieldOrigin, s.Origin},
		{model.FieldDestination, s.Destination},
		{model.FieldAirline, s.Airline},
	}

	for _, text := range textFilters {
		if text.value == "" {
			continue
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    text.field,
			Operator: gDto.FilterOperatorLike,
			Value:    text.value,
			Table:    model.TableName,
		})
	}

	if s.DepartureDate != "" {
		if date, err := timezone.Parse(constant.DateOnlyFormat, s.DepartureDate); err == nil {
			start, end := timezone.DayRange(date)

			filterGroup.Filters = append(filterGroup.Filters,
				gDto.Filter{
					ArgName:  argNameDepartureStart,
					Field:    model.FieldDepartureTime,
					Operator: gDto.FilterOperatorGreaterEq,
					Value:    start,
					Table:    model.TableName,
				},
				gDto.Filter{
					ArgName:  argNameDepartureEnd,
					Field:    model.FieldDepartureTime,
					Operator: gDto.FilterOperatorLessEq,
					Value:    end,
					Table:    model.TableName,
				},
			)
		}
	}

	if s.MinPrice != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  argNameMinPrice,
			Field:    model.FieldPrice,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    *s.MinPrice,
			Table:    model.TableName,
		})
	}

	if s.MaxPrice != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			ArgName:  argNameMaxPrice,
			Field:    model.FieldPrice,
			Operator: gDto.FilterOperatorLessEq,
			Value:    *s.MaxPrice,
			Table:    model.TableName,
		})
	}

	return filterGroup
}

// ToQueryParams maps sort_by/sort_dir onto the ordering directive. Flight
// search is unpaginated, so Page and Limit stay zero and the repository
// returns the full matching set.
func ToQueryParams(r *http.Request) gDto.QueryParams {
	params := gDto.QueryParams{}
	params.FromRequest(r, false)

	params.Page = 0
	params.Limit = 0

	if _, ok := sortableColumns[params.SortBy]; !ok {
		params.SortBy = model.FieldDepartureTime
	}

	if params.SortDir == "" {
		params.SortDir = gDto.SortDirAsc
	}

	return params
}

type FlightResponse struct {
	ID             string    `json:"id"`
	Airline        string    `json:"airline"`
	FlightNumber   string    `json:"flight_number"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departure_time"`
	ArrivalTime    time.Time `json:"arrival_time"`
	Price          float64   `json:"price"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
	Stops          int       `json:"stops"`
	Status         string    `json:"status"`
	gDto.Metadata
}

func (f *FlightResponse) FromModel(model model.Flight) {
	f.ID = model.ID
	f.Airline = model.Airline
	f.FlightNumber = model.FlightNumber
	f.Origin = model.Origin
	f.Destination = model.Destination
	f.DepartureTime = model.DepartureTime
	f.ArrivalTime = model.ArrivalTime
	f.Price = model.Price
	f.TotalSeats = model.TotalSeats
	f.AvailableSeats = model.AvailableSeats
	f.Stops = model.Stops
	f.Status = model.Status
	f.Metadata.FromModel(model.Metadata)
}

type GetFlightsResponse struct {
	Flights   []FlightResponse `json:"flights"`
	TotalData int              `json:"total_data"`
}

func (g *GetFlightsResponse) FromModels(models []model.Flight) {
	g.TotalData = len(models)

	g.Flights = make([]FlightResponse, len(models))
	for i, mod := range models {
		g.Flights[i].FromModel(mod)
	}
}
