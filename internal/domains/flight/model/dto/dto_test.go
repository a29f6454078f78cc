package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tripdesk/internal/domains/flight/model"
	"tripdesk/internal/domains/flight/model/dto"
	gDto "tripdesk/shared/dto"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestCreateFlightRequest_ToModel(t *testing.T) {
	req := dto.CreateFlightRequest{
		Airline:       "Test Air",
		FlightNumber:  "TA100",
		Origin:        "Baku",
		Destination:   "Paris",
		DepartureTime: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
		ArrivalTime:   time.Date(2024, 6, 1, 13, 0, 0, 0, time.UTC),
		Price:         150,
		TotalSeats:    180,
		Stops:         2,
	}

	flight := req.ToModel("test-user")

	assert.NotEmpty(t, flight.ID)
	assert.Equal(t, req.TotalSeats, flight.AvailableSeats)
	assert.Equal(t, model.StatusScheduled, flight.Status)
	assert.Equal(t, "test-user", flight.CreatedBy)
	assert.Equal(t, "test-user", flight.ModifiedBy)

	req.Status = model.StatusDelayed
	flight = req.ToModel("test-user")
	assert.Equal(t, model.StatusDelayed, flight.Status)
}

func TestSearchFlightsRequest_FromRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want dto.SearchFlightsRequest
	}{
		{
			name: "all filters",
			url:  "/flights?origin=baku&destination=paris&airline=test&departure_date=2024-06-01&min_price=100&max_price=200",
			want: dto.SearchFlightsRequest{
				Origin:        "baku",
				Destination:   "paris",
				Airline:       "test",
				DepartureDate: "2024-06-01",
				MinPrice:      floatPtr(100),
				MaxPrice:      floatPtr(200),
			},
		},
		{
			name: "no filters",
			url:  "/flights",
			want: dto.SearchFlightsRequest{},
		},
		{
			name: "malformed price bounds degrade to no constraint",
			url:  "/flights?min_price=abc&max_price=12x",
			want: dto.SearchFlightsRequest{},
		},
		{
			name: "percent-encoded text filter is decoded",
			url:  "/flights?origin=New%20York",
			want: dto.SearchFlightsRequest{
				Origin: "New York",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			search := dto.SearchFlightsRequest{}
			search.FromRequest(r)

			assert.Equal(t, tt.want, search)
		})
	}
}

func TestSearchFlightsRequest_ToFilterGroup(t *testing.T) {
	t.Run("no filters yields open predicate", func(t *testing.T) {
		search := dto.SearchFlightsRequest{}

		filterGroup := search.ToFilterGroup()
		where, args := filterGroup.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("text filters match case-insensitive substrings", func(t *testing.T) {
		search := dto.SearchFlightsRequest{
			Origin: "baku",
		}

		filterGroup := search.ToFilterGroup()
		where, args := filterGroup.GetWhereClause()

		assert.Contains(t, where, "LOWER(flights.origin) LIKE LOWER(:origin)")
		assert.Equal(t, "%baku%", args["origin"])
	})

	t.Run("price bounds are inclusive and combinable", func(t *testing.T) {
		search := dto.SearchFlightsRequest{
			MinPrice: floatPtr(100),
			MaxPrice: floatPtr(200),
		}

		filterGroup := search.ToFilterGroup()
		where, args := filterGroup.GetWhereClause()

		assert.Contains(t, where, "flights.price >= :min_price")
		assert.Contains(t, where, "flights.price <= :max_price")
		assert.Contains(t, where, " AND ")
		assert.Equal(t, 100.0, args["min_price"])
		assert.Equal(t, 200.0, args["max_price"])
	})

	t.Run("departure date expands to inclusive day range", func(t *testing.T) {
		search := dto.SearchFlightsRequest{
			DepartureDate: "2024-06-01",
		}

		filterGroup := search.ToFilterGroup()
		where, args := filterGroup.GetWhereClause()

		assert.Contains(t, where, "flights.departure_time >= :departure_start")
		assert.Contains(t, where, "flights.departure_time <= :departure_end")

		start, ok := args["departure_start"].(time.Time)
		assert.True(t, ok)
		end, ok := args["departure_end"].(time.Time)
		assert.True(t, ok)

		assert.Equal(t, 2024, start.Year())
		assert.Equal(t, time.June, start.Month())
		assert.Equal(t, 1, start.Day())
		assert.Equal(t, 0, start.Hour())
		assert.Equal(t, 23, end.Hour())
		assert.Equal(t, 59, end.Minute())
		assert.True(t, end.After(start))
		assert.Equal(t, 1, end.Day())
	})

	t.Run("invalid departure date imposes no constraint", func(t *testing.T) {
		search := dto.SearchFlightsRequest{
			DepartureDate: "not-a-date",
		}

		filterGroup := search.ToFilterGroup()
		where, _ := filterGroup.GetWhereClause()

		assert.Empty(t, where)
	})
}

func TestToQueryParams(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want gDto.QueryParams
	}{
		{
			name: "defaults to departure time ascending",
			url:  "/flights",
			want: gDto.QueryParams{
				SortBy:  model.FieldDepartureTime,
				SortDir: gDto.SortDirAsc,
			},
		},
		{
			name: "allowed sort column kept",
			url:  "/flights?sort_by=price&sort_dir=desc",
			want: gDto.QueryParams{
				SortBy:  model.FieldPrice,
				SortDir: gDto.SortDirDesc,
			},
		},
		{
			name: "unknown sort column falls back to default",
			url:  "/flights?sort_by=evil;drop",
			want: gDto.QueryParams{
				SortBy:  model.FieldDepartureTime,
				SortDir: gDto.SortDirAsc,
			},
		},
		{
			name: "pagination params are ignored, search is unpaginated",
			url:  "/flights?page=3&limit=20",
			want: gDto.QueryParams{
				SortBy:  model.FieldDepartureTime,
				SortDir: gDto.SortDirAsc,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)

			params := dto.ToQueryParams(r)

			assert.Equal(t, tt.want, params)
			assert.Zero(t, params.Page)
			assert.Zero(t, params.Limit)
		})
	}
}

func TestGetFlightsResponse_FromModels(t *testing.T) {
	models := []model.Flight{
		{ID: "a", FlightNumber: "A1", Origin: "Baku"},
		{ID: "b", FlightNumber: "A2", Origin: "Paris"},
	}

	res := dto.GetFlightsResponse{}
	res.FromModels(models)

	assert.Equal(t, 2, res.TotalData)
	assert.Len(t, res.Flights, 2)
	assert.Equal(t, "A1", res.Flights[0].FlightNumber)
	assert.Equal(t, "A2", res.Flights[1].FlightNumber)
}
