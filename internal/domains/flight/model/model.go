package model

import (
	"time"
	"tripdesk/shared/model"
)

const (
	TableName  = "flights"
	EntityName = "flight"

	FieldID             = "id"
	FieldAirline        = "airline"
	FieldFlightNumber   = "flight_number"
	FieldOrigin         = "origin"
	FieldDestination    = "destination"
	FieldDepartureTime  = "departure_time"
	FieldArrivalTime    = "arrival_time"
	FieldPrice          = "price"
	FieldTotalSeats     = "total_seats"
	FieldAvailableSeats = "available_seats"
	FieldStops          = "stops"
	FieldStatus         = "status"
)

const (
	StatusScheduled = "scheduled"
	StatusDelayed   = "delayed"
	StatusCancelled = "cancelled"
)

type Flight struct {
	ID             string    `db:"id"`
	Airline        string    `db:"airline"`
	FlightNumber   string    `db:"flight_number"`
	Origin         string    `db:"origin"`
	Destination    string    `db:"destination"`
	DepartureTime  time.Time `db:"departure_time"`
	ArrivalTime    time.Time `db:"arrival_time"`
	Price          float64   `db:"price"`
	TotalSeats     int       `db:"total_seats"`
	AvailableSeats int       `db:"available_seats"`
	Stops          int       `db:"stops"`
	Status         string    `db:"status"`
	model.Metadata
}
