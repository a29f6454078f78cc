package model

import (
	"time"
	"tripdesk/shared/model"
)

const (
	TableName  = "tours"
	EntityName = "tour"

	FieldID          = "id"
	FieldName        = "name"
	FieldDestination = "destination"
	FieldDescription = "description"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldPrice       = "price"
	FieldCapacity    = "capacity"
	FieldStatus      = "status"
)

const (
	StatusOpen      = "open"
	StatusFull      = "full"
	StatusCancelled = "cancelled"
)

type Tour struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Destination string    `db:"destination"`
	Description string    `db:"description"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Price       float64   `db:"price"`
	Capacity    int       `db:"capacity"`
	Status      string    `db:"status"`
	model.Metadata
}
