package model

import "tripdesk/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID            = "id"
	FieldName          = "name"
	FieldCity          = "city"
	FieldAddress       = "address"
	FieldStars         = "stars"
	FieldPricePerNight = "price_per_night"
	FieldImage         = "image"
	FieldActive        = "active"
)

type Hotel struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	City          string  `db:"city"`
	Address       string  `db:"address"`
	Stars         int     `db:"stars"`
	PricePerNight float64 `db:"price_per_night"`
	Image         string  `db:"image"`
	Active        bool    `db:"active"`
	model.Metadata
}
