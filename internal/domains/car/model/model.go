package model

import (
	"tripdesk/shared/model"
)

const (
	TableName  = "cars"
	EntityName = "car"

	FieldID           = "id"
	FieldMake         = "make"
	FieldModel        = "model"
	FieldCity         = "city"
	FieldSeats        = "seats"
	FieldTransmission = "transmission"
	FieldPricePerDay  = "price_per_day"
	FieldAvailable    = "available"
)

const (
	TransmissionManual    = "manual"
	TransmissionAutomatic = "automatic"
)

type Car struct {
	ID           string  `db:"id"`
	Make         string  `db:"make"`
	CarModel     string  `db:"model"`
	City         string  `db:"city"`
	Seats        int     `db:"seats"`
	Transmission string  `db:"transmission"`
	PricePerDay  float64 `db:"price_per_day"`
	Available    bool    `db:"available"`
	model.Metadata
}
