package model

import "tripdesk/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldNumber        = "number"
	FieldRoomType      = "room_type"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
	FieldAvailable     = "available"
)

const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeSuite  = "suite"
)

type Room struct {
	ID            string  `db:"id"`
	HotelID       string  `db:"hotel_id"`
	Number        string  `db:"number"`
	RoomType      string  `db:"room_type"`
	Capacity      int     `db:"capacity"`
	PricePerNight float64 `db:"price_per_night"`
	Available     bool    `db:"available"`
	model.Metadata
}
