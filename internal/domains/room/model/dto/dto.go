package dto

import (
	"tripdesk/internal/domains/room/model"
	"tripdesk/shared"
	gDto "tripdesk/shared/dto"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	HotelID       string  `json:"hotel_id"        validate:"required"`
	Number        string  `json:"number"          validate:"required,max=20"`
	RoomType      string  `json:"room_type"       validate:"omitempty,oneof=single double suite"`
	Capacity      int     `json:"capacity"        validate:"omitempty,min=1"`
	PricePerNight float64 `json:"price_per_night" validate:"omitempty,min=0"`
	Available     *bool   `json:"available"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	roomType := c.RoomType
	if roomType == "" {
		roomType = model.RoomTypeSingle
	}

	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.Room{
		ID:            uuid.NewString(),
		HotelID:       c.HotelID,
		Number:        c.Number,
		RoomType:      roomType,
		Capacity:      c.Capacity,
		PricePerNight: c.PricePerNight,
		Available:     available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number        string   `db:"number"          json:"number"          validate:"omitempty,max=20"`
	RoomType      string   `db:"room_type"       json:"room_type"       validate:"omitempty,oneof=single double suite"`
	Capacity      *int     `db:"capacity"        json:"capacity"        validate:"omitempty,min=1"`
	PricePerNight *float64 `db:"price_per_night" json:"price_per_night" validate:"omitempty,min=0"`
	Available     *bool    `db:"available"       json:"available"       validate:"omitempty"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	HotelID       string  `json:"hotel_id"`
	Number        string  `json:"number"`
	RoomType      string  `json:"room_type"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
	Available     bool    `json:"available"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Number = model.Number
	r.RoomType = model.RoomType
	r.Capacity = model.Capacity
	r.PricePerNight = model.PricePerNight
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
