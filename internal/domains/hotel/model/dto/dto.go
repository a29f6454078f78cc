package dto

import (
	"mime/multipart"

	"tripdesk/internal/domains/hotel/model"
	"tripdesk/shared"
	gDto "tripdesk/shared/dto"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name          string                `json:"name"            validate:"required,max=100"`
	City          string                `json:"city"            validate:"required,max=100"`
	Address       string                `json:"address"         validate:"omitempty,max=200"`
	Stars         int                   `json:"stars"           validate:"omitempty,min=1,max=5"`
	PricePerNight float64               `json:"price_per_night" validate:"omitempty,min=0"`
	Image         *multipart.FileHeader `json:"image"           validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `json:"active"          validate:"omitempty"`
}

func (c *CreateHotelRequest) ToModel(user string, imageURL string) model.Hotel {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Hotel{
		ID:            uuid.NewString(),
		Name:          c.Name,
		City:          c.City,
		Address:       c.Address,
		Stars:         c.Stars,
		PricePerNight: c.PricePerNight,
		Image:         imageURL,
		Active:        active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	Name          string                `db:"name"            json:"name"                                                                 validate:"omitempty,max=100"`
	City          string                `db:"city"            json:"city"                                                                 validate:"omitempty,max=100"`
	Address       string                `db:"address"         json:"address"                                                              validate:"omitempty,max=200"`
	Stars         *int                  `db:"stars"           json:"stars"                                                                validate:"omitempty,min=1,max=5"`
	PricePerNight *float64              `db:"price_per_night" json:"price_per_night"                                                      validate:"omitempty,min=0"`
	Image         *multipart.FileHeader `json:"image"         validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile     multipart.File        `json:"-"`
	Active        *bool                 `db:"active"          json:"active"                                                               validate:"omitempty"`
}

type HotelResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	City          string  `json:"city"`
	Address       string  `json:"address"`
	Stars         int     `json:"stars"`
	PricePerNight float64 `json:"price_per_night"`
	Image         string  `json:"image"`
	Active        bool    `json:"active"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(model model.Hotel) {
	r.ID = model.ID
	r.Name = model.Name
	r.City = model.City
	r.Address = model.Address
	r.Stars = model.Stars
	r.PricePerNight = model.PricePerNight
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
