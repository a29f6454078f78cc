package dto

import (
	"tripdesk/internal/domains/car/model"
	"tripdesk/shared"
	gDto "tripdesk/shared/dto"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateCarRequest struct {
	Make         string  `json:"make"          validate:"required,max=50"`
	CarModel     string  `json:"model"         validate:"required,max=50"`
	City         string  `json:"city"          validate:"required,max=100"`
	Seats        int     `json:"seats"         validate:"required,min=1,max=20"`
	Transmission string  `json:"transmission"  validate:"required,oneof=manual automatic"`
	PricePerDay  float64 `json:"price_per_day" validate:"required,gt=0"`
	Available    *bool   `json:"available"     validate:"omitempty"`
}

func (c *CreateCarRequest) ToModel(user string) model.Car {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.Car{
		ID:           uuid.NewString(),
		Make:         c.Make,
		CarModel:     c.CarModel,
		City:         c.City,
		Seats:        c.Seats,
		Transmission: c.Transmission,
		PricePerDay:  c.PricePerDay,
		Available:    available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCarRequest struct {
	Make         string   `db:"make"          json:"make"          validate:"omitempty,max=50"`
	CarModel     string   `db:"model"         json:"model"         validate:"omitempty,max=50"`
	City         string   `db:"city"          json:"city"          validate:"omitempty,max=100"`
	Seats        *int     `db:"seats"         json:"seats"         validate:"omitempty,min=1,max=20"`
	Transmission string   `db:"transmission"  json:"transmission"  validate:"omitempty,oneof=manual automatic"`
	PricePerDay  *float64 `db:"price_per_day" json:"price_per_day" validate:"omitempty,gt=0"`
	Available    *bool    `db:"available"     json:"available"     validate:"omitempty"`
}

type CarResponse struct {
	ID           string  `json:"id"`
	Make         string  `json:"make"`
	CarModel     string  `json:"model"`
	City         string  `json:"city"`
	Seats        int     `json:"seats"`
	Transmission string  `json:"transmission"`
	PricePerDay  float64 `json:"price_per_day"`
	Available    bool    `json:"available"`
	gDto.Metadata
}

func (r *CarResponse) FromModel(model model.Car) {
	r.ID = model.ID
	r.Make = model.Make
	r.CarModel = model.CarModel
	r.City = model.City
	r.Seats = model.Seats
	r.Transmission = model.Transmission
	r.PricePerDay = model.PricePerDay
	r.Available = model.Available
	r.Metadata.FromModel(model.Metadata)
}

type GetCarsResponse struct {
	Cars      []CarResponse `json:"cars"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetCarsResponse) FromModels(models []model.Car, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cars = make([]CarResponse, len(models))
	for i, mod := range models {
		r.Cars[i].FromModel(mod)
	}
}
