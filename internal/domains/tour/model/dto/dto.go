package dto

import (
	"time"

	"tripdesk/internal/domains/tour/model"
	"tripdesk/shared"
	"tripdesk/shared/constant"
	gDto "tripdesk/shared/dto"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateTourRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Destination string  `json:"destination" validate:"required,max=100"`
	Description string  `json:"description" validate:"omitempty"`
	StartDate   string  `json:"start_date"  validate:"required"`
	EndDate     string  `json:"end_date"    validate:"required"`
	Price       float64 `json:"price"       validate:"omitempty,min=0"`
	Capacity    int     `json:"capacity"    validate:"omitempty,min=1"`
	Status      string  `json:"status"      validate:"omitempty,oneof=open full cancelled"`
}

func (c *CreateTourRequest) ToModel(user string) (model.Tour, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.Tour{}, err
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.Tour{}, err
	}

	status := c.Status
	if status == "" {
		status = model.StatusOpen
	}

	return model.Tour{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Destination: c.Destination,
		Description: c.Description,
		StartDate:   startDate,
		EndDate:     endDate,
		Price:       c.Price,
		Capacity:    c.Capacity,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateTourRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Destination string   `db:"destination" json:"destination" validate:"omitempty,max=100"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	StartDate   string   `json:"start_date" validate:"omitempty"`
	EndDate     string   `json:"end_date"   validate:"omitempty"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,min=0"`
	Capacity    *int     `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	Status      string   `db:"status"      json:"status"      validate:"omitempty,oneof=open full cancelled"`
}

type TourResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Destination string  `json:"destination"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *TourResponse) FromModel(model model.Tour) {
	r.ID = model.ID
	r.Name = model.Name
	r.Destination = model.Destination
	r.Description = model.Description
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.Price = model.Price
	r.Capacity = model.Capacity
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetToursResponse struct {
	Tours     []TourResponse `json:"tours"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetToursResponse) FromModels(models []model.Tour, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tours = make([]TourResponse, len(models))
	for i, mod := range models {
		r.Tours[i].FromModel(mod)
	}
}
