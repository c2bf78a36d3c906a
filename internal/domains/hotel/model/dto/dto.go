package dto

import (
	"github.com/google/uuid"

	"inn/internal/domains/hotel/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

type CreateHotelRequest struct {
	Name    string  `json:"name"    validate:"required,max=100"`
	Address string  `json:"address" validate:"omitempty,max=200"`
	City    string  `json:"city"    validate:"omitempty,max=100"`
	Country string  `json:"country" validate:"omitempty,max=100"`
	Rating  float64 `json:"rating"  validate:"omitempty,gte=0,lte=5"`
	Image   string  `json:"image"   validate:"omitempty,max=500"`
	Active  *bool   `json:"active"  validate:"omitempty"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Hotel{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Address: c.Address,
		City:    c.City,
		Country: c.Country,
		Rating:  c.Rating,
		Image:   c.Image,
		Active:  active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	Name    string   `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Address string   `db:"address" json:"address" validate:"omitempty,max=200"`
	City    string   `db:"city"    json:"city"    validate:"omitempty,max=100"`
	Country string   `db:"country" json:"country" validate:"omitempty,max=100"`
	Rating  *float64 `db:"rating"  json:"rating"  validate:"omitempty,gte=0,lte=5"`
	Image   string   `db:"image"   json:"image"   validate:"omitempty,max=500"`
	Active  *bool    `db:"active"  json:"active"  validate:"omitempty"`
}

type HotelResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Country string  `json:"country"`
	Rating  float64 `json:"rating"`
	Image   string  `json:"image"`
	Active  bool    `json:"active"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(mod model.Hotel) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Address = mod.Address
	r.City = mod.City
	r.Country = mod.Country
	r.Rating = mod.Rating
	r.Image = mod.Image
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
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
