package dto

import (
	"inn/internal/domains/plan/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreatePlanRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	Description    string  `json:"description" validate:"omitempty,max=500"`
	RoiPercent     float64 `json:"roi_percent" validate:"required,gt=0,lte=100"`
	DurationMonths int     `json:"duration_months" validate:"required,gt=0"`
	MinAmount      float64 `json:"min_amount" validate:"required,gt=0"`
}

func (c *CreatePlanRequest) ToModel(user string) model.Plan {
	return model.Plan{
		ID:             uuid.NewString(),
		Name:           c.Name,
		Description:    c.Description,
		RoiPercent:     c.RoiPercent,
		DurationMonths: c.DurationMonths,
		MinAmount:      c.MinAmount,
		Active:         true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePlanRequest struct {
	Name           string  `db:"name" json:"name" validate:"omitempty,max=100"`
	Description    string  `db:"description" json:"description" validate:"omitempty,max=500"`
	RoiPercent     float64 `db:"roi_percent" json:"roi_percent" validate:"omitempty,gt=0,lte=100"`
	DurationMonths int     `db:"duration_months" json:"duration_months" validate:"omitempty,gt=0"`
	MinAmount      float64 `db:"min_amount" json:"min_amount" validate:"omitempty,gt=0"`
	Active         *bool   `db:"active" json:"active" validate:"omitempty"`
}

type PlanResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	RoiPercent     float64 `json:"roi_percent"`
	DurationMonths int     `json:"duration_months"`
	MinAmount      float64 `json:"min_amount"`
	Active         bool    `json:"active"`
	gDto.Metadata
}

func (r *PlanResponse) FromModel(model model.Plan) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.RoiPercent = model.RoiPercent
	r.DurationMonths = model.DurationMonths
	r.MinAmount = model.MinAmount
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetPlansResponse struct {
	Plans     []PlanResponse `json:"plans"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetPlansResponse) FromModels(models []model.Plan, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Plans = make([]PlanResponse, len(models))
	for i, mod := range models {
		r.Plans[i].FromModel(mod)
	}
}
