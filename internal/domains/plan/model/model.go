package model

import "inn/shared/model"

const (
	TableName  = "plans"
	EntityName = "plan"

	FieldID             = "id"
	FieldName           = "name"
	FieldDescription    = "description"
	FieldRoiPercent     = "roi_percent"
	FieldDurationMonths = "duration_months"
	FieldMinAmount      = "min_amount"
	FieldActive         = "active"
)

type Plan struct {
	ID             string  `db:"id"`
	Name           string  `db:"name"`
	Description    string  `db:"description"`
	RoiPercent     float64 `db:"roi_percent"`
	DurationMonths int     `db:"duration_months"`
	MinAmount      float64 `db:"min_amount"`
	Active         bool    `db:"active"`
	model.Metadata
}
