package model

import "inn/shared/model"

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID      = "id"
	FieldName    = "name"
	FieldAddress = "address"
	FieldCity    = "city"
	FieldCountry = "country"
	FieldRating  = "rating"
	FieldImage   = "image"
	FieldActive  = "active"
)

type Hotel struct {
	ID      string  `db:"id"`
	Name    string  `db:"name"`
	Address string  `db:"address"`
	City    string  `db:"city"`
	Country string  `db:"country"`
	Rating  float64 `db:"rating"`
	Image   string  `db:"image"`
	Active  bool    `db:"active"`
	model.Metadata
}
