package model

import "inn/shared/model"

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLocation    = "location"
	FieldPrice       = "price"
	FieldSizeSqm     = "size_sqm"
	FieldBedrooms    = "bedrooms"
	FieldBathrooms   = "bathrooms"
	FieldImages      = "images"
	FieldListed      = "listed"
)

type Property struct {
	ID          string   `db:"id"`
	Title       string   `db:"title"`
	Description string   `db:"description"`
	Location    string   `db:"location"`
	Price       float64  `db:"price"`
	SizeSqm     float64  `db:"size_sqm"`
	Bedrooms    int      `db:"bedrooms"`
	Bathrooms   int      `db:"bathrooms"`
	Images      []string `db:"images"`
	Listed      bool     `db:"listed"`
	model.Metadata
}
