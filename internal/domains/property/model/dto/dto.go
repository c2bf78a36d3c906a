package dto

import (
	"mime/multipart"

	"inn/internal/domains/property/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=150"`
	Description string   `json:"description"`
	Location    string   `json:"location" validate:"required,min=3,max=200"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	SizeSqm     float64  `json:"size_sqm" validate:"omitempty,gt=0"`
	Bedrooms    int      `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   int      `json:"bathrooms" validate:"omitempty,gte=0"`
	Images      []string `json:"images" validate:"omitempty,dive,url"`
	Listed      *bool    `json:"listed"`
}

func (c *CreatePropertyRequest) ToModel(user string) model.Property {
	listed := true
	if c.Listed != nil {
		listed = *c.Listed
	}

	return model.Property{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Location:    c.Location,
		Price:       c.Price,
		SizeSqm:     c.SizeSqm,
		Bedrooms:    c.Bedrooms,
		Bathrooms:   c.Bathrooms,
		Images:      c.Images,
		Listed:      listed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePropertyRequest struct {
	Title       string   `db:"title"       json:"title"       validate:"omitempty,min=3,max=150"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Location    string   `db:"location"    json:"location"    validate:"omitempty,min=3,max=200"`
	Price       float64  `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	SizeSqm     float64  `db:"size_sqm"    json:"size_sqm"    validate:"omitempty,gt=0"`
	Bedrooms    int      `db:"bedrooms"    json:"bedrooms"    validate:"omitempty,gte=0"`
	Bathrooms   int      `db:"bathrooms"   json:"bathrooms"   validate:"omitempty,gte=0"`
	Images      []string `db:"images"      json:"images"      validate:"omitempty,dive,url"`
	Listed      *bool    `db:"listed"      json:"listed"`
}

type PropertyResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	SizeSqm     float64  `json:"size_sqm"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   int      `json:"bathrooms"`
	Images      []string `json:"images"`
	Listed      bool     `json:"listed"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(model model.Property) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Location = model.Location
	r.Price = model.Price
	r.SizeSqm = model.SizeSqm
	r.Bedrooms = model.Bedrooms
	r.Bathrooms = model.Bathrooms
	r.Images = model.Images
	r.Listed = model.Listed
	r.Metadata.FromModel(model.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, m := range models {
		r.Properties[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type DeleteImagesRequest struct {
	ImageURLs []string `json:"image_urls" validate:"required,min=1,dive,url"`
}
