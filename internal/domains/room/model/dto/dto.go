package dto

import (
	"github.com/google/uuid"

	"inn/internal/domains/booking/lifecycle"
	"inn/internal/domains/room/model"
	"inn/shared"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

type CreateRoomRequest struct {
	HotelID       string  `json:"hotel_id"        validate:"required"`
	Number        string  `json:"number"          validate:"required,max=20"`
	RoomType      string  `json:"room_type"       validate:"omitempty,max=50"`
	Floor         int     `json:"floor"           validate:"omitempty"`
	PricePerNight float64 `json:"price_per_night" validate:"omitempty,gte=0"`
	Image         string  `json:"image"           validate:"omitempty,max=500"`
	Active        *bool   `json:"active"          validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:            uuid.NewString(),
		HotelID:       c.HotelID,
		Number:        c.Number,
		RoomType:      c.RoomType,
		Floor:         c.Floor,
		PricePerNight: c.PricePerNight,
		Image:         c.Image,
		Active:        active,
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
	RoomType      string   `db:"room_type"       json:"room_type"       validate:"omitempty,max=50"`
	Floor         *int     `db:"floor"           json:"floor"           validate:"omitempty"`
	PricePerNight *float64 `db:"price_per_night" json:"price_per_night" validate:"omitempty,gte=0"`
	Image         string   `db:"image"           json:"image"           validate:"omitempty,max=500"`
	Active        *bool    `db:"active"          json:"active"          validate:"omitempty"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	HotelID       string  `json:"hotel_id"`
	Number        string  `json:"number"`
	RoomType      string  `json:"room_type"`
	Floor         int     `json:"floor"`
	PricePerNight float64 `json:"price_per_night"`
	Image         string  `json:"image"`
	Active        bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.HotelID = mod.HotelID
	r.Number = mod.Number
	r.RoomType = mod.RoomType
	r.Floor = mod.Floor
	r.PricePerNight = mod.PricePerNight
	r.Image = mod.Image
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
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

// RoomAvailabilityResponse pairs a room with the status projected from its
// current booking.
type RoomAvailabilityResponse struct {
	Room             RoomResponse `json:"room"`
	Status           string       `json:"status"`
	CurrentBookingID string       `json:"current_booking_id,omitempty"`
}

func (r *RoomAvailabilityResponse) FromProjection(mod model.Room, status lifecycle.RoomStatus, bookingID string) {
	r.Room.FromModel(mod)
	r.Status = string(status)
	r.CurrentBookingID = bookingID
}

type GetRoomAvailabilityResponse struct {
	Rooms []RoomAvailabilityResponse `json:"rooms"`
}
