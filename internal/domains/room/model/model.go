package model

import "inn/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldHotelID       = "hotel_id"
	FieldNumber        = "number"
	FieldRoomType      = "room_type"
	FieldFloor         = "floor"
	FieldPricePerNight = "price_per_night"
	FieldImage         = "image"
	FieldActive        = "active"
)

// Room carries no occupancy state of its own. The displayed availability is a
// projection of the room's current booking, recomputed on every read.
type Room struct {
	ID            string  `db:"id"`
	HotelID       string  `db:"hotel_id"`
	Number        string  `db:"number"`
	RoomType      string  `db:"room_type"`
	Floor         int     `db:"floor"`
	PricePerNight float64 `db:"price_per_night"`
	Image         string  `db:"image"`
	Active        bool    `db:"active"`
	model.Metadata
}
