package model

import (
	"time"

	"inn/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldHotelID       = "hotel_id"
	FieldGuestName     = "guest_name"
	FieldPhone         = "phone"
	FieldEmail         = "email"
	FieldNotes         = "notes"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldPricePerNight = "price_per_night"
	FieldPaidAmount    = "paid_amount"
	FieldNights        = "total_number_of_days"
	FieldTotalAmount   = "total_amount"
	FieldBalance       = "balance_payment"
	FieldStatus        = "status"
	FieldCreatedBy     = "created_by"
)

// Booking is a reservation linking a guest, a room, a date range, and payment
// state. Nights, TotalAmount, and Balance are derived columns, always
// recomputed from the dates, rate, and paid amount before a write.
type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	HotelID       string    `db:"hotel_id"`
	GuestName     string    `db:"guest_name"`
	Phone         string    `db:"phone"`
	Email         string    `db:"email"`
	Notes         string    `db:"notes"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	PricePerNight float64   `db:"price_per_night"`
	PaidAmount    float64   `db:"paid_amount"`
	Nights        int       `db:"total_number_of_days"`
	TotalAmount   float64   `db:"total_amount"`
	Balance       float64   `db:"balance_payment"`
	Status        string    `db:"status"`
	model.Metadata
}
