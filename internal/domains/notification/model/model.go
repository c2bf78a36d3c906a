package model

import "inn/shared/model"

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID        = "id"
	FieldKind      = "kind"
	FieldTitle     = "title"
	FieldBody      = "body"
	FieldBookingID = "booking_id"
	FieldRead      = "read"
)

const (
	KindBookingCreated    = "booking_created"
	KindBookingCheckedIn  = "booking_checked_in"
	KindBookingCheckedOut = "booking_checked_out"
	KindBookingCancelled  = "booking_cancelled"
)

type Notification struct {
	ID        string `db:"id"`
	Kind      string `db:"kind"`
	Title     string `db:"title"`
	Body      string `db:"body"`
	BookingID string `db:"booking_id"`
	Read      bool   `db:"read"`
	model.Metadata
}
