package dto

import (
	"time"

	"github.com/google/uuid"

	"inn/internal/domains/booking/lifecycle"
	"inn/internal/domains/booking/model"
	"inn/shared"
	"inn/shared/constant"
	gDto "inn/shared/dto"
	gModel "inn/shared/model"
	"inn/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID        string  `json:"room_id"         validate:"required"`
	HotelID       string  `json:"hotel_id"        validate:"required"`
	GuestName     string  `json:"guest_name"      validate:"required,max=100"`
	Phone         string  `json:"phone"           validate:"omitempty,max=20"`
	Email         string  `json:"email"           validate:"omitempty,email,max=100"`
	Notes         string  `json:"notes"           validate:"omitempty,max=500"`
	CheckIn       string  `json:"check_in"        validate:"required"`
	CheckOut      string  `json:"check_out"       validate:"required"`
	PricePerNight float64 `json:"price_per_night" validate:"omitempty,gte=0"`
	PaidAmount    float64 `json:"paid_amount"     validate:"omitempty,gte=0"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.CalendarFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.CalendarFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	stay := lifecycle.Recalculate(checkIn, checkOut, c.PricePerNight, c.PaidAmount)

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		HotelID:       c.HotelID,
		GuestName:     c.GuestName,
		Phone:         c.Phone,
		Email:         c.Email,
		Notes:         c.Notes,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PricePerNight: c.PricePerNight,
		PaidAmount:    c.PaidAmount,
		Nights:        stay.Nights,
		TotalAmount:   stay.Total,
		Balance:       stay.Balance,
		Status:        string(lifecycle.StatusBooked),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// UpdateBookingRequest carries the editable fields. Dates, rate, and paid
// amount trigger a recalculation of the derived columns in the service.
// Status is deliberately absent: it only moves through the transition
// endpoints.
type UpdateBookingRequest struct {
	GuestName     string   `db:"guest_name"      json:"guest_name"      validate:"omitempty,max=100"`
	Phone         string   `db:"phone"           json:"phone"           validate:"omitempty,max=20"`
	Email         string   `db:"email"           json:"email"           validate:"omitempty,email,max=100"`
	Notes         string   `db:"notes"           json:"notes"           validate:"omitempty,max=500"`
	CheckIn       string   `json:"check_in"      validate:"omitempty"`
	CheckOut      string   `json:"check_out"     validate:"omitempty"`
	PricePerNight *float64 `json:"price_per_night" validate:"omitempty,gte=0"`
	PaidAmount    *float64 `json:"paid_amount"   validate:"omitempty,gte=0"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	RoomID        string  `json:"room_id"`
	HotelID       string  `json:"hotel_id"`
	GuestName     string  `json:"guest_name"`
	Phone         string  `json:"phone"`
	Email         string  `json:"email"`
	Notes         string  `json:"notes"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	PricePerNight float64 `json:"price_per_night"`
	PaidAmount    float64 `json:"paid_amount"`
	Nights        int     `json:"total_number_of_days"`
	TotalAmount   float64 `json:"total_amount"`
	Balance       float64 `json:"balance_payment"`
	Status        string  `json:"status"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(mod model.Booking) {
	status, _ := lifecycle.ParseStatus(mod.Status)

	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.HotelID = mod.HotelID
	r.GuestName = mod.GuestName
	r.Phone = mod.Phone
	r.Email = mod.Email
	r.Notes = mod.Notes
	r.CheckIn = mod.CheckIn.Format(constant.CalendarFormat)
	r.CheckOut = mod.CheckOut.Format(constant.CalendarFormat)
	r.PricePerNight = mod.PricePerNight
	r.PaidAmount = mod.PaidAmount
	r.Nights = mod.Nights
	r.TotalAmount = mod.TotalAmount
	r.Balance = mod.Balance
	r.Status = string(status)
	r.Metadata.FromModel(mod.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the payload published to Kafka on every lifecycle
// transition, consumed by the notification worker.
type BookingEvent struct {
	BookingID  string  `json:"booking_id"`
	RoomID     string  `json:"room_id"`
	HotelID    string  `json:"hotel_id"`
	GuestName  string  `json:"guest_name"`
	GuestEmail string  `json:"guest_email"`
	Event      string  `json:"event"`
	Status     string  `json:"status"`
	Total      float64 `json:"total_amount"`
	Balance    float64 `json:"balance_payment"`
	OccurredAt string  `json:"occurred_at"`
}
