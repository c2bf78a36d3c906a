package lifecycle_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"inn/internal/domains/booking/lifecycle"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "four night stay",
			checkIn:  date(2025, 11, 1),
			checkOut: date(2025, 11, 5),
			want:     4,
		},
		{
			name:     "single night",
			checkIn:  date(2025, 11, 1),
			checkOut: date(2025, 11, 2),
			want:     1,
		},
		{
			name:     "same day is zero",
			checkIn:  date(2025, 11, 1),
			checkOut: date(2025, 11, 1),
			want:     0,
		},
		{
			name:     "inverted range is zero, never negative",
			checkIn:  date(2025, 11, 5),
			checkOut: date(2025, 11, 1),
			want:     0,
		},
		{
			name:     "zero values are zero",
			checkIn:  time.Time{},
			checkOut: date(2025, 11, 5),
			want:     0,
		},
		{
			name:     "time of day is ignored",
			checkIn:  time.Date(2025, 11, 1, 23, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 11, 3, 1, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "25 hour gap still counts calendar days",
			checkIn:  time.Date(2025, 11, 1, 22, 0, 0, 0, time.UTC),
			checkOut: time.Date(2025, 11, 2, 23, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "crosses month boundary",
			checkIn:  date(2025, 11, 28),
			checkOut: date(2025, 12, 2),
			want:     4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lifecycle.Nights(tt.checkIn, tt.checkOut)

			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
		})
	}
}

func TestNights_Monotonic(t *testing.T) {
	checkIn := date(2025, 11, 1)
	previous := 0

	for day := 2; day <= 30; day++ {
		nights := lifecycle.Nights(checkIn, date(2025, 11, day))

		assert.GreaterOrEqual(t, nights, previous)

		previous = nights
	}
}

func TestEstimatedTotal(t *testing.T) {
	tests := []struct {
		name   string
		nights int
		rate   float64
		want   float64
	}{
		{name: "four nights at a flat rate", nights: 4, rate: 250, want: 1000},
		{name: "zero nights yields zero regardless of rate", nights: 0, rate: 900, want: 0},
		{name: "zero rate", nights: 3, rate: 0, want: 0},
		{name: "negative rate treated as zero", nights: 3, rate: -10, want: 0},
		{name: "scales linearly", nights: 7, rate: 125.5, want: 878.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, lifecycle.EstimatedTotal(tt.nights, tt.rate), 1e-9)
		})
	}
}

func TestBalanceDue(t *testing.T) {
	assert.InDelta(t, 600.0, lifecycle.BalanceDue(1000, 400), 1e-9)

	// Overpayment stays signed, the calculator never clamps.
	assert.InDelta(t, -150.0, lifecycle.BalanceDue(450, 600), 1e-9)

	assert.InDelta(t, 0.0, lifecycle.BalanceDue(0, 0), 1e-9)
}

func TestRecalculate(t *testing.T) {
	stay := lifecycle.Recalculate(date(2025, 11, 1), date(2025, 11, 5), 250, 400)

	assert.Equal(t, 4, stay.Nights)
	assert.InDelta(t, 1000.0, stay.Total, 1e-9)
	assert.InDelta(t, 600.0, stay.Balance, 1e-9)
}

func TestValidateBooking(t *testing.T) {
	tests := []struct {
		name      string
		guest     string
		checkIn   time.Time
		checkOut  time.Time
		wantError string
	}{
		{
			name:     "valid booking",
			guest:    "Ada Lovelace",
			checkIn:  date(2025, 11, 1),
			checkOut: date(2025, 11, 5),
		},
		{
			name:      "missing guest name",
			guest:     "",
			checkIn:   date(2025, 11, 1),
			checkOut:  date(2025, 11, 5),
			wantError: "guest name required",
		},
		{
			name:      "inverted dates",
			guest:     "Ada Lovelace",
			checkIn:   date(2025, 11, 5),
			checkOut:  date(2025, 11, 1),
			wantError: "check-out must be after check-in",
		},
		{
			name:      "same day",
			guest:     "Ada Lovelace",
			checkIn:   date(2025, 11, 1),
			checkOut:  date(2025, 11, 1),
			wantError: "check-out must be after check-in",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := lifecycle.ValidateBooking(tt.guest, tt.checkIn, tt.checkOut)

			if tt.wantError == "" {
				assert.NoError(t, err)

				return
			}

			var valErr *lifecycle.ValidationError

			assert.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.wantError, err.Error())
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    lifecycle.Status
		event   lifecycle.Event
		want    lifecycle.Status
		wantErr bool
	}{
		{name: "booked to checked in", from: lifecycle.StatusBooked, event: lifecycle.EventCheckIn, want: lifecycle.StatusCheckedIn},
		{name: "booked to cancelled", from: lifecycle.StatusBooked, event: lifecycle.EventCancel, want: lifecycle.StatusCancelled},
		{name: "checked in to checked out", from: lifecycle.StatusCheckedIn, event: lifecycle.EventCheckOut, want: lifecycle.StatusCheckedOut},
		{name: "booked cannot check out", from: lifecycle.StatusBooked, event: lifecycle.EventCheckOut, wantErr: true},
		{name: "checked in cannot cancel", from: lifecycle.StatusCheckedIn, event: lifecycle.EventCancel, wantErr: true},
		{name: "checked in cannot check in again", from: lifecycle.StatusCheckedIn, event: lifecycle.EventCheckIn, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := lifecycle.Transition(tt.from, tt.event)

			if tt.wantErr {
				var transErr *lifecycle.InvalidTransitionError

				assert.ErrorAs(t, err, &transErr)
				assert.Equal(t, tt.from, transErr.From)
				assert.Equal(t, tt.event, transErr.Event)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, next)
		})
	}
}

func TestTransition_TerminalStatesAbsorb(t *testing.T) {
	terminals := []lifecycle.Status{lifecycle.StatusCheckedOut, lifecycle.StatusCancelled}
	events := []lifecycle.Event{lifecycle.EventCheckIn, lifecycle.EventCheckOut, lifecycle.EventCancel}

	for _, from := range terminals {
		assert.True(t, from.IsTerminal())

		for _, event := range events {
			_, err := lifecycle.Transition(from, event)

			var transErr *lifecycle.InvalidTransitionError

			assert.True(t, errors.As(err, &transErr), "expected transition error from %s on %s", from, event)
		}
	}
}

func TestTransition_CancelledCheckInMessage(t *testing.T) {
	_, err := lifecycle.Transition(lifecycle.StatusCancelled, lifecycle.EventCheckIn)

	assert.EqualError(t, err, `transition "check-in" is not allowed from status "cancelled"`)
}

func TestCheckoutSettlesBalance(t *testing.T) {
	// Three nights at 150, 100 already paid. Checkout forces the paid
	// amount to the current total, so the balance lands at zero.
	checkIn := date(2025, 11, 1)
	checkOut := date(2025, 11, 4)
	stay := lifecycle.Recalculate(checkIn, checkOut, 150, 100)

	assert.Equal(t, 3, stay.Nights)
	assert.InDelta(t, 450.0, stay.Total, 1e-9)
	assert.InDelta(t, 350.0, stay.Balance, 1e-9)

	next, err := lifecycle.Transition(lifecycle.StatusCheckedIn, lifecycle.EventCheckOut)

	assert.NoError(t, err)
	assert.Equal(t, lifecycle.StatusCheckedOut, next)

	settled := lifecycle.Recalculate(checkIn, checkOut, 150, stay.Total)

	assert.InDelta(t, 450.0, settled.Total, 1e-9)
	assert.InDelta(t, 0.0, settled.Balance, 1e-9)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   lifecycle.Status
		wantOK bool
	}{
		{raw: "booked", want: lifecycle.StatusBooked, wantOK: true},
		{raw: "reserved", want: lifecycle.StatusBooked, wantOK: true},
		{raw: "checked_in", want: lifecycle.StatusCheckedIn, wantOK: true},
		{raw: "checked_out", want: lifecycle.StatusCheckedOut, wantOK: true},
		{raw: "cancelled", want: lifecycle.StatusCancelled, wantOK: true},
		{raw: "on-hold", wantOK: false},
		{raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run("parse "+tt.raw, func(t *testing.T) {
			got, ok := lifecycle.ParseStatus(tt.raw)

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestProjectRoomStatus(t *testing.T) {
	booked := lifecycle.StatusBooked
	checkedIn := lifecycle.StatusCheckedIn
	checkedOut := lifecycle.StatusCheckedOut
	cancelled := lifecycle.StatusCancelled

	tests := []struct {
		name    string
		current *lifecycle.Status
		want    lifecycle.RoomStatus
	}{
		{name: "no current booking", current: nil, want: lifecycle.RoomAvailable},
		{name: "booked room", current: &booked, want: lifecycle.RoomBooked},
		{name: "occupied room", current: &checkedIn, want: lifecycle.RoomOccupied},
		{name: "checked out frees the room", current: &checkedOut, want: lifecycle.RoomAvailable},
		{name: "cancelled frees the room", current: &cancelled, want: lifecycle.RoomAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lifecycle.ProjectRoomStatus(tt.current))
		})
	}
}
