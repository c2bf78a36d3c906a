// Package lifecycle holds the booking domain rules: stay arithmetic, the
// booking status machine, and the room availability projection. Everything in
// here is a pure function of its inputs so the service and handler layers can
// share one source of truth for nights, totals, and legal transitions.
package lifecycle

import (
	"fmt"
	"math"
	"time"
)

// Status is the closed set of booking states.
type Status string

const (
	StatusBooked     Status = "booked"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"

	// statusReserved is a legacy alias still present in older rows.
	statusReserved = "reserved"
)

// Event names a requested status transition.
type Event string

const (
	EventCheckIn  Event = "check-in"
	EventCheckOut Event = "check-out"
	EventCancel   Event = "cancel"
)

// ValidationError reports input that violates a booking invariant. The caller
// corrects the input and retries.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// InvalidTransitionError reports a transition the status machine does not
// permit from the current status.
type InvalidTransitionError struct {
	From  Status
	Event Event
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("transition %q is not allowed from status %q", e.Event, e.From)
}

// ParseStatus maps a stored status string onto the closed enum. The legacy
// "reserved" value is folded into booked.
func ParseStatus(raw string) (Status, bool) {
	switch raw {
	case string(StatusBooked), statusReserved:
		return StatusBooked, true
	case string(StatusCheckedIn):
		return StatusCheckedIn, true
	case string(StatusCheckedOut):
		return StatusCheckedOut, true
	case string(StatusCancelled):
		return StatusCancelled, true
	default:
		return Status(raw), false
	}
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// transitions is the full table of legal moves.
var transitions = map[Status]map[Event]Status{
	StatusBooked: {
		EventCheckIn: StatusCheckedIn,
		EventCancel:  StatusCancelled,
	},
	StatusCheckedIn: {
		EventCheckOut: StatusCheckedOut,
	},
}

// Transition returns the next status for the given event, or an
// InvalidTransitionError when the table has no such move.
func Transition(from Status, event Event) (Status, error) {
	next, ok := transitions[from][event]
	if !ok {
		return from, &InvalidTransitionError{From: from, Event: event}
	}

	return next, nil
}

// Nights returns the whole-day stay length between check-in and check-out.
// Both dates are normalized to midnight before differencing, so any
// time-of-day component carried by the inputs is ignored. A zero or inverted
// range yields 0, never a negative count.
func Nights(checkIn, checkOut time.Time) int {
	if checkIn.IsZero() || checkOut.IsZero() {
		return 0
	}

	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)

	if !out.After(in) {
		return 0
	}

	return int(math.Ceil(out.Sub(in).Hours() / 24))
}

// EstimatedTotal is the stay cost: nights times the nightly rate. An invalid
// rate counts as zero so a live summary never shows garbage.
func EstimatedTotal(nights int, pricePerNight float64) float64 {
	if nights <= 0 || pricePerNight <= 0 || math.IsNaN(pricePerNight) {
		return 0
	}

	return float64(nights) * pricePerNight
}

// BalanceDue is total minus paid, unclamped. A negative result is a credit
// owed back to the guest; rendering the sign is the caller's concern.
func BalanceDue(total, paid float64) float64 {
	return total - paid
}

// Stay bundles the derived values recomputed on every edit.
type Stay struct {
	Nights  int
	Total   float64
	Balance float64
}

// Recalculate derives nights, total, and balance from the booking inputs.
func Recalculate(checkIn, checkOut time.Time, pricePerNight, paid float64) Stay {
	nights := Nights(checkIn, checkOut)
	total := EstimatedTotal(nights, pricePerNight)

	return Stay{
		Nights:  nights,
		Total:   total,
		Balance: BalanceDue(total, paid),
	}
}

// ValidateBooking checks the creation invariants: a guest name and a strictly
// positive night count.
func ValidateBooking(guestName string, checkIn, checkOut time.Time) error {
	if guestName == "" {
		return &ValidationError{Message: "guest name required"}
	}

	if Nights(checkIn, checkOut) == 0 {
		return &ValidationError{Message: "check-out must be after check-in"}
	}

	return nil
}

// RoomStatus is the projected occupancy of a room, derived from its current
// booking. It is never stored.
type RoomStatus string

const (
	RoomAvailable RoomStatus = "available"
	RoomBooked    RoomStatus = "booked"
	RoomOccupied  RoomStatus = "occupied"
)

// ProjectRoomStatus maps a room's current booking status onto the displayed
// room state. A nil current booking, a terminal booking, or an unknown status
// all project to available.
func ProjectRoomStatus(current *Status) RoomStatus {
	if current == nil {
		return RoomAvailable
	}

	switch *current {
	case StatusBooked:
		return RoomBooked
	case StatusCheckedIn:
		return RoomOccupied
	default:
		return RoomAvailable
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
