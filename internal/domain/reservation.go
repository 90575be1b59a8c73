package domain

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of a reservation.
//
// Transitions are unrestricted: any status may be set from any other,
// including cancelled, which is not terminal.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPostponed Status = "postponed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every legal status in display order.
var Statuses = []Status{StatusPending, StatusPostponed, StatusCompleted, StatusCancelled}

// Spellings written by the first version of the tool.
var legacyStatuses = map[string]Status{
	"pendente":  StatusPending,
	"adiada":    StatusPostponed,
	"realizada": StatusCompleted,
	"cancelada": StatusCancelled,
}

// Valid reports whether s is one of the four statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPostponed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ParseStatus maps user input to a Status. Matching is case-insensitive and
// accepts the legacy spellings.
func ParseStatus(in string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(in))
	if s := Status(key); s.Valid() {
		return s, nil
	}
	if s, ok := legacyStatuses[key]; ok {
		return s, nil
	}
	return "", &OpError{
		Op:   "domain.parse_status",
		Kind: KindInvalidStatus,
		Err:  fmt.Errorf("%q (expected pending|postponed|completed|cancelled): %w", in, ErrInvalidStatus),
	}
}

// Rating is a guest's evaluation of a stay.
type Rating struct {
	Score   int
	Comment string
}

// Reservation books a room (by name) for a customer (by id). Both are weak
// references: nothing cascades when the referenced record goes away.
type Reservation struct {
	ID         string
	CustomerID string
	RoomName   string
	Status     Status
	CheckIn    string
	CheckOut   string
	Rating     *Rating
}

// ReservationFields is the raw input used to build a Reservation.
type ReservationFields struct {
	ID         string
	CustomerID string
	RoomName   string
	Status     Status
	CheckIn    string
	CheckOut   string
	Rating     *Rating
}

func NewReservation(f ReservationFields) Reservation {
	id := f.ID
	if id == "" {
		id = NewID(PrefixReservation)
	}
	status := f.Status
	if status == "" {
		status = StatusPending
	}
	var rating *Rating
	if f.Rating != nil {
		r := *f.Rating
		rating = &r
	}
	return Reservation{
		ID:         id,
		CustomerID: f.CustomerID,
		RoomName:   f.RoomName,
		Status:     status,
		CheckIn:    f.CheckIn,
		CheckOut:   f.CheckOut,
		Rating:     rating,
	}
}

// Clone returns a copy that does not share the rating pointer.
func (r Reservation) Clone() Reservation {
	if r.Rating != nil {
		rt := *r.Rating
		r.Rating = &rt
	}
	return r
}
