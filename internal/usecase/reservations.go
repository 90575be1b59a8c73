package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/innkeep/internal/domain"
)

// CreateReservation books a room for a customer. New reservations are always
// pending and unrated. With the reference check on, the customer id and the
// room name must exist.
func (m *Manager) CreateReservation(ctx context.Context, f domain.ReservationFields) (domain.Reservation, error) {
	f.ID = m.id(f.ID, domain.PrefixReservation)
	f.Status = domain.StatusPending
	f.Rating = nil
	r := domain.NewReservation(f)

	err := m.mutate(ctx, "create_reservation", func(s *domain.Snapshot) error {
		if hasID(s.Reservations, r.ID, func(x domain.Reservation) string { return x.ID }) {
			return idConflict("usecase.create_reservation", "reservation", r.ID)
		}
		if m.checkRefs {
			if err := checkReferences(s, r); err != nil {
				return err
			}
		}
		s.Reservations = append(s.Reservations, r)
		return nil
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	m.log.Info("reservation.created", "reservation_id", r.ID, "customer_id", r.CustomerID, "room", r.RoomName)
	return r, nil
}

// CancelReservation sets the status to cancelled whatever it was before.
// Cancelling twice is harmless.
func (m *Manager) CancelReservation(ctx context.Context, id string) (domain.Reservation, error) {
	r, err := m.updateReservation(ctx, "cancel_reservation", id, func(r *domain.Reservation) {
		r.Status = domain.StatusCancelled
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	m.log.Info("reservation.cancelled", "reservation_id", id)
	return r, nil
}

// SetReservationStatus moves a reservation to any of the four statuses, from
// any status. Input outside the four (or their legacy spellings) is rejected
// before anything is looked up.
func (m *Manager) SetReservationStatus(ctx context.Context, id, status string) (domain.Reservation, error) {
	st, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Reservation{}, err
	}

	var from domain.Status
	r, err := m.updateReservation(ctx, "set_reservation_status", id, func(r *domain.Reservation) {
		from = r.Status
		r.Status = st
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	m.log.Info("reservation.status_changed", "reservation_id", id, "from", string(from), "to", string(st))
	return r, nil
}

// RateReservation replaces the rating wholesale. One rating per reservation;
// the last write wins.
func (m *Manager) RateReservation(ctx context.Context, id string, rating domain.Rating) (domain.Reservation, error) {
	r, err := m.updateReservation(ctx, "rate_reservation", id, func(r *domain.Reservation) {
		rt := rating
		r.Rating = &rt
	})
	if err != nil {
		return domain.Reservation{}, err
	}

	m.log.Info("reservation.rated", "reservation_id", id, "score", rating.Score)
	return r, nil
}

func (m *Manager) updateReservation(ctx context.Context, op, id string, fn func(r *domain.Reservation)) (domain.Reservation, error) {
	var out domain.Reservation

	err := m.mutate(ctx, op, func(s *domain.Snapshot) error {
		for i := range s.Reservations {
			if s.Reservations[i].ID == id {
				fn(&s.Reservations[i])
				out = s.Reservations[i].Clone()
				return nil
			}
		}
		return domain.NotFound("usecase."+op, "reservation", id)
	})
	return out, err
}

func checkReferences(s *domain.Snapshot, r domain.Reservation) error {
	customerOK := false
	for _, c := range s.Customers {
		if c.ID == r.CustomerID {
			customerOK = true
			break
		}
	}
	if !customerOK {
		return dangling("customer", r.CustomerID)
	}
	if roomIndex(s.Rooms, r.RoomName) < 0 {
		return dangling("room", r.RoomName)
	}
	return nil
}

func dangling(what, key string) error {
	return &domain.OpError{
		Op:   "usecase.create_reservation",
		Kind: domain.KindDanglingReference,
		Err:  fmt.Errorf("%s %q does not exist: %w", what, key, domain.ErrDanglingReference),
	}
}
