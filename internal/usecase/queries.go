package usecase

import "github.com/aalvaropc/innkeep/internal/domain"

// Snapshot returns a deep copy of the current state.
func (m *Manager) Snapshot() domain.Snapshot {
	var out domain.Snapshot
	m.read(func(s *domain.Snapshot) { out = s.Clone() })
	return out
}

func (m *Manager) Customers() []domain.Customer {
	return m.Snapshot().Customers
}

func (m *Manager) StaffMembers() []domain.Staff {
	return m.Snapshot().Staff
}

func (m *Manager) Rooms() []domain.Room {
	return m.Snapshot().Rooms
}

func (m *Manager) Reservations() []domain.Reservation {
	return m.Snapshot().Reservations
}

// ReservationsFor lists the reservations owned by a customer.
func (m *Manager) ReservationsFor(customerID string) []domain.Reservation {
	out := []domain.Reservation{}
	m.read(func(s *domain.Snapshot) {
		for _, r := range s.Reservations {
			if r.CustomerID == customerID {
				out = append(out, r.Clone())
			}
		}
	})
	return out
}

func (m *Manager) Customer(id string) (domain.Customer, error) {
	var (
		out domain.Customer
		ok  bool
	)
	m.read(func(s *domain.Snapshot) {
		for _, c := range s.Customers {
			if c.ID == id {
				out, ok = c, true
				return
			}
		}
	})
	if !ok {
		return domain.Customer{}, domain.NotFound("usecase.customer", "customer", id)
	}
	return out, nil
}

func (m *Manager) Room(name string) (domain.Room, error) {
	var (
		out domain.Room
		ok  bool
	)
	m.read(func(s *domain.Snapshot) {
		if i := roomIndex(s.Rooms, name); i >= 0 {
			out, ok = s.Rooms[i], true
		}
	})
	if !ok {
		return domain.Room{}, domain.NotFound("usecase.room", "room", name)
	}
	return out, nil
}

func (m *Manager) Reservation(id string) (domain.Reservation, error) {
	var (
		out domain.Reservation
		ok  bool
	)
	m.read(func(s *domain.Snapshot) {
		for _, r := range s.Reservations {
			if r.ID == id {
				out, ok = r.Clone(), true
				return
			}
		}
	})
	if !ok {
		return domain.Reservation{}, domain.NotFound("usecase.reservation", "reservation", id)
	}
	return out, nil
}
