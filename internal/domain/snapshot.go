package domain

// Snapshot is the complete record set. It is what gets loaded at startup and
// rewritten on every mutation.
type Snapshot struct {
	Customers    []Customer
	Staff        []Staff
	Rooms        []Room
	Reservations []Reservation
}

// EmptySnapshot returns a snapshot with non-nil, empty collections.
func EmptySnapshot() Snapshot {
	return Snapshot{
		Customers:    []Customer{},
		Staff:        []Staff{},
		Rooms:        []Room{},
		Reservations: []Reservation{},
	}
}

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Customers:    make([]Customer, len(s.Customers)),
		Staff:        make([]Staff, len(s.Staff)),
		Rooms:        make([]Room, len(s.Rooms)),
		Reservations: make([]Reservation, 0, len(s.Reservations)),
	}
	copy(out.Customers, s.Customers)
	copy(out.Staff, s.Staff)
	copy(out.Rooms, s.Rooms)
	for _, r := range s.Reservations {
		out.Reservations = append(out.Reservations, r.Clone())
	}
	return out
}
