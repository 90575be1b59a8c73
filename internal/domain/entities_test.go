package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewCustomer_NormalizesNationalID(t *testing.T) {
	c := NewCustomer(CustomerFields{
		Name:       "Ana",
		NationalID: "123.456.789-00",
		Email:      "ana@hotel.com",
		Secret:     "pw",
	})
	if c.NationalID != "12345678900" {
		t.Fatalf("expected digits only, got %q", c.NationalID)
	}
	if !strings.HasPrefix(c.ID, PrefixCustomer) {
		t.Fatalf("expected generated customer id, got %q", c.ID)
	}
}

func TestNewCustomer_ReusesExplicitID(t *testing.T) {
	c := NewCustomer(CustomerFields{ID: "cli_fixed"})
	if c.ID != "cli_fixed" {
		t.Fatalf("expected explicit id to be kept, got %q", c.ID)
	}
}

func TestNewStaff_NormalizesNationalID(t *testing.T) {
	s := NewStaff(StaffFields{Username: "bob", NationalID: "987-65"})
	if s.NationalID != "98765" {
		t.Fatalf("expected digits only, got %q", s.NationalID)
	}
	if !strings.HasPrefix(s.ID, PrefixStaff) {
		t.Fatalf("expected staff prefix, got %q", s.ID)
	}
}

func TestNewRoom_AcceptsUnvalidatedInput(t *testing.T) {
	r := NewRoom(RoomFields{Name: "", PricePerNight: -10})
	if r.PricePerNight != -10 || r.Name != "" {
		t.Fatalf("expected garbage-in to be kept, got %+v", r)
	}
	if !strings.HasPrefix(r.ID, PrefixRoom) {
		t.Fatalf("expected room prefix, got %q", r.ID)
	}
}

func TestRoomPatch_ApplyOverwritesOnlySetFields(t *testing.T) {
	r := NewRoom(RoomFields{Name: "Suite", Description: "old", BedCount: 2, PricePerNight: 300, AvailableQuantity: 4})
	desc := "X"
	p := RoomPatch{Description: &desc}

	got := p.Apply(r)
	if got.Description != "X" {
		t.Fatalf("expected description=X, got %q", got.Description)
	}
	if got.BedCount != 2 || got.PricePerNight != 300 || got.AvailableQuantity != 4 || got.Name != "Suite" {
		t.Fatalf("expected other fields untouched, got %+v", got)
	}
	if r.Description != "old" {
		t.Fatalf("expected original room not mutated")
	}
	if p.IsEmpty() {
		t.Fatalf("expected non-empty patch")
	}
	if !(RoomPatch{}).IsEmpty() {
		t.Fatalf("expected zero patch to be empty")
	}
}

func TestNewReservation_Defaults(t *testing.T) {
	r := NewReservation(ReservationFields{
		CustomerID: "c1",
		RoomName:   "Suite",
		CheckIn:    "2024-01-01",
		CheckOut:   "2024-01-03",
	})
	if r.Status != StatusPending {
		t.Fatalf("expected pending, got %q", r.Status)
	}
	if r.Rating != nil {
		t.Fatalf("expected no rating, got %+v", r.Rating)
	}
	if !strings.HasPrefix(r.ID, PrefixReservation) {
		t.Fatalf("expected reservation prefix, got %q", r.ID)
	}
}

func TestNewReservation_CopiesRating(t *testing.T) {
	in := &Rating{Score: 5, Comment: "great"}
	r := NewReservation(ReservationFields{Rating: in})
	in.Score = 1
	if r.Rating.Score != 5 {
		t.Fatalf("expected rating to be copied, got %d", r.Rating.Score)
	}
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  Status
	}{
		{"pending", StatusPending},
		{" Postponed ", StatusPostponed},
		{"COMPLETED", StatusCompleted},
		{"cancelled", StatusCancelled},
		{"pendente", StatusPending},
		{"adiada", StatusPostponed},
		{"realizada", StatusCompleted},
		{"cancelada", StatusCancelled},
	}
	for _, c := range cases {
		got, err := ParseStatus(c.input)
		if err != nil {
			t.Fatalf("ParseStatus(%q) error: %v", c.input, err)
		}
		if got != c.want {
			t.Errorf("ParseStatus(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestParseStatus_RejectsUnknown(t *testing.T) {
	_, err := ParseStatus("archived")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrInvalidStatus) || !IsKind(err, KindInvalidStatus) {
		t.Fatalf("expected invalid status error, got %v", err)
	}
	if Status("archived").Valid() {
		t.Fatal("expected Valid=false for unknown status")
	}
}

func TestSnapshotClone_IsDeep(t *testing.T) {
	s := EmptySnapshot()
	s.Rooms = append(s.Rooms, Room{ID: "r1", Name: "Suite"})
	s.Reservations = append(s.Reservations, Reservation{ID: "x", Rating: &Rating{Score: 3}})

	c := s.Clone()
	c.Rooms[0].Name = "Other"
	c.Reservations[0].Rating.Score = 1

	if s.Rooms[0].Name != "Suite" {
		t.Fatalf("expected rooms not shared")
	}
	if s.Reservations[0].Rating.Score != 3 {
		t.Fatalf("expected rating not shared")
	}
}
