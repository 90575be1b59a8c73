package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/innkeep/internal/domain"
)

const maxDescription = 60

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func renderCustomer(c domain.Customer) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:          %s\n", c.ID)
	fmt.Fprintf(&b, "Name:        %s\n", orDash(c.Name))
	fmt.Fprintf(&b, "Birth date:  %s\n", orDash(c.BirthDate))
	fmt.Fprintf(&b, "National id: %s\n", orDash(c.NationalID))
	fmt.Fprintf(&b, "Email:       %s\n", orDash(c.Email))
	return b.String()
}

func renderStaff(s domain.Staff) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID:          %s\n", s.ID)
	fmt.Fprintf(&b, "Username:    %s\n", orDash(s.Username))
	fmt.Fprintf(&b, "National id: %s\n", orDash(s.NationalID))
	fmt.Fprintf(&b, "Email:       %s\n", orDash(s.Email))
	return b.String()
}

func renderCustomers(in []domain.Customer) string {
	if len(in) == 0 {
		return "(no customers)"
	}
	var b strings.Builder
	for _, c := range in {
		fmt.Fprintf(&b, "- %s  %s  <%s>\n", c.ID, orDash(c.Name), orDash(c.Email))
	}
	return b.String()
}

func renderRooms(in []domain.Room) string {
	if len(in) == 0 {
		return "(no rooms)"
	}
	var b strings.Builder
	for _, r := range in {
		fmt.Fprintf(&b, "- %s\n", r.Name)
		if r.Description != "" {
			fmt.Fprintf(&b, "  %s\n", clampString(r.Description, maxDescription))
		}
		fmt.Fprintf(&b, "  beds: %d  price/night: %.2f  available: %d\n", r.BedCount, r.PricePerNight, r.AvailableQuantity)
	}
	return b.String()
}

func renderReservations(in []domain.Reservation) string {
	if len(in) == 0 {
		return "(no reservations)"
	}
	var b strings.Builder
	for _, r := range in {
		fmt.Fprintf(&b, "- %s  [%s]\n", r.ID, r.Status)
		fmt.Fprintf(&b, "  room: %s  customer: %s\n", r.RoomName, r.CustomerID)
		fmt.Fprintf(&b, "  %s → %s\n", orDash(r.CheckIn), orDash(r.CheckOut))
		if r.Rating != nil {
			fmt.Fprintf(&b, "  rating: %d", r.Rating.Score)
			if r.Rating.Comment != "" {
				fmt.Fprintf(&b, " %q", r.Rating.Comment)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
