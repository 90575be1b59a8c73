package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/innkeep/internal/domain"
)

// Views used for --format json. Secrets never leave the store through the CLI.
type customerView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BirthDate  string `json:"birthDate"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email"`
}

type staffView struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email"`
}

type roomView struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	BedCount          int     `json:"bedCount"`
	PricePerNight     float64 `json:"pricePerNight"`
	AvailableQuantity int     `json:"availableQuantity"`
}

type ratingView struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

type reservationView struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	RoomName   string      `json:"roomName"`
	Status     string      `json:"status"`
	CheckIn    string      `json:"checkIn"`
	CheckOut   string      `json:"checkOut"`
	Rating     *ratingView `json:"rating,omitempty"`
}

func customerViews(in []domain.Customer) []customerView {
	out := make([]customerView, 0, len(in))
	for _, c := range in {
		out = append(out, customerView{ID: c.ID, Name: c.Name, BirthDate: c.BirthDate, NationalID: c.NationalID, Email: c.Email})
	}
	return out
}

func staffViews(in []domain.Staff) []staffView {
	out := make([]staffView, 0, len(in))
	for _, s := range in {
		out = append(out, staffView{ID: s.ID, Username: s.Username, NationalID: s.NationalID, Email: s.Email})
	}
	return out
}

func roomViews(in []domain.Room) []roomView {
	out := make([]roomView, 0, len(in))
	for _, r := range in {
		out = append(out, roomView(r))
	}
	return out
}

func reservationViews(in []domain.Reservation) []reservationView {
	out := make([]reservationView, 0, len(in))
	for _, r := range in {
		v := reservationView{
			ID:         r.ID,
			CustomerID: r.CustomerID,
			RoomName:   r.RoomName,
			Status:     string(r.Status),
			CheckIn:    r.CheckIn,
			CheckOut:   r.CheckOut,
		}
		if r.Rating != nil {
			v.Rating = &ratingView{Score: r.Rating.Score, Comment: r.Rating.Comment}
		}
		out = append(out, v)
	}
	return out
}

// printList writes items as JSON or hands them to pretty for the default
// table-like output.
func printList[T any](w io.Writer, format string, items []T, pretty func(io.Writer, []T)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	case "pretty", "":
		if len(items) == 0 {
			fmt.Fprintln(w, "(none)")
			return nil
		}
		pretty(w, items)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyCustomers(w io.Writer, in []customerView) {
	for _, c := range in {
		fmt.Fprintf(w, "- %s  %s\n", c.ID, c.Name)
		fmt.Fprintf(w, "  email: %s  national id: %s  born: %s\n", c.Email, c.NationalID, c.BirthDate)
	}
}

func printPrettyStaff(w io.Writer, in []staffView) {
	for _, s := range in {
		fmt.Fprintf(w, "- %s  %s\n", s.ID, s.Username)
		fmt.Fprintf(w, "  email: %s  national id: %s\n", s.Email, s.NationalID)
	}
}

func printPrettyRooms(w io.Writer, in []roomView) {
	for _, r := range in {
		fmt.Fprintf(w, "- %s  (%s)\n", r.Name, r.ID)
		if strings.TrimSpace(r.Description) != "" {
			fmt.Fprintf(w, "  %s\n", r.Description)
		}
		fmt.Fprintf(w, "  beds: %d  price/night: %.2f  available: %d\n", r.BedCount, r.PricePerNight, r.AvailableQuantity)
	}
}

func printPrettyReservations(w io.Writer, in []reservationView) {
	for _, r := range in {
		fmt.Fprintf(w, "- [%s] %s  room=%s customer=%s\n", r.Status, r.ID, r.RoomName, r.CustomerID)
		fmt.Fprintf(w, "  %s → %s\n", r.CheckIn, r.CheckOut)
		if r.Rating != nil {
			fmt.Fprintf(w, "  rating: %d %s\n", r.Rating.Score, r.Rating.Comment)
		}
	}
}
