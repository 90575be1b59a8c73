package jsonstore

import (
	"github.com/aalvaropc/innkeep/internal/domain"
)

// mapDocument rebuilds every record through the domain constructors, which
// re-normalizes national ids and fills defaults on each load.
func mapDocument(doc storeDocument) domain.Snapshot {
	snap := domain.EmptySnapshot()

	for _, c := range doc.Customers {
		snap.Customers = append(snap.Customers, domain.NewCustomer(domain.CustomerFields{
			ID: c.ID, Name: c.Name, BirthDate: c.BirthDate,
			NationalID: c.NationalID, Email: c.Email, Secret: c.Secret,
		}))
	}
	for _, c := range doc.LegacyCustomers {
		snap.Customers = append(snap.Customers, domain.NewCustomer(domain.CustomerFields{
			ID: c.ID, Name: c.Nome, BirthDate: c.DataNascimento,
			NationalID: c.CPF, Email: c.Email, Secret: c.Senha,
		}))
	}

	for _, s := range doc.Staff {
		snap.Staff = append(snap.Staff, domain.NewStaff(domain.StaffFields{
			ID: s.ID, Username: s.Username, NationalID: s.NationalID, Email: s.Email, Secret: s.Secret,
		}))
	}
	for _, s := range doc.LegacyStaff {
		snap.Staff = append(snap.Staff, domain.NewStaff(domain.StaffFields{
			ID: s.ID, Username: s.Username, NationalID: s.CPF, Email: s.Email, Secret: s.Senha,
		}))
	}

	for _, r := range doc.Rooms {
		snap.Rooms = append(snap.Rooms, domain.NewRoom(domain.RoomFields{
			ID: r.ID, Name: r.Name, Description: r.Description,
			BedCount:          int(r.BedCount),
			PricePerNight:     float64(r.PricePerNight),
			AvailableQuantity: int(r.AvailableQuantity),
		}))
	}
	for _, r := range doc.LegacyRooms {
		snap.Rooms = append(snap.Rooms, domain.NewRoom(domain.RoomFields{
			ID: r.ID, Name: r.Nome, Description: r.Descricao,
			BedCount:          int(r.QtdCamas),
			PricePerNight:     float64(r.PrecoPorNoite),
			AvailableQuantity: int(r.QtdDisponivel),
		}))
	}

	for _, r := range doc.Reservations {
		var rating *domain.Rating
		if r.Rating != nil {
			rating = &domain.Rating{Score: int(r.Rating.Score), Comment: r.Rating.Comment}
		}
		snap.Reservations = append(snap.Reservations, domain.NewReservation(domain.ReservationFields{
			ID: r.ID, CustomerID: r.CustomerID, RoomName: r.RoomName,
			Status:  mapStatus(r.Status),
			CheckIn: r.CheckIn, CheckOut: r.CheckOut,
			Rating: rating,
		}))
	}
	for _, r := range doc.LegacyReservations {
		var rating *domain.Rating
		if r.Avaliacao != nil {
			rating = &domain.Rating{Score: int(r.Avaliacao.Nota), Comment: r.Avaliacao.Comentario}
		}
		snap.Reservations = append(snap.Reservations, domain.NewReservation(domain.ReservationFields{
			ID: r.ID, CustomerID: r.ClienteID, RoomName: r.QuartoNome,
			Status:  mapStatus(r.Status),
			CheckIn: r.CheckIn, CheckOut: r.CheckOut,
			Rating: rating,
		}))
	}

	return snap
}

// mapStatus keeps unknown statuses verbatim so staff can still see and fix them.
func mapStatus(raw string) domain.Status {
	if raw == "" {
		return ""
	}
	s, err := domain.ParseStatus(raw)
	if err != nil {
		return domain.Status(raw)
	}
	return s
}

func toDocument(snap domain.Snapshot) storeDocument {
	doc := storeDocument{
		Customers:    make([]customerDTO, 0, len(snap.Customers)),
		Staff:        make([]staffDTO, 0, len(snap.Staff)),
		Rooms:        make([]roomDTO, 0, len(snap.Rooms)),
		Reservations: make([]reservationDTO, 0, len(snap.Reservations)),
	}

	for _, c := range snap.Customers {
		doc.Customers = append(doc.Customers, customerDTO{
			ID: c.ID, Name: c.Name, BirthDate: c.BirthDate,
			NationalID: c.NationalID, Email: c.Email, Secret: c.Secret,
		})
	}
	for _, s := range snap.Staff {
		doc.Staff = append(doc.Staff, staffDTO{
			ID: s.ID, Username: s.Username, NationalID: s.NationalID, Email: s.Email, Secret: s.Secret,
		})
	}
	for _, r := range snap.Rooms {
		doc.Rooms = append(doc.Rooms, roomDTO{
			ID: r.ID, Name: r.Name, Description: r.Description,
			BedCount:          flexInt(r.BedCount),
			PricePerNight:     flexFloat(r.PricePerNight),
			AvailableQuantity: flexInt(r.AvailableQuantity),
		})
	}
	for _, r := range snap.Reservations {
		dto := reservationDTO{
			ID: r.ID, CustomerID: r.CustomerID, RoomName: r.RoomName,
			Status:  string(r.Status),
			CheckIn: r.CheckIn, CheckOut: r.CheckOut,
		}
		if r.Rating != nil {
			dto.Rating = &ratingDTO{Score: flexInt(r.Rating.Score), Comment: r.Rating.Comment}
		}
		doc.Reservations = append(doc.Reservations, dto)
	}

	return doc
}
