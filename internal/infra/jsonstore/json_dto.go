package jsonstore

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// storeDocument is the on-disk layout. The Legacy* arrays are only read:
// they hold documents written by the first version of the tool.
type storeDocument struct {
	Customers    []customerDTO    `json:"customers"`
	Staff        []staffDTO       `json:"staff"`
	Rooms        []roomDTO        `json:"rooms"`
	Reservations []reservationDTO `json:"reservations"`

	LegacyCustomers    []legacyCustomerDTO    `json:"clientes,omitempty"`
	LegacyStaff        []legacyStaffDTO       `json:"funcionarios,omitempty"`
	LegacyRooms        []legacyRoomDTO        `json:"quartos,omitempty"`
	LegacyReservations []legacyReservationDTO `json:"reservas,omitempty"`
}

type customerDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	BirthDate  string `json:"birthDate"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email"`
	Secret     string `json:"secret"`
}

type staffDTO struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	NationalID string `json:"nationalId"`
	Email      string `json:"email"`
	Secret     string `json:"secret"`
}

type roomDTO struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	BedCount          flexInt   `json:"bedCount"`
	PricePerNight     flexFloat `json:"pricePerNight"`
	AvailableQuantity flexInt   `json:"availableQuantity"`
}

type reservationDTO struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customerId"`
	RoomName   string     `json:"roomName"`
	Status     string     `json:"status"`
	CheckIn    string     `json:"checkIn"`
	CheckOut   string     `json:"checkOut"`
	Rating     *ratingDTO `json:"rating,omitempty"`
}

type ratingDTO struct {
	Score   flexInt `json:"score"`
	Comment string  `json:"comment"`
}

type legacyCustomerDTO struct {
	ID             string `json:"id"`
	Nome           string `json:"nome"`
	DataNascimento string `json:"dataNascimento"`
	CPF            string `json:"cpf"`
	Email          string `json:"email"`
	Senha          string `json:"senha"`
}

type legacyStaffDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Senha    string `json:"senha"`
}

type legacyRoomDTO struct {
	ID            string    `json:"id"`
	Nome          string    `json:"nome"`
	Descricao     string    `json:"descricao"`
	QtdCamas      flexInt   `json:"qtdCamas"`
	PrecoPorNoite flexFloat `json:"precoPorNoite"`
	QtdDisponivel flexInt   `json:"qtdDisponivel"`
}

type legacyReservationDTO struct {
	ID         string           `json:"id"`
	ClienteID  string           `json:"clienteId"`
	QuartoNome string           `json:"quartoNome"`
	Status     string           `json:"status"`
	CheckIn    string           `json:"checkIn"`
	CheckOut   string           `json:"checkOut"`
	Avaliacao  *legacyRatingDTO `json:"avaliacao"`
}

type legacyRatingDTO struct {
	Nota       flexInt `json:"nota"`
	Comentario string  `json:"comentario"`
}

// flexInt decodes a JSON number or a numeric string. Legacy stores kept raw
// prompt input, so "2" and 2 both show up. Non-numeric strings decode as 0;
// fractions are rounded and out-of-range values clamp to the int range.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	f, err := decodeFlexNumber(b)
	if err != nil {
		return err
	}
	*n = flexInt(roundToInt(f))
	return nil
}

func roundToInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= float64(math.MaxInt):
		return math.MaxInt
	case f <= float64(math.MinInt):
		return math.MinInt
	}
	return int(math.Round(f))
}

type flexFloat float64

func (n *flexFloat) UnmarshalJSON(b []byte) error {
	f, err := decodeFlexNumber(b)
	if err != nil {
		return err
	}
	*n = flexFloat(f)
	return nil
}

func decodeFlexNumber(b []byte) (float64, error) {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		return 0, nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, err
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, nil
		}
		return f, nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return 0, err
	}
	return f, nil
}
