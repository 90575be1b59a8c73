package domain

// Room is a bookable room type. Name is the business key used by edit and
// delete, and must be unique.
type Room struct {
	ID                string
	Name              string
	Description       string
	BedCount          int
	PricePerNight     float64
	AvailableQuantity int
}

// RoomFields is the raw input used to build a Room.
type RoomFields struct {
	ID                string
	Name              string
	Description       string
	BedCount          int
	PricePerNight     float64
	AvailableQuantity int
}

// RoomPatch holds the fields to overwrite on an existing room.
// Nil fields keep their current value.
type RoomPatch struct {
	Name              *string
	Description       *string
	BedCount          *int
	PricePerNight     *float64
	AvailableQuantity *int
}

func NewRoom(f RoomFields) Room {
	id := f.ID
	if id == "" {
		id = NewID(PrefixRoom)
	}
	return Room{
		ID:                id,
		Name:              f.Name,
		Description:       f.Description,
		BedCount:          f.BedCount,
		PricePerNight:     f.PricePerNight,
		AvailableQuantity: f.AvailableQuantity,
	}
}

// Apply returns a copy of r with the patch merged on top.
func (p RoomPatch) Apply(r Room) Room {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.BedCount != nil {
		r.BedCount = *p.BedCount
	}
	if p.PricePerNight != nil {
		r.PricePerNight = *p.PricePerNight
	}
	if p.AvailableQuantity != nil {
		r.AvailableQuantity = *p.AvailableQuantity
	}
	return r
}

// IsEmpty reports whether the patch changes nothing.
func (p RoomPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.BedCount == nil &&
		p.PricePerNight == nil && p.AvailableQuantity == nil
}
