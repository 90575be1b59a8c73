package domain

// Staff is a hotel employee with access to the back-office menu.
type Staff struct {
	ID         string
	Username   string
	NationalID string // digits only
	Email      string
	Secret     string
}

// StaffFields is the raw input used to build a Staff record.
type StaffFields struct {
	ID         string
	Username   string
	NationalID string
	Email      string
	Secret     string
}

func NewStaff(f StaffFields) Staff {
	id := f.ID
	if id == "" {
		id = NewID(PrefixStaff)
	}
	return Staff{
		ID:         id,
		Username:   f.Username,
		NationalID: DigitsOnly(f.NationalID),
		Email:      f.Email,
		Secret:     f.Secret,
	}
}
