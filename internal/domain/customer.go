package domain

// Customer is a hotel guest able to log in and book rooms.
type Customer struct {
	ID         string
	Name       string
	BirthDate  string
	NationalID string // digits only
	Email      string
	Secret     string // opaque credential, format decided by the credential verifier
}

// CustomerFields is the raw input used to build a Customer.
// ID is set only when rebuilding a stored record.
type CustomerFields struct {
	ID         string
	Name       string
	BirthDate  string
	NationalID string
	Email      string
	Secret     string
}

func NewCustomer(f CustomerFields) Customer {
	id := f.ID
	if id == "" {
		id = NewID(PrefixCustomer)
	}
	return Customer{
		ID:         id,
		Name:       f.Name,
		BirthDate:  f.BirthDate,
		NationalID: DigitsOnly(f.NationalID),
		Email:      f.Email,
		Secret:     f.Secret,
	}
}
