package usecase

import (
	"context"
	"strings"

	"github.com/aalvaropc/innkeep/internal/domain"
)

func (m *Manager) RegisterCustomer(ctx context.Context, f domain.CustomerFields) (domain.Customer, error) {
	sealed, err := m.creds.Seal(f.Secret)
	if err != nil {
		return domain.Customer{}, &domain.OpError{Op: "usecase.register_customer", Kind: domain.KindExecution, Err: err}
	}
	f.Secret = sealed
	f.ID = m.id(f.ID, domain.PrefixCustomer)

	c := domain.NewCustomer(f)
	err = m.mutate(ctx, "register_customer", func(s *domain.Snapshot) error {
		if hasID(s.Customers, c.ID, func(x domain.Customer) string { return x.ID }) {
			return idConflict("usecase.register_customer", "customer", c.ID)
		}
		s.Customers = append(s.Customers, c)
		return nil
	})
	if err != nil {
		return domain.Customer{}, err
	}

	m.log.Info("customer.registered", "customer_id", c.ID)
	return c, nil
}

// AuthenticateCustomer returns the first customer whose email or national id
// equals identifier and whose secret verifies.
func (m *Manager) AuthenticateCustomer(ctx context.Context, identifier, secret string) (domain.Customer, error) {
	if err := ctx.Err(); err != nil {
		return domain.Customer{}, err
	}

	var (
		found domain.Customer
		ok    bool
	)
	m.read(func(s *domain.Snapshot) {
		for _, c := range s.Customers {
			if (c.Email == identifier || matchesNationalID(c.NationalID, identifier)) &&
				m.creds.Verify(c.Secret, secret) {
				found, ok = c, true
				return
			}
		}
	})
	if !ok {
		m.log.Info("customer.login.rejected")
		return domain.Customer{}, domain.NotFound("usecase.authenticate_customer", "customer", identifier)
	}

	m.log.Info("customer.login", "customer_id", found.ID)
	return found, nil
}

func (m *Manager) RegisterStaff(ctx context.Context, f domain.StaffFields) (domain.Staff, error) {
	sealed, err := m.creds.Seal(f.Secret)
	if err != nil {
		return domain.Staff{}, &domain.OpError{Op: "usecase.register_staff", Kind: domain.KindExecution, Err: err}
	}
	f.Secret = sealed
	f.ID = m.id(f.ID, domain.PrefixStaff)

	st := domain.NewStaff(f)
	err = m.mutate(ctx, "register_staff", func(s *domain.Snapshot) error {
		if hasID(s.Staff, st.ID, func(x domain.Staff) string { return x.ID }) {
			return idConflict("usecase.register_staff", "staff", st.ID)
		}
		s.Staff = append(s.Staff, st)
		return nil
	})
	if err != nil {
		return domain.Staff{}, err
	}

	m.log.Info("staff.registered", "staff_id", st.ID)
	return st, nil
}

// AuthenticateStaff matches on username or email. Usernames are not unique;
// the first match wins.
func (m *Manager) AuthenticateStaff(ctx context.Context, identifier, secret string) (domain.Staff, error) {
	if err := ctx.Err(); err != nil {
		return domain.Staff{}, err
	}

	var (
		found domain.Staff
		ok    bool
	)
	m.read(func(s *domain.Snapshot) {
		for _, st := range s.Staff {
			if (st.Username == identifier || st.Email == identifier) &&
				m.creds.Verify(st.Secret, secret) {
				found, ok = st, true
				return
			}
		}
	})
	if !ok {
		m.log.Info("staff.login.rejected")
		return domain.Staff{}, domain.NotFound("usecase.authenticate_staff", "staff", identifier)
	}

	m.log.Info("staff.login", "staff_id", found.ID)
	return found, nil
}

// matchesNationalID compares against the stored digits-only id. Identifiers
// that are not emails are normalized first, so "123.456.789-00" works too.
func matchesNationalID(stored, identifier string) bool {
	if stored == "" {
		return false
	}
	if stored == identifier {
		return true
	}
	if strings.Contains(identifier, "@") {
		return false
	}
	return domain.DigitsOnly(identifier) == stored
}
