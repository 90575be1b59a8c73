package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/innkeep/internal/domain"
)

const actionTimeout = 10 * time.Second

// inputError is a validation failure shown to the user verbatim.
type inputError string

func (e inputError) Error() string { return string(e) }

// cmdSubmit runs the action behind a submitted form on a background goroutine.
func cmdSubmit(deps Deps, sess session, act action, v []string) tea.Cmd {
	return func() tea.Msg {
		log := deps.Logger
		if log == nil {
			log = slog.New(slog.NewJSONHandler(io.Discard, nil))
		}

		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		msg := submit(ctx, deps, sess, act, v)
		switch mm := msg.(type) {
		case actionDoneMsg:
			if mm.err != nil {
				log.Warn("tui.action.failed", "action", int(act), "err", mm.err)
			}
		case loginDoneMsg:
			if mm.err != nil {
				log.Info("tui.login.failed", "action", int(act))
			}
		}
		return msg
	}
}

func submit(ctx context.Context, deps Deps, sess session, act action, v []string) tea.Msg {
	mgr := deps.Manager

	switch act {
	case actLoginCustomer:
		c, err := mgr.AuthenticateCustomer(ctx, v[0], v[1])
		return loginDoneMsg{role: roleCustomer, customer: c, err: err}

	case actLoginStaff:
		s, err := mgr.AuthenticateStaff(ctx, v[0], v[1])
		return loginDoneMsg{role: roleStaff, staff: s, err: err}

	case actRegisterCustomer:
		if err := validEmail(v[3]); err != nil {
			return actionDoneMsg{err: err}
		}
		if err := validDate("Birth date", v[1]); err != nil {
			return actionDoneMsg{err: err}
		}
		c, err := mgr.RegisterCustomer(ctx, domain.CustomerFields{
			Name: v[0], BirthDate: v[1], NationalID: v[2], Email: v[3], Secret: v[4],
		})
		return done(err, "Customer registered: "+c.ID)

	case actRegisterStaff:
		if err := validEmail(v[2]); err != nil {
			return actionDoneMsg{err: err}
		}
		s, err := mgr.RegisterStaff(ctx, domain.StaffFields{
			Username: v[0], NationalID: v[1], Email: v[2], Secret: v[3],
		})
		return done(err, "Staff registered: "+s.ID)

	case actChangeStatus:
		r, err := mgr.SetReservationStatus(ctx, v[0], v[1])
		return done(err, fmt.Sprintf("Reservation %s is now %s", r.ID, r.Status))

	case actAddRoom:
		beds, err := parseCount("Beds", v[2])
		if err != nil {
			return actionDoneMsg{err: err}
		}
		price, err := parsePrice(v[3])
		if err != nil {
			return actionDoneMsg{err: err}
		}
		avail, err := parseCount("Available", v[4])
		if err != nil {
			return actionDoneMsg{err: err}
		}
		r, err := mgr.RegisterRoom(ctx, domain.RoomFields{
			Name: v[0], Description: v[1], BedCount: beds, PricePerNight: price, AvailableQuantity: avail,
		})
		return done(err, fmt.Sprintf("Room %q added", r.Name))

	case actEditRoom:
		desc := v[1]
		r, err := mgr.EditRoom(ctx, v[0], domain.RoomPatch{Description: &desc})
		return done(err, fmt.Sprintf("Room %q updated", r.Name))

	case actDeleteRoom:
		n, err := mgr.DeleteRoom(ctx, v[0])
		return done(err, fmt.Sprintf("Deleted %d room(s)", n))

	case actMakeReservation:
		if err := validDate("Check-in", v[1]); err != nil {
			return actionDoneMsg{err: err}
		}
		if err := validDate("Check-out", v[2]); err != nil {
			return actionDoneMsg{err: err}
		}
		r, err := mgr.CreateReservation(ctx, domain.ReservationFields{
			CustomerID: sess.customer.ID, RoomName: v[0], CheckIn: v[1], CheckOut: v[2],
		})
		return done(err, "Reservation created: "+r.ID)

	case actCancelReservation:
		if err := ownReservation(deps, sess, v[0]); err != nil {
			return actionDoneMsg{err: err}
		}
		r, err := mgr.CancelReservation(ctx, v[0])
		return done(err, fmt.Sprintf("Reservation %s cancelled", r.ID))

	case actRateStay:
		if err := ownReservation(deps, sess, v[0]); err != nil {
			return actionDoneMsg{err: err}
		}
		score, err := parseCount("Score", v[1])
		if err != nil {
			return actionDoneMsg{err: err}
		}
		r, err := mgr.RateReservation(ctx, v[0], domain.Rating{Score: score, Comment: v[2]})
		return done(err, fmt.Sprintf("Thanks for rating %s", r.ID))
	}

	return actionDoneMsg{err: fmt.Errorf("unknown action %d", act)}
}

func done(err error, toast string) actionDoneMsg {
	if err != nil {
		return actionDoneMsg{err: err}
	}
	return actionDoneMsg{toast: toast}
}

// ownReservation lets customers touch only their own reservations. Someone
// else's id looks exactly like a missing one.
func ownReservation(deps Deps, sess session, id string) error {
	if sess.role != roleCustomer {
		return nil
	}
	for _, r := range deps.Manager.ReservationsFor(sess.customer.ID) {
		if r.ID == id {
			return nil
		}
	}
	return domain.NotFound("tui.own_reservation", "reservation", id)
}

func validEmail(s string) error {
	if s == "" || domain.ValidEmail(s) {
		return nil
	}
	return inputError("Invalid email")
}

func validDate(label, s string) error {
	if s == "" {
		return nil
	}
	if _, ok := domain.ParseDate(s); !ok {
		return inputError(label + " must look like YYYY-MM-DD or DD/MM/YYYY")
	}
	return nil
}

func parseCount(label, s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, inputError(label + " must be a whole number")
	}
	return n, nil
}

func parsePrice(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, inputError("Price must be a number like 199.90")
	}
	return f, nil
}
