package tui

import "github.com/charmbracelet/bubbles/list"

type role int

const (
	roleNone role = iota
	roleStaff
	roleCustomer
)

type action int

const (
	actQuit action = iota
	actLoginCustomer
	actLoginStaff
	actRegisterCustomer
	actRegisterStaff

	actMyData
	actLogout

	actListReservations
	actListRooms
	actListCustomers
	actChangeStatus
	actAddRoom
	actEditRoom
	actDeleteRoom

	actMakeReservation
	actCancelReservation
	actMyReservations
	actRateStay
)

type menuItem struct {
	title string
	desc  string
	act   action
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

func menuFor(r role) []list.Item {
	switch r {
	case roleStaff:
		return []list.Item{
			menuItem{"My data", "Show your staff record", actMyData},
			menuItem{"Reservations", "Every reservation in the hotel", actListReservations},
			menuItem{"Rooms", "Every room type", actListRooms},
			menuItem{"Customers", "Registered customers", actListCustomers},
			menuItem{"Change reservation status", "pending, postponed, completed or cancelled", actChangeStatus},
			menuItem{"Add room", "Register a new room type", actAddRoom},
			menuItem{"Edit room", "Change a room's description", actEditRoom},
			menuItem{"Delete room", "Remove a room by name", actDeleteRoom},
			menuItem{"Log out", "Back to the home menu", actLogout},
		}
	case roleCustomer:
		return []list.Item{
			menuItem{"My data", "Show your customer record", actMyData},
			menuItem{"Rooms", "Browse available rooms", actListRooms},
			menuItem{"Make a reservation", "Book a room", actMakeReservation},
			menuItem{"Cancel a reservation", "Cancel one of your reservations", actCancelReservation},
			menuItem{"My reservations", "Your bookings and their status", actMyReservations},
			menuItem{"Rate a stay", "Leave a score and a comment", actRateStay},
			menuItem{"Log out", "Back to the home menu", actLogout},
		}
	default:
		return []list.Item{
			menuItem{"Log in as customer", "Email or national id", actLoginCustomer},
			menuItem{"Log in as staff", "Username or email", actLoginStaff},
			menuItem{"Register customer", "Create a customer account", actRegisterCustomer},
			menuItem{"Register staff", "Create a staff account", actRegisterStaff},
			menuItem{"Quit", "Exit innkeep", actQuit},
		}
	}
}

// formFor returns the input form behind an action, or false for actions that
// run without input.
func formFor(act action) (form, bool) {
	switch act {
	case actLoginCustomer:
		return newForm(act, "Customer login",
			formField{label: "Email or national id"},
			formField{label: "Password", secret: true},
		), true
	case actLoginStaff:
		return newForm(act, "Staff login",
			formField{label: "Username or email"},
			formField{label: "Password", secret: true},
		), true
	case actRegisterCustomer:
		return newForm(act, "Register customer",
			formField{label: "Name"},
			formField{label: "Birth date", placeholder: "YYYY-MM-DD"},
			formField{label: "National id"},
			formField{label: "Email", placeholder: "name@example.com"},
			formField{label: "Password", secret: true},
		), true
	case actRegisterStaff:
		return newForm(act, "Register staff",
			formField{label: "Username"},
			formField{label: "National id"},
			formField{label: "Email"},
			formField{label: "Password", secret: true},
		), true
	case actChangeStatus:
		return newForm(act, "Change reservation status",
			formField{label: "Reservation id", placeholder: "res_…"},
			formField{label: "New status", placeholder: "pending | postponed | completed | cancelled"},
		), true
	case actAddRoom:
		return newForm(act, "Add room",
			formField{label: "Name"},
			formField{label: "Description"},
			formField{label: "Beds", placeholder: "2"},
			formField{label: "Price per night", placeholder: "199.90"},
			formField{label: "Available", placeholder: "1"},
		), true
	case actEditRoom:
		return newForm(act, "Edit room",
			formField{label: "Room name"},
			formField{label: "New description"},
		), true
	case actDeleteRoom:
		return newForm(act, "Delete room",
			formField{label: "Room name"},
		), true
	case actMakeReservation:
		return newForm(act, "Make a reservation",
			formField{label: "Room name"},
			formField{label: "Check-in", placeholder: "YYYY-MM-DD"},
			formField{label: "Check-out", placeholder: "YYYY-MM-DD"},
		), true
	case actCancelReservation:
		return newForm(act, "Cancel a reservation",
			formField{label: "Reservation id", placeholder: "res_…"},
		), true
	case actRateStay:
		return newForm(act, "Rate a stay",
			formField{label: "Reservation id", placeholder: "res_…"},
			formField{label: "Score", placeholder: "1-5"},
			formField{label: "Comment"},
		), true
	}
	return form{}, false
}
