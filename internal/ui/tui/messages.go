package tui

import "github.com/aalvaropc/innkeep/internal/domain"

type loginDoneMsg struct {
	role     role
	staff    domain.Staff
	customer domain.Customer
	err      error
}

// actionDoneMsg reports a finished form action. body, when set, is shown on
// the output screen instead of returning straight to the menu.
type actionDoneMsg struct {
	toast string
	title string
	body  string
	err   error
}
