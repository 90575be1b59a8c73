package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/innkeep/internal/domain"
)

type screen int

const (
	screenMenu screen = iota
	screenForm
	screenOutput
)

type session struct {
	role     role
	staff    domain.Staff
	customer domain.Customer
}

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model
	form form
	out  viewport.Model

	outTitle string
	sess     session
	busy     bool
	toast    string
	failed   bool

	width, height int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(menuFor(roleNone), list.NewDefaultDelegate(), 0, 0)
	l.Title = "innkeep"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenMenu,
		menu:  l,
		out:   viewport.New(0, 0),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.out.Width = msg.Width - 8
		m.out.Height = msg.Height - 12
		return m, nil

	case loginDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setToast(userMessage(msg.err), true)
			m.scr = screenMenu
			return m, nil
		}
		m.sess = session{role: msg.role, staff: msg.staff, customer: msg.customer}
		m.resetMenu()
		m.setToast("Welcome, "+m.sessionName(), false)
		return m, nil

	case actionDoneMsg:
		m.busy = false
		if msg.err != nil {
			m.setToast(userMessage(msg.err), true)
			m.scr = screenMenu
			return m, nil
		}
		if msg.body != "" {
			m.showOutput(msg.title, msg.body)
			return m, nil
		}
		m.setToast(msg.toast, false)
		m.scr = screenMenu
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenForm:
			return m.updateForm(msg)
		case screenOutput:
			return m.updateOutput(msg)
		default:
			return m.updateMenu(msg)
		}
	}

	if m.scr == screenForm {
		var cmd tea.Cmd
		m.form, _, cmd = m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		if m.sess.role == roleNone {
			return m, tea.Quit
		}
		return m.logout(), nil
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		return m.startAction(it.act)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.scr = screenMenu
		return m, nil
	}
	if m.busy {
		return m, nil
	}

	f, submitted, cmd := m.form.update(msg)
	m.form = f
	if !submitted {
		return m, cmd
	}

	m.busy = true
	return m, cmdSubmit(m.deps, m.sess, f.act, f.values())
}

func (m model) updateOutput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q", "enter":
		m.scr = screenMenu
		return m, nil
	}
	var cmd tea.Cmd
	m.out, cmd = m.out.Update(msg)
	return m, cmd
}

// startAction runs a menu entry: read-only views render immediately, the rest
// open a form.
func (m model) startAction(act action) (tea.Model, tea.Cmd) {
	m.toast = ""

	switch act {
	case actQuit:
		return m, tea.Quit
	case actLogout:
		return m.logout(), nil
	case actMyData, actListReservations, actListRooms, actListCustomers, actMyReservations:
		title, body := m.render(act)
		m.showOutput(title, body)
		return m, nil
	}

	f, ok := formFor(act)
	if !ok {
		return m, nil
	}
	m.form = f
	m.scr = screenForm
	return m, textinput.Blink
}

func (m model) render(act action) (string, string) {
	mgr := m.deps.Manager
	switch act {
	case actMyData:
		if m.sess.role == roleStaff {
			return "My data", renderStaff(m.sess.staff)
		}
		return "My data", renderCustomer(m.sess.customer)
	case actListReservations:
		return "Reservations", renderReservations(mgr.Reservations())
	case actListRooms:
		return "Rooms", renderRooms(mgr.Rooms())
	case actListCustomers:
		return "Customers", renderCustomers(mgr.Customers())
	case actMyReservations:
		return "My reservations", renderReservations(mgr.ReservationsFor(m.sess.customer.ID))
	}
	return "", ""
}

func (m *model) showOutput(title, body string) {
	m.outTitle = title
	m.out.SetContent(body)
	m.out.GotoTop()
	m.scr = screenOutput
}

func (m *model) setToast(s string, failed bool) {
	m.toast = s
	m.failed = failed
}

func (m *model) resetMenu() {
	m.menu.SetItems(menuFor(m.sess.role))
	m.menu.ResetSelected()
	m.menu.Title = m.menuTitle()
	m.theme = themeFor(m.sess.role)
	m.scr = screenMenu
}

func (m model) logout() model {
	m.sess = session{}
	m.resetMenu()
	m.setToast("Logged out", false)
	return m
}

func (m model) sessionName() string {
	switch m.sess.role {
	case roleStaff:
		return m.sess.staff.Username
	case roleCustomer:
		if m.sess.customer.Name != "" {
			return m.sess.customer.Name
		}
		return m.sess.customer.Email
	}
	return ""
}

func (m model) menuTitle() string {
	switch m.sess.role {
	case roleStaff:
		return "Staff: " + m.sessionName()
	case roleCustomer:
		return "Customer: " + m.sessionName()
	}
	return "innkeep"
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("innkeep") + "\n" +
		m.theme.Subtitle.Render(fmt.Sprintf("store: %s", m.deps.StorePath)) + "\n"
	if b := m.theme.badge(m.sess.role, m.sessionName()); b != "" {
		header += b + "\n"
	}

	var toast string
	if m.toast != "" {
		style := m.theme.Toast
		if m.failed {
			style = m.theme.Error
		}
		toast = "\n" + style.Render(m.toast) + "\n"
	}

	switch m.scr {
	case screenMenu:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • q back/quit")
		return wrap.Render(header + toast + "\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help)

	case screenForm:
		body := m.form.view(m.theme)
		if m.busy {
			body += "\n\n" + m.theme.Subtitle.Render("saving…")
		}
		return wrap.Render(header + toast + "\n" + m.theme.Card.Render(body))

	case screenOutput:
		card := m.theme.Card.Render(
			m.theme.Title.Render(m.outTitle) + "\n\n" + m.out.View() + "\n\n" +
				m.theme.Help.Render("↑/↓ scroll • esc/b back"),
		)
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}
