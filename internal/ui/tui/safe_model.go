package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// maxRecovered panics are tolerated per run; past that the program quits
// instead of looping on a broken state.
const maxRecovered = 3

// guarded recovers panics raised while handling a message or drawing. The
// signed-in session survives; the user lands back on their menu.
type guarded struct {
	m      model
	log    *slog.Logger
	panics int
}

func wrapSafe(m model, log *slog.Logger) guarded {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return guarded{m: m, log: log}
}

func (g guarded) Init() tea.Cmd {
	return g.m.Init()
}

func (g guarded) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		g.report("tui.update", r)
		g.panics++

		g.m.busy = false
		g.m.resetMenu()
		g.m.setToast("Unexpected error (see logs)", true)
		next, cmd = g, nil
		if g.panics >= maxRecovered {
			cmd = tea.Quit
		}
	}()

	inner, c := g.m.Update(msg)
	if mm, ok := inner.(model); ok {
		g.m = mm
	}
	return g, c
}

func (g guarded) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			g.report("tui.view", r)
			out = "Unexpected error (see logs). Press ctrl+c to quit."
		}
	}()
	return g.m.View()
}

func (g guarded) report(where string, r any) {
	g.log.Error("panic.recovered",
		"where", where,
		"panic", fmt.Sprint(r),
		"screen", int(g.m.scr),
		"signed_in", g.m.sess.role != roleNone,
		"recovered", g.panics+1,
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = guarded{}
