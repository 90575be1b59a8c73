package tui

import (
	"log/slog"

	"github.com/aalvaropc/innkeep/internal/usecase"
)

type Deps struct {
	Manager *usecase.Manager

	Root      string
	StorePath string

	Logger *slog.Logger
	Debug  bool
}
