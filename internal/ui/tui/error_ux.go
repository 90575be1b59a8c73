package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/innkeep/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var ie inputError
	if errors.As(err, &ie) {
		return string(ie)
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			switch {
			case strings.Contains(oe.Op, "authenticate"):
				return "Invalid credentials"
			case strings.Contains(oe.Op, "room"):
				return "Room not found"
			case strings.Contains(oe.Op, "reservation"):
				return "Reservation not found"
			case strings.Contains(oe.Op, "customer"):
				return "Customer not found"
			case strings.Contains(oe.Op, "workspacefinder.findroot"):
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidStatus:
			return "Unknown status (use pending, postponed, completed or cancelled)"

		case domain.KindDanglingReference:
			if oe.Err != nil && strings.HasPrefix(oe.Err.Error(), "room") {
				return "That room does not exist"
			}
			return "That customer does not exist"

		case domain.KindConflict:
			return "A room with that name already exists"

		case domain.KindStoreCorrupt:
			return "Data file is corrupt (see logs)"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid YAML at " + base + " line " + line
			}

			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeYAMLProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
