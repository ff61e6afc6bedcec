package tui

import (
	"fmt"
	"strings"
)

// ViewMode selects which screen the console runs. It is parsed once at
// startup and never changes.
type ViewMode int

const (
	ModeAdmin ViewMode = iota
	ModeOperator
	ModeFloor
)

func (m ViewMode) String() string {
	switch m {
	case ModeAdmin:
		return "admin"
	case ModeOperator:
		return "operator"
	case ModeFloor:
		return "floor"
	default:
		return fmt.Sprintf("ViewMode(%d)", int(m))
	}
}

func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin", "":
		return ModeAdmin, nil
	case "operator":
		return ModeOperator, nil
	case "floor", "display":
		return ModeFloor, nil
	default:
		return 0, fmt.Errorf("unknown view %q (want admin, operator or floor)", s)
	}
}
