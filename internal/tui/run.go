package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/hexcalc/internal/errors"
)

// Run launches the interactive converter and blocks until the user quits or
// ctx is canceled.
//
// Parameters:
//   - ctx: Cancels the program externally (signals, timeout).
//   - version: The application version shown in the title.
//
// Returns:
//   - int: The process exit code.
func Run(ctx context.Context, version string) int {
	initTUIStyles()

	p := tea.NewProgram(NewModel(version), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) || apperrors.IsContextError(err) {
			return apperrors.ExitErrorCanceled
		}
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
