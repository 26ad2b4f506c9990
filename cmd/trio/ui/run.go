package ui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen menu and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	p := tea.NewProgram(NewModel(opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
