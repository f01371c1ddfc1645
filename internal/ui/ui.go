package ui

import tea "github.com/charmbracelet/bubbletea"

// Run starts the terminal program and blocks until the user quits or
// the context is cancelled.
func Run(opts Options) error {
	program := tea.NewProgram(New(opts),
		tea.WithAltScreen(),
		tea.WithContext(opts.Context),
	)
	_, err := program.Run()
	return err
}
