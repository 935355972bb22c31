package cmd

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/galleon/internal/measure/service"
	"github.com/msto63/galleon/internal/tui/converter"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Startet den interaktiven Umrechner",
		Long: `Startet die Terminal User Interface (TUI) von galleon.

Während der Eingabe wird das Ergebnis live angezeigt; Enter übernimmt
die Umrechnung in den Verlauf.

Navigation:
  Enter     - Umrechnen
  Ctrl+L    - Verlauf leeren
  Esc       - Beenden
  Ctrl+C    - Beenden`,
		RunE: a.runTUI,
	}
}

func (a *app) runTUI(cmd *cobra.Command, args []string) error {
	// Log lines would corrupt the alternate screen
	svc, err := service.NewService(service.Config{Logger: a.logger.WithOutput(io.Discard)})
	if err != nil {
		return err
	}

	model := converter.NewModel(cmd.Context(), svc, converter.Options{
		Prompt:      a.cfg.TUI.Prompt,
		HistorySize: a.cfg.TUI.HistorySize,
		Fields:      a.cfg.Output.Fields,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil {
		printError(cmd.ErrOrStderr(), "TUI", err)
		return err
	}

	return nil
}
