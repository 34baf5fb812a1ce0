package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"lifequest/internal/engine"
)

// RunBoard opens the interactive dashboard. The board subscribes to the
// engine's change signals so any mutation triggers a re-read.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newBoardModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))

	svc.Subscribe(func(ev engine.Event) {
		switch ev.Kind {
		case engine.EventExpPreview, engine.EventClearExpPreview:
			// Previews are hypothetical; the board shows committed state.
		default:
			p.Send(storeChangedMsg{})
		}
	})

	_, err := p.Run()
	return err
}
