package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ieltsvocab/vocabquiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscapeCapturer is implemented by screens that handle Esc themselves,
// e.g. to confirm before abandoning a quiz.
type EscapeCapturer interface {
	CapturesEscape() bool
}

// StatusProvider supplies the right-hand side of the header.
type StatusProvider interface {
	Status() string
}
