package components

import (
	"fmt"
	"strings"

	"github.com/ieltsvocab/vocabquiz/internal/ui/theme"
)

// OptionList shows answer options with a cursor and A-D labels.
type OptionList struct {
	Options []string
	Cursor  int
}

// NewOptionList creates a list with the cursor on the first option.
func NewOptionList(options []string) OptionList {
	return OptionList{Options: options}
}

// Up moves the cursor up, stopping at the first option.
func (l *OptionList) Up() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// Down moves the cursor down, stopping at the last option.
func (l *OptionList) Down() {
	if l.Cursor < len(l.Options)-1 {
		l.Cursor++
	}
}

// Current returns the option under the cursor.
func (l OptionList) Current() (string, bool) {
	return l.At(l.Cursor)
}

// At returns the option at index i.
func (l OptionList) At(i int) (string, bool) {
	if i < 0 || i >= len(l.Options) {
		return "", false
	}
	return l.Options[i], true
}

// IndexForKey maps "1"-"9" and "a"-"i" to an option index.
func IndexForKey(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	switch c := key[0]; {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'i':
		return int(c - 'a'), true
	}
	return 0, false
}

// View renders the options.
func (l OptionList) View() string {
	var b strings.Builder
	for i, opt := range l.Options {
		label := string(rune('A' + i))
		if i == l.Cursor {
			b.WriteString(theme.Selected.Render(fmt.Sprintf("▸ %s)  %s", label, opt)))
		} else {
			b.WriteString(theme.Unselected.Render(fmt.Sprintf("  %s)  %s", label, opt)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
