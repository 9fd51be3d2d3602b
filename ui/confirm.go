// Package ui holds the terminal presentation layer: lipgloss styles, the
// confirmation prompt, and dry-run diff rendering.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// confirmModel is a minimal y/N prompt. It quits on the first decisive key.
type confirmModel struct {
	question string
	answered bool
	accepted bool
}

// Init implements tea.Model
func (m confirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y":
			m.answered = true
			m.accepted = true
			return m, tea.Quit
		case "n", "N", "enter", "esc", "q", "ctrl+c":
			m.answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model
func (m confirmModel) View() string {
	if m.answered {
		if m.accepted {
			return fmt.Sprintf("%s yes\n", m.question)
		}
		return fmt.Sprintf("%s no\n", m.question)
	}
	return fmt.Sprintf("%s %s ", WarningStyle.Render(m.question), "(y/N)")
}

// Confirm asks the user a yes/no question and returns their answer. On a
// terminal it runs an interactive prompt; otherwise it falls back to reading
// a line from stdin so piped input still works. The default answer is no.
func Confirm(question string) (bool, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return confirmFromReader(question, os.Stdin, os.Stderr)
	}

	p := tea.NewProgram(confirmModel{question: question})
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}
	return final.(confirmModel).accepted, nil
}

// confirmFromReader reads one line and accepts "y" or "yes" (any case).
func confirmFromReader(question string, in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprintf(out, "%s (y/N): ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
