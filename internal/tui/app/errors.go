package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrorMsg wraps an error with the operation that produced it so the
// toast line can say more than the bare error text.
type ErrorMsg struct {
	Err     error
	Context string
}

func (e ErrorMsg) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %v", e.Context, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// SuccessMsg reports a completed operation.
type SuccessMsg struct {
	Message string
}

// InfoMsg carries a neutral status note.
type InfoMsg struct {
	Message string
}

// WarningMsg carries a non-fatal problem the user should see.
type WarningMsg struct {
	Message string
}

func NewErrorCmd(err error, context string) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err, Context: context}
	}
}

func NewSuccessCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return SuccessMsg{Message: message}
	}
}

func NewInfoCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return InfoMsg{Message: message}
	}
}

func NewWarningCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return WarningMsg{Message: message}
	}
}
