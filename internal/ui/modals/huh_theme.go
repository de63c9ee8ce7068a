package modals

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/ragchat/internal/keys"
)

// huhFormUpdate forwards msg to a huh form. Enter and Esc are left to the
// app, which decides whether they submit or dismiss the dialog.
func huhFormUpdate(form *huh.Form, msg tea.Msg) (*huh.Form, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Enter, keys.Escape:
			return form, nil
		}
	}

	m, cmd := form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		form = f
	}
	return form, cmd
}

// formTheme styles huh inputs to match the dialog palette.
func formTheme() huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		input := lipgloss.NewStyle().Foreground(ColorText)
		accent := lipgloss.NewStyle().Foreground(ColorPrimary)
		muted := lipgloss.NewStyle().Foreground(ColorTextMuted)

		t.Focused.Base = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(ColorPrimary)
		t.Focused.Card = t.Focused.Base
		t.Focused.Title = input.Bold(true)
		t.Focused.Description = muted.Italic(true)
		t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(ColorError).SetString(" *")
		t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(ColorError)
		t.Focused.TextInput.Cursor = accent
		t.Focused.TextInput.Prompt = accent
		t.Focused.TextInput.Placeholder = muted
		t.Focused.TextInput.Text = input

		t.Blurred = t.Focused
		t.Blurred.Base = lipgloss.NewStyle().PaddingLeft(2)
		t.Blurred.Card = t.Blurred.Base

		t.FieldSeparator = lipgloss.NewStyle().SetString("\n")
		t.Help = help.New().Styles
		return t
	})
}
