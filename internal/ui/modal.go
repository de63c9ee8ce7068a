package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/ragchat/internal/ui/modals"
)

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State modals.ModalState
	error string
}

func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state modals.ModalState) {
	m.State = state
	m.error = ""
}

func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError shows an inline error under the modal content
func (m *Modal) SetError(err string) {
	m.error = err
}

func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// Box renders the modal frame without positioning.
func (m *Modal) Box() string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	style := ModalStyle
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		style = style.Width(pw.PreferredWidth())
	}
	return style.Render(content)
}

// View draws the modal centered over base, with the base dimmed so the
// dialog reads as blocking.
func (m *Modal) View(base string, screenWidth, screenHeight int) string {
	if m.State == nil {
		return base
	}
	if screenWidth <= 0 || screenHeight <= 0 {
		return m.Box()
	}

	area := uv.Rect(0, 0, screenWidth, screenHeight)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)

	for y := 0; y < screenHeight; y++ {
		for x := 0; x < screenWidth; x++ {
			cell := scr.CellAt(x, y)
			if cell == nil {
				continue
			}
			cell = cell.Clone()
			cell.Style.Fg = ColorMuted
			cell.Style.Bg = nil
			scr.SetCell(x, y, cell)
		}
	}

	box := m.Box()
	w, h := lipgloss.Width(box), lipgloss.Height(box)
	x := max((screenWidth-w)/2, 0)
	y := max((screenHeight-h)/2, 0)
	uv.NewStyledString(box).Draw(scr, uv.Rect(x, y, min(w, screenWidth), min(h, screenHeight)))

	return scr.Render()
}
