// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// so they always match the runtime values. Single-character keys like "d",
// "y" or "n" are spelled inline where used.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	AltEnter   = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}).String()   // "alt+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	ShiftTab   = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()   // "shift+tab"
	Delete     = tea.KeyPressMsg{Code: tea.KeyDelete}.String()                     // "delete"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
)

// Ctrl combinations
var (
	CtrlC     = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()           // "ctrl+c"
	CtrlN     = (tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}).String()           // "ctrl+n"
	CtrlR     = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String()           // "ctrl+r"
	CtrlW     = (tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}).String()           // "ctrl+w"
	CtrlY     = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String()           // "ctrl+y"
	CtrlLeft  = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}).String()  // "ctrl+left"
	CtrlRight = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}).String() // "ctrl+right"
)
