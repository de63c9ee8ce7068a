package ui

import (
	"sync"

	"github.com/zhubert/ragchat/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	ChatWidth     int

	mu sync.Mutex
}

var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// Called from the main event loop on tea.WindowSizeMsg.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// Content area is everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	v.SidebarWidth = max(width/SidebarWidthRatio, MinSidebarWidth)
	v.ChatWidth = width - v.SidebarWidth

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"chatWidth", v.ChatWidth,
	)
}

// WindowHeight is the height left for the conversation window once the tab
// bar is drawn above it.
func (v *ViewContext) WindowHeight() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ContentHeight - TabBarHeight
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
