package ui

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

// Compiled regex patterns for markdown parsing
var (
	boldPattern       = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	underscoreItalic  = regexp.MustCompile(`(^|[^a-zA-Z0-9_])_([^_]+)_([^a-zA-Z0-9_]|$)`)
	inlineCodePattern = regexp.MustCompile("`([^`]+)`")
	linkPattern       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	numberedPattern   = regexp.MustCompile(`^(\d{1,3})\. (.*)$`)
)

// sanitizeText drops control characters so message text can never drive the
// terminal. Newlines and tabs survive; tabs become spaces.
func sanitizeText(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\t':
			return ' '
		case r < 0x20 || r == 0x7f || (r >= 0x80 && r < 0xa0):
			return -1
		}
		return r
	}, s)
}

// highlightCode applies syntax highlighting to code using chroma
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get("monokai")
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}

	return strings.TrimRight(buf.String(), "\n")
}

// renderInlineMarkdown applies inline formatting (bold, italic, code, links) to a line
func renderInlineMarkdown(line string) string {
	// Code spans are swapped out first so nothing formats inside them
	var codeSpans []string
	line = inlineCodePattern.ReplaceAllStringFunc(line, func(match string) string {
		code := inlineCodePattern.FindStringSubmatch(match)[1]
		codeSpans = append(codeSpans, MarkdownInlineCodeStyle.Render(code))
		return fmt.Sprintf("\x00CODE%d\x00", len(codeSpans)-1)
	})

	line = boldPattern.ReplaceAllStringFunc(line, func(match string) string {
		return MarkdownBoldStyle.Render(boldPattern.FindStringSubmatch(match)[1])
	})

	// Underscores inside identifiers like foo_bar_baz are left alone
	line = underscoreItalic.ReplaceAllStringFunc(line, func(match string) string {
		m := underscoreItalic.FindStringSubmatch(match)
		return m[1] + MarkdownItalicStyle.Render(m[2]) + m[3]
	})

	line = linkPattern.ReplaceAllStringFunc(line, func(match string) string {
		parts := linkPattern.FindStringSubmatch(match)
		return MarkdownLinkStyle.Render(parts[1]) + " (" + MarkdownLinkStyle.Render(parts[2]) + ")"
	})

	for i, rendered := range codeSpans {
		line = strings.Replace(line, fmt.Sprintf("\x00CODE%d\x00", i), rendered, 1)
	}
	return line
}

// wrapText wraps text to the specified width, handling ANSI escape codes
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return ansi.Wrap(text, width, "")
}

// indentContinuation prefixes every line after the first.
func indentContinuation(s, indent string) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return strings.Join(lines, "\n")
}

// renderMarkdownLine renders a single line with markdown formatting
func renderMarkdownLine(line string, width int) string {
	trimmed := strings.TrimSpace(line)

	// Headers are not wrapped
	switch {
	case strings.HasPrefix(trimmed, "### "), strings.HasPrefix(trimmed, "#### "):
		return MarkdownH3Style.Render(strings.TrimLeft(trimmed, "# "))
	case strings.HasPrefix(trimmed, "## "):
		return MarkdownH2Style.Render(strings.TrimPrefix(trimmed, "## "))
	case strings.HasPrefix(trimmed, "# "):
		return MarkdownH1Style.Render(strings.TrimPrefix(trimmed, "# "))
	}

	if trimmed == "---" || trimmed == "***" || trimmed == "___" {
		return MarkdownHRStyle.Render(strings.Repeat("─", max(min(width, 32), 1)))
	}

	if strings.HasPrefix(trimmed, "> ") {
		content := strings.TrimPrefix(trimmed, "> ")
		return MarkdownBlockquoteStyle.Render(wrapText(renderInlineMarkdown(content), width-4))
	}

	if strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ") {
		bullet := MarkdownListBulletStyle.Render("•")
		wrapped := wrapText(renderInlineMarkdown(trimmed[2:]), width-6)
		return "  " + bullet + " " + indentContinuation(wrapped, "    ")
	}

	if m := numberedPattern.FindStringSubmatch(trimmed); m != nil {
		number := MarkdownListBulletStyle.Render(m[1] + ".")
		wrapped := wrapText(renderInlineMarkdown(m[2]), width-6)
		return "  " + number + " " + indentContinuation(wrapped, strings.Repeat(" ", len(m[1])+4))
	}

	return wrapText(renderInlineMarkdown(line), width)
}

// renderMarkdown renders markdown content with syntax-highlighted code blocks
func renderMarkdown(content string, width int) string {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	var result strings.Builder
	inCodeBlock := false
	codeBlockLang := ""
	var codeBlockContent strings.Builder

	for _, line := range strings.Split(sanitizeText(content), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			if !inCodeBlock {
				inCodeBlock = true
				codeBlockLang = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "```"))
				codeBlockContent.Reset()
			} else {
				inCodeBlock = false
				result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang))
				result.WriteString("\n")
				codeBlockLang = ""
			}
			continue
		}

		if inCodeBlock {
			if codeBlockContent.Len() > 0 {
				codeBlockContent.WriteString("\n")
			}
			codeBlockContent.WriteString(line)
			continue
		}
		result.WriteString(renderMarkdownLine(line, width))
		result.WriteString("\n")
	}

	// An unterminated fence still shows its code
	if inCodeBlock {
		result.WriteString(highlightCode(codeBlockContent.String(), codeBlockLang))
	}

	return strings.TrimRight(result.String(), "\n")
}

// renderEmptyState is shown in the chat area when no conversation is open
func renderEmptyState() string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)

	var sb strings.Builder
	sb.WriteString(EmptyStateStyle.Render("No conversation open"))
	sb.WriteString("\n\n")
	sb.WriteString(EmptyStateStyle.Render("Select one in the sidebar, or press "))
	sb.WriteString(keyStyle.Render("ctrl+n"))
	sb.WriteString(EmptyStateStyle.Render(" to start a new one."))
	return sb.String()
}
