package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/borderwalk/internal/config"
)

// Theme maps cell kinds to glyphs and lipgloss styles.
type Theme struct {
	Glyphs [5]rune
	Styles [5]lipgloss.Style
}

// NewTheme builds a theme from the render section of the config.
// Empty glyphs fall back to the defaults.
func NewTheme(cfg config.RenderConfig) Theme {
	def := config.DefaultConfig().Render

	var t Theme
	t.Glyphs[KindOutside] = glyph(cfg.Glyphs.Outside, def.Glyphs.Outside)
	t.Glyphs[KindInside] = glyph(cfg.Glyphs.Inside, def.Glyphs.Inside)
	t.Glyphs[KindBorder] = glyph(cfg.Glyphs.Border, def.Glyphs.Border)
	t.Glyphs[KindStart] = glyph(cfg.Glyphs.Start, def.Glyphs.Start)
	t.Glyphs[KindCursor] = glyph(cfg.Glyphs.Cursor, def.Glyphs.Cursor)

	t.Styles[KindOutside] = colorStyle(cfg.Colors.Outside)
	t.Styles[KindInside] = colorStyle(cfg.Colors.Inside)
	t.Styles[KindBorder] = colorStyle(cfg.Colors.Border)
	t.Styles[KindStart] = colorStyle(cfg.Colors.Start).Bold(true)
	t.Styles[KindCursor] = colorStyle(cfg.Colors.Cursor).Bold(true)
	return t
}

func glyph(s, fallback string) rune {
	if r, _ := utf8.DecodeRuneInString(s); r != utf8.RuneError {
		return r
	}
	r, _ := utf8.DecodeRuneInString(fallback)
	return r
}

func colorStyle(code string) lipgloss.Style {
	if code == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// Plain renders the canvas without styles.
func (t Theme) Plain(c *Canvas) string {
	return c.String(t.Glyphs)
}

// Render converts a canvas to a styled string for display.
// Groups adjacent cells of the same kind to minimize ANSI escape sequences.
func (t Theme) Render(c *Canvas) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Width()*c.Height()*2 + c.Height())

	for y := range c.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.Width() {
			kind := c.At(x, y)

			var run strings.Builder
			for x < c.Width() && c.At(x, y) == kind {
				run.WriteRune(t.Glyphs[kind])
				x++
			}
			sb.WriteString(t.Styles[kind].Render(run.String()))
		}
	}
	return sb.String()
}
