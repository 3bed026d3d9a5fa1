package terminal

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Theme names accepted by NewTheme.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Colour modes accepted by ColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type palette struct {
	accent, user, bot, muted lipgloss.Color
}

var palettes = map[string]palette{
	ThemeDark:  {accent: "#5FAFFF", user: "#87D787", bot: "#FFD75F", muted: "#8A8A8A"},
	ThemeLight: {accent: "#005F87", user: "#005F00", bot: "#875F00", muted: "#585858"},
}

// Theme is an immutable set of styles. It is passed by value to whatever
// renders, so switching theme means building a new value.
type Theme struct {
	name   string
	title  lipgloss.Style
	rule   lipgloss.Style
	user   lipgloss.Style
	bot    lipgloss.Style
	notice lipgloss.Style
}

// NewTheme builds the named theme on r. Unknown names fall back to dark.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	p, ok := palettes[name]
	if !ok {
		name = ThemeDark
		p = palettes[ThemeDark]
	}
	return Theme{
		name:   name,
		title:  r.NewStyle().Bold(true).Foreground(p.accent),
		rule:   r.NewStyle().Foreground(p.muted),
		user:   r.NewStyle().Bold(true).Foreground(p.user),
		bot:    r.NewStyle().Bold(true).Foreground(p.bot),
		notice: r.NewStyle().Italic(true).Foreground(p.muted),
	}
}

// Name returns the theme name.
func (t Theme) Name() string {
	return t.name
}

// Title renders a heading.
func (t Theme) Title(s string) string { return renderLines(t.title, s) }

// Rule renders a horizontal separator of width runes.
func (t Theme) Rule(char string, width int) string {
	return t.rule.Render(strings.Repeat(char, width))
}

// UserLabel renders the prompt label.
func (t Theme) UserLabel(s string) string { return t.user.Render(s) }

// BotLabel renders the reply label.
func (t Theme) BotLabel(s string) string { return t.bot.Render(s) }

// Notice renders informational text.
func (t Theme) Notice(s string) string { return renderLines(t.notice, s) }

// renderLines styles each line on its own; lipgloss pads multi-line blocks to
// a common width otherwise.
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// NewRenderer returns a renderer for w that emits colour only when color is set.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// ColorEnabled resolves a colour mode for f. In auto mode colour is used only
// on a terminal and when NO_COLOR is unset.
func ColorEnabled(mode string, f *os.File) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
