package neatjson

import (
	"bytes"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pkt.systems/neatjson/internal/palette"
)

// ColorPalette configures the lipgloss styles applied to each JSON token
// class by Colorize.
type ColorPalette struct {
	Key         lipgloss.Style
	String      lipgloss.Style
	Number      lipgloss.Style
	Bool        lipgloss.Style
	Null        lipgloss.Style
	Brackets    lipgloss.Style
	Punctuation lipgloss.Style
}

// DefaultColorPalette returns the one-dark scheme bound to the renderer. The
// renderer governs how colors degrade on limited terminals.
func DefaultColorPalette(renderer *lipgloss.Renderer) ColorPalette {
	return styledPalette(renderer, palette.OneDark)
}

// NoColorPalette emits no escape sequences while keeping the colorizer path
// shared.
func NoColorPalette(renderer *lipgloss.Renderer) ColorPalette {
	if renderer == nil {
		renderer = lipgloss.NewRenderer(os.Stdout)
	}
	base := renderer.NewStyle()
	return ColorPalette{
		Key:         base,
		String:      base,
		Number:      base,
		Bool:        base,
		Null:        base,
		Brackets:    base,
		Punctuation: base,
	}
}

func styledPalette(renderer *lipgloss.Renderer, p palette.Palette) ColorPalette {
	if renderer == nil {
		renderer = lipgloss.NewRenderer(os.Stdout)
	}
	fg := func(hex string) lipgloss.Style {
		return renderer.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return ColorPalette{
		Key:         fg(p.Key).Bold(true),
		String:      fg(p.String),
		Number:      fg(p.Number),
		Bool:        fg(p.Bool),
		Null:        fg(p.Null),
		Brackets:    fg(p.Brackets).Bold(true),
		Punctuation: fg(p.Punctuation),
	}
}

// Colorize applies the palette to already-formatted JSON text. Tokens are
// wrapped in styles without altering the characters of src, so stripping the
// escape sequences yields src unchanged.
func Colorize(src []byte, pal ColorPalette) string {
	c := colorizer{src: src, pal: pal}
	c.out.Grow(len(src) + len(src)/2)
	c.run()
	return c.out.String()
}

type colorizer struct {
	src   []byte
	pos   int
	pal   ColorPalette
	out   strings.Builder
	stack []containerFrame
}

// containerFrame tracks whether the enclosing container is an object and, if
// so, whether the next string token is a key.
type containerFrame struct {
	object    bool
	expectKey bool
}

func (c *colorizer) run() {
	for c.pos < len(c.src) {
		switch b := c.src[c.pos]; b {
		case '{':
			c.push(true)
			c.emit(c.pal.Brackets, "{")
		case '[':
			c.push(false)
			c.emit(c.pal.Brackets, "[")
		case '}', ']':
			c.pop()
			c.emit(c.pal.Brackets, string(b))
		case ':':
			c.emit(c.pal.Punctuation, ":")
			c.setExpectKey(false)
		case ',':
			c.emit(c.pal.Punctuation, ",")
			c.setExpectKey(true)
		case '"':
			c.scanString()
			continue
		default:
			if b == '-' || (b >= '0' && b <= '9') {
				c.scanNumber()
				continue
			}
			if c.scanLiteral() {
				continue
			}
			c.out.WriteByte(b)
		}
		c.pos++
	}
}

func (c *colorizer) emit(style lipgloss.Style, s string) {
	c.out.WriteString(style.Render(s))
}

func (c *colorizer) push(object bool) {
	c.stack = append(c.stack, containerFrame{object: object, expectKey: object})
}

func (c *colorizer) pop() {
	if len(c.stack) > 0 {
		c.stack = c.stack[:len(c.stack)-1]
	}
}

func (c *colorizer) setExpectKey(v bool) {
	if len(c.stack) > 0 && c.stack[len(c.stack)-1].object {
		c.stack[len(c.stack)-1].expectKey = v
	}
}

func (c *colorizer) inKeyPosition() bool {
	return len(c.stack) > 0 && c.stack[len(c.stack)-1].object && c.stack[len(c.stack)-1].expectKey
}

func (c *colorizer) scanString() {
	start := c.pos
	c.pos++
	for c.pos < len(c.src) {
		if c.src[c.pos] == '\\' && c.pos+1 < len(c.src) {
			c.pos += 2
			continue
		}
		closed := c.src[c.pos] == '"'
		c.pos++
		if closed {
			break
		}
	}
	segment := string(c.src[start:c.pos])
	if c.inKeyPosition() {
		c.emit(c.pal.Key, segment)
		c.setExpectKey(false)
		return
	}
	c.emit(c.pal.String, segment)
}

func (c *colorizer) scanNumber() {
	start := c.pos
	c.pos++
	for c.pos < len(c.src) && isNumberChar(c.src[c.pos]) {
		c.pos++
	}
	c.emit(c.pal.Number, string(c.src[start:c.pos]))
}

func isNumberChar(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == 'e' || b == 'E' || b == '+' || b == '-'
}

func (c *colorizer) scanLiteral() bool {
	rest := c.src[c.pos:]
	switch {
	case bytes.HasPrefix(rest, []byte("true")):
		c.emit(c.pal.Bool, "true")
		c.pos += 4
	case bytes.HasPrefix(rest, []byte("false")):
		c.emit(c.pal.Bool, "false")
		c.pos += 5
	case bytes.HasPrefix(rest, []byte("null")):
		c.emit(c.pal.Null, "null")
		c.pos += 4
	default:
		return false
	}
	return true
}
