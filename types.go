package chat2pdf

import (
	"time"
)

// Message roles. Any other value is rendered as-is with no model name.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Wrap width bounds in columns.
const (
	MinWrapWidth     = 20
	MaxWrapWidth     = 200
	DefaultWrapWidth = 75
)

// Message is one transcript entry. Messages have no identity beyond
// their position in the export; they are rendered independently and
// in order.
type Message struct {
	Role    string `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`

	// Model is rendered only when Role is "assistant".
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// Timestamp is seconds since the Unix epoch. Nil means absent;
	// absent or unconvertible timestamps render as an empty string.
	Timestamp *float64 `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// ChatExport is the input record: a title plus an ordered list of
// messages. The caller owns it; Generate never mutates it.
type ChatExport struct {
	Title    string    `json:"title" yaml:"title"`
	Messages []Message `json:"messages" yaml:"messages"`

	// HTMLOnly skips PDF rendering and returns only the assembled
	// HTML document (for debugging).
	HTMLOnly bool `json:"-" yaml:"-"`
}

// Result holds the generation output.
type Result struct {
	PDF  []byte // complete PDF file, empty when HTMLOnly is set
	HTML []byte // intermediate HTML document
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	timeout    time.Duration
	fontDir    string
	styleInput string
	assetPath  string
	wrapWidth  int
	markdown   bool
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("chat2pdf: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithFontDir sets the primary font directory. When the required font
// files are missing there, resolution falls back to an
// install-adjacent static/fonts directory, then ./static/fonts.
func WithFontDir(dir string) Option {
	return func(g *Generator) {
		g.cfg.fontDir = dir
	}
}

// WithStyle sets the stylesheet by name, file path, or raw CSS
// content. Names resolve against the asset loader; a string
// containing a path separator is read as a file; a string containing
// "{" is used as CSS directly.
func WithStyle(style string) Option {
	return func(g *Generator) {
		g.cfg.styleInput = style
	}
}

// WithAssetPath sets a custom asset directory. Styles found there
// take precedence, with fallback to the embedded defaults.
func WithAssetPath(path string) Option {
	return func(g *Generator) {
		g.cfg.assetPath = path
	}
}

// WithWrapWidth sets the column width used when wrapping right-to-left
// content before bidi reordering. Out-of-range widths are rejected by
// NewGenerator.
func WithWrapWidth(width int) Option {
	return func(g *Generator) {
		g.cfg.wrapWidth = width
	}
}

// WithMarkdown renders message content as markdown instead of escaped
// plain text. Off by default: escaped plain text with literal line
// breaks matches the historical output. Messages containing RTL
// script always use the escaped path, since reshaped text is no
// longer valid markdown source.
func WithMarkdown() Option {
	return func(g *Generator) {
		g.cfg.markdown = true
	}
}
