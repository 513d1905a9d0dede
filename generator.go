package chat2pdf

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-chat2pdf/internal/assets"
	"github.com/alnah/go-chat2pdf/internal/fileutil"
	"github.com/alnah/go-chat2pdf/internal/fonts"
)

// Generator turns chat exports into PDF documents. Create with
// NewGenerator, call Generate per export, and Close when done.
//
// After construction a Generator holds only read-only configuration
// (resolved stylesheet, font CSS, wrap width), so concurrent Generate
// calls on different Generator instances are safe. A single Generator
// owns one browser and must not be shared across goroutines; use
// GeneratorPool for parallel workloads.
type Generator struct {
	cfg       generatorConfig
	styleCSS  string
	fontCSS   string
	renderer  *messageRenderer
	wrapWidth int
	pdf       pdfConverter
}

// NewGenerator creates a Generator with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithFontDir,
// WithStyle).
//
// Style and font resolution happen here, once: the stylesheet is read
// through the asset loader and the font directory is resolved through
// its three-tier fallback. Configuration errors surface at
// construction instead of on the first Generate call.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg: generatorConfig{
			timeout:   defaultTimeout,
			wrapWidth: DefaultWrapWidth,
		},
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.cfg.wrapWidth < MinWrapWidth || g.cfg.wrapWidth > MaxWrapWidth {
		return nil, fmt.Errorf("%w: %d (must be between %d and %d)",
			ErrInvalidWrapWidth, g.cfg.wrapWidth, MinWrapWidth, MaxWrapWidth)
	}
	g.wrapWidth = g.cfg.wrapWidth

	resolver, err := assets.NewResolver(g.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	if err := g.resolveStyle(resolver); err != nil {
		return nil, err
	}

	fontDir, err := fonts.ResolveDir(g.cfg.fontDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontNotFound, err)
	}
	g.fontCSS, err = fonts.FaceCSS(fontDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontNotFound, err)
	}

	var md *markdownRenderer
	if g.cfg.markdown {
		md = newMarkdownRenderer()
	}
	g.renderer = newMessageRenderer(g.wrapWidth, md)

	// Create PDF converter if not injected (e.g., by tests)
	if g.pdf == nil {
		g.pdf = newRodConverter(g.cfg.timeout)
	}

	return g, nil
}

// Generate runs the full pipeline for one export and returns the
// result containing HTML and PDF. The context is used for
// cancellation and timeout.
//
// Generation either fully succeeds or fully fails: no partial or
// truncated PDF bytes are ever returned. Message order in the output
// matches input order exactly.
func (g *Generator) Generate(ctx context.Context, export ChatExport) (*Result, error) {
	if export.Title == "" && len(export.Messages) == 0 {
		return nil, ErrEmptyExport
	}

	fragments := make([]string, 0, len(export.Messages))
	for _, msg := range export.Messages {
		fragment, err := g.renderer.Render(ctx, msg)
		if err != nil {
			return nil, fmt.Errorf("rendering message: %w", err)
		}
		fragments = append(fragments, fragment)
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent := assembleDocument(export.Title, g.wrapWidth, fragments)
	htmlContent = injectCSS(htmlContent, g.fontCSS+"\n"+g.styleCSS)

	res := &Result{HTML: []byte(htmlContent)}

	if export.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := g.pdf.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	res.PDF = pdfBytes
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (g *Generator) Close() error {
	if g.pdf != nil {
		return g.pdf.Close()
	}
	return nil
}

// resolveStyle resolves the style input (name, path, or CSS content)
// to CSS content. Called during NewGenerator after options are
// applied.
func (g *Generator) resolveStyle(resolver *assets.Resolver) error {
	input := g.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		g.styleCSS = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		g.styleCSS = input
		return nil
	}

	// Style name -> use asset loader
	css, err := resolver.LoadStyle(input)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return fmt.Errorf("%w: %q", ErrStyleNotFound, input)
		}
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	g.styleCSS = css
	return nil
}
