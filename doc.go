// Package chat2pdf converts chat transcripts to styled PDF documents
// using headless Chrome.
//
// # Quick Start
//
// Create a generator, generate a PDF, and close when done:
//
//	gen, err := chat2pdf.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	result, err := gen.Generate(ctx, chat2pdf.ChatExport{
//	    Title: "Support Session",
//	    Messages: []chat2pdf.Message{
//	        {Role: chat2pdf.RoleUser, Content: "Hi there"},
//	        {Role: chat2pdf.RoleAssistant, Content: "Hello!", Model: "gpt-4o"},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("chat.pdf", result.PDF, 0644)
//
// The result contains both the PDF bytes (result.PDF) and the
// intermediate HTML (result.HTML) for debugging. Use HTMLOnly on
// ChatExport to skip PDF generation.
//
// # Generation Pipeline
//
// Each export is processed in a single forward pass:
//
//  1. Per-message rendering (HTML escaping, RTL normalization,
//     timestamp formatting) into HTML fragments
//  2. Document assembly (title heading + fragments in input order)
//  3. CSS injection (stylesheet + multi-script @font-face rules)
//  4. PDF rendering via headless Chrome (go-rod)
//
// # Right-to-Left Text
//
// Content containing Arabic, Hebrew, Syriac, Thaana, or Samaritan
// code points is wrapped to a fixed column width, Arabic runs are
// reshaped into contextual letterforms, and each line is reordered
// with the Unicode bidirectional algorithm. This produces correct
// visual order in renderers that lay text out strictly left-to-right.
//
// # Fonts
//
// The generator registers a Noto Sans base family plus per-script
// fallback families (Korean, Japanese, Simplified Chinese, Arabic,
// Hebrew, Syriac, Thaana, Samaritan) and a Twemoji symbol fallback.
// Font files are resolved from the configured directory, then an
// install-adjacent static/fonts directory, then ./static/fonts:
//
//	gen, err := chat2pdf.NewGenerator(
//	    chat2pdf.WithFontDir("/usr/share/myapp/fonts"),
//	)
//
// # Configuration
//
// Use functional options to customize the generator:
//
//	gen, err := chat2pdf.NewGenerator(
//	    chat2pdf.WithTimeout(2 * time.Minute),
//	    chat2pdf.WithStyle("chat"),
//	    chat2pdf.WithWrapWidth(80),
//	)
//
// # Parallel Processing
//
// For servers exporting many chats, use GeneratorPool to reuse
// browser instances:
//
//	pool := chat2pdf.NewGeneratorPool(4)
//	defer pool.Close()
//
//	gen, err := pool.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer pool.Release(gen)
//	result, err := gen.Generate(ctx, export)
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library
// automatically downloads a managed Chromium instance on first run
// (~/.cache/rod/browser/).
//
// Use ROD_BROWSER_BIN to point at a pre-installed Chrome binary
// (recommended in containers). The Chrome sandbox is disabled
// automatically when CI=true or ROD_BROWSER_BIN is set.
package chat2pdf
