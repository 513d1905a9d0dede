package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	chat2pdf "github.com/alnah/go-chat2pdf"
)

// ErrNoTranscript indicates no transcript file argument was given.
var ErrNoTranscript = errors.New("no transcript file specified")

// run executes one conversion: load config, load transcript, generate,
// write the PDF.
func run(flags *chatFlags, args []string, logw io.Writer) error {
	if len(args) < 1 {
		printUsage(logw)
		return ErrNoTranscript
	}
	transcriptPath := args[0]

	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	opts, err := buildOptions(flags, cfg)
	if err != nil {
		return err
	}

	export, err := LoadTranscript(transcriptPath)
	if err != nil {
		return err
	}

	outputPath := resolveOutputPath(flags.output, cfg.Output.DefaultDir, transcriptPath)

	if flags.verbose && !flags.quiet {
		fmt.Fprintf(logw, "Generating %s (%d messages)\n", outputPath, len(export.Messages))
	}

	gen, err := chat2pdf.NewGenerator(opts...)
	if err != nil {
		return err
	}
	defer gen.Close()

	ctx, cancel := generateContext(flags.timeout, cfg.Timeout)
	defer cancel()

	start := time.Now()
	result, err := gen.Generate(ctx, export)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, result.PDF, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if !flags.quiet {
		fmt.Fprintf(logw, "Created %s (%s)\n", outputPath, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// buildOptions merges flags over config into generator options.
// Flags take precedence.
func buildOptions(flags *chatFlags, cfg *Config) ([]chat2pdf.Option, error) {
	var opts []chat2pdf.Option

	if dir := firstNonEmpty(flags.fontDir, cfg.Fonts.Dir); dir != "" {
		opts = append(opts, chat2pdf.WithFontDir(dir))
	}
	if style := firstNonEmpty(flags.style, cfg.CSS.Style); style != "" {
		opts = append(opts, chat2pdf.WithStyle(style))
	}
	if path := firstNonEmpty(flags.assetPath, cfg.AssetPath); path != "" {
		opts = append(opts, chat2pdf.WithAssetPath(path))
	}
	if width := flags.wrapWidth; width != 0 {
		opts = append(opts, chat2pdf.WithWrapWidth(width))
	} else if cfg.RTL.WrapWidth != 0 {
		opts = append(opts, chat2pdf.WithWrapWidth(cfg.RTL.WrapWidth))
	}
	if flags.markdown || cfg.Markdown {
		opts = append(opts, chat2pdf.WithMarkdown())
	}

	if raw := firstNonEmpty(flags.timeout, cfg.Timeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", raw, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("invalid timeout %q: must be positive", raw)
		}
		opts = append(opts, chat2pdf.WithTimeout(d))
	}

	return opts, nil
}

// generateContext builds the per-generation context. The timeout also
// bounds the whole Generate call, not just page rendering.
func generateContext(flagTimeout, cfgTimeout string) (context.Context, context.CancelFunc) {
	raw := firstNonEmpty(flagTimeout, cfgTimeout)
	if raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			return context.WithTimeout(context.Background(), d)
		}
	}
	return context.WithCancel(context.Background())
}

// resolveOutputPath picks the output file: explicit flag, else the
// transcript name with a .pdf extension, placed in defaultDir when
// configured.
func resolveOutputPath(output, defaultDir, transcriptPath string) string {
	if output != "" {
		return output
	}

	base := filepath.Base(transcriptPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"

	if defaultDir != "" {
		return filepath.Join(defaultDir, name)
	}
	return filepath.Join(filepath.Dir(transcriptPath), name)
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
