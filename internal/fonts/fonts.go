// Package fonts resolves the font directory and builds the
// multi-script @font-face CSS used for PDF rendering.
//
// The PDF output must cover CJK, RTL, and emoji content in one
// document, so a Noto Sans base family is registered together with
// per-script fallback families in a fixed priority order. The
// rendering engine picks, per glyph, the first family in that order
// whose font file contains the glyph (standard CSS font matching).
package fonts

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates no candidate directory provides the required
// font files.
var ErrNotFound = errors.New("required font files not found")

// relativeFallbackDir is the last-resort font location. It only works
// when the process runs from the project root.
const relativeFallbackDir = "static/fonts"

// Face is one font registration: a family name, a style variant, and
// the file that provides it.
type Face struct {
	Family string
	Style  string // "", "bold", or "italic"
	File   string
}

// Faces lists every required font registration in fallback priority
// order: the base NotoSans family first, then the per-script fallback
// families, then the emoji/symbol fallback.
var Faces = []Face{
	{Family: "NotoSans", Style: "", File: "NotoSans-Regular.ttf"},
	{Family: "NotoSans", Style: "bold", File: "NotoSans-Bold.ttf"},
	{Family: "NotoSans", Style: "italic", File: "NotoSans-Italic.ttf"},
	{Family: "NotoSansKR", Style: "", File: "NotoSansKR-Regular.ttf"},
	{Family: "NotoSansJP", Style: "", File: "NotoSansJP-Regular.ttf"},
	{Family: "NotoSansSC", Style: "", File: "NotoSansSC-Regular.ttf"},
	{Family: "NotoSansArabic", Style: "", File: "NotoSansArabic-Regular.ttf"},
	{Family: "NotoSansHebrew", Style: "", File: "NotoSansHebrew-Regular.ttf"},
	{Family: "NotoSansSyriac", Style: "", File: "NotoSansSyriac-Regular.ttf"},
	{Family: "NotoSansThaana", Style: "", File: "NotoSansThaana-Regular.ttf"},
	{Family: "NotoSansSamaritan", Style: "", File: "NotoSansSamaritan-Regular.ttf"},
	{Family: "Twemoji", Style: "", File: "Twemoji.ttf"},
}

// ResolveDir returns the first directory containing every required
// font file, trying the configured directory, then an
// install-adjacent static/fonts directory, then a fixed relative
// fallback. The three-tier order supports different deployment modes
// (explicit config, packaged install, running from a source
// checkout).
//
// Resolution happens once, at generator construction; the result is
// read-only afterwards.
func ResolveDir(configured string) (string, error) {
	var candidates []string
	if configured != "" {
		candidates = append(candidates, configured)
	}
	if exeDir, err := executableDir(); err == nil {
		candidates = append(candidates, filepath.Join(exeDir, relativeFallbackDir))
	}
	candidates = append(candidates, relativeFallbackDir)

	for _, dir := range candidates {
		if missing(dir) == "" {
			return dir, nil
		}
	}
	return "", fmt.Errorf("%w: searched %v", ErrNotFound, candidates)
}

// executableDir returns the directory of the running binary.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// missing returns the first required font file absent from dir, or ""
// when dir provides all of them.
func missing(dir string) string {
	for _, f := range Faces {
		info, err := os.Stat(filepath.Join(dir, f.File))
		if err != nil || info.IsDir() {
			return f.File
		}
	}
	return ""
}

// FaceCSS builds the @font-face rules for every registered font in
// dir plus a body rule declaring the full fallback stack in priority
// order. A missing font file is a generation failure, never a
// silently degraded document.
func FaceCSS(dir string) (string, error) {
	if file := missing(dir); file != "" {
		return "", fmt.Errorf("%w: %s missing from %s", ErrNotFound, file, dir)
	}

	var b strings.Builder
	for _, f := range Faces {
		abs, err := filepath.Abs(filepath.Join(dir, f.File))
		if err != nil {
			return "", fmt.Errorf("resolving font path %q: %w", f.File, err)
		}

		b.WriteString("@font-face {\n")
		fmt.Fprintf(&b, "  font-family: %q;\n", f.Family)
		fmt.Fprintf(&b, "  src: url(%q);\n", "file://"+filepath.ToSlash(abs))
		switch f.Style {
		case "bold":
			b.WriteString("  font-weight: bold;\n")
		case "italic":
			b.WriteString("  font-style: italic;\n")
		}
		b.WriteString("}\n")
	}

	fmt.Fprintf(&b, "body { font-family: %s; }\n", FamilyStack())
	return b.String(), nil
}

// FamilyStack returns the font-family list in fallback priority order.
func FamilyStack() string {
	seen := make(map[string]bool, len(Faces))
	names := make([]string, 0, len(Faces))
	for _, f := range Faces {
		if seen[f.Family] {
			continue
		}
		seen[f.Family] = true
		names = append(names, fmt.Sprintf("%q", f.Family))
	}
	names = append(names, "sans-serif")
	return strings.Join(names, ", ")
}
