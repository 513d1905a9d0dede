package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple name", input: "chat", wantErr: false},
		{name: "hyphenated name", input: "dark-mode", wantErr: false},
		{name: "empty", input: "", wantErr: true},
		{name: "dot extension", input: "chat.css", wantErr: true},
		{name: "relative traversal", input: "..", wantErr: true},
		{name: "forward slash", input: "a/b", wantErr: true},
		{name: "backslash", input: `a\b`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAssetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("error = %v, want ErrInvalidAssetName", err)
			}
		})
	}
}

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	t.Run("default style loads", func(t *testing.T) {
		t.Parallel()

		css, err := loader.LoadStyle(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadStyle(%q) error: %v", DefaultStyleName, err)
		}
		if !strings.Contains(css, "{") {
			t.Errorf("embedded style does not look like CSS: %q", css)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadStyle("no-such-style")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("invalid name rejected before lookup", func(t *testing.T) {
		t.Parallel()

		_, err := loader.LoadStyle("../styles/chat")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadStyle() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

// writeStyle creates basePath/styles/name.css with the given content.
func writeStyle(t *testing.T, basePath, name, content string) {
	t.Helper()

	dir := filepath.Join(basePath, "styles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".css"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("loads existing style", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeStyle(t, base, "custom", "body { color: blue; }")

		loader, err := NewFilesystemLoader(base)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error: %v", err)
		}

		css, err := loader.LoadStyle("custom")
		if err != nil {
			t.Fatalf("LoadStyle() error: %v", err)
		}
		if css != "body { color: blue; }" {
			t.Errorf("LoadStyle() = %q", css)
		}
	})

	t.Run("missing style", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error: %v", err)
		}

		_, err = loader.LoadStyle("absent")
		if !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("empty base path", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent base path", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("base path is a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file.txt")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := NewFilesystemLoader(path)
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("traversal names rejected", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error: %v", err)
		}

		for _, name := range []string{"../secret", "..", "a/b", `..\..\x`} {
			if _, err := loader.LoadStyle(name); !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("LoadStyle(%q) error = %v, want ErrInvalidAssetName", name, err)
			}
		}
	})

	t.Run("symlink escaping base is rejected", func(t *testing.T) {
		t.Parallel()

		outside := t.TempDir()
		secret := filepath.Join(outside, "secret.css")
		if err := os.WriteFile(secret, []byte("stolen { }"), 0o644); err != nil {
			t.Fatal(err)
		}

		base := t.TempDir()
		stylesDir := filepath.Join(base, "styles")
		if err := os.MkdirAll(stylesDir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.Symlink(secret, filepath.Join(stylesDir, "evil.css")); err != nil {
			t.Skipf("symlinks unavailable: %v", err)
		}

		loader, err := NewFilesystemLoader(base)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error: %v", err)
		}

		if _, err := loader.LoadStyle("evil"); !errors.Is(err, ErrPathTraversal) {
			t.Errorf("LoadStyle() error = %v, want ErrPathTraversal", err)
		}
	})
}

func TestResolver(t *testing.T) {
	t.Parallel()

	t.Run("embedded only", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver("")
		if err != nil {
			t.Fatalf("NewResolver() error: %v", err)
		}
		if r.HasCustomLoader() {
			t.Error("HasCustomLoader() = true with empty base path")
		}

		if _, err := r.LoadStyle(DefaultStyleName); err != nil {
			t.Errorf("LoadStyle(%q) error: %v", DefaultStyleName, err)
		}
	})

	t.Run("custom overrides embedded", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		writeStyle(t, base, DefaultStyleName, "body { color: crimson; }")

		r, err := NewResolver(base)
		if err != nil {
			t.Fatalf("NewResolver() error: %v", err)
		}
		if !r.HasCustomLoader() {
			t.Error("HasCustomLoader() = false with base path set")
		}

		css, err := r.LoadStyle(DefaultStyleName)
		if err != nil {
			t.Fatalf("LoadStyle() error: %v", err)
		}
		if css != "body { color: crimson; }" {
			t.Errorf("LoadStyle() = %q, want custom override", css)
		}
	})

	t.Run("falls back to embedded when custom lacks the style", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error: %v", err)
		}

		if _, err := r.LoadStyle(DefaultStyleName); err != nil {
			t.Errorf("LoadStyle(%q) error = %v, want embedded fallback", DefaultStyleName, err)
		}
	})

	t.Run("unknown style everywhere", func(t *testing.T) {
		t.Parallel()

		r, err := NewResolver(t.TempDir())
		if err != nil {
			t.Fatalf("NewResolver() error: %v", err)
		}

		if _, err := r.LoadStyle("absent"); !errors.Is(err, ErrStyleNotFound) {
			t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
		}
	})

	t.Run("invalid base path", func(t *testing.T) {
		t.Parallel()

		_, err := NewResolver(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewResolver() error = %v, want ErrInvalidBasePath", err)
		}
	})
}
