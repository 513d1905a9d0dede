// Package assets loads CSS stylesheets for document generation.
// Styles resolve custom-first with fallback to embedded defaults.
package assets

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultStyleName is the built-in stylesheet used when none is configured.
const DefaultStyleName = "chat"

// Sentinel errors for asset operations.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid asset base path")
	ErrPathTraversal    = errors.New("asset path traversal")
	ErrAssetRead        = errors.New("asset read failed")
)

// StyleLoader defines the contract for loading CSS styles by name.
// Implementations may load from the filesystem, embedded assets, etc.
type StyleLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

// ValidateAssetName checks that an asset name is safe for use as a filename.
// Returns ErrInvalidAssetName if the name is empty or contains path separators,
// dots (which could allow extension manipulation), or traversal characters.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
