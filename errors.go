package chat2pdf

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyExport    = errors.New("chat export must have a title or at least one message")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrMarkdownRender = errors.New("markdown rendering failed")

	// Wrap width validation errors.
	ErrInvalidWrapWidth = errors.New("invalid wrap width")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Font resolution errors.
	ErrFontNotFound = errors.New("required font files not found")

	// Pool errors.
	ErrPoolClosed = errors.New("generator pool is closed")
)
