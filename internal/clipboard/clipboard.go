// Package clipboard provides image and text access to the system clipboard.
package clipboard

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	_ "image/gif"
	_ "image/jpeg"

	"golang.design/x/clipboard"

	"github.com/parley-sh/parley/internal/errors"
	"github.com/parley-sh/parley/internal/logger"
)

// MaxImageSize is the maximum allowed image size in bytes
const MaxImageSize = 3750000

// MaxImageDimension is the maximum allowed width or height in pixels
const MaxImageDimension = 8000

// ImageData represents clipboard image data
type ImageData struct {
	Data      []byte // PNG encoded image data
	MediaType string // MIME type (always "image/png" since we encode to PNG)
	Width     int
	Height    int
}

// initialized tracks whether the clipboard has been initialized
var initialized bool

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	if initialized {
		return nil
	}

	if err := clipboard.Init(); err != nil {
		logger.Warn("Clipboard: failed to initialize: %v", err)
		return errors.E(errors.Op("clipboard.Init"), errors.KindClipboard, err)
	}

	initialized = true
	logger.Debug("Clipboard: initialized")
	return nil
}

// ReadImage attempts to read an image from the clipboard.
// Returns nil if the clipboard doesn't contain an image.
func ReadImage() (*ImageData, error) {
	if !initialized {
		if err := Init(); err != nil {
			return nil, err
		}
	}

	imgBytes := clipboard.Read(clipboard.FmtImage)
	if len(imgBytes) == 0 {
		logger.Debug("Clipboard: no image data found")
		return nil, nil // No image in clipboard, not an error
	}

	logger.Debug("Clipboard: read %d bytes of image data", len(imgBytes))

	// Decode the image to get dimensions
	img, format, err := image.Decode(bytes.NewReader(imgBytes))
	if err != nil {
		logger.Warn("Clipboard: failed to decode image: %v", err)
		return nil, errors.DecodeFailed("clipboard image", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	logger.Debug("Clipboard: image decoded: %dx%d, format=%s", width, height, format)

	// Re-encode as PNG for consistent format
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		logger.Warn("Clipboard: failed to encode as PNG: %v", err)
		return nil, errors.E(errors.Op("clipboard.ReadImage"), errors.KindDecode, err)
	}

	pngBytes := pngBuf.Bytes()
	logger.Debug("Clipboard: re-encoded to PNG: %d bytes", len(pngBytes))

	return &ImageData{
		Data:      pngBytes,
		MediaType: "image/png",
		Width:     width,
		Height:    height,
	}, nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	if !initialized {
		if err := Init(); err != nil {
			return err
		}
	}

	clipboard.Write(clipboard.FmtText, []byte(text))
	logger.Debug("Clipboard: wrote %d bytes of text", len(text))
	return nil
}

// Validate checks that the image fits within the transport limits.
func (img *ImageData) Validate() error {
	if len(img.Data) > MaxImageSize {
		return errors.E(errors.Op("clipboard.Validate"), errors.KindInvalid,
			fmt.Sprintf("image too large: %d bytes (max %d)", len(img.Data), MaxImageSize))
	}

	if img.Width > MaxImageDimension || img.Height > MaxImageDimension {
		return errors.E(errors.Op("clipboard.Validate"), errors.KindInvalid,
			fmt.Sprintf("image dimensions too large: %dx%d (max %dx%d)",
				img.Width, img.Height, MaxImageDimension, MaxImageDimension))
	}

	return nil
}

// SizeKB returns the image size in kilobytes
func (img *ImageData) SizeKB() int {
	return len(img.Data) / 1024
}
