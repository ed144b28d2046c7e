// SPDX-License-Identifier: MIT

package codec

import (
	"strings"

	"github.com/katalvlaran/segimage/segerr"
)

// Sentinel errors for codec operations.
var (
	// ErrUnsupportedFormat indicates a file extension or format name codec cannot handle.
	ErrUnsupportedFormat = segerr.Wrap(segerr.ErrInput, "codec: unsupported image format")
	// ErrDecode indicates undecodable image or label data.
	ErrDecode = segerr.Wrap(segerr.ErrInput, "codec: cannot decode")
	// ErrLabelOverflow indicates a label too large for a 16-bit label image.
	ErrLabelOverflow = segerr.Wrap(segerr.ErrInput, "codec: label exceeds 16 bits")
)

// Format names an image encoding.
type Format string

// Supported formats.
const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	TIFF Format = "tiff"
	BMP  Format = "bmp"
)

// DefaultJPEGQuality is the JPEG quality used unless WithJPEGQuality is given.
const DefaultJPEGQuality = 95

// ParseFormat maps a format name or file extension, with or without the
// leading dot and in any case, to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	default:
		return "", segerr.Errorf("ParseFormat", ErrUnsupportedFormat, "%q", s)
	}
}

// Ext returns the file extension written for f, with the leading dot.
func (f Format) Ext() string {
	switch f {
	case JPEG:
		return ".jpg"
	case TIFF:
		return ".tif"
	default:
		return "." + string(f)
	}
}

// Option configures encoding.
type Option func(*options)

type options struct {
	jpegQuality int
}

// WithJPEGQuality sets the JPEG quality. Panics unless 1 <= q <= 100.
func WithJPEGQuality(q int) Option {
	if q < 1 || q > 100 {
		panic("codec: WithJPEGQuality(q out of [1,100])")
	}
	return func(o *options) { o.jpegQuality = q }
}
