// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/katalvlaran/segimage/raster"
	"github.com/katalvlaran/segimage/segerr"
)

// Decode reads any supported image from r.
func Decode(r io.Reader) (*raster.RGB, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, segerr.Errorf("Decode", ErrDecode, "%v", err)
	}
	return raster.FromImage(img)
}

// Load opens and decodes the image at path.
func Load(path string) (*raster.RGB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img *raster.RGB, f Format, opts ...Option) error {
	o := options{jpegQuality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&o)
	}

	src := img.NRGBA()
	switch f {
	case PNG:
		return png.Encode(w, src)
	case JPEG:
		return jpeg.Encode(w, src, &jpeg.Options{Quality: o.jpegQuality})
	case TIFF:
		return tiff.Encode(w, src, &tiff.Options{Compression: tiff.Deflate})
	case BMP:
		return bmp.Encode(w, src)
	default:
		return segerr.Errorf("Encode", ErrUnsupportedFormat, "%q", f)
	}
}

// Save writes img to path in the format named by its extension. The file
// appears only once fully written.
func Save(path string, img *raster.RGB, opts ...Option) error {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	return WriteAtomic(path, func(w io.Writer) error {
		return Encode(w, img, f, opts...)
	})
}

// WriteAtomic streams write's output into a temporary file beside path and
// renames it over path once write and close succeed.
func WriteAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// OutputPath returns dir/<stem>_<tag><ext> where stem is the base name of
// input without extension. An empty f keeps the input's extension.
func OutputPath(dir, input, tag string, f Format) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	if f != "" {
		ext = f.Ext()
	}
	return filepath.Join(dir, stem+"_"+tag+ext)
}
