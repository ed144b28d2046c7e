// SPDX-License-Identifier: MIT

package codec

import (
	"encoding/csv"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/segimage/labelmap"
	"github.com/katalvlaran/segimage/segerr"
)

// ReadLabelMapCSV reads one comma-separated row of integer labels per line.
// A trailing empty field, as left by writers that end every value with a
// comma, is ignored.
func ReadLabelMapCSV(r io.Reader) (*labelmap.LabelMap, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var rows [][]int
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, segerr.Errorf("ReadLabelMapCSV", ErrDecode, "%v", err)
		}
		if n := len(rec); n > 0 && strings.TrimSpace(rec[n-1]) == "" {
			rec = rec[:n-1]
		}
		row := make([]int, len(rec))
		for i, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, segerr.Errorf("ReadLabelMapCSV", ErrDecode, "line %d field %d: %q", line, i+1, field)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	return labelmap.New(rows)
}

// WriteLabelMapCSV writes lm one row per line.
func WriteLabelMapCSV(w io.Writer, lm *labelmap.LabelMap) error {
	cw := csv.NewWriter(w)
	rec := make([]string, lm.Width())
	for _, row := range lm.Rows() {
		for x, v := range row {
			rec[x] = strconv.Itoa(v)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadLabelMapImage decodes a gray image whose pixel values are labels.
// 16-bit images keep their full range; 8-bit ones are read as 0..255.
func ReadLabelMapImage(r io.Reader) (*labelmap.LabelMap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, segerr.Errorf("ReadLabelMapImage", ErrDecode, "%v", err)
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	flat := make([]int, 0, w*h)

	switch g := img.(type) {
	case *image.Gray16:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				flat = append(flat, int(g.Gray16At(x, y).Y))
			}
		}
	case *image.Gray:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				flat = append(flat, int(g.GrayAt(x, y).Y))
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				flat = append(flat, int(color.Gray16Model.Convert(img.At(x, y)).(color.Gray16).Y))
			}
		}
	}
	return labelmap.FromFlat(w, h, flat)
}

// WriteLabelMapImage encodes lm as a 16-bit gray PNG.
//
// Returns ErrLabelOverflow if MaxLabel exceeds 65535.
func WriteLabelMapImage(w io.Writer, lm *labelmap.LabelMap) error {
	if lm.MaxLabel() > 0xFFFF {
		return segerr.Errorf("WriteLabelMapImage", ErrLabelOverflow, "max label %d", lm.MaxLabel())
	}
	img := image.NewGray16(image.Rect(0, 0, lm.Width(), lm.Height()))
	for y := 0; y < lm.Height(); y++ {
		for x := 0; x < lm.Width(); x++ {
			img.SetGray16(x, y, color.Gray16{Y: uint16(lm.At(x, y))})
		}
	}
	return png.Encode(w, img)
}
