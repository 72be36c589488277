package render

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// Encode returns the PNG bytes for img, tagged with a pHYs chunk when dpi > 0.
// Output is deterministic for identical input.
func Encode(img image.Image, dpi float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	if dpi <= 0 {
		return buf.Bytes(), nil
	}
	return withPHYs(buf.Bytes(), dpi)
}

// Save creates dir if needed and writes img as dir/name. It returns the written path.
func Save(dir, name string, img image.Image, dpi float64) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create out dir: %w", err)
	}
	b, err := Encode(img, dpi)
	if err != nil {
		return "", err
	}
	outPath := filepath.Join(dir, name)
	if err := os.WriteFile(outPath, b, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}

const (
	pngSigLen  = 8
	ihdrEnd    = pngSigLen + 4 + 4 + 13 + 4 // length, type, data, crc
	metersInch = 0.0254
)

// withPHYs inserts a pHYs chunk (pixels per metre) right after IHDR, which is
// where image viewers look for the print resolution. image/png never writes one.
func withPHYs(b []byte, dpi float64) ([]byte, error) {
	if len(b) < ihdrEnd || string(b[12:16]) != "IHDR" {
		return nil, fmt.Errorf("png encode: unexpected header layout")
	}
	ppm := uint32(math.Round(dpi / metersInch))
	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:4], 9)
	copy(chunk[4:8], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:12], ppm)
	binary.BigEndian.PutUint32(chunk[12:16], ppm)
	chunk[16] = 1 // unit: metre
	binary.BigEndian.PutUint32(chunk[17:21], crc32.ChecksumIEEE(chunk[4:17]))

	out := make([]byte, 0, len(b)+len(chunk))
	out = append(out, b[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, b[ihdrEnd:]...)
	return out, nil
}
