// Package phototest builds base64 image payloads for tests.
package phototest

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// WEBP fixtures are lossless encodes from the golang.org/x/image test data.
var (
	//go:embed testdata/blue-purple-pink.lossless.webp
	webpLossless []byte
	//go:embed testdata/gopher-doc.1bpp.lossless.webp
	webpSmall []byte
)

// WEBP returns a 150x100 lossless WEBP, base64-encoded.
func WEBP() string {
	return base64.StdEncoding.EncodeToString(webpLossless)
}

// SmallWEBP returns a 75x100 lossless WEBP, base64-encoded.
func SmallWEBP() string {
	return base64.StdEncoding.EncodeToString(webpSmall)
}

// Encode renders a gradient of the given size and returns it base64-encoded.
// Supported formats: jpeg, png, gif, bmp.
func Encode(t testing.TB, format string, width, height int) string {
	t.Helper()
	return base64.StdEncoding.EncodeToString(Bytes(t, format, width, height))
}

func Bytes(t testing.TB, format string, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "jpeg":
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80})
	case "png":
		err = png.Encode(&buf, img)
	case "gif":
		err = gif.Encode(&buf, img, nil)
	case "bmp":
		err = bmp.Encode(&buf, img)
	default:
		t.Fatalf("phototest: unknown format %s", format)
	}
	if err != nil {
		t.Fatalf("phototest: encode %s: %v", format, err)
	}
	return buf.Bytes()
}
