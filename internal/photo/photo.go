// Package photo decodes base64 image payloads and checks that they are usable
// for explanation.
package photo

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	MinDimension = 100
	MaxDimension = 4096
)

const (
	FormatJPEG = "JPEG"
	FormatPNG  = "PNG"
	FormatWEBP = "WEBP"
)

var allowedFormats = map[string]string{
	FormatJPEG: "image/jpeg",
	FormatPNG:  "image/png",
	FormatWEBP: "image/webp",
}

// DecodedImage holds the header data of a decoded payload. Format is empty when
// the container did not declare one.
type DecodedImage struct {
	Width  int
	Height int
	Format string
	Data   []byte
}

// MIMEType returns the content type used when forwarding the image.
// Unknown and unsupported formats fall back to image/jpeg.
func (d DecodedImage) MIMEType() string {
	if mime, ok := allowedFormats[d.Format]; ok {
		return mime
	}
	return "image/jpeg"
}

type ValidationResult struct {
	OK     bool
	Reason string
}

// DecodeError reports a payload that is not valid base64 or not a
// recognizable image.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return e.Err.Error() }

func (e *DecodeError) Unwrap() error { return e.Err }

var ErrEmptyPayload = errors.New("image payload is empty")

// StripDataURIPrefix drops everything up to and including the first comma,
// which removes a "data:<mime>;base64," header.
func StripDataURIPrefix(input string) string {
	if i := strings.IndexByte(input, ','); i >= 0 {
		return input[i+1:]
	}
	return input
}

func Decode(input string) (DecodedImage, error) {
	payload := strings.TrimSpace(StripDataURIPrefix(input))
	if payload == "" {
		return DecodedImage{}, &DecodeError{Err: ErrEmptyPayload}
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return DecodedImage{}, &DecodeError{Err: fmt.Errorf("invalid base64: %w", err)}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return DecodedImage{}, &DecodeError{
			Err: fmt.Errorf("cannot identify image file (detected %s): %w", mimetype.Detect(data).String(), err),
		}
	}

	return DecodedImage{
		Width:  cfg.Width,
		Height: cfg.Height,
		Format: normalizeFormat(format),
		Data:   data,
	}, nil
}

// Validate checks dimensions first and the container format second.
func Validate(img DecodedImage) ValidationResult {
	if img.Width < MinDimension || img.Height < MinDimension {
		return ValidationResult{Reason: fmt.Sprintf("Image too small (minimum %dx%d pixels)", MinDimension, MinDimension)}
	}
	if img.Width > MaxDimension || img.Height > MaxDimension {
		return ValidationResult{Reason: fmt.Sprintf("Image too large (maximum %dx%d pixels)", MaxDimension, MaxDimension)}
	}
	if img.Format != "" {
		if _, ok := allowedFormats[img.Format]; !ok {
			return ValidationResult{Reason: fmt.Sprintf("Unsupported format: %s", img.Format)}
		}
	}
	return ValidationResult{OK: true}
}

func decodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return b, nil
	}
	for _, enc := range []*base64.Encoding{base64.RawStdEncoding, base64.URLEncoding, base64.RawURLEncoding} {
		if b2, err2 := enc.DecodeString(s); err2 == nil {
			return b2, nil
		}
	}
	return nil, err
}

func normalizeFormat(format string) string {
	return strings.ToUpper(strings.TrimSpace(format))
}
