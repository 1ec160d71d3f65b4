// Package generator defines the contract for multimodal text generation
// backends.
package generator

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("generation returned no text")

// Request carries one image together with the instructions for it.
// Image holds raw bytes; engines encode them as their API requires.
type Request struct {
	System   string
	User     string
	Image    []byte
	MIMEType string
}

type Generator interface {
	Name() string
	Model() string
	Generate(ctx context.Context, req Request) (string, error)
}
