// Package generatortest provides an in-memory Generator for tests.
package generatortest

import (
	"context"
	"sync"

	"github.com/kdduha/explain-camera/backend/internal/generator"
)

type Fake struct {
	Text string
	Err  error

	mu       sync.Mutex
	requests []generator.Request
}

func (f *Fake) Name() string  { return "fake" }
func (f *Fake) Model() string { return "fake-model" }

func (f *Fake) Generate(ctx context.Context, req generator.Request) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.Err != nil {
		return "", f.Err
	}
	return f.Text, nil
}

func (f *Fake) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *Fake) LastRequest() generator.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return generator.Request{}
	}
	return f.requests[len(f.requests)-1]
}
