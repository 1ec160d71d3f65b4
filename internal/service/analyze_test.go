package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kdduha/explain-camera/backend/internal/apperr"
	"github.com/kdduha/explain-camera/backend/internal/generator/generatortest"
	"github.com/kdduha/explain-camera/backend/internal/models"
	"github.com/kdduha/explain-camera/backend/internal/photo/phototest"
	"github.com/kdduha/explain-camera/backend/internal/prompt"
)

type memoryCache struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]string{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func newTestService(gen *generatortest.Fake) *AnalyzeService {
	s := NewAnalyzeService(zerolog.Nop(), gen, "GEMINI_API_KEY")
	s.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func TestAnalyzeSuccess(t *testing.T) {
	gen := &generatortest.Fake{Text: "I see a fluffy dog!"}
	s := newTestService(gen)

	resp, err := s.Analyze(context.Background(), &models.AnalyzeRequest{
		Image: "data:image/jpeg;base64," + phototest.Encode(t, "jpeg", 200, 200),
		Mode:  models.ModeKid,
	})
	require.NoError(t, err)

	assert.Equal(t, "I see a fluffy dog!", resp.Explanation)
	assert.Equal(t, models.ModeKid, resp.Mode)
	assert.True(t, resp.Success)
	assert.Equal(t, "2026-01-02T03:04:05Z", resp.Timestamp)

	req := gen.LastRequest()
	kid, _ := prompt.System(models.ModeKid)
	assert.Equal(t, kid, req.System)
	assert.Equal(t, prompt.User(), req.User)
	assert.Equal(t, "image/jpeg", req.MIMEType)
	assert.NotEmpty(t, req.Image)
}

func TestAnalyzeSendsDetectedMIMEType(t *testing.T) {
	gen := &generatortest.Fake{Text: "A gradient."}
	s := newTestService(gen)

	_, err := s.Analyze(context.Background(), &models.AnalyzeRequest{
		Image: phototest.Encode(t, "png", 150, 150),
		Mode:  models.ModeExpert,
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", gen.LastRequest().MIMEType)
}

func TestAnalyzeMissingCredential(t *testing.T) {
	s := NewAnalyzeService(zerolog.Nop(), nil, "GEMINI_API_KEY")

	_, err := s.Analyze(context.Background(), &models.AnalyzeRequest{Image: "AAAA", Mode: models.ModeKid})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConfig, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "API key not configured")
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestAnalyzeBadRequests(t *testing.T) {
	tests := []struct {
		name     string
		req      models.AnalyzeRequest
		contains string
	}{
		{"not base64", models.AnalyzeRequest{Image: "%%%", Mode: models.ModeKid}, "Invalid image data"},
		{"too small", models.AnalyzeRequest{Image: phototest.Encode(t, "jpeg", 50, 50), Mode: models.ModeKid}, "minimum 100x100"},
		{"gif", models.AnalyzeRequest{Image: phototest.Encode(t, "gif", 120, 120), Mode: models.ModeKid}, "Unsupported format: GIF"},
		{"invalid mode", models.AnalyzeRequest{Image: phototest.Encode(t, "jpeg", 120, 120), Mode: "invalid"}, "invalid mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &generatortest.Fake{Text: "unused"}
			s := newTestService(gen)

			_, err := s.Analyze(context.Background(), &tt.req)
			require.Error(t, err)
			assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
			assert.Contains(t, err.Error(), tt.contains)
			assert.Zero(t, gen.Calls())
		})
	}
}

func TestAnalyzeUpstreamError(t *testing.T) {
	gen := &generatortest.Fake{Err: errors.New("quota exceeded")}
	s := newTestService(gen)

	_, err := s.Analyze(context.Background(), &models.AnalyzeRequest{
		Image: phototest.Encode(t, "jpeg", 200, 200),
		Mode:  models.ModeStudent,
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
	assert.Equal(t, "Error analyzing image: quota exceeded", err.Error())
	assert.Equal(t, 1, gen.Calls())
}

func TestAnalyzeCache(t *testing.T) {
	gen := &generatortest.Fake{Text: "cached text"}
	s := newTestService(gen)
	s.SetCacheClient(newMemoryCache())

	req := &models.AnalyzeRequest{Image: phototest.Encode(t, "jpeg", 200, 200), Mode: models.ModeKid}

	first, err := s.Analyze(context.Background(), req)
	require.NoError(t, err)
	second, err := s.Analyze(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Explanation, second.Explanation)
	assert.Equal(t, 1, gen.Calls())

	req.Mode = models.ModeExpert
	_, err = s.Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 2, gen.Calls())
}

func TestAnalyzeCacheErrorFallsThrough(t *testing.T) {
	gen := &generatortest.Fake{Text: "fresh"}
	s := newTestService(gen)
	c := newMemoryCache()
	c.getErr = errors.New("redis down")
	s.SetCacheClient(c)

	resp, err := s.Analyze(context.Background(), &models.AnalyzeRequest{
		Image: phototest.Encode(t, "jpeg", 200, 200),
		Mode:  models.ModeKid,
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", resp.Explanation)
	assert.Equal(t, 1, gen.Calls())
}
