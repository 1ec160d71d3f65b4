package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kdduha/explain-camera/backend/internal/apperr"
	"github.com/kdduha/explain-camera/backend/internal/generator"
	"github.com/kdduha/explain-camera/backend/internal/metrics"
	"github.com/kdduha/explain-camera/backend/internal/models"
	"github.com/kdduha/explain-camera/backend/internal/photo"
	"github.com/kdduha/explain-camera/backend/internal/prompt"
)

type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
}

type AnalyzeService struct {
	logger    zerolog.Logger
	generator generator.Generator
	apiKeyEnv string
	cache     Cache
	now       func() time.Time
}

// NewAnalyzeService accepts a nil generator; every Analyze call then fails
// with a configuration error naming apiKeyEnv.
func NewAnalyzeService(logger zerolog.Logger, gen generator.Generator, apiKeyEnv string) *AnalyzeService {
	return &AnalyzeService{
		logger:    logger.With().Str("component", "analyze-service").Logger(),
		generator: gen,
		apiKeyEnv: apiKeyEnv,
		now:       time.Now,
	}
}

func (s *AnalyzeService) SetCacheClient(cache Cache) {
	s.cache = cache
}

// Analyze runs the decode, validate, prompt and generate steps for one
// request. Returned errors are *apperr.Error.
func (s *AnalyzeService) Analyze(ctx context.Context, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error) {
	if s.generator == nil {
		return nil, apperr.Config(fmt.Sprintf(msgMissingAPIKey, s.apiKeyEnv))
	}

	img, err := photo.Decode(req.Image)
	if err != nil {
		metrics.ImageDecodeTotal("error", "unknown")
		return nil, apperr.BadRequest(msgInvalidImage, err)
	}

	if res := photo.Validate(img); !res.OK {
		metrics.ImageDecodeTotal("rejected", formatLabel(img.Format))
		return nil, apperr.BadRequest(res.Reason, nil)
	}
	metrics.ImageDecodeTotal("ok", formatLabel(img.Format))

	pair, err := prompt.Get(req.Mode)
	if err != nil {
		if errors.Is(err, prompt.ErrInvalidMode) {
			return nil, apperr.BadRequest("", err)
		}
		return nil, apperr.Internal(msgPromptSelection, err)
	}

	key := s.cacheKey(req.Mode, img.Data)
	if explanation, ok := s.fromCache(ctx, key); ok {
		return s.response(explanation, req.Mode), nil
	}

	s.logger.Debug().
		Str("mode", string(req.Mode)).
		Str("format", img.Format).
		Int("width", img.Width).
		Int("height", img.Height).
		Msg("sending image to generator")

	start := time.Now()
	explanation, err := s.generator.Generate(ctx, generator.Request{
		System:   pair.System,
		User:     pair.User,
		Image:    img.Data,
		MIMEType: img.MIMEType(),
	})
	if err != nil {
		metrics.GenerationDuration(s.generator.Name(), "error", time.Since(start))
		return nil, apperr.Upstream(msgAnalyzeFailed, err)
	}
	metrics.GenerationDuration(s.generator.Name(), "ok", time.Since(start))

	s.toCache(ctx, key, explanation)
	return s.response(explanation, req.Mode), nil
}

func (s *AnalyzeService) response(explanation string, mode models.Mode) *models.AnalyzeResponse {
	return &models.AnalyzeResponse{
		Explanation: explanation,
		Mode:        mode,
		Timestamp:   s.now().UTC().Format(time.RFC3339Nano),
		Success:     true,
	}
}

func (s *AnalyzeService) fromCache(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("cache get error")
		metrics.CacheLookup("error")
		return "", false
	}
	if !found {
		metrics.CacheLookup("miss")
		return "", false
	}
	metrics.CacheLookup("hit")
	s.logger.Info().Msg("served from cache")
	return cached, true
}

func (s *AnalyzeService) toCache(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn().Err(err).Msg("failed to set cache")
	}
}

// cacheKey fingerprints everything that influences the generated text.
func (s *AnalyzeService) cacheKey(mode models.Mode, image []byte) string {
	h := sha256.New()
	for _, part := range []string{s.generator.Name(), s.generator.Model(), string(mode)} {
		h.Write([]byte(part))
		h.Write([]byte{'|'})
	}
	h.Write(image)
	return hex.EncodeToString(h.Sum(nil))
}

func formatLabel(format string) string {
	if format == "" {
		return "unknown"
	}
	return format
}
