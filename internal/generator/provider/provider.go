// Package provider builds the generation backend selected in configuration.
package provider

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kdduha/explain-camera/backend/internal/config"
	"github.com/kdduha/explain-camera/backend/internal/generator"
	"github.com/kdduha/explain-camera/backend/internal/generator/gemini"
	"github.com/kdduha/explain-camera/backend/internal/generator/openai"
)

// New returns a nil Generator and no error when the credential is missing, so
// the service can start and report the problem per request.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (generator.Generator, io.Closer, error) {
	if strings.TrimSpace(cfg.APIKey()) == "" {
		log.Warn().
			Str("provider", cfg.Generator.Provider).
			Msgf("%s not found in environment variables; /analyze will fail until it is set", cfg.APIKeyEnv())
		return nil, nopCloser{}, nil
	}

	switch cfg.Generator.Provider {
	case config.ProviderGemini:
		e, err := gemini.New(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			return nil, nil, err
		}
		return e, e, nil
	case config.ProviderOpenAI:
		e, err := openai.New(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
		if err != nil {
			return nil, nil, err
		}
		return e, nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider %q", cfg.Generator.Provider)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
