package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"

	"github.com/kdduha/explain-camera/backend/internal/generator"
)

// Engine talks to any OpenAI-compatible chat completions endpoint.
type Engine struct {
	client openai.Client
	model  string
}

func New(apiKey, baseURL, model string, opts ...option.RequestOption) (*Engine, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("OPENAI_API_KEY is empty")
	}
	base := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		base = append(base, option.WithBaseURL(baseURL))
	}
	return &Engine{
		client: openai.NewClient(append(base, opts...)...),
		model:  strings.TrimSpace(model),
	}, nil
}

func (e *Engine) Name() string  { return "openai" }
func (e *Engine) Model() string { return e.model }

func (e *Engine) Generate(ctx context.Context, req generator.Request) (string, error) {
	resp, err := e.client.Chat.Completions.New(ctx, e.buildParams(req))
	if err != nil {
		return "", fmt.Errorf("OpenAI client error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", generator.ErrEmptyResponse
	}

	txt := strings.TrimSpace(resp.Choices[0].Message.Content)
	if txt == "" {
		return "", generator.ErrEmptyResponse
	}
	return txt, nil
}

func (e *Engine) buildParams(req generator.Request) openai.ChatCompletionNewParams {
	imageData := fmt.Sprintf("data:%s;base64,%s", req.MIMEType, base64.StdEncoding.EncodeToString(req.Image))

	return openai.ChatCompletionNewParams{
		Model: shared.ChatModel(e.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(req.System),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(req.User),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageData,
				}),
			}),
		},
	}
}
