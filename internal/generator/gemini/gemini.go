package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/kdduha/explain-camera/backend/internal/generator"
)

type Engine struct {
	client *genai.Client
	model  string
}

// New dials the Gemini API once; the client is shared by all requests.
func New(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*Engine, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Engine{
		client: cl,
		model:  strings.TrimSpace(model),
	}, nil
}

func (e *Engine) Name() string  { return "gemini" }
func (e *Engine) Model() string { return e.model }

func (e *Engine) Close() error {
	return e.client.Close()
}

func (e *Engine) Generate(ctx context.Context, req generator.Request) (string, error) {
	m := e.client.GenerativeModel(e.model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(req.System)},
	}

	resp, err := m.GenerateContent(ctx,
		genai.Text(req.User),
		genai.Blob{MIMEType: req.MIMEType, Data: req.Image},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	txt := strings.TrimSpace(allText(resp))
	if txt == "" {
		return "", generator.ErrEmptyResponse
	}
	return txt, nil
}

// allText joins the text parts of the first candidate that has content.
func allText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				b.WriteString(string(t))
			}
		}
		if b.Len() > 0 {
			return b.String()
		}
	}
	return ""
}
