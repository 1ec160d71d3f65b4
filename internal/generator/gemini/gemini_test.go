package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestAllText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			"nil content skipped",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: nil},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("I see a dog.")}}},
			}},
			"I see a dog.",
		},
		{
			"text parts joined, blobs ignored",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{
					genai.Text("I see "),
					genai.Blob{MIMEType: "image/png", Data: []byte{1}},
					genai.Text("a cat."),
				}}},
			}},
			"I see a cat.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, allText(tt.resp))
		})
	}
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(context.Background(), "  ", "gemini-1.5-flash")
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}
