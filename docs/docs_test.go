package docs

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type document struct {
	Info struct {
		Title   string `json:"title"`
		Version string `json:"version"`
	} `json:"info"`
	Paths       map[string]any `json:"paths"`
	Definitions map[string]struct {
		Required []string `json:"required"`
	} `json:"definitions"`
}

func TestSwaggerDocument(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc document
	require.NoError(t, sonic.UnmarshalString(raw, &doc))

	assert.Equal(t, "Explain This Camera API", doc.Info.Title)
	assert.Equal(t, "1.0.0", doc.Info.Version)
	assert.Contains(t, doc.Paths, "/analyze")
	assert.Contains(t, doc.Paths, "/modes")
	assert.ElementsMatch(t, []string{"image", "mode"}, doc.Definitions["models.AnalyzeRequest"].Required)
}
