package service

const (
	msgMissingAPIKey   = "API key not configured. Please add %s to .env file"
	msgInvalidImage    = "Invalid image data"
	msgAnalyzeFailed   = "Error analyzing image"
	msgPromptSelection = "prompt selection failed"
)
