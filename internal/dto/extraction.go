package dto

// ExtractionWarning is a non-fatal parser message, passed through unchanged.
type ExtractionWarning struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ExtractionResult struct {
	Text     string
	Warnings []ExtractionWarning
}

type ExtractTextResponse struct {
	Success  bool                `json:"success"`
	Text     string              `json:"text"`
	Warnings []ExtractionWarning `json:"warnings"`
}
