package models

import (
	"time"

	"github.com/google/uuid"
)

type ResumeFormat string

const (
	ResumeFormatMarkdown ResumeFormat = "markdown"
	ResumeFormatHTML     ResumeFormat = "html"
	ResumeFormatPDF      ResumeFormat = "pdf"
	ResumeFormatDocx     ResumeFormat = "docx"
)

// ContentType is the MIME type the generated file is stored with.
func (f ResumeFormat) ContentType() string {
	switch f {
	case ResumeFormatHTML:
		return "text/html"
	case ResumeFormatPDF:
		return "application/pdf"
	case ResumeFormatDocx:
		return MimeTypeDocx
	default:
		return "text/markdown"
	}
}

type GeneratedResume struct {
	ID                 uuid.UUID      `db:"id"`
	CandidateID        uuid.UUID      `db:"candidate_id"`
	JobID              string         `db:"job_id"`
	ATSScore           float64        `db:"ats_score"`
	ResumeTitle        string         `db:"resume_title"`
	ResumeContent      string         `db:"resume_content"`
	ResumeFormat       ResumeFormat   `db:"resume_format"`
	FileURL            string         `db:"file_url"`
	GenerationPrompt   string         `db:"generation_prompt"`
	GenerationMetadata map[string]any `db:"generation_metadata"`
	CreatedAt          time.Time      `db:"created_at"`
}
