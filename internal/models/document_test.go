package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWordDocument(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		fileName    string
		expected    bool
	}{
		{name: "docx mime", contentType: MimeTypeDocx, fileName: "resume", expected: true},
		{name: "legacy mime", contentType: MimeTypeDoc, fileName: "resume.bin", expected: true},
		{name: "uppercase extension without mime", contentType: "", fileName: "resume.DOCX", expected: true},
		{name: "doc extension", contentType: "application/octet-stream", fileName: "cv.Doc", expected: true},
		{name: "pdf", contentType: "application/pdf", fileName: "resume.pdf", expected: false},
		{name: "docx in the middle", contentType: "", fileName: "resume.docx.pdf", expected: false},
		{name: "nothing", contentType: "", fileName: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &UploadedDocument{ContentType: tt.contentType, FileName: tt.fileName}
			assert.Equal(t, tt.expected, doc.IsWordDocument())
		})
	}
}

func TestResumeFormat_ContentType(t *testing.T) {
	assert.Equal(t, "text/html", ResumeFormatHTML.ContentType())
	assert.Equal(t, "application/pdf", ResumeFormatPDF.ContentType())
	assert.Equal(t, MimeTypeDocx, ResumeFormatDocx.ContentType())
	assert.Equal(t, "text/markdown", ResumeFormatMarkdown.ContentType())
	assert.Equal(t, "text/markdown", ResumeFormat("anything").ContentType())
}
