package models

import "strings"

const (
	MimeTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypeDoc  = "application/msword"
)

// UploadedDocument is a file received in a request. It lives only for that request.
type UploadedDocument struct {
	Data        []byte
	ContentType string
	FileName    string
}

// IsWordDocument accepts a Word MIME type or a .docx/.doc file name.
// The extension check ignores case and does not depend on the MIME type.
func IsWordDocument(contentType, fileName string) bool {
	name := strings.ToLower(fileName)
	return contentType == MimeTypeDocx ||
		contentType == MimeTypeDoc ||
		strings.HasSuffix(name, ".docx") ||
		strings.HasSuffix(name, ".doc")
}

func (d *UploadedDocument) IsWordDocument() bool {
	return IsWordDocument(d.ContentType, d.FileName)
}
