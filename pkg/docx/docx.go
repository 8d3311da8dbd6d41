// Package docx extracts raw text from WordprocessingML (.docx) documents.
//
// The output follows the usual raw-text conventions: every paragraph is
// followed by a blank line, tabs and breaks are kept, formatting is dropped.
// Non-fatal problems are reported as messages next to the text.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

const (
	defaultMainPart = "word/document.xml"
	rootRelsPart    = "_rels/.rels"

	// MaxPartSize caps the uncompressed size of the main document part.
	MaxPartSize = 64 << 20
)

const (
	nsWordMain       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsWordMainStrict = "http://purl.oclc.org/ooxml/wordprocessingml/main"
	nsMarkupCompat   = "http://schemas.openxmlformats.org/markup-compatibility/2006"

	relTypeOfficeDocument       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	relTypeOfficeDocumentStrict = "http://purl.oclc.org/ooxml/officeDocument/relationships/officeDocument"
)

var (
	ErrLegacyFormat    = errors.New("legacy binary .doc format is not supported")
	ErrNotDocx         = errors.New("file is not a valid DOCX archive")
	ErrMissingMainPart = errors.New("could not find main document part")
	ErrPartTooLarge    = errors.New("main document part is too large")
)

// oleSignature starts every Compound File Binary (.doc, .xls) file.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// Message is a non-fatal note produced while reading a document.
type Message struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type Result struct {
	Value    string
	Messages []Message
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// ExtractRawText returns the plain text of the .docx held in data.
func (p *Parser) ExtractRawText(data []byte) (*Result, error) {
	if bytes.HasPrefix(data, oleSignature) {
		return nil, ErrLegacyFormat
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotDocx, err)
	}

	name := mainPartName(zr)
	part := findFile(zr, name)
	if part == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingMainPart, name)
	}
	if part.UncompressedSize64 > MaxPartSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrPartTooLarge, part.UncompressedSize64)
	}

	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer rc.Close()

	return extract(io.LimitReader(rc, MaxPartSize))
}

type relationships struct {
	Items []struct {
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// mainPartName resolves the officeDocument relationship, falling back to
// word/document.xml when the package has no usable root relationships.
func mainPartName(zr *zip.Reader) string {
	f := findFile(zr, rootRelsPart)
	if f == nil {
		return defaultMainPart
	}
	rc, err := f.Open()
	if err != nil {
		return defaultMainPart
	}
	defer rc.Close()

	var rels relationships
	if err := xml.NewDecoder(rc).Decode(&rels); err != nil {
		return defaultMainPart
	}
	for _, rel := range rels.Items {
		if rel.Type == relTypeOfficeDocument || rel.Type == relTypeOfficeDocumentStrict {
			return strings.TrimPrefix(path.Clean("/"+rel.Target), "/")
		}
	}
	return defaultMainPart
}

func findFile(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// ignoredElements are dropped with a warning; their text is not recoverable as raw text.
var ignoredElements = map[string]bool{
	"object":   true,
	"altChunk": true,
}

func isWord(name xml.Name) bool {
	return name.Space == nsWordMain || name.Space == nsWordMainStrict
}

func extract(r io.Reader) (*Result, error) {
	dec := xml.NewDecoder(r)

	var (
		text     strings.Builder
		messages = []Message{}
		warned   = map[string]bool{}
		inText   bool
		skip     int
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document XML: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if skip > 0 {
				skip++
				continue
			}
			if t.Name.Space == nsMarkupCompat && t.Name.Local == "Fallback" {
				// the Choice branch already carries the same content
				skip = 1
				continue
			}
			if !isWord(t.Name) {
				continue
			}
			switch local := t.Name.Local; {
			case local == "del":
				skip = 1
			case local == "pPr" || local == "rPr":
				// properties only; w:tabs in here are tab stops, not text
				skip = 1
			case ignoredElements[local]:
				skip = 1
				if !warned[local] {
					warned[local] = true
					messages = append(messages, Message{
						Type:    "warning",
						Message: "An unrecognised element was ignored: w:" + local,
					})
				}
			case local == "t":
				inText = true
			case local == "tab":
				text.WriteByte('\t')
			case local == "br" || local == "cr":
				text.WriteByte('\n')
			case local == "noBreakHyphen":
				text.WriteByte('-')
			}

		case xml.EndElement:
			if skip > 0 {
				skip--
				continue
			}
			if !isWord(t.Name) {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				text.WriteString("\n\n")
			}

		case xml.CharData:
			if inText && skip == 0 {
				text.Write(t)
			}
		}
	}

	return &Result{Value: text.String(), Messages: messages}, nil
}
