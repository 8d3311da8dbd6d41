package docx

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="%s"/>
</Relationships>`

func documentXML(body string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
            xmlns:mc="http://schemas.openxmlformats.org/markup-compatibility/2006">
  <w:body>` + body + `</w:body>
</w:document>`
}

func buildZip(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func buildDocx(t *testing.T, body string) []byte {
	return buildZip(t, map[string]string{
		"[Content_Types].xml": `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`,
		"_rels/.rels":         strings.Replace(rootRels, "%s", "word/document.xml", 1),
		"word/document.xml":   documentXML(body),
	})
}

func TestExtractRawText_Paragraphs(t *testing.T) {
	data := buildDocx(t, `
		<w:p><w:r><w:t>Hello</w:t></w:r><w:r><w:t xml:space="preserve"> World</w:t></w:r></w:p>
		<w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>`)

	result, err := NewParser().ExtractRawText(data)
	require.NoError(t, err)

	assert.Equal(t, "Hello World\n\nSecond paragraph\n\n", result.Value)
	assert.NotNil(t, result.Messages)
	assert.Empty(t, result.Messages)
}

func TestExtractRawText_TabsBreaksAndHyphens(t *testing.T) {
	data := buildDocx(t, `
		<w:p><w:r><w:t>Go</w:t><w:tab/><w:t>Senior</w:t><w:br/><w:t>Remote</w:t><w:noBreakHyphen/><w:t>first</w:t></w:r></w:p>`)

	result, err := NewParser().ExtractRawText(data)
	require.NoError(t, err)

	assert.Equal(t, "Go\tSenior\nRemote-first\n\n", result.Value)
}

func TestExtractRawText_IgnoresTabStopsAndProperties(t *testing.T) {
	data := buildDocx(t, `
		<w:p>
		  <w:pPr>
		    <w:tabs><w:tab w:val="left" w:pos="720"/><w:tab w:val="right" w:pos="9360"/></w:tabs>
		    <w:rPr><w:b/></w:rPr>
		  </w:pPr>
		  <w:r><w:rPr><w:i/></w:rPr><w:t>Engineer</w:t><w:tab/><w:t>2021 - 2024</w:t></w:r>
		</w:p>`)

	result, err := NewParser().ExtractRawText(data)
	require.NoError(t, err)

	assert.Equal(t, "Engineer\t2021 - 2024\n\n", result.Value)
}

func TestExtractRawText_SkipsDeletedAndFallbackContent(t *testing.T) {
	data := buildDocx(t, `
		<w:p>
		  <w:r><w:t>Kept</w:t></w:r>
		  <w:del w:id="1"><w:r><w:t>Removed</w:t></w:r></w:del>
		  <mc:AlternateContent>
		    <mc:Choice Requires="wps"><w:r><w:t> box</w:t></w:r></mc:Choice>
		    <mc:Fallback><w:r><w:t> box</w:t></w:r></mc:Fallback>
		  </mc:AlternateContent>
		</w:p>`)

	result, err := NewParser().ExtractRawText(data)
	require.NoError(t, err)

	assert.Equal(t, "Kept box\n\n", result.Value)
}

func TestExtractRawText_WarnsOnceForIgnoredObjects(t *testing.T) {
	data := buildDocx(t, `
		<w:p><w:r><w:t>Chart below</w:t></w:r><w:r><w:object><w:t>hidden</w:t></w:object></w:r></w:p>
		<w:p><w:r><w:object/></w:r></w:p>`)

	result, err := NewParser().ExtractRawText(data)
	require.NoError(t, err)

	assert.Equal(t, "Chart below\n\n\n\n", result.Value)
	require.Len(t, result.Messages, 1)
	assert.Equal(t, Message{Type: "warning", Message: "An unrecognised element was ignored: w:object"}, result.Messages[0])
}

func TestExtractRawText_FollowsRootRelationship(t *testing.T) {
	data := buildZip(t, map[string]string{
		"_rels/.rels":     strings.Replace(rootRels, "%s", "/custom/main.xml", 1),
		"custom/main.xml": documentXML(`<w:p><w:r><w:t>Relocated</w:t></w:r></w:p>`),
	})

	result, err := NewParser().ExtractRawText(data)
	require.NoError(t, err)
	assert.Equal(t, "Relocated\n\n", result.Value)
}

func TestExtractRawText_Deterministic(t *testing.T) {
	data := buildDocx(t, `<w:p><w:r><w:t>Same every time</w:t></w:r></w:p>`)
	p := NewParser()

	first, err := p.ExtractRawText(data)
	require.NoError(t, err)
	second, err := p.ExtractRawText(data)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestExtractRawText_Errors(t *testing.T) {
	legacy := append([]byte{}, oleSignature...)
	legacy = append(legacy, make([]byte, 512)...)

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{name: "legacy doc", data: legacy, wantErr: ErrLegacyFormat},
		{name: "not a zip", data: []byte("%PDF-1.7 not a word file"), wantErr: ErrNotDocx},
		{name: "empty input", data: nil, wantErr: ErrNotDocx},
		{name: "zip without document", data: buildZip(t, map[string]string{"hello.txt": "hi"}), wantErr: ErrMissingMainPart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().ExtractRawText(tt.data)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractRawText_MalformedXML(t *testing.T) {
	data := buildZip(t, map[string]string{
		"word/document.xml": `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p>`,
	})

	_, err := NewParser().ExtractRawText(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse document XML")
}
