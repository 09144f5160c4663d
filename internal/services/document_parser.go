package services

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

const (
	FormatPDF  = ".pdf"
	FormatDOCX = ".docx"
)

type DocumentParserService interface {
	ExtractText(filename string, data []byte) (string, error)
}

type documentParserService struct{}

func NewDocumentParserService() DocumentParserService {
	return &documentParserService{}
}

// DocumentFormat returns the lower-cased extension of filename if it is supported.
func DocumentFormat(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case FormatPDF, FormatDOCX:
		return ext, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ExtractText returns the plain text of a PDF or DOCX document held in memory.
// A document without extractable text yields an empty string.
func (p *documentParserService) ExtractText(filename string, data []byte) (string, error) {
	format, err := DocumentFormat(filename)
	if err != nil {
		return "", err
	}

	switch format {
	case FormatPDF:
		return extractPDFText(data)
	default:
		return extractDocxText(data)
	}
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	body, err := documentXMLText(doc.Editable().GetContent())
	if err != nil {
		return "", fmt.Errorf("failed to read docx body: %w", err)
	}

	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}

	// Headers, then body, then footers.
	var textBuilder strings.Builder
	textBuilder.WriteString(docxPartsText(archive, "word/header*.xml"))
	textBuilder.WriteString(body)
	textBuilder.WriteString(docxPartsText(archive, "word/footer*.xml"))

	return textBuilder.String(), nil
}

// docxPartsText concatenates the text of every archive part matching pattern,
// in name order. Parts that cannot be read are skipped.
func docxPartsText(archive *zip.Reader, pattern string) string {
	var parts []*zip.File
	for _, f := range archive.File {
		if ok, _ := path.Match(pattern, f.Name); ok {
			parts = append(parts, f)
		}
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].Name < parts[j].Name })

	var textBuilder strings.Builder
	for _, part := range parts {
		rc, err := part.Open()
		if err != nil {
			continue
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}

		text, err := documentXMLText(string(content))
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
	}
	return textBuilder.String()
}

// documentXMLText collects the w:t runs of a WordprocessingML body, one line per
// paragraph; w:tab and w:br become whitespace.
func documentXMLText(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var textBuilder strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				textBuilder.WriteString("\t")
			case "br", "cr":
				textBuilder.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				textBuilder.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				textBuilder.Write(t)
			}
		}
	}

	return textBuilder.String(), nil
}
