package services

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

type PDFParserService interface {
	ExtractText(filepath string) (string, error)
	ExtractTextWithMetaData(filepath string) (*PDFContent, error)
}

type PDFContent struct {
	Text      string
	PageCount int
	FilePath  string
}

type pdfParserService struct{}

func NewPDFParserService() PDFParserService {
	return &pdfParserService{}
}

// ExtractText implements PDFParserService. A document without extractable
// text returns an empty string and a nil error.
func (p *pdfParserService) ExtractText(filePath string) (string, error) {
	content, err := p.ExtractTextWithMetaData(filePath)
	if err != nil {
		return "", err
	}

	return content.Text, nil
}

// ExtractTextWithMetaData implements PDFParserService.
func (p *pdfParserService) ExtractTextWithMetaData(filePath string) (content *PDFContent, err error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	// The pdf reader panics on some malformed object streams.
	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	totalPage := r.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		if text != "" {
			pages = append(pages, text)
		}
	}

	return &PDFContent{
		Text:      NormalizeText(strings.Join(pages, "\n")),
		PageCount: totalPage,
		FilePath:  filePath,
	}, nil
}

// NormalizeText collapses every whitespace run to a single space and trims
// the result.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
