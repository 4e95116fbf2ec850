package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 12
	titleSize = 16
)

type docxWriter struct{}

// NewDocx creates a Writer producing .docx files
func NewDocx() Writer {
	return &docxWriter{}
}

func (w *docxWriter) Ext() string { return ".docx" }

// Write saves title plus the transcript as one continuous paragraph.
// Line breaks from the model are folded into spaces.
func (w *docxWriter) Write(title, text, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	if title != "" {
		addStyledRun(doc.AddParagraph(""), title, true, titleSize)
		doc.AddParagraph("")
	}
	addStyledRun(doc.AddParagraph(""), Continuous(text), false, fontSize)

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Continuous joins all lines of text with single spaces
func Continuous(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
