package extract

import (
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// wordText extracts paragraph text from a .docx file, one paragraph per
// line, in document order.
func wordText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, it := range doc.Document.Body.Items {
		switch block := it.(type) {
		case *docx.Paragraph:
			sb.WriteString(block.String())
			sb.WriteByte('\n')
		case *docx.Table:
			sb.WriteString(block.String())
			sb.WriteByte('\n')
		}
	}
	return sb.String(), nil
}
