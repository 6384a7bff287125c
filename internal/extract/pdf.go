package extract

import (
	"github.com/ledongthuc/pdf"
)

// pdfPages extracts plain text from a PDF, one entry per page. Pages that
// yield no text are skipped.
func pdfPages(path string) ([]string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return nil, err
		}
		if text == "" {
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
