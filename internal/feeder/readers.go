package feeder

import (
	"archive/zip"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractFile dispatches to the handler for the resolved source type.
// The set of handlers is closed; anything unrecognized falls through to
// the binary-safe reader.
func extractFile(t SourceType, path string) (string, error) {
	switch t {
	case TypeText:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	case TypeCSV:
		return readCSV(path)
	case TypeDocx:
		return readDocx(path)
	case TypePDF:
		return readPDF(path)
	default:
		return readRaw(path)
	}
}

// readCSV joins each row's cells with ", " and rows with newlines.
func readCSV(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are fine

	var rows []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse CSV %s: %w", path, err)
		}
		cells := make([]string, len(record))
		for i, cell := range record {
			cells[i] = strings.TrimSpace(cell)
		}
		rows = append(rows, strings.Join(cells, ", "))
	}
	return strings.Join(rows, "\n"), nil
}

// readDocx pulls paragraph text out of word/document.xml inside the OOXML
// archive. Empty paragraphs are skipped.
func readDocx(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		doc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("failed to open document.xml in %s: %w", path, err)
		}
		defer doc.Close()
		return docxParagraphs(doc)
	}
	return "", fmt.Errorf("%s is not a DOCX file (no word/document.xml)", path)
}

func docxParagraphs(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var (
		paragraphs []string
		current    strings.Builder
		inText     bool
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document.xml: %w", err)
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "t":
				inText = true
			case "tab":
				current.WriteByte('\t')
			case "br":
				current.WriteByte(' ')
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if text := strings.TrimSpace(current.String()); text != "" {
					paragraphs = append(paragraphs, text)
				}
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(el)
			}
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}

type pageText struct {
	number int // 1-based position in the document
	text   string
}

// readPDF extracts text per page. Pages with no extractable text are
// skipped; the ones kept carry their original page number.
func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF %s: %w", path, err)
	}
	defer f.Close()

	var pages []pageText
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Printf("[Loader] skipping page %d of %s: %v", i, path, err)
			continue
		}
		pages = append(pages, pageText{number: i, text: text})
	}
	return joinPages(pages), nil
}

// joinPages drops empty pages and prefixes the rest with a [Page N] marker,
// separated by blank lines.
func joinPages(pages []pageText) string {
	var blocks []string
	for _, p := range pages {
		text := strings.TrimSpace(p.text)
		if text == "" {
			continue
		}
		blocks = append(blocks, fmt.Sprintf("[Page %d]\n%s", p.number, text))
	}
	return strings.Join(blocks, "\n\n")
}

// readRaw reads any other file best-effort, replacing bytes that are not
// valid UTF-8 instead of failing.
func readRaw(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}
