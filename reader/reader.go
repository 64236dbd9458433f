package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/rollcall-go/rollcall/model"
)

// ErrUnreadablePDF indicates that the input bytes could not be parsed as a
// PDF document.
var ErrUnreadablePDF = errors.New("reader: not a readable PDF")

// Reader provides page-by-page access to the positioned text of a PDF.
type Reader struct {
	pdf  *pdf.Reader
	file *os.File // non-nil only when opened via Open
}

// Open opens the PDF file at path. The returned Reader must be closed.
func Open(path string) (*Reader, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadablePDF, path, err)
	}
	return &Reader{pdf: r, file: f}, nil
}

// NewReader creates a Reader from an io.ReaderAt holding a PDF byte stream.
// The caller keeps ownership of the underlying data source.
func NewReader(r io.ReaderAt, size int64) (*Reader, error) {
	pr, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	return &Reader{pdf: pr}, nil
}

// FromBytes creates a Reader over an in-memory PDF byte stream.
func FromBytes(data []byte) (*Reader, error) {
	return NewReader(bytes.NewReader(data), int64(len(data)))
}

// Close releases the underlying file, if any. It is safe to call Close on a
// Reader created from bytes.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// PageFragments returns the positioned text fragments of page n (1-indexed).
// A null page (present in the page tree but without content) yields a nil
// slice and no error.
//
// The underlying parser panics on some malformed content streams; those
// panics are recovered and reported as errors for the affected page.
func (r *Reader) PageFragments(n int) (fragments []model.TextFragment, err error) {
	if n < 1 || n > r.pdf.NumPage() {
		return nil, fmt.Errorf("reader: page %d out of range 1..%d", n, r.pdf.NumPage())
	}

	defer func() {
		if rec := recover(); rec != nil {
			fragments = nil
			err = fmt.Errorf("reader: page %d: malformed content stream: %v", n, rec)
		}
	}()

	page := r.pdf.Page(n)
	if page.V.IsNull() {
		return nil, nil
	}

	content := page.Content()
	fragments = make([]model.TextFragment, 0, len(content.Text))
	for _, t := range content.Text {
		s := normalizeText(t.S)
		if s == "" {
			continue
		}
		fragments = append(fragments, model.TextFragment{
			Text:     s,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			FontSize: t.FontSize,
		})
	}
	return fragments, nil
}

// normalizeText applies NFKC normalization, which also folds the
// non-breaking spaces some PDF producers emit in place of regular spaces,
// then trims surrounding whitespace.
func normalizeText(s string) string {
	return strings.TrimSpace(norm.NFKC.String(s))
}
