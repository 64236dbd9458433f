// Package reader provides low-level access to the text content of PDF files.
//
// The reader wraps the PDF parser and exposes pages as flat lists of
// positioned [model.TextFragment] values, which is the representation table
// detection works on. It deliberately knows nothing about tables or
// attendance; it only answers "what text is where".
//
// Basic usage:
//
//	r, err := reader.Open("attendance.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//	for n := 1; n <= r.PageCount(); n++ {
//	    fragments, err := r.PageFragments(n)
//	    ...
//	}
//
// # Errors
//
// A byte stream that cannot be parsed as a PDF yields an error wrapping
// [ErrUnreadablePDF]; test for it with errors.Is. Per-page content errors
// (malformed content streams) are reported by PageFragments for the affected
// page only.
//
// # Text Normalization
//
// Fragment text is normalized to Unicode NFKC form so that visually
// identical status symbols compare equal regardless of how the producing
// application encoded them.
package reader
