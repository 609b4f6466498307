package extract

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MimeTypePDF is the only MIME type with a real text conversion path.
// Every other type goes through the placeholder fallback.
const MimeTypePDF = "application/pdf"

// Payload is a decoded attachment with its declared MIME type and filename
type Payload struct {
	Data     []byte
	MimeType string
	Filename string
}

// Result is the outcome of converting a payload to text.
// Text is either real extracted text or the binary placeholder; Bytes is the
// size of the original payload.
type Result struct {
	Text  string
	Bytes int
}

// Chars returns the character count of the extracted text.
// This is a rune count, not a byte count; it is what gets logged.
func (r Result) Chars() int {
	return utf8.RuneCountInString(r.Text)
}

// Text converts a payload to plain text.
//
// PDF payloads are parsed and their embedded text extracted, trimmed of
// surrounding whitespace. Any other MIME type is deliberately not parsed:
// the result is a deterministic placeholder naming the file and its byte
// size, so downstream consumers still receive a record for it.
func Text(p Payload) (Result, error) {
	if p.MimeType == MimeTypePDF {
		text, err := pdfText(p.Data)
		if err != nil {
			return Result{}, fmt.Errorf("failed to extract text from PDF %s: %w", p.Filename, err)
		}
		return Result{Text: strings.TrimSpace(text), Bytes: len(p.Data)}, nil
	}

	return Result{Text: Placeholder(p.Filename, len(p.Data)), Bytes: len(p.Data)}, nil
}

// Placeholder returns the fallback text for a payload that is not converted.
// The wording is load-bearing: downstream consumers match on it.
func Placeholder(filename string, size int) string {
	return fmt.Sprintf("Binary content of %s was not processed to text. Size: %d bytes.", filename, size)
}
