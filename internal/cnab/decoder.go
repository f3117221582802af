package cnab

import (
	"bufio"
	"fmt"
	"io"

	"github.com/desafiodev/cnab_import_app/internal/apperrors"
)

// Decoder reads CNAB records from a stream one line at a time, in the manner
// of bufio.Scanner. Blank and whitespace-only lines are skipped but still
// advance the 1-based line counter. The sequence is single-pass and not
// restartable: once Scan has returned false the decoder is exhausted.
type Decoder struct {
	scanner    *bufio.Scanner
	line       Line
	lineNumber int
	err        error
	done       bool
}

// NewDecoder wraps a readable stream. A nil reader is an argument error.
func NewDecoder(r io.Reader) (*Decoder, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: stream cannot be nil", apperrors.ErrArgument)
	}
	return &Decoder{scanner: bufio.NewScanner(r)}, nil
}

// Scan advances to the next non-blank record, decoding it. It returns false
// when the stream is exhausted or a failure occurred; Err disambiguates.
func (d *Decoder) Scan() bool {
	if d.done {
		return false
	}
	for d.scanner.Scan() {
		d.lineNumber++
		text := d.scanner.Text()
		if isBlank(text) {
			continue
		}
		line, err := DecodeLine(text, d.lineNumber)
		if err != nil {
			d.err = fmt.Errorf("error decoding line %d: %w", d.lineNumber, err)
			d.done = true
			return false
		}
		d.line = line
		return true
	}
	d.err = d.scanner.Err()
	d.done = true
	return false
}

// Line returns the record decoded by the last successful call to Scan.
func (d *Decoder) Line() Line {
	return d.line
}

// Err returns the first failure encountered, or nil on clean exhaustion.
func (d *Decoder) Err() error {
	return d.err
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\r' {
			return false
		}
	}
	return true
}
