package read

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.Comma = ','
	// Rows are not required to share a field count.
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	return reader
}

// Once parses everything rs holds as CSV, counting the rows (header
// included), and then rewinds rs to its start so the next call observes the
// complete content again. Quoted fields use '"' and a literal quote inside a
// quoted field is written as two quotes.
func Once(rs io.ReadSeeker) (int, error) {
	reader := newReader(rs)

	rows := 0
	for {
		_, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, errors.Wrap(err, "parse csv")
		}
		rows++
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return rows, errors.Wrap(err, "rewind csv")
	}

	return rows, nil
}
