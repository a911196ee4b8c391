package bed

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"

	"github.com/vreuter/atactk"
)

// FeatureFunc builds one feature from a parsed row. Alternate
// implementations can be supplied to OpenWith to change the
// region-computation policy without changing the reader.
type FeatureFunc func(row Row, extension, reverseShift int) (*Feature, error)

// Reader produces features from a BED file one row at a time, in file
// order. It is single-pass; reopen the file to iterate again.
type Reader struct {
	source       io.ReadCloser
	rows         *csv.Reader
	extension    int
	reverseShift int
	construct    FeatureFunc
}

// Open opens the named BED file, which may be compressed (see
// atactk.OpenMaybeCompressed), with NewFeature as the constructor.
func Open(filename string, extension, reverseShift int) (*Reader, error) {
	return OpenWith(filename, extension, reverseShift, NewFeature)
}

// OpenWith is Open with a caller-chosen feature constructor.
func OpenWith(filename string, extension, reverseShift int, construct FeatureFunc) (*Reader, error) {
	source, err := atactk.OpenMaybeCompressed(filename)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rows := csv.NewReader(source)
	rows.Comma = '\t'
	rows.FieldsPerRecord = -1 // trailing optional columns

	return &Reader{
		source:       source,
		rows:         rows,
		extension:    extension,
		reverseShift: reverseShift,
		construct:    construct,
	}, nil
}

// Read returns the next feature, or io.EOF once the file is exhausted.
// Columns beyond the 12 defined by the BED format are dropped.
func (r *Reader) Read() (*Feature, error) {
	row, err := r.rows.Read()
	if err != nil {
		return nil, err
	}
	if len(row) > numColumns {
		row = row[:numColumns]
	}
	return r.construct(Row(row), r.extension, r.reverseShift)
}

// Close releases the underlying file. Callers abandoning iteration early
// must still call Close.
func (r *Reader) Close() error {
	return r.source.Close()
}
