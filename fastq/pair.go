// Package fastq reads paired-end sequencing reads from two FASTQ files
// kept in lockstep: record n of the first file is paired with record n of
// the second.
package fastq

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/vreuter/atactk"
)

// Record is one FASTQ read: the four lines of the record, each stripped
// of surrounding whitespace. No validation of the @/+ sentinels is
// performed; any four consecutive lines form a record.
type Record struct {
	Name     string
	Sequence string
	Comment  string
	Quality  string
}

// Pair holds the nth record from each of the two files.
type Pair [2]Record

// PairReader yields pairs of records from two FASTQ files. The files are
// assumed to be synchronized by upstream pairing; record names are never
// compared.
type PairReader struct {
	// Strict, when set before reading, reports one input running out of
	// records before the other as an error instead of plain io.EOF.
	Strict bool

	source1, source2 io.ReadCloser
	lines1, lines2   *bufio.Scanner
}

// OpenPair opens the two named FASTQ files, each independently sniffed
// for compression (see atactk.OpenMaybeCompressed).
func OpenPair(filename1, filename2 string) (*PairReader, error) {
	source1, err := atactk.OpenMaybeCompressed(filename1)
	if err != nil {
		return nil, pfx.Err(err)
	}
	source2, err := atactk.OpenMaybeCompressed(filename2)
	if err != nil {
		source1.Close()
		return nil, pfx.Err(err)
	}
	lines1 := bufio.NewScanner(source1)
	lines1.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	lines2 := bufio.NewScanner(source2)
	lines2.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	return &PairReader{
		source1: source1,
		source2: source2,
		lines1:  lines1,
		lines2:  lines2,
	}, nil
}

// Read returns the next pair of records. Exhaustion of either input at
// any of the eight line reads is io.EOF; a final partial record is not
// distinguished from a clean end of file.
func (r *PairReader) Read() (Pair, error) {
	var pair Pair
	record1, ok1, err := readRecord(r.lines1)
	if err != nil {
		return pair, err
	}
	record2, ok2, err := readRecord(r.lines2)
	if err != nil {
		return pair, err
	}
	if ok1 != ok2 && r.Strict {
		return pair, fmt.Errorf("fastq: paired inputs have unequal record counts")
	}
	if !ok1 || !ok2 {
		return pair, io.EOF
	}
	pair[0], pair[1] = record1, record2
	return pair, nil
}

// Close releases both underlying files, reporting the first error.
func (r *PairReader) Close() error {
	err := r.source1.Close()
	if cerr := r.source2.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// readRecord pulls the next four lines; ok is false when the input ends
// at any of them.
func readRecord(lines *bufio.Scanner) (Record, bool, error) {
	var fields [4]string
	for i := range fields {
		if !lines.Scan() {
			return Record{}, false, lines.Err()
		}
		fields[i] = strings.TrimSpace(lines.Text())
	}
	return Record{
		Name:     fields[0],
		Sequence: fields[1],
		Comment:  fields[2],
		Quality:  fields[3],
	}, true, nil
}
