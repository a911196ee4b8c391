package fastq

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const (
	fastq1 = "@read1/1\nACGT\n+\nIIII\n@read2/1\nGGCC\n+\nJJJJ\n"
	fastq2 = "@read1/2\nTTAA\n+\nKKKK\n@read2/2\nCCGG\n+\nLLLL\n"
)

func writeFASTQ(t *testing.T, name, content string, gzipped bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	var w io.Writer = f
	var gz *gzip.Writer
	if gzipped {
		gz = gzip.NewWriter(f)
		w = gz
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPairReader(t *testing.T) {
	r, err := OpenPair(
		writeFASTQ(t, "r1.fastq", fastq1, false),
		writeFASTQ(t, "r2.fastq", fastq2, false),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	first, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if first[0].Name != "@read1/1" || first[0].Sequence != "ACGT" ||
		first[0].Comment != "+" || first[0].Quality != "IIII" {
		t.Errorf("first record of file 1: %+v", first[0])
	}
	if first[1].Name != "@read1/2" || first[1].Sequence != "TTAA" {
		t.Errorf("first record of file 2: %+v", first[1])
	}

	second, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if second[0].Name != "@read2/1" || second[1].Name != "@read2/2" {
		t.Errorf("second pair: %+v", second)
	}

	if _, err := r.Read(); err != io.EOF {
		t.Errorf("third read: got %v, want io.EOF", err)
	}
}

func TestPairReaderStripsWhitespace(t *testing.T) {
	r, err := OpenPair(
		writeFASTQ(t, "r1.fastq", "@read1/1 \nACGT\t\n+\nIIII\r\n", false),
		writeFASTQ(t, "r2.fastq", "@read1/2\nTTAA\n+\nKKKK\n", false),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	pair, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if pair[0].Name != "@read1/1" || pair[0].Sequence != "ACGT" || pair[0].Quality != "IIII" {
		t.Errorf("whitespace not stripped: %+v", pair[0])
	}
}

func TestPairReaderGzipInputs(t *testing.T) {
	// One compressed input, one plain; each is sniffed independently.
	r, err := OpenPair(
		writeFASTQ(t, "r1.fastq.gz", fastq1, true),
		writeFASTQ(t, "r2.fastq", fastq2, false),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	pair, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if pair[0].Name != "@read1/1" || pair[1].Name != "@read1/2" {
		t.Errorf("pair: %+v", pair)
	}
}

func TestPairReaderShortFileEndsStream(t *testing.T) {
	// File 2 has one record fewer; the second read is a plain EOF, not a
	// distinct error.
	r, err := OpenPair(
		writeFASTQ(t, "r1.fastq", fastq1, false),
		writeFASTQ(t, "r2.fastq", "@read1/2\nTTAA\n+\nKKKK\n", false),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if _, err := r.Read(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestPairReaderPartialRecordEndsStream(t *testing.T) {
	// A trailing partial record is treated as end of stream.
	r, err := OpenPair(
		writeFASTQ(t, "r1.fastq", "@read1/1\nACGT\n+\nIIII\n@read2/1\nGGCC\n", false),
		writeFASTQ(t, "r2.fastq", fastq2, false),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if _, err := r.Read(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}

func TestPairReaderLongReadLines(t *testing.T) {
	// Long-read sequence and quality lines well past bufio's default
	// 64KB token limit.
	n := 256 * 1024
	long := make([]byte, n)
	qual := make([]byte, n)
	for i := range long {
		long[i] = 'A'
		qual[i] = 'I'
	}
	content := "@read1/1\n" + string(long) + "\n+\n" + string(qual) + "\n"

	r, err := OpenPair(
		writeFASTQ(t, "r1.fastq", content, false),
		writeFASTQ(t, "r2.fastq", content, false),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	pair, err := r.Read()
	if err != nil {
		t.Fatal(err)
	}
	if len(pair[0].Sequence) != n || len(pair[1].Quality) != n {
		t.Errorf("sequence length %d, quality length %d, want %d",
			len(pair[0].Sequence), len(pair[1].Quality), n)
	}
}

func TestPairReaderStrictLengthMismatch(t *testing.T) {
	r, err := OpenPair(
		writeFASTQ(t, "r1.fastq", fastq1, false),
		writeFASTQ(t, "r2.fastq", "@read1/2\nTTAA\n+\nKKKK\n", false),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	r.Strict = true

	if _, err := r.Read(); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Read(); err == nil || err == io.EOF {
		t.Errorf("got %v, want a record-count error", err)
	}
}

func TestPairReaderStrictEqualLengths(t *testing.T) {
	r, err := OpenPair(
		writeFASTQ(t, "r1.fastq", fastq1, false),
		writeFASTQ(t, "r2.fastq", fastq2, false),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	r.Strict = true

	for i := 0; i < 2; i++ {
		if _, err := r.Read(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := r.Read(); err != io.EOF {
		t.Errorf("got %v, want io.EOF", err)
	}
}
