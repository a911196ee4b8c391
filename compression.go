package atactk

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType attempts to detect the data type of a stream by checking
// against a set of known compression signatures. Byte code signatures from
// https://stackoverflow.com/a/19127748/199475
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	if _, err := r.Read(buff); err != nil {
		return DataTypeInvalid, err
	}

	// Match known signatures
Outer:
	for dt, sig := range byteCodeSigs {
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	return DataTypeNoCompression, nil
}

// OpenMaybeCompressed opens the named file, transparently decompressing it
// if its leading bytes match one of the signatures known to DetectDataType.
// A file with no recognized signature is read as-is. A zip archive yields
// the content of its first entry. The 1f 9d signature of compress(1) is
// recognized but its LZW payload is not supported: such files are routed
// to a zlib reader, which rejects them with an error.
func OpenMaybeCompressed(filename string) (io.ReadCloser, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, pfx.Err(err)
	}

	dt, err := DetectDataType(f)
	if err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	// Rewind past the sniffed bytes before handing off
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	switch dt {
	case DataTypeGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &multiReadCloser{Reader: gz, closers: []io.Closer{gz, f}}, nil
	case DataTypeZip:
		zr := zipstream.NewReader(f)
		// Position on the first entry; zipstream has no content to
		// serve, and panics on Read, until Next has been called.
		if _, err := zr.Next(); err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{f}}, nil
	case DataTypeBZip2:
		return &multiReadCloser{Reader: bzip2.NewReader(f), closers: []io.Closer{f}}, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &multiReadCloser{Reader: reader, closers: []io.Closer{f}}, nil
	case DataTypeZ:
		zr, err := zlib.NewReader(f)
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &multiReadCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	}

	return f, nil
}

// multiReadCloser closes each of its closers when Close is called,
// reporting the first error.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
