package embercsv

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// RecordSource abstracts over polymorphic record inputs. Next returns io.EOF
// after the last record; a malformed line comes back as Issues with
// CodeMalformedRecord, distinct from end-of-input.
type RecordSource interface {
	Next() (Mapping, error)
}

// LineSource reads newline-delimited JSON records from an io.Reader. EMBER
// lines run to several megabytes, so reads are unbounded rather than
// scanner-limited.
type LineSource struct {
	r    *bufio.Reader
	line int64
	done bool
}

// NewLineSource wraps r as a RecordSource.
func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{r: bufio.NewReaderSize(r, 1<<20)}
}

// Line returns the 1-based number of the line most recently consumed by Next.
func (s *LineSource) Line() int64 { return s.line }

// Next decodes the next line. A whitespace-only interior line is malformed;
// a trailing newline at end of input is not.
func (s *LineSource) Next() (Mapping, error) {
	if s.done {
		return nil, io.EOF
	}
	raw, err := s.r.ReadBytes('\n')
	if err == io.EOF {
		s.done = true
	} else if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		if s.done {
			return nil, io.EOF
		}
		s.line++
		return nil, Issues{{Code: CodeMalformedRecord, Record: s.line, Message: "blank line"}}
	}
	s.line++
	m, derr := DecodeRecord(trimmed)
	if derr != nil {
		return nil, Issues{{Code: CodeMalformedRecord, Record: s.line, Message: derr.Error(), Cause: derr}}
	}
	return m, nil
}

// Open opens a JSONL input for reading, transparently decompressing a .gz
// suffix.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &gzipReadCloser{zr: zr, f: f}, nil
	}
	return f, nil
}

type gzipReadCloser struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipReadCloser) Close() error {
	err := g.zr.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}
