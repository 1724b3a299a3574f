package record

import (
	"bufio"
	"encoding/csv"
	"os"

	"github.com/preedep/split-merge-hub-demo/internal/sorterr"
)

// Reader is a family-agnostic single-pass record source backed by one
// open file: one reader, one owner, read until exhausted. Chunk
// production, merging, and scheduling all depend only on this
// interface so none of them knows which record family it is driving.
type Reader interface {
	// ReadHeader consumes and validates the leading header line, if the
	// family has one. A no-op for fixed-width streams.
	ReadHeader() error
	// Next returns the next record, or io.EOF when the stream is
	// exhausted.
	Next() (*Record, error)
	Close() error
}

// Writer is a family-agnostic single-pass record sink backed by one
// open file.
type Writer interface {
	// WriteHeader writes the leading header line, if emitHeader is true
	// and the family has one.
	WriteHeader(emitHeader bool) error
	Write(rec *Record) error
	Flush() error
	Close() error
}

// bufSize is the read/write buffer size used by default; the merger
// overrides this per MERGE_BUF_MB.
const bufSize = 4 << 20

type delimitedReader struct {
	f     *os.File
	cr    *csv.Reader
	codec *DelimitedCodec
}

// OpenDelimitedReader opens path for reading as a delimited stream.
func OpenDelimitedReader(path string, schema *DelimitedSchema, bufBytes int) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sorterr.New(sorterr.IoRead, "opening "+path, err)
	}
	if bufBytes <= 0 {
		bufBytes = bufSize
	}
	codec := NewDelimitedCodec(schema)
	cr := codec.NewCSVReader(bufio.NewReaderSize(f, bufBytes))
	return &delimitedReader{f: f, cr: cr, codec: codec}, nil
}

func (r *delimitedReader) ReadHeader() error { return r.codec.ReadHeader(r.cr) }
func (r *delimitedReader) Next() (*Record, error) {
	return r.codec.Decode(r.cr)
}
func (r *delimitedReader) Close() error { return r.f.Close() }

type delimitedWriter struct {
	f     *os.File
	cw    *csv.Writer
	codec *DelimitedCodec
}

// CreateDelimitedWriter creates (or truncates) path for writing as a
// delimited stream.
func CreateDelimitedWriter(path string, schema *DelimitedSchema) (Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, sorterr.New(sorterr.IoWrite, "creating "+path, err)
	}
	codec := NewDelimitedCodec(schema)
	cw := codec.NewCSVWriter(bufio.NewWriterSize(f, bufSize))
	return &delimitedWriter{f: f, cw: cw, codec: codec}, nil
}

func (w *delimitedWriter) WriteHeader(emitHeader bool) error {
	if !emitHeader {
		return nil
	}
	return w.codec.WriteHeader(w.cw)
}
func (w *delimitedWriter) Write(rec *Record) error { return w.codec.Encode(w.cw, rec) }
func (w *delimitedWriter) Flush() error {
	w.cw.Flush()
	if err := w.cw.Error(); err != nil {
		return sorterr.New(sorterr.IoWrite, "flushing csv writer", err)
	}
	return nil
}
func (w *delimitedWriter) Close() error { return w.f.Close() }

type fixedWidthReader struct {
	f     *os.File
	br    *bufio.Reader
	codec *FixedWidthCodec
}

// OpenFixedWidthReader opens path for reading as a fixed-width stream.
// There is no header to skip; ReadHeader is a no-op.
func OpenFixedWidthReader(path string, schema *FixedWidthSchema, bufBytes int) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sorterr.New(sorterr.IoRead, "opening "+path, err)
	}
	if bufBytes <= 0 {
		bufBytes = bufSize
	}
	return &fixedWidthReader{
		f:     f,
		br:    bufio.NewReaderSize(f, bufBytes),
		codec: NewFixedWidthCodec(schema),
	}, nil
}

func (r *fixedWidthReader) ReadHeader() error       { return nil }
func (r *fixedWidthReader) Next() (*Record, error)  { return r.codec.Decode(r.br) }
func (r *fixedWidthReader) Close() error            { return r.f.Close() }

type fixedWidthWriter struct {
	f     *os.File
	bw    *bufio.Writer
	codec *FixedWidthCodec
}

// CreateFixedWidthWriter creates (or truncates) path for writing as a
// fixed-width stream.
func CreateFixedWidthWriter(path string, schema *FixedWidthSchema) (Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, sorterr.New(sorterr.IoWrite, "creating "+path, err)
	}
	return &fixedWidthWriter{
		f:     f,
		bw:    bufio.NewWriterSize(f, bufSize),
		codec: NewFixedWidthCodec(schema),
	}, nil
}

func (w *fixedWidthWriter) WriteHeader(emitHeader bool) error { return nil }
func (w *fixedWidthWriter) Write(rec *Record) error           { return w.codec.Encode(w.bw, rec) }
func (w *fixedWidthWriter) Flush() error {
	if err := w.bw.Flush(); err != nil {
		return sorterr.New(sorterr.IoWrite, "flushing fixed-width writer", err)
	}
	return nil
}
func (w *fixedWidthWriter) Close() error { return w.f.Close() }

// PeekDelimitedHeader reads just the first line of path as a raw CSV
// row, with no field-count validation against any schema — used by
// callers that need to discover a header before a DelimitedSchema
// exists (schema resolution, CLI column introspection).
func PeekDelimitedHeader(path string, delimiter rune) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, sorterr.New(sorterr.IoRead, "opening "+path, err)
	}
	defer f.Close()

	codec := NewDelimitedCodec(&DelimitedSchema{Delimiter: delimiter})
	cr := codec.NewCSVReader(f)
	header, err := cr.Read()
	if err != nil {
		return nil, sorterr.New(sorterr.IoRead, "reading header from "+path, err)
	}
	return header, nil
}
