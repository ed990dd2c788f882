package openai

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// PartKind identifies the value carried by a Part.
type PartKind int

// Part value kinds.
const (
	PartPath PartKind = iota + 1
	PartStream
	PartBuffer
	PartString
	PartInt
)

// String implements fmt.Stringer.
func (k PartKind) String() string {
	switch k {
	case PartPath:
		return "path"
	case PartStream:
		return "stream"
	case PartBuffer:
		return "buffer"
	case PartString:
		return "string"
	case PartInt:
		return "int"
	default:
		return fmt.Sprintf("PartKind(%d)", int(k))
	}
}

// Part is one value of a multipart body. Name is the file name reported to the
// server and may be empty.
type Part struct {
	name   string
	kind   PartKind
	path   string
	stream io.Reader
	buffer []byte
	text   string
	number int64
}

// PathPart returns a part whose bytes are read from path when the body is written.
func PathPart(name, path string) Part {
	return Part{name: name, kind: PartPath, path: path}
}

// StreamPart returns a part whose bytes are read from r when the body is written.
func StreamPart(name string, r io.Reader) Part {
	return Part{name: name, kind: PartStream, stream: r}
}

// BufferPart returns a part holding b.
func BufferPart(name string, b []byte) Part {
	return Part{name: name, kind: PartBuffer, buffer: b}
}

// StringPart returns a part holding s.
func StringPart(name, s string) Part {
	return Part{name: name, kind: PartString, text: s}
}

// IntPart returns a part holding n.
func IntPart(name string, n int64) Part {
	return Part{name: name, kind: PartInt, number: n}
}

// Name returns the part name, possibly empty.
func (p Part) Name() string { return p.name }

// Kind returns the value kind.
func (p Part) Kind() PartKind { return p.kind }

// Path returns the file path of a PartPath part.
func (p Part) Path() string { return p.path }

// Reader returns the reader of a PartStream part.
func (p Part) Reader() io.Reader { return p.stream }

// Bytes returns the buffer of a PartBuffer part.
func (p Part) Bytes() []byte { return p.buffer }

// Text returns the value of a PartString part.
func (p Part) Text() string { return p.text }

// Int returns the value of a PartInt part.
func (p Part) Int() int64 { return p.number }

// IsFile reports whether the part carries bytes that are sent as a file upload.
func (p Part) IsFile() bool {
	return p.kind == PartPath || p.kind == PartStream || p.kind == PartBuffer
}

// FileInput is either a prepared Part or a path on the local filesystem.
type FileInput struct {
	part   *Part
	path   string
	isPath bool
}

// FileFromPath returns a FileInput that refers to a local file.
func FileFromPath(path string) FileInput {
	return FileInput{path: path, isPath: true}
}

// FileFromPart returns a FileInput that is passed through unchanged.
func FileFromPart(part Part) FileInput {
	return FileInput{part: &part}
}

// IsZero reports whether no file was provided.
func (f FileInput) IsZero() bool {
	return f.part == nil && !f.isPath
}

// EnsureFile normalizes a FileInput into a Part.
//
// A prepared part is returned unchanged. A path must name an existing, readable
// regular file; the part carries the base file name and the path itself, and the
// bytes are read later by the transport.
func EnsureFile(input FileInput) (Part, error) {
	if input.IsZero() {
		return Part{}, &ValidationError{Field: "file", Reason: ErrFileNotFound}
	}

	if input.part != nil {
		return *input.part, nil
	}

	info, err := os.Stat(input.path)
	if err != nil {
		return Part{}, &ValidationError{Field: "file", Value: input.path, Reason: ErrFileNotFound}
	}

	if info.IsDir() {
		return Part{}, &ValidationError{Field: "file", Value: input.path, Reason: ErrNotAFile}
	}

	file, err := os.Open(input.path)
	if err != nil {
		return Part{}, &ValidationError{Field: "file", Value: input.path, Reason: ErrFileNotReadable}
	}

	_ = file.Close()

	return PathPart(filepath.Base(input.path), input.path), nil
}

type dataKind int

const (
	dataUnset dataKind = iota
	dataPart
	dataStream
	dataBuffer
	dataString
	dataInt
)

// DataInput is a part, a reader, a byte buffer, a string or an integer.
type DataInput struct {
	kind   dataKind
	part   Part
	stream io.Reader
	buffer []byte
	text   string
	number int64
}

// DataFromPart returns a DataInput that is passed through unchanged.
func DataFromPart(part Part) DataInput {
	return DataInput{kind: dataPart, part: part}
}

// DataFromReader returns a DataInput read from r.
func DataFromReader(r io.Reader) DataInput {
	return DataInput{kind: dataStream, stream: r}
}

// DataFromBytes returns a DataInput holding b.
func DataFromBytes(b []byte) DataInput {
	return DataInput{kind: dataBuffer, buffer: b}
}

// DataFromString returns a DataInput holding s.
func DataFromString(s string) DataInput {
	return DataInput{kind: dataString, text: s}
}

// DataFromInt returns a DataInput holding n.
func DataFromInt(n int64) DataInput {
	return DataInput{kind: dataInt, number: n}
}

// EnsureData normalizes a DataInput into a Part. Raw values become unnamed
// parts; there is no path to derive a name from. A nil byte buffer is an empty
// buffer, while a nil reader is rejected.
func EnsureData(input DataInput) (Part, error) {
	switch input.kind {
	case dataPart:
		return input.part, nil
	case dataStream:
		if input.stream == nil {
			return Part{}, &ValidationError{Field: "data", Reason: ErrUnrecognizedData}
		}

		return StreamPart("", input.stream), nil
	case dataBuffer:
		if input.buffer == nil {
			return BufferPart("", []byte{}), nil
		}

		return BufferPart("", input.buffer), nil
	case dataString:
		return StringPart("", input.text), nil
	case dataInt:
		return IntPart("", input.number), nil
	case dataUnset:
		return Part{}, &ValidationError{Field: "data", Reason: ErrUnrecognizedData}
	default:
		return Part{}, &ValidationError{Field: "data", Reason: ErrUnrecognizedData}
	}
}
