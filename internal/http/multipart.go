package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strconv"
	"sync"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/hashicorp/go-retryablehttp"
)

// multipartBody returns a body that streams fields as multipart/form-data and
// the matching Content-Type. Files are opened, and readers consumed, only
// while the body is being sent.
func multipartBody(fields []openai.FormField) (retryablehttp.ReaderFunc, string) {
	boundary := multipart.NewWriter(io.Discard).Boundary()

	write := func(w io.Writer) error {
		mw := multipart.NewWriter(w)

		err := mw.SetBoundary(boundary)
		if err != nil {
			return fmt.Errorf("setting multipart boundary: %w", err)
		}

		for _, field := range fields {
			err := writeField(mw, field)
			if err != nil {
				return err
			}
		}

		return mw.Close()
	}

	// retryablehttp calls the ReaderFunc once up front to probe the length and
	// closes the result, so the pipe must not start before the first Read.
	readerFunc := func() (io.Reader, error) {
		return &lazyPipe{write: write}, nil
	}

	return readerFunc, "multipart/form-data; boundary=" + boundary
}

func writeField(mw *multipart.Writer, field openai.FormField) error {
	part := field.Part

	switch part.Kind() {
	case openai.PartString:
		return mw.WriteField(field.Name, part.Text())
	case openai.PartInt:
		return mw.WriteField(field.Name, strconv.FormatInt(part.Int(), 10))
	case openai.PartPath, openai.PartStream, openai.PartBuffer:
		return writeFile(mw, field.Name, part)
	default:
		return fmt.Errorf("field %s: %w", field.Name, openai.ErrUnrecognizedData)
	}
}

func writeFile(mw *multipart.Writer, fieldName string, part openai.Part) error {
	filename := part.Name()
	if filename == "" {
		filename = fieldName
	}

	w, err := mw.CreateFormFile(fieldName, filename)
	if err != nil {
		return fmt.Errorf("creating form file %s: %w", fieldName, err)
	}

	switch part.Kind() {
	case openai.PartPath:
		// #nosec G304 -- the path is the caller's own upload
		file, err := os.Open(part.Path())
		if err != nil {
			return fmt.Errorf("opening %s: %w", part.Path(), err)
		}

		defer func() {
			_ = file.Close()
		}()

		_, err = io.Copy(w, file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", part.Path(), err)
		}
	case openai.PartStream:
		_, err = io.Copy(w, part.Reader())
		if err != nil {
			return fmt.Errorf("reading %s: %w", fieldName, err)
		}
	default:
		_, err = w.Write(part.Bytes())
		if err != nil {
			return fmt.Errorf("writing %s: %w", fieldName, err)
		}
	}

	return nil
}

// lazyPipe starts the writer goroutine on the first Read.
type lazyPipe struct {
	mu     sync.Mutex
	write  func(io.Writer) error
	reader *io.PipeReader
	closed bool
}

func (l *lazyPipe) pipe() (*io.PipeReader, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, io.ErrClosedPipe
	}

	if l.reader == nil {
		pr, pw := io.Pipe()
		l.reader = pr

		go func() {
			_ = pw.CloseWithError(l.write(pw))
		}()
	}

	return l.reader, nil
}

func (l *lazyPipe) Read(p []byte) (int, error) {
	reader, err := l.pipe()
	if err != nil {
		return 0, err
	}

	return reader.Read(p)
}

func (l *lazyPipe) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true

	if l.reader != nil {
		return l.reader.Close()
	}

	return nil
}
