package csvcheck

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// ErrInvalidEncoding is the cause of a FileAccessError for non-UTF-8 input.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

const utf8BOM = "\ufeff"

// FileAccessError is returned when the input file cannot be read or decoded.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	cause := e.Err
	var pathErr *fs.PathError
	if errors.As(cause, &pathErr) {
		cause = pathErr.Err
	}
	return "cannot read " + e.Path + ": " + cause.Error()
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ReadFile loads the whole file as UTF-8 text without a leading BOM.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &FileAccessError{Path: path, Err: ErrInvalidEncoding}
	}
	return strings.TrimPrefix(string(data), utf8BOM), nil
}
