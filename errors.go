package bstr

import (
	"errors"
	"fmt"
)

// Sentinel errors. Errors returned by this package wrap one of these so
// callers can test for them with [errors.Is].
var (
	// ErrInvalidUTF8 is wrapped by [*Utf8Error] and [*FromUtf8Error].
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrEmptySeparator is the panic value used when a split function is
	// given an empty separator.
	ErrEmptySeparator = errors.New("bstr: empty separator")

	// ErrPathNotUTF8 is wrapped by the error [BStr.ToPath] returns for
	// byte strings that are not valid UTF-8.
	ErrPathNotUTF8 = errors.New("bstr: path is not valid UTF-8")
)

// Utf8Error describes where UTF-8 validation failed.
type Utf8Error struct {
	validUpTo int
	errorLen  int // 0 when the input ended inside a possibly valid sequence
}

// ValidUpTo returns the byte offset immediately following the last valid
// UTF-8 byte.
func (e *Utf8Error) ValidUpTo() int {
	return e.validUpTo
}

// ErrorLen returns the number of invalid bytes following [Utf8Error.ValidUpTo].
// The value is between 1 and 3. If ok is false, the input ended before a
// valid sequence could be completed and more input might complete it. Only
// [ValidateStream] reports this case.
func (e *Utf8Error) ErrorLen() (n int, ok bool) {
	return e.errorLen, e.errorLen > 0
}

func (e *Utf8Error) Error() string {
	return fmt.Sprintf("invalid UTF-8 found at byte offset %d", e.validUpTo)
}

func (e *Utf8Error) Unwrap() error {
	return ErrInvalidUTF8
}

// FromUtf8Error is returned when an owned byte string could not be converted
// to a string. It hands the original bytes back to the caller.
type FromUtf8Error struct {
	original []byte
	err      *Utf8Error
}

// Bytes returns the bytes that failed to convert.
func (e *FromUtf8Error) Bytes() []byte {
	return e.original
}

// Utf8Error returns the validation error describing the failure.
func (e *FromUtf8Error) Utf8Error() *Utf8Error {
	return e.err
}

func (e *FromUtf8Error) Error() string {
	return e.err.Error()
}

func (e *FromUtf8Error) Unwrap() error {
	return e.err
}
