package bstr

import (
	"errors"
	"strings"
)

// FromPath returns a view of the bytes of an operating system path. The
// view must not be modified.
func FromPath(path string) BStr {
	return BStr{b: viewBytes(path)}
}

// ToPath converts the view to a path. It fails with an error wrapping
// [ErrPathNotUTF8] if the bytes are not valid UTF-8, the only encoding that
// round-trips through the operating system on every platform.
func (s BStr) ToPath() (string, error) {
	str, err := ToStr(s.b)
	if err != nil {
		return "", errors.Join(ErrPathNotUTF8, err)
	}
	return strings.Clone(str), nil
}

// ToPathLossy is like [BStr.ToPath] but replaces invalid UTF-8 with U+FFFD.
func (s BStr) ToPathLossy() string {
	return s.String()
}
