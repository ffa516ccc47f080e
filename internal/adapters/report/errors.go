package report

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported output format")
	ErrEncode            = errors.New("encode report failed")
)
