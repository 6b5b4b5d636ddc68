package urlcanon

import "errors"

var (
	ErrInvalidURL = errors.New("no URL found to encode")
)

// ParseError reports input that does not match the URL grammar.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return ErrInvalidURL.Error()
	}
	return ErrInvalidURL.Error() + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidURL
}

func invalid(raw string, err error) error {
	return &ParseError{Raw: raw, Err: err}
}
