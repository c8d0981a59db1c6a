package feed

import (
	"errors"
	"fmt"
)

// ErrNoXMLInArchive means the upstream returned a valid zip archive without a
// single .xml member inside.
var ErrNoXMLInArchive = errors.New("feed archive contains no xml member")

// UpstreamHTTPError mirrors a non-200 answer of the upstream feed endpoint.
type UpstreamHTTPError struct {
	Status int
}

func (e *UpstreamHTTPError) Error() string {
	return fmt.Sprintf("upstream responded with status %d", e.Status)
}

// ParseError wraps an XML syntax failure of the feed document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("feed parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
