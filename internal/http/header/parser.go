package header

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrMalformedRequestLine = errors.New("invalid start line")
	ErrMalformedHeader      = errors.New("invalid header line")
)

var (
	crlf      = []byte("\r\n")
	separator = []byte(": ")
)

func parseRequest(data []byte) (*requestHeader, error) {
	header := &requestHeader{
		fields: make([]Field, 0, 16),
	}

	startLine, remaining, _ := bytes.Cut(data, crlf)

	var err error
	header.method, header.path, header.version, err = parseStartLine(startLine)
	if err != nil {
		return nil, err
	}

	if err = setRemainingHeaders(remaining, header); err != nil {
		return nil, err
	}

	return header, nil
}

func parseStartLine(startLine []byte) (method, path, version string, err error) {
	firstSpace := bytes.IndexByte(startLine, ' ')
	if firstSpace == -1 {
		return "", "", "", fmt.Errorf("%w: missing path", ErrMalformedRequestLine)
	}

	secondSpace := bytes.IndexByte(startLine[firstSpace+1:], ' ')
	if secondSpace == -1 {
		return "", "", "", fmt.Errorf("%w: missing version", ErrMalformedRequestLine)
	}
	secondSpace += firstSpace + 1

	method = string(startLine[:firstSpace])
	path = string(startLine[firstSpace+1 : secondSpace])
	version = string(startLine[secondSpace+1:])

	return method, path, version, nil
}

// setRemainingHeaders consumes "Key: Value" lines up to the first empty
// line. Data that ends without the empty line is a truncated read and is
// accepted as is.
func setRemainingHeaders(remaining []byte, header *requestHeader) error {
	for len(remaining) > 0 {
		line, rest, _ := bytes.Cut(remaining, crlf)
		if len(line) == 0 {
			return nil
		}

		key, val, ok := bytes.Cut(line, separator)
		if !ok {
			return fmt.Errorf("%w: %q", ErrMalformedHeader, line)
		}
		header.fields = set(header.fields, string(key), string(val))

		remaining = rest
	}
	return nil
}

func finalize(startLine []byte, fields []Field) []byte {
	size := len(startLine) + 2
	for _, f := range fields {
		size += len(f.Key) + 2 + len(f.Value) + 2
	}
	size += 2

	buf := make([]byte, 0, size)
	buf = append(buf, startLine...)
	buf = append(buf, '\r', '\n')

	for _, f := range fields {
		buf = append(buf, f.Key...)
		buf = append(buf, ':', ' ')
		buf = append(buf, f.Value...)
		buf = append(buf, '\r', '\n')
	}

	buf = append(buf, '\r', '\n')
	return buf
}
