package echo

import (
	"echo_server/internal/http/header"
	"echo_server/internal/status"
	"fmt"
	"net"
	"strconv"
	"strings"
)

const (
	protocolVersion = "HTTP/1.1"
	contentType     = "text/plain"
	lineSeparator   = "\n"
)

type Responder interface {
	Respond(data []byte, remoteAddr net.Addr) ([]byte, error)
}

type responder struct {
	phrases status.Phrases
}

func New(phrases status.Phrases) Responder {
	return &responder{phrases: phrases}
}

func (r *responder) Respond(data []byte, remoteAddr net.Addr) ([]byte, error) {
	reqhf, err := header.NewRequest(data)
	if err != nil {
		return nil, fmt.Errorf("parse request: %w", err)
	}

	phrase := r.phrases.Phrase(status.ParseCode(reqhf.Path()).CodeOrDefault())
	body := Body(reqhf.Method(), FormatSource(remoteAddr), phrase, reqhf.Fields())
	return BuildResponse(phrase, body), nil
}

func Body(method, source, phrase string, fields []header.Field) string {
	lines := make([]string, 0, 3+len(fields))
	lines = append(lines,
		"Request Method: "+method,
		"Request Source: "+source,
		"Response Status: "+phrase,
	)
	for _, f := range fields {
		lines = append(lines, f.Key+": "+f.Value)
	}
	return strings.Join(lines, lineSeparator)
}

func BuildResponse(phrase, body string) []byte {
	resphf := header.NewResponse(protocolVersion, phrase)
	resphf.Set("Content-Length", strconv.Itoa(len(body)))
	resphf.Set("Content-Type", contentType)
	return append(resphf.Finalize(), body...)
}

// FormatSource renders the peer as an ('ip', port) pair. Addresses without a
// numeric port fall back to their String form.
func FormatSource(addr net.Addr) string {
	if addr == nil {
		return ""
	}
	if tcpAddr, ok := addr.(*net.TCPAddr); ok {
		return fmt.Sprintf("('%s', %d)", tcpAddr.IP.String(), tcpAddr.Port)
	}

	host, rawPort, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return addr.String()
	}
	return fmt.Sprintf("('%s', %d)", host, port)
}
