package status

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultCode = http.StatusOK
	queryKey    = "status"
)

type Result struct {
	Code int
	OK   bool
}

func (r Result) CodeOrDefault() int {
	if !r.OK {
		return DefaultCode
	}
	return r.Code
}

// ParseCode reads the first "status" value from the query part of path.
// Blank values are skipped and surrounding whitespace is ignored. Absent or
// non-integer values produce a Result with OK unset.
func ParseCode(path string) Result {
	raw, found := lookupStatus(path)
	if !found {
		return Result{}
	}
	code, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Result{}
	}
	return Result{Code: code, OK: true}
}

func lookupStatus(path string) (string, bool) {
	_, query, ok := strings.Cut(path, "?")
	if !ok {
		return "", false
	}

	// Pairs that fail to decode are dropped by ParseQuery; the rest are
	// still usable, so the error is ignored.
	values, _ := url.ParseQuery(query)
	for _, v := range values[queryKey] {
		if v != "" {
			return v, true
		}
	}
	return "", false
}
