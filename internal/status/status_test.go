package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhrase(t *testing.T) {
	tests := []struct {
		name     string
		strict   bool
		code     int
		expected string
	}{
		{"ok", false, 200, "200 OK"},
		{"not found", false, 404, "404 Not Found"},
		{"internal server error", false, 500, "500 Internal Server Error"},
		{"informational", false, 100, "100 Continue"},
		{"teapot", false, 418, "418 I'm a teapot"},
		{"unknown code keeps compatibility fallback", false, 999, "200 OK"},
		{"unassigned code in range keeps compatibility fallback", false, 299, "200 OK"},
		{"negative code keeps compatibility fallback", false, -1, "200 OK"},
		{"strict known code", true, 404, "404 Not Found"},
		{"strict unknown code reports the code", true, 999, "999 Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPhrases(tt.strict).Phrase(tt.code))
		})
	}
}

func TestReasonsTableIsStandardRegistry(t *testing.T) {
	for code := range reasons {
		assert.GreaterOrEqual(t, code, 100)
		assert.Less(t, code, 600)
	}
	assert.Equal(t, "Service Unavailable", reasons[503])
	_, ok := reasons[600]
	assert.False(t, ok)
}

func TestParseCode(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		expectOK   bool
		expectCode int
	}{
		{"no query", "/path", false, 200},
		{"status present", "/path?status=404", true, 404},
		{"status at root", "/?status=500", true, 500},
		{"status after other params", "/?a=1&status=201", true, 201},
		{"status before other params", "/?status=301&a=1", true, 301},
		{"first value wins", "/?status=302&status=404", true, 302},
		{"non numeric", "/?status=abc", false, 200},
		{"empty value", "/?status=", false, 200},
		{"missing key", "/?code=404", false, 200},
		{"unknown numeric code is still parsed", "/?status=999", true, 999},
		{"bad escape in other pair", "/?a=%zz&status=404", true, 404},
		{"only question mark", "/?", false, 200},
		{"second question mark belongs to query", "/?x=?&status=204", true, 204},
		{"plus decodes to leading space", "/?status=+404", true, 404},
		{"encoded leading space", "/?status=%20404", true, 404},
		{"encoded trailing space", "/?status=404%20", true, 404},
		{"blank value skipped for later value", "/?status=&status=404", true, 404},
		{"whitespace only value", "/?status=%20", false, 200},
		{"inner space is not a number", "/?status=4%2004", false, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseCode(tt.path)
			assert.Equal(t, tt.expectOK, result.OK)
			assert.Equal(t, tt.expectCode, result.CodeOrDefault())
		})
	}
}

func TestResultCodeOrDefault(t *testing.T) {
	assert.Equal(t, DefaultCode, Result{}.CodeOrDefault())
	assert.Equal(t, DefaultCode, Result{Code: 404}.CodeOrDefault())
	assert.Equal(t, 404, Result{Code: 404, OK: true}.CodeOrDefault())
}
