package status

import (
	"fmt"
	"net/http"
)

// FallbackPhrase is returned for codes missing from the table unless strict
// mode is on. Clients of the original server rely on it.
const FallbackPhrase = "200 OK"

var reasons = buildReasons()

func buildReasons() map[int]string {
	table := make(map[int]string, 64)
	for code := 100; code < 600; code++ {
		if text := http.StatusText(code); text != "" {
			table[code] = text
		}
	}
	return table
}

type Phrases interface {
	Phrase(code int) string
}

type phrases struct {
	strict bool
}

func NewPhrases(strict bool) Phrases {
	return &phrases{strict: strict}
}

// Phrase returns "<code> <reason>" for a registered code. Unknown codes map
// to FallbackPhrase, or to "<code> Unknown" in strict mode.
func (p *phrases) Phrase(code int) string {
	reason, ok := reasons[code]
	if ok {
		return fmt.Sprintf("%d %s", code, reason)
	}
	if p.strict {
		return fmt.Sprintf("%d Unknown", code)
	}
	return FallbackPhrase
}
